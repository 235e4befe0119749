// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package escpos

const (
	magnificationMin uint8 = 1
	magnificationMax uint8 = 8
)

// CharMagnification is a horizontal/vertical character scale factor, each
// axis in [1, 8].
type CharMagnification struct {
	width, height uint8
}

// NewCharMagnification validates width and height and returns a
// CharMagnification, or a KindInvalidCharMagnification error if either
// falls outside [1, 8].
func NewCharMagnification(width, height uint8) (CharMagnification, error) {
	if err := checkMagnificationParam(width); err != nil {
		return CharMagnification{}, err
	}
	if err := checkMagnificationParam(height); err != nil {
		return CharMagnification{}, err
	}
	return CharMagnification{width: width, height: height}, nil
}

// ClampedCharMagnification clamps width and height into [1, 8] rather
// than rejecting out-of-range values.
func ClampedCharMagnification(width, height uint8) CharMagnification {
	return CharMagnification{
		width:  clampMagnification(width),
		height: clampMagnification(height),
	}
}

// DefaultCharMagnification is the printer's 1x1 scale.
func DefaultCharMagnification() CharMagnification {
	return CharMagnification{width: 1, height: 1}
}

func (m CharMagnification) Width() uint8  { return m.width }
func (m CharMagnification) Height() uint8 { return m.height }

// ToByte encodes the magnification as the single parameter byte expected
// by GS ! n: height in the low nibble, width in the high nibble.
func (m CharMagnification) ToByte() byte {
	return (m.height - 1) | ((m.width - 1) << 4)
}

func checkMagnificationParam(v uint8) error {
	if v < magnificationMin || v > magnificationMax {
		return newErr(KindInvalidCharMagnification, "value %d outside [1, 8]", v)
	}
	return nil
}

func clampMagnification(v uint8) uint8 {
	switch {
	case v < magnificationMin:
		return magnificationMin
	case v > magnificationMax:
		return magnificationMax
	default:
		return v
	}
}
