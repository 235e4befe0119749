// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package escpos

// Font selects one of the printer's five built-in character cells.
type Font uint8

const (
	FontA Font = iota
	FontB
	FontC
	FontD
	FontE
)

func (f Font) String() string {
	switch f {
	case FontA:
		return "A"
	case FontB:
		return "B"
	case FontC:
		return "C"
	case FontD:
		return "D"
	case FontE:
		return "E"
	default:
		return "?"
	}
}

const fontCount = int(FontE) + 1

// FontWidths maps each Font to its glyph cell width, in dots.
type FontWidths struct {
	widths [fontCount]int
}

// DefaultFontWidths gives Font A a 12-dot cell (32 columns on
// DefaultPrinterConfig's 384-dot paper) and Fonts B-E a 9-dot cell.
func DefaultFontWidths() FontWidths {
	return FontWidths{widths: [fontCount]int{12, 9, 9, 9, 9}}
}

func (w FontWidths) Get(f Font) int {
	return w.widths[f]
}

func (w *FontWidths) Set(f Font, width int) {
	w.widths[f] = width
}

// Underline selects the printer's underline thickness.
type Underline uint8

const (
	UnderlineOff Underline = iota
	UnderlineOneDot
	UnderlineTwoDot
)

// Justification selects the printer's horizontal line alignment.
type Justification uint8

const (
	JustificationLeft Justification = iota
	JustificationCenter
	JustificationRight
)
