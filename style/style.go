// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package style

import "github.com/kofi-q/escpos-md"

// Display controls whether begin/end block formatting (margins,
// justification, prefix) applies to a node.
type Display uint8

const (
	DisplayBlock Display = iota
	DisplayInline
)

// Style is the fully-resolved set of formatting attributes applicable to
// a node at a given point in the tag stack.
type Style struct {
	Display            Display
	Prefix             string
	Font               escpos.Font
	CharMagnification  escpos.CharMagnification
	CharSpacing        int
	LineSpacing        *int
	SplitWords         bool
	Underline          escpos.Underline
	Bold               bool
	WhiteBlackReverse  bool
	Justification      escpos.Justification
	MarginTop          int
	MarginBottom       int
	MarginLeft         int
}

// DefaultStyle is the cascade's base style, overridden field-by-field by
// matching rules.
func DefaultStyle() Style {
	return Style{
		Display:           DisplayBlock,
		Font:              escpos.FontA,
		CharMagnification: escpos.DefaultCharMagnification(),
		CharSpacing:       0,
		LineSpacing:       nil,
		SplitWords:        true,
		Underline:         escpos.UnderlineOff,
		Bold:              false,
		WhiteBlackReverse: false,
		Justification:     escpos.JustificationLeft,
		MarginTop:         0,
		MarginBottom:      0,
		MarginLeft:        0,
	}
}
