// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package escpos

// PrinterState is the Printer's mutable formatting state. It is owned
// exclusively by a single Printer and never shared.
type PrinterState struct {
	CharSpacing uint8
	// LineSpacing is nil when the device's default line spacing is in
	// effect.
	LineSpacing *uint8
	Font        Font
	// LeftOffset is the distance, in dots, from the current line's start
	// to the next glyph to be printed. It is the sole variable coupling
	// the word splitter to the printer.
	LeftOffset    uint16
	SplitWords    bool
	LeftMargin    uint16
	Justification Justification
	CharMagnification CharMagnification
}

// defaultState returns the deterministic state Printer.Reset restores.
func defaultState(cfg PrinterConfig) PrinterState {
	return PrinterState{
		CharSpacing:        uint8(cfg.CharSpacing),
		LineSpacing:        nil,
		Font:               FontA,
		LeftOffset:         0,
		SplitWords:         true,
		LeftMargin:         0,
		Justification:      JustificationLeft,
		CharMagnification:  DefaultCharMagnification(),
	}
}

// PrintableWidth is the paper width minus the current left margin,
// clamped at zero.
func (s PrinterState) PrintableWidth(cfg PrinterConfig) int {
	margin := int(s.LeftMargin)
	if margin > cfg.Width {
		margin = cfg.Width
	}
	w := cfg.Width - margin
	if w < 0 {
		return 0
	}
	return w
}

// CalcCharSize is the horizontal dots occupied by one printed character,
// including spacing and magnification.
func (s PrinterState) CalcCharSize(cfg PrinterConfig) int {
	return (cfg.FontWidths.Get(s.Font) + int(s.CharSpacing)) * int(s.CharMagnification.Width())
}
