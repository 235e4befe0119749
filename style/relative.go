// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package style

import "github.com/kofi-q/escpos-md"

// RelativeStyle is a sparse patch applied on top of a Style during
// cascade resolution: every field is optional so only the attributes a
// rule actually sets are merged in.
type RelativeStyle struct {
	Display           *Display
	Prefix            *string
	Font              *escpos.Font
	FontWidth         *uint8
	FontHeight        *uint8
	Underline         *escpos.Underline
	Bold              *bool
	WhiteBlackReverse *bool
	SplitWords        *bool
	Justification     *escpos.Justification
	CharSpacing       *int
	// LineSpacing is a double optional: set to a non-nil pointer to a nil
	// *int to explicitly restore the device default, or to a pointer to a
	// value to set one.
	LineSpacing  **int
	MarginTop    *int
	MarginBottom *int
	MarginLeft   *int
}

// ApplyFont merges rel's font-level fields into s and recomputes
// CharMagnification from FontWidth/FontHeight, clamping into [1, 8].
// Font attributes are applied on every loose match so they propagate
// down the tree (a nested <em> inherits an ancestor's font rule).
func (s *Style) ApplyFont(rel RelativeStyle) {
	if rel.Font != nil {
		s.Font = *rel.Font
	}
	if rel.Underline != nil {
		s.Underline = *rel.Underline
	}
	if rel.Bold != nil {
		s.Bold = *rel.Bold
	}
	if rel.WhiteBlackReverse != nil {
		s.WhiteBlackReverse = *rel.WhiteBlackReverse
	}
	if rel.SplitWords != nil {
		s.SplitWords = *rel.SplitWords
	}
	if rel.CharSpacing != nil {
		s.CharSpacing = *rel.CharSpacing
	}
	if rel.LineSpacing != nil {
		s.LineSpacing = *rel.LineSpacing
	}

	width := s.CharMagnification.Width()
	if rel.FontWidth != nil {
		width = *rel.FontWidth
	}
	height := s.CharMagnification.Height()
	if rel.FontHeight != nil {
		height = *rel.FontHeight
	}
	s.CharMagnification = escpos.ClampedCharMagnification(width, height)
}

// ApplyBlock merges rel's block-level fields into s. Block attributes
// only apply on an exact match, since they're bound to the node itself
// rather than inherited by descendants.
func (s *Style) ApplyBlock(rel RelativeStyle) {
	if rel.Display != nil {
		s.Display = *rel.Display
	}
	if rel.Prefix != nil {
		s.Prefix = *rel.Prefix
	}
	if rel.Justification != nil {
		s.Justification = *rel.Justification
	}
	if rel.MarginTop != nil {
		s.MarginTop = *rel.MarginTop
	}
	if rel.MarginBottom != nil {
		s.MarginBottom = *rel.MarginBottom
	}
	if rel.MarginLeft != nil {
		s.MarginLeft = *rel.MarginLeft
	}
}
