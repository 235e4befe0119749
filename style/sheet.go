// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package style

type sheetEntry struct {
	rule  Rule
	style RelativeStyle
}

// Sheet is an ordered sequence of (Rule, RelativeStyle) pairs plus a base
// Style. Later rules override earlier ones wherever both match.
type Sheet struct {
	base    Style
	entries []sheetEntry
}

// NewSheet starts a Sheet from base, with no rules pushed yet.
func NewSheet(base Style) *Sheet {
	return &Sheet{base: base}
}

// Push compiles selector (which may hold several comma-separated
// clauses) and appends one cascade entry per clause, all carrying the
// same RelativeStyle.
func (sh *Sheet) Push(selector string, rel RelativeStyle) error {
	rules, err := ParseRules(selector)
	if err != nil {
		return err
	}
	for _, rule := range rules {
		sh.entries = append(sh.entries, sheetEntry{rule: rule, style: rel})
	}
	return nil
}

// Get resolves the effective Style for the given tag stack: starting
// from the base style, every rule matching loose contributes its font
// attributes, and every rule additionally matching exact contributes its
// block attributes, in insertion order.
func (sh *Sheet) Get(stack []Tag) Style {
	s := sh.base
	for _, entry := range sh.entries {
		if !entry.rule.MatchesLoose(stack) {
			continue
		}
		s.ApplyFont(entry.style)
		if entry.rule.MatchesExact(stack) {
			s.ApplyBlock(entry.style)
		}
	}
	return s
}
