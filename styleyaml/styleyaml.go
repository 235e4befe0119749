// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package styleyaml loads a style.Sheet from a YAML document: a map of
// selector string to a sparse set of style overrides.
package styleyaml

import (
	"fmt"
	"io"

	escpos "github.com/kofi-q/escpos-md"
	"github.com/kofi-q/escpos-md/style"
	"gopkg.in/yaml.v3"
)

// rawRule is the YAML-decodable shape of one stylesheet entry. Every
// field is a pointer so an absent key leaves the corresponding
// style.RelativeStyle field unset.
type rawRule struct {
	Display           *string `yaml:"display"`
	Prefix            *string `yaml:"prefix"`
	Font              *string `yaml:"font"`
	FontWidth         *uint8  `yaml:"font_width"`
	FontHeight        *uint8  `yaml:"font_height"`
	Underline         *string `yaml:"underline"`
	Bold              *bool   `yaml:"bold"`
	WhiteBlackReverse *bool   `yaml:"white_black_reverse"`
	SplitWords        *bool   `yaml:"split_words"`
	Justification     *string `yaml:"justification"`
	CharSpacing       *int    `yaml:"char_spacing"`
	// LineSpacing is a string so "default" can mean "explicitly restore
	// the device default" instead of "unset" (an absent key), matching
	// style.RelativeStyle's own double-optional field.
	LineSpacing  *string `yaml:"line_spacing"`
	MarginTop    *int    `yaml:"margin_top"`
	MarginBottom *int    `yaml:"margin_bottom"`
	MarginLeft   *int    `yaml:"margin_left"`
}

// Load decodes a YAML document of selector -> override from r, and
// pushes each entry onto a new style.Sheet built on base.
func Load(r io.Reader, base style.Style) (*style.Sheet, error) {
	var raw map[string]rawRule
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("styleyaml: decode: %w", err)
	}

	sheet := style.NewSheet(base)
	for selector, rule := range raw {
		rel, err := rule.toRelativeStyle()
		if err != nil {
			return nil, fmt.Errorf("styleyaml: selector %q: %w", selector, err)
		}
		if err := sheet.Push(selector, rel); err != nil {
			return nil, fmt.Errorf("styleyaml: selector %q: %w", selector, err)
		}
	}
	return sheet, nil
}

func (r rawRule) toRelativeStyle() (style.RelativeStyle, error) {
	var rel style.RelativeStyle

	if r.Display != nil {
		d, err := parseDisplay(*r.Display)
		if err != nil {
			return rel, err
		}
		rel.Display = &d
	}
	rel.Prefix = r.Prefix
	if r.Font != nil {
		f, err := parseFont(*r.Font)
		if err != nil {
			return rel, err
		}
		rel.Font = &f
	}
	rel.FontWidth = r.FontWidth
	rel.FontHeight = r.FontHeight
	if r.Underline != nil {
		u, err := parseUnderline(*r.Underline)
		if err != nil {
			return rel, err
		}
		rel.Underline = &u
	}
	rel.Bold = r.Bold
	rel.WhiteBlackReverse = r.WhiteBlackReverse
	rel.SplitWords = r.SplitWords
	if r.Justification != nil {
		j, err := parseJustification(*r.Justification)
		if err != nil {
			return rel, err
		}
		rel.Justification = &j
	}
	rel.CharSpacing = r.CharSpacing
	if r.LineSpacing != nil {
		ls, err := parseLineSpacing(*r.LineSpacing)
		if err != nil {
			return rel, err
		}
		rel.LineSpacing = &ls
	}
	rel.MarginTop = r.MarginTop
	rel.MarginBottom = r.MarginBottom
	rel.MarginLeft = r.MarginLeft

	return rel, nil
}

func parseDisplay(s string) (style.Display, error) {
	switch s {
	case "block":
		return style.DisplayBlock, nil
	case "inline":
		return style.DisplayInline, nil
	default:
		return 0, fmt.Errorf("styleyaml: unrecognized display %q", s)
	}
}

func parseFont(s string) (escpos.Font, error) {
	switch s {
	case "a", "A":
		return escpos.FontA, nil
	case "b", "B":
		return escpos.FontB, nil
	case "c", "C":
		return escpos.FontC, nil
	case "d", "D":
		return escpos.FontD, nil
	case "e", "E":
		return escpos.FontE, nil
	default:
		return 0, fmt.Errorf("styleyaml: unrecognized font %q", s)
	}
}

func parseUnderline(s string) (escpos.Underline, error) {
	switch s {
	case "off":
		return escpos.UnderlineOff, nil
	case "one_dot":
		return escpos.UnderlineOneDot, nil
	case "two_dot":
		return escpos.UnderlineTwoDot, nil
	default:
		return 0, fmt.Errorf("styleyaml: unrecognized underline %q", s)
	}
}

func parseJustification(s string) (escpos.Justification, error) {
	switch s {
	case "left":
		return escpos.JustificationLeft, nil
	case "center":
		return escpos.JustificationCenter, nil
	case "right":
		return escpos.JustificationRight, nil
	default:
		return 0, fmt.Errorf("styleyaml: unrecognized justification %q", s)
	}
}

// parseLineSpacing returns nil for "default" (explicitly restore the
// device default) or a pointer to the parsed dot count otherwise.
func parseLineSpacing(s string) (*int, error) {
	if s == "default" {
		return nil, nil
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return nil, fmt.Errorf("styleyaml: line_spacing %q is neither an integer nor \"default\"", s)
	}
	return &n, nil
}
