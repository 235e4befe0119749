// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package style implements the CSS-like cascade that maps a Markdown tag
// stack to an effective rendering Style: selector rules compile to NFAs,
// then DFAs, and matching is an acceptance test on the current stack.
package style

import "fmt"

// Tag is the closed set of semantic node kinds a selector can reference.
type Tag uint8

const (
	P Tag = iota
	H1
	H2
	H3
	H4
	H5
	H6
	Blockquote
	Code
	Codeblock
	Ul
	Ol
	Li
	Em
	Strong
	Strikethrough
	Hr
	A
	Img
	ImgCaption
)

var tagNames = map[string]Tag{
	"p":             P,
	"h1":            H1,
	"h2":            H2,
	"h3":            H3,
	"h4":            H4,
	"h5":            H5,
	"h6":            H6,
	"blockquote":    Blockquote,
	"code":          Code,
	"codeblock":     Codeblock,
	"ul":            Ul,
	"ol":            Ol,
	"li":            Li,
	"em":            Em,
	"strong":        Strong,
	"strikethrough": Strikethrough,
	"hr":            Hr,
	"a":             A,
	"img":           Img,
	"imgcaption":    ImgCaption,
}

// allTags lists every Tag in declaration order, used to build the
// matcher's transition alphabet.
var allTags = []Tag{
	P, H1, H2, H3, H4, H5, H6, Blockquote, Code, Codeblock,
	Ul, Ol, Li, Em, Strong, Strikethrough, Hr, A, Img, ImgCaption,
}

func (t Tag) String() string {
	for name, tag := range tagNames {
		if tag == t {
			return name
		}
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// ParseTag resolves a selector token to a Tag. It returns an
// InvalidRuleTag error for anything not in the closed tag name set.
func ParseTag(s string) (Tag, error) {
	tag, ok := tagNames[s]
	if !ok {
		return 0, newParseErr("invalid-rule-tag", "unrecognized tag name %q", s)
	}
	return tag, nil
}
