// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package style

import "github.com/kofi-q/escpos-md"

func ptr[T any](v T) *T { return &v }

// DefaultSheet returns the semantic (not byte-exact) default stylesheet
// described in §4.4: margins, the h1 treatment, nested-list margin
// collapsing, list bullets, and strong/em as inline spans.
func DefaultSheet() *Sheet {
	sh := NewSheet(DefaultStyle())

	must(sh.Push("*", RelativeStyle{
		MarginTop: ptr(60),
	}))

	must(sh.Push("h1", RelativeStyle{
		FontWidth:  ptr(uint8(3)),
		FontHeight: ptr(uint8(3)),
		Bold:       ptr(true),
	}))

	must(sh.Push("ul ul, ul ol, ol ol, ol ul", RelativeStyle{
		MarginTop:    ptr(0),
		MarginBottom: ptr(0),
	}))

	must(sh.Push("li", RelativeStyle{
		MarginTop:  ptr(12),
		MarginLeft: ptr(28),
	}))

	must(sh.Push("> ul > li, > ol > li", RelativeStyle{
		MarginLeft: ptr(0),
	}))

	must(sh.Push("ul > li", RelativeStyle{
		Prefix: ptr("* "),
	}))

	must(sh.Push("strong", RelativeStyle{
		Display: ptr(DisplayInline),
		Bold:    ptr(true),
	}))

	must(sh.Push("em", RelativeStyle{
		Display:   ptr(DisplayInline),
		Underline: ptr(escpos.UnderlineOneDot),
	}))

	return sh
}

// must panics on a default-stylesheet compile error: the built-in
// selectors are constants and a failure here is a programming error, not
// a runtime condition callers should handle.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
