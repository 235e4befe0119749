// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdevents

import (
	"github.com/kofi-q/escpos-md"
	"github.com/kofi-q/escpos-md/style"
)

// StyleTag maps a Tag to the style.Tag a selector can match against. It
// returns an UnsupportedTag error for a heading level outside 1-6 or a
// TagKind with no style.Tag counterpart.
func (t Tag) StyleTag() (style.Tag, error) {
	switch t.Kind {
	case TagParagraph:
		return style.P, nil
	case TagHeading:
		switch t.Level {
		case 1:
			return style.H1, nil
		case 2:
			return style.H2, nil
		case 3:
			return style.H3, nil
		case 4:
			return style.H4, nil
		case 5:
			return style.H5, nil
		case 6:
			return style.H6, nil
		}
	case TagBlockQuote:
		return style.Blockquote, nil
	case TagCodeBlock:
		return style.Codeblock, nil
	case TagList:
		if t.Ordered {
			return style.Ol, nil
		}
		return style.Ul, nil
	case TagItem:
		return style.Li, nil
	case TagEmphasis:
		return style.Em, nil
	case TagStrong:
		return style.Strong, nil
	case TagStrikethrough:
		return style.Strikethrough, nil
	case TagLink:
		return style.A, nil
	case TagImage:
		return style.Img, nil
	}
	return 0, &escpos.Error{
		Kind: escpos.KindUnsupportedTag,
		Msg:  "markdown tag has no matching style tag",
	}
}
