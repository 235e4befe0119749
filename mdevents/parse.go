// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdevents

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmext "github.com/yuin/goldmark/extension"
	astext "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(goldmark.WithExtensions(gmext.Strikethrough))

// Parse walks a goldmark AST built from source and flattens it into the
// Start/End/Text/Code/SoftBreak/HardBreak/Rule event sequence §6
// describes. HTML blocks and raw inline HTML are preserved as EventHTML
// events rather than dropped silently. Task-list markers are not
// recognized (only the Strikethrough extension is enabled), so no
// EventTaskListMarker is ever produced.
func Parse(source []byte) ([]Event, error) {
	doc := md.Parser().Parse(text.NewReader(source))

	var events []Event
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch nd := n.(type) {
		case *ast.Document:
			return ast.WalkContinue, nil

		case *ast.Paragraph:
			return startEnd(&events, entering, Tag{Kind: TagParagraph})

		case *ast.TextBlock:
			// A tight list item's single line of text: goldmark omits
			// the Paragraph wrapper here the same way pulldown_cmark
			// suppresses Tag::Paragraph for tight-list items.
			return ast.WalkContinue, nil

		case *ast.Heading:
			return startEnd(&events, entering, Tag{Kind: TagHeading, Level: nd.Level})

		case *ast.Blockquote:
			return startEnd(&events, entering, Tag{Kind: TagBlockQuote})

		case *ast.List:
			return startEnd(&events, entering, Tag{Kind: TagList, Ordered: nd.IsOrdered()})

		case *ast.ListItem:
			return startEnd(&events, entering, Tag{Kind: TagItem})

		case *ast.Emphasis:
			kind := TagEmphasis
			if nd.Level >= 2 {
				kind = TagStrong
			}
			return startEnd(&events, entering, Tag{Kind: kind})

		case *astext.Strikethrough:
			return startEnd(&events, entering, Tag{Kind: TagStrikethrough})

		case *ast.Link:
			return startEnd(&events, entering, Tag{
				Kind:  TagLink,
				URL:   string(nd.Destination),
				Title: string(nd.Title),
			})

		case *ast.AutoLink:
			if !entering {
				return ast.WalkContinue, nil
			}
			url := string(nd.URL(source))
			events = append(events, Event{Kind: EventStart, Tag: Tag{Kind: TagLink, URL: url}})
			events = append(events, Event{Kind: EventText, Text: url})
			events = append(events, Event{Kind: EventEnd, Tag: Tag{Kind: TagLink, URL: url}})
			return ast.WalkSkipChildren, nil

		case *ast.Image:
			return startEnd(&events, entering, Tag{
				Kind:  TagImage,
				URL:   string(nd.Destination),
				Title: string(nd.Title),
			})

		case *ast.CodeBlock:
			return codeBlock(&events, entering, nd, source)

		case *ast.FencedCodeBlock:
			return codeBlock(&events, entering, nd, source)

		case *ast.CodeSpan:
			if !entering {
				return ast.WalkContinue, nil
			}
			events = append(events, Event{Kind: EventCode, Text: string(nd.Text(source))})
			return ast.WalkSkipChildren, nil

		case *ast.Text:
			if !entering {
				return ast.WalkContinue, nil
			}
			events = append(events, Event{Kind: EventText, Text: string(nd.Segment.Value(source))})
			switch {
			case nd.HardLineBreak():
				events = append(events, Event{Kind: EventHardBreak})
			case nd.SoftLineBreak():
				events = append(events, Event{Kind: EventSoftBreak})
			}
			return ast.WalkSkipChildren, nil

		case *ast.ThematicBreak:
			if !entering {
				return ast.WalkContinue, nil
			}
			events = append(events, Event{Kind: EventRule})
			return ast.WalkSkipChildren, nil

		case *ast.RawHTML:
			if !entering {
				return ast.WalkContinue, nil
			}
			events = append(events, Event{Kind: EventHTML, Text: rawHTMLText(nd, source)})
			return ast.WalkSkipChildren, nil

		case *ast.HTMLBlock:
			if !entering {
				return ast.WalkContinue, nil
			}
			events = append(events, Event{Kind: EventHTML, Text: string(nd.Text(source))})
			return ast.WalkSkipChildren, nil

		default:
			return ast.WalkContinue, nil
		}
	})

	return events, err
}

func startEnd(events *[]Event, entering bool, tag Tag) (ast.WalkStatus, error) {
	if entering {
		*events = append(*events, Event{Kind: EventStart, Tag: tag})
	} else {
		*events = append(*events, Event{Kind: EventEnd, Tag: tag})
	}
	return ast.WalkContinue, nil
}

func codeBlock(events *[]Event, entering bool, n ast.Node, source []byte) (ast.WalkStatus, error) {
	if !entering {
		*events = append(*events, Event{Kind: EventEnd, Tag: Tag{Kind: TagCodeBlock}})
		return ast.WalkContinue, nil
	}
	*events = append(*events, Event{Kind: EventStart, Tag: Tag{Kind: TagCodeBlock}})
	*events = append(*events, Event{Kind: EventText, Text: string(n.Text(source))})
	return ast.WalkSkipChildren, nil
}

func rawHTMLText(n *ast.RawHTML, source []byte) string {
	var out []byte
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		out = append(out, seg.Value(source)...)
	}
	return string(out)
}
