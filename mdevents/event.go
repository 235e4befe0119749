// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mdevents defines the Markdown event stream the Renderer
// consumes, and a goldmark-backed producer of that stream.
package mdevents

// TagKind is the closed set of block/inline constructs a Start/End
// event pair can open.
type TagKind uint8

const (
	TagParagraph TagKind = iota
	TagHeading
	TagBlockQuote
	TagCodeBlock
	TagList
	TagItem
	TagEmphasis
	TagStrong
	TagStrikethrough
	TagLink
	TagImage
)

// Tag carries a TagKind plus the handful of variant-specific fields the
// renderer needs: heading level, whether a list is ordered, and an
// image's source/title.
type Tag struct {
	Kind    TagKind
	Level   int
	Ordered bool
	URL     string
	Title   string
}

// Kind tags the variant held by an Event.
type Kind uint8

const (
	EventStart Kind = iota
	EventEnd
	EventText
	EventCode
	EventHTML
	EventFootnoteReference
	EventSoftBreak
	EventHardBreak
	EventRule
	EventTaskListMarker
)

// Event is one node in the Markdown event stream: Start/End carry a
// Tag, Text/Code/HTML/FootnoteReference carry Text, TaskListMarker
// carries Checked. HTML, FootnoteReference and TaskListMarker are
// accepted but ignored by the Renderer, matching the external
// interface's contract.
type Event struct {
	Kind    Kind
	Tag     Tag
	Text    string
	Checked bool
}
