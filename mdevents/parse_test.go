package mdevents_test

import (
	"testing"

	"github.com/kofi-q/escpos-md/mdevents"
	"github.com/stretchr/testify/require"
)

func TestParseParagraphText(t *testing.T) {
	events, err := mdevents.Parse([]byte("hello world"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{Kind: mdevents.EventText, Text: "hello world"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
	}, events)
}

func TestParseHeadingLevel(t *testing.T) {
	events, err := mdevents.Parse([]byte("### three"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagHeading, Level: 3}},
		{Kind: mdevents.EventText, Text: "three"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagHeading, Level: 3}},
	}, events)
}

func TestParseNestedEmphasisAndStrong(t *testing.T) {
	events, err := mdevents.Parse([]byte("a *b* **c** d"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{Kind: mdevents.EventText, Text: "a "},
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagEmphasis}},
		{Kind: mdevents.EventText, Text: "b"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagEmphasis}},
		{Kind: mdevents.EventText, Text: " "},
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagStrong}},
		{Kind: mdevents.EventText, Text: "c"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagStrong}},
		{Kind: mdevents.EventText, Text: " d"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
	}, events)
}

func TestParseStrikethrough(t *testing.T) {
	events, err := mdevents.Parse([]byte("~~gone~~"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagStrikethrough}},
		{Kind: mdevents.EventText, Text: "gone"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagStrikethrough}},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
	}, events)
}

func TestParseTightUnorderedListSkipsParagraphWrapping(t *testing.T) {
	// A tight list (no blank line between items) gets its item text as a
	// bare TextBlock, not a Paragraph, matching pulldown_cmark's
	// suppression of Tag::Paragraph for tight-list items.
	events, err := mdevents.Parse([]byte("- one\n- two\n"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagList, Ordered: false}},
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagItem}},
		{Kind: mdevents.EventText, Text: "one"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagItem}},
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagItem}},
		{Kind: mdevents.EventText, Text: "two"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagItem}},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagList, Ordered: false}},
	}, events)
}

func TestParseLooseUnorderedListKeepsParagraphWrapping(t *testing.T) {
	// A blank line between items makes the list loose, so each item's
	// text is a genuine Paragraph.
	events, err := mdevents.Parse([]byte("- one\n\n- two\n"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagList, Ordered: false}},
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagItem}},
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{Kind: mdevents.EventText, Text: "one"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagItem}},
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagItem}},
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{Kind: mdevents.EventText, Text: "two"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagItem}},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagList, Ordered: false}},
	}, events)
}

func TestParseOrderedList(t *testing.T) {
	events, err := mdevents.Parse([]byte("1. a\n2. b\n"))
	require.NoError(t, err)

	require.Equal(t, mdevents.Tag{Kind: mdevents.TagList, Ordered: true}, events[0].Tag)
	require.Equal(t, mdevents.EventStart, events[0].Kind)
}

func TestParseLink(t *testing.T) {
	events, err := mdevents.Parse([]byte("[label](https://example.com \"title\")"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{
			Kind: mdevents.EventStart,
			Tag:  mdevents.Tag{Kind: mdevents.TagLink, URL: "https://example.com", Title: "title"},
		},
		{Kind: mdevents.EventText, Text: "label"},
		{
			Kind: mdevents.EventEnd,
			Tag:  mdevents.Tag{Kind: mdevents.TagLink, URL: "https://example.com", Title: "title"},
		},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
	}, events)
}

func TestParseAutoLink(t *testing.T) {
	events, err := mdevents.Parse([]byte("<https://example.com>"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{
			Kind: mdevents.EventStart,
			Tag:  mdevents.Tag{Kind: mdevents.TagLink, URL: "https://example.com"},
		},
		{Kind: mdevents.EventText, Text: "https://example.com"},
		{
			Kind: mdevents.EventEnd,
			Tag:  mdevents.Tag{Kind: mdevents.TagLink, URL: "https://example.com"},
		},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
	}, events)
}

func TestParseImage(t *testing.T) {
	events, err := mdevents.Parse([]byte("![alt](receipt.png)"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagImage, URL: "receipt.png"}},
		{Kind: mdevents.EventText, Text: "alt"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagImage, URL: "receipt.png"}},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
	}, events)
}

func TestParseFencedCodeBlock(t *testing.T) {
	events, err := mdevents.Parse([]byte("```\nfoo()\n```\n"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagCodeBlock}},
		{Kind: mdevents.EventText, Text: "foo()\n"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagCodeBlock}},
	}, events)
}

func TestParseInlineCode(t *testing.T) {
	events, err := mdevents.Parse([]byte("run `go test`"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{Kind: mdevents.EventText, Text: "run "},
		{Kind: mdevents.EventCode, Text: "go test"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
	}, events)
}

func TestParseThematicBreak(t *testing.T) {
	events, err := mdevents.Parse([]byte("---\n"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventRule},
	}, events)
}

func TestParseHardAndSoftLineBreaks(t *testing.T) {
	events, err := mdevents.Parse([]byte("one  \ntwo\nthree"))
	require.NoError(t, err)

	require.Equal(t, []mdevents.Event{
		{Kind: mdevents.EventStart, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
		{Kind: mdevents.EventText, Text: "one"},
		{Kind: mdevents.EventHardBreak},
		{Kind: mdevents.EventText, Text: "two"},
		{Kind: mdevents.EventSoftBreak},
		{Kind: mdevents.EventText, Text: "three"},
		{Kind: mdevents.EventEnd, Tag: mdevents.Tag{Kind: mdevents.TagParagraph}},
	}, events)
}
