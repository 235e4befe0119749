// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package render walks an mdevents.Event stream and issues the Printer
// operations it implies, consulting a style.Sheet for the Style
// applicable at each point in the open-tag stack.
package render

import (
	"strconv"
	"strings"

	"github.com/kofi-q/escpos-md"
	"github.com/kofi-q/escpos-md/mdevents"
	"github.com/kofi-q/escpos-md/style"
)

// horizontalRuleGlyph is the CP437 box-drawing character (0xC4) the
// printer's font renders as an unbroken horizontal line.
const horizontalRuleGlyph = '─'

// ImageLoader resolves a Markdown image URL to a bit-packable raster.
type ImageLoader interface {
	Load(url string) (escpos.Image, error)
}

type frame struct {
	tag     style.Tag
	itemIdx int
}

// Renderer drives a Printer from an mdevents.Event stream.
type Renderer struct {
	printer *escpos.Printer
	sheet   *style.Sheet
	images  ImageLoader
	stack   []frame
}

// New constructs a Renderer bound to printer, sheet and an optional
// ImageLoader (nil is fine for documents with no images: an Img event
// then fails with escpos.KindUnsupportedTag).
func New(printer *escpos.Printer, sheet *style.Sheet, images ImageLoader) *Renderer {
	return &Renderer{printer: printer, sheet: sheet, images: images}
}

// Walk renders every event in events, in order.
func (r *Renderer) Walk(events []mdevents.Event) error {
	for _, ev := range events {
		if err := r.walkOne(ev); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) tags() []style.Tag {
	tags := make([]style.Tag, len(r.stack))
	for i, f := range r.stack {
		tags[i] = f.tag
	}
	return tags
}

func (r *Renderer) styleWith(extra ...style.Tag) style.Style {
	tags := append(append([]style.Tag{}, r.tags()...), extra...)
	return r.sheet.Get(tags)
}

func (r *Renderer) walkOne(ev mdevents.Event) error {
	switch ev.Kind {
	case mdevents.EventStart:
		return r.start(ev.Tag)
	case mdevents.EventEnd:
		return r.end(ev.Tag)
	case mdevents.EventText:
		return r.text(ev.Text)
	case mdevents.EventCode:
		return r.inline(style.Code, ev.Text)
	case mdevents.EventSoftBreak:
		return r.printer.Print(" ")
	case mdevents.EventHardBreak:
		return r.printer.Print("\n")
	case mdevents.EventRule:
		return r.rule()
	case mdevents.EventHTML, mdevents.EventFootnoteReference, mdevents.EventTaskListMarker:
		return nil
	default:
		return &escpos.Error{
			Kind: escpos.KindMarkdownEventUnimplemented,
			Msg:  "unhandled markdown event kind",
		}
	}
}

func (r *Renderer) start(tag mdevents.Tag) error {
	st, err := tag.StyleTag()
	if err != nil {
		return err
	}

	if len(r.stack) > 0 && r.stack[len(r.stack)-1].tag == style.Ol && st == style.Li {
		r.stack[len(r.stack)-1].itemIdx++
	}

	r.stack = append(r.stack, frame{tag: st})

	s := r.styleWith()
	if st == style.Li {
		s = r.listItemStyle(s)
	}

	if err := r.applyFontStyle(s); err != nil {
		return err
	}
	if err := r.beginBlockStyle(s); err != nil {
		return err
	}

	if st == style.Img {
		if err := r.image(tag); err != nil {
			return err
		}
		r.stack = append(r.stack, frame{tag: style.ImgCaption})
		captionStyle := r.styleWith()
		if err := r.applyFontStyle(captionStyle); err != nil {
			return err
		}
		return r.beginBlockStyle(captionStyle)
	}

	return nil
}

// listItemStyle substitutes a "%d" placeholder in an ordered-list
// item's prefix with its 1-based position within the enclosing list.
func (r *Renderer) listItemStyle(s style.Style) style.Style {
	if len(r.stack) < 2 {
		return s
	}
	parent := r.stack[len(r.stack)-2]
	if parent.tag != style.Ol || !strings.Contains(s.Prefix, "%d") {
		return s
	}
	s.Prefix = strings.ReplaceAll(s.Prefix, "%d", strconv.Itoa(parent.itemIdx))
	return s
}

func (r *Renderer) end(tag mdevents.Tag) error {
	st, err := tag.StyleTag()
	if err != nil {
		return err
	}

	if st == style.Img {
		captionStyle := r.styleWith()
		if err := r.endBlockStyle(captionStyle); err != nil {
			return err
		}
		if err := r.popExpecting(style.ImgCaption); err != nil {
			return err
		}
	}

	s := r.styleWith()
	if err := r.endBlockStyle(s); err != nil {
		return err
	}
	if err := r.popExpecting(st); err != nil {
		return err
	}

	return r.applyFontStyle(r.styleWith())
}

func (r *Renderer) popExpecting(want style.Tag) error {
	if len(r.stack) == 0 || r.stack[len(r.stack)-1].tag != want {
		return &escpos.Error{
			Kind: escpos.KindUnexpectedTag,
			Msg:  "end event does not match the open tag stack's top",
		}
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

func (r *Renderer) text(content string) error {
	if len(r.stack) == 0 {
		return &escpos.Error{
			Kind: escpos.KindEmptyRenderTree,
			Msg:  "text event arrived with an empty tag stack",
		}
	}
	return r.printer.Print(content)
}

// inline handles Code: append a synthetic style.Code tag to the
// cascade key, enter its (inline, so block steps are no-ops) style,
// print, then restore the enclosing style.
func (r *Renderer) inline(tag style.Tag, content string) error {
	s := r.styleWith(tag)
	if err := r.applyFontStyle(s); err != nil {
		return err
	}
	if err := r.beginBlockStyle(s); err != nil {
		return err
	}
	if err := r.printer.Print(content); err != nil {
		return err
	}
	if err := r.endBlockStyle(s); err != nil {
		return err
	}
	return r.applyFontStyle(r.styleWith())
}

func (r *Renderer) rule() error {
	s := r.styleWith(style.Hr)
	if err := r.applyFontStyle(s); err != nil {
		return err
	}
	if err := r.beginBlockStyle(s); err != nil {
		return err
	}

	charSize := r.printer.CalcCharSize()
	count := 0
	if charSize > 0 {
		count = r.printer.PrintableWidth() / charSize
	}
	if err := r.printer.Print(strings.Repeat(string(horizontalRuleGlyph), count)); err != nil {
		return err
	}

	if err := r.endBlockStyle(s); err != nil {
		return err
	}
	return r.applyFontStyle(r.styleWith())
}

func (r *Renderer) image(tag mdevents.Tag) error {
	if r.images == nil {
		return &escpos.Error{
			Kind: escpos.KindUnsupportedTag,
			Msg:  "no image loader configured",
		}
	}
	img, err := r.images.Load(tag.URL)
	if err != nil {
		return err
	}
	return r.printer.Image(img)
}

// applyFontStyle emits every font-level Printer command s implies.
func (r *Renderer) applyFontStyle(s style.Style) error {
	if err := r.printer.Command(escpos.CmdBoldCommand(s.Bold)); err != nil {
		return err
	}
	if err := r.printer.Command(escpos.CmdCharSizeCommand(s.CharMagnification)); err != nil {
		return err
	}
	if err := r.printer.CharSpacing(s.CharSpacing); err != nil {
		return err
	}
	if err := r.printer.Command(escpos.CmdFontCommand(s.Font)); err != nil {
		return err
	}
	if err := r.printer.LineSpacing(s.LineSpacing); err != nil {
		return err
	}
	if err := r.printer.Command(escpos.CmdSplitWordsCommand(s.SplitWords)); err != nil {
		return err
	}
	if err := r.printer.Command(escpos.CmdUnderlineCommand(s.Underline)); err != nil {
		return err
	}
	return r.printer.Command(escpos.CmdWhiteBlackReverseCommand(s.WhiteBlackReverse))
}

// beginBlockStyle is a no-op for inline display. For block display it
// emits Justification, FeedPaper(margin_top), then (if margin_left != 0)
// LeftMargin(current + margin_left). The prefix, if any, is printed
// last in both cases.
func (r *Renderer) beginBlockStyle(s style.Style) error {
	if s.Display == style.DisplayBlock {
		if err := r.printer.Command(escpos.CmdJustificationCommand(s.Justification)); err != nil {
			return err
		}
		if err := r.printer.FeedPaper(s.MarginTop); err != nil {
			return err
		}
		if s.MarginLeft != 0 {
			newMargin := int(r.printer.State().LeftMargin) + s.MarginLeft
			if err := r.printer.Command(escpos.CmdLeftMarginCommand(uint16(newMargin))); err != nil {
				return err
			}
		}
	}
	if s.Prefix == "" {
		return nil
	}
	return r.printer.Print(s.Prefix)
}

// endBlockStyle mirrors beginBlockStyle: FeedPaper(margin_bottom) and
// LeftMargin restoration, both no-ops for inline display.
func (r *Renderer) endBlockStyle(s style.Style) error {
	if s.Display != style.DisplayBlock {
		return nil
	}
	if err := r.printer.FeedPaper(s.MarginBottom); err != nil {
		return err
	}
	if s.MarginLeft != 0 {
		newMargin := int(r.printer.State().LeftMargin) - s.MarginLeft
		if newMargin < 0 {
			newMargin = 0
		}
		if err := r.printer.Command(escpos.CmdLeftMarginCommand(uint16(newMargin))); err != nil {
			return err
		}
	}
	return nil
}
