// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package escpos

import (
	"golang.org/x/text/encoding/charmap"
)

// Sink is the sole polymorphic boundary of this module: anything that can
// accept an arbitrary-length byte write. *os.File, net.Conn and
// *bytes.Buffer all satisfy it.
type Sink interface {
	Write(p []byte) (n int, err error)
}

// Image is the subset of a bit-packed raster this package needs to emit
// a Bitmap command sequence. See the raster package for the concrete
// implementation.
type Image interface {
	// AsBytes renders the full ESC/POS byte sequence for this image,
	// including the LineSpacing bracketing described in §4.7.
	AsBytes(printerWidth int, justification Justification, lineSpacing *uint8) []byte
}

// Printer is a stateful ESC/POS byte-stream generator. It owns its config,
// mutable PrinterState, and byte sink exclusively; a Printer method must
// run to completion before another is invoked on the same instance.
type Printer struct {
	cfg   PrinterConfig
	state PrinterState
	sink  Sink
}

// NewPrinter constructs a Printer bound to cfg and sink. Call Reset before
// the first operation to put the device into a known state.
func NewPrinter(cfg PrinterConfig, sink Sink) *Printer {
	return &Printer{
		cfg:   cfg,
		state: defaultState(cfg),
		sink:  sink,
	}
}

// State returns the printer's current formatting state.
func (p *Printer) State() PrinterState { return p.state }

// Config returns the printer's static configuration.
func (p *Printer) Config() PrinterConfig { return p.cfg }

// PrintableWidth is the paper width minus the current left margin.
func (p *Printer) PrintableWidth() int { return p.state.PrintableWidth(p.cfg) }

// CalcCharSize is the horizontal dots occupied by one printed character
// under the printer's current font, spacing and magnification.
func (p *Printer) CalcCharSize() int { return p.state.CalcCharSize(p.cfg) }

// Reset restores PrinterState to its deterministic defaults and emits the
// commands that put the physical device into a matching state.
func (p *Printer) Reset() error {
	if err := p.raw(CmdInitCommand().AsBytes()); err != nil {
		return err
	}
	if err := p.raw(CmdPrintModeDefaultCommand().AsBytes()); err != nil {
		return err
	}
	p.state = defaultState(p.cfg)

	for _, cmd := range []Command{
		CmdWhiteBlackReverseCommand(false),
		CmdDoubleStrikeCommand(false),
		CmdCharSpacingCommand(uint8(p.cfg.CharSpacing)),
		CmdDefaultLineSpacingCommand(),
		CmdLeftMarginCommand(0),
		CmdJustificationCommand(JustificationLeft),
		CmdSplitWordsCommand(true),
	} {
		if err := p.Command(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Print transcodes text to CP437, word-wraps it if SplitWords is on, and
// emits the resulting bytes, advancing LeftOffset.
func (p *Printer) Print(text string) error {
	content, err := transcodeCP437(text)
	if err != nil {
		return err
	}

	printableWidth := p.PrintableWidth()
	charSize := p.CalcCharSize()

	var newOffset int
	if p.state.SplitWords {
		content, newOffset = splitWords(content, int(p.state.LeftOffset), printableWidth, charSize)
	} else {
		newOffset = advancePlain(int(p.state.LeftOffset), len(content), printableWidth, charSize)
	}

	if err := p.raw(content); err != nil {
		return err
	}
	p.state.LeftOffset = uint16(newOffset)
	return nil
}

// Println prints text followed by a newline.
func (p *Printer) Println(text string) error {
	return p.Print(text + "\n")
}

// FeedLines emits ceil(n/255) FeedLines commands whose parameters sum to
// n (a single FeedLines(0) when n <= 0), and resets LeftOffset to 0.
func (p *Printer) FeedLines(n int) error {
	return p.feedInChunks(n, func(chunk uint8) Command {
		return CmdFeedLinesCommand(chunk)
	})
}

// FeedPaper emits ceil(n/255) FeedPaper commands whose parameters sum to
// n (a single FeedPaper(0) when n <= 0), and resets LeftOffset to 0.
func (p *Printer) FeedPaper(n int) error {
	return p.feedInChunks(n, func(chunk uint8) Command {
		return CmdFeedPaperCommand(chunk)
	})
}

func (p *Printer) feedInChunks(n int, build func(chunk uint8) Command) error {
	if n <= 0 {
		// A zero-unit feed still emits one command carrying 0, matching
		// the teacher's use of FeedPaper(0) as a block-margin no-op.
		return p.Command(build(0))
	}
	for n > 0 {
		chunk := n
		if chunk > 255 {
			chunk = 255
		}
		if err := p.Command(build(uint8(chunk))); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// CharSpacing updates the active char spacing and emits the command.
func (p *Printer) CharSpacing(n int) error {
	if n > 255 {
		return newErr(KindInvalidSpacingParam, "char spacing %d exceeds 255", n)
	}
	return p.Command(CmdCharSpacingCommand(uint8(n)))
}

// LineSpacing updates the active line spacing (nil restores the device
// default) and emits the corresponding command.
func (p *Printer) LineSpacing(n *int) error {
	if n == nil {
		return p.Command(CmdDefaultLineSpacingCommand())
	}
	if *n > 255 {
		return newErr(KindInvalidSpacingParam, "line spacing %d exceeds 255", *n)
	}
	return p.Command(CmdLineSpacingCommand(uint8(*n)))
}

// Command emits cmd's bytes, then reflects it into PrinterState.
func (p *Printer) Command(cmd Command) error {
	if err := p.raw(cmd.AsBytes()); err != nil {
		return err
	}

	switch cmd.kind {
	case CmdLineSpacing:
		v := cmd.u8
		p.state.LineSpacing = &v
	case CmdDefaultLineSpacing:
		p.state.LineSpacing = nil
	case CmdCharSpacing:
		p.state.CharSpacing = cmd.u8
	case CmdCharSize:
		p.state.CharMagnification = cmd.mag
	case CmdFont:
		p.state.Font = cmd.font
	case CmdSplitWords:
		p.state.SplitWords = cmd.bVal
	case CmdLeftMargin:
		p.state.LeftMargin = cmd.u16
	case CmdJustification:
		p.state.Justification = cmd.just
	case CmdFeedPaper, CmdFeedLines:
		p.state.LeftOffset = 0
	case CmdInit:
		p.state.CharMagnification = DefaultCharMagnification()
		p.state.Font = FontA
	}
	return nil
}

// Image emits img's bitmap band sequence and resets LeftOffset to 0.
func (p *Printer) Image(img Image) error {
	bytes := img.AsBytes(p.state.PrintableWidth(p.cfg), p.state.Justification, p.state.LineSpacing)
	if err := p.raw(bytes); err != nil {
		return err
	}
	p.state.LeftOffset = 0
	return nil
}

func (p *Printer) raw(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if _, err := p.sink.Write(b); err != nil {
		return wrapErr(KindIo, err, "sink write failed")
	}
	return nil
}

func transcodeCP437(s string) ([]byte, error) {
	out, err := charmap.CodePage437.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, wrapErr(KindCp437, err, "cannot transcode %q to CP437", s)
	}
	return out, nil
}
