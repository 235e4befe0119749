// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package escpos

// Charset selects an ESC/POS international character set (ESC R n).
type Charset uint8

const (
	CharsetUSA Charset = 0
)

// CodeTable selects an ESC/POS code page (ESC t n).
type CodeTable uint8

const (
	CodeTableUSA   CodeTable = 0x00
	CodeTableLatin2 CodeTable = 0x02
)

// CommandKind tags the variant held by a Command.
type CommandKind uint8

const (
	CmdCut CommandKind = iota
	CmdInit
	CmdPrintModeDefault
	CmdCharset
	CmdCodeTable
	CmdFont
	CmdUnderline
	CmdBold
	CmdDoubleStrike
	CmdWhiteBlackReverse
	CmdBitmap
	CmdFeedPaper
	CmdFeedLines
	CmdLineSpacing
	CmdDefaultLineSpacing
	CmdCharSpacing
	CmdCharSize
	// CmdSplitWords is logical only: it toggles word-wrap in PrinterState
	// but emits no bytes.
	CmdSplitWords
	CmdLeftMargin
	CmdJustification
)

// Command is a single ESC/POS operation. Construct one with the Cmd*
// constructors below; encode it with AsBytes.
type Command struct {
	kind   CommandKind
	u8     uint8
	u16    uint16
	bVal   bool
	mag    CharMagnification
	just   Justification
	charset Charset
	table  CodeTable
	font   Font
	ul     Underline
}

func CmdCutCommand() Command             { return Command{kind: CmdCut} }
func CmdInitCommand() Command            { return Command{kind: CmdInit} }
func CmdPrintModeDefaultCommand() Command { return Command{kind: CmdPrintModeDefault} }

func CmdCharsetCommand(cs Charset) Command { return Command{kind: CmdCharset, charset: cs} }
func CmdCodeTableCommand(ct CodeTable) Command { return Command{kind: CmdCodeTable, table: ct} }
func CmdFontCommand(f Font) Command        { return Command{kind: CmdFont, font: f} }
func CmdUnderlineCommand(u Underline) Command { return Command{kind: CmdUnderline, ul: u} }
func CmdBoldCommand(on bool) Command       { return Command{kind: CmdBold, bVal: on} }
func CmdDoubleStrikeCommand(on bool) Command { return Command{kind: CmdDoubleStrike, bVal: on} }
func CmdWhiteBlackReverseCommand(on bool) Command {
	return Command{kind: CmdWhiteBlackReverse, bVal: on}
}
func CmdBitmapCommand() Command { return Command{kind: CmdBitmap} }

func CmdFeedPaperCommand(n uint8) Command { return Command{kind: CmdFeedPaper, u8: n} }
func CmdFeedLinesCommand(n uint8) Command { return Command{kind: CmdFeedLines, u8: n} }
func CmdLineSpacingCommand(n uint8) Command { return Command{kind: CmdLineSpacing, u8: n} }
func CmdDefaultLineSpacingCommand() Command { return Command{kind: CmdDefaultLineSpacing} }
func CmdCharSpacingCommand(n uint8) Command { return Command{kind: CmdCharSpacing, u8: n} }
func CmdCharSizeCommand(m CharMagnification) Command { return Command{kind: CmdCharSize, mag: m} }
func CmdSplitWordsCommand(on bool) Command { return Command{kind: CmdSplitWords, bVal: on} }
func CmdLeftMarginCommand(m uint16) Command { return Command{kind: CmdLeftMargin, u16: m} }
func CmdJustificationCommand(j Justification) Command {
	return Command{kind: CmdJustification, just: j}
}

// Kind reports which variant this Command holds.
func (c Command) Kind() CommandKind { return c.kind }

// AsBytes returns the fixed ESC/POS byte encoding for c. SplitWords is
// the lone logical-only command and encodes to an empty slice.
func (c Command) AsBytes() []byte {
	switch c.kind {
	case CmdCut:
		return []byte{0x1d, 0x56, 0x41, 0x96}
	case CmdInit:
		return []byte{0x1d, 0x40}
	case CmdPrintModeDefault:
		return []byte{0x1b, 0x21, 0x00}
	case CmdCharset:
		return []byte{0x1b, 0x52, byte(c.charset)}
	case CmdCodeTable:
		return []byte{0x1b, 0x74, byte(c.table)}
	case CmdFont:
		return []byte{0x1b, 0x4d, byte(c.font)}
	case CmdUnderline:
		return []byte{0x1b, 0x2d, byte(c.ul)}
	case CmdBold:
		return []byte{0x1b, 0x45, boolByte(c.bVal)}
	case CmdDoubleStrike:
		return []byte{0x1b, 0x47, boolByte(c.bVal)}
	case CmdWhiteBlackReverse:
		return []byte{0x1d, 0x42, boolByte(c.bVal)}
	case CmdBitmap:
		return []byte{0x1b, 0x2a}
	case CmdFeedPaper:
		return []byte{0x1b, 0x4a, c.u8}
	case CmdFeedLines:
		return []byte{0x1b, 0x64, c.u8}
	case CmdLineSpacing:
		return []byte{0x1b, 0x33, c.u8}
	case CmdDefaultLineSpacing:
		return []byte{0x1b, 0x32}
	case CmdCharSpacing:
		return []byte{0x1b, 0x20, c.u8}
	case CmdCharSize:
		return []byte{0x1d, 0x21, c.mag.ToByte()}
	case CmdSplitWords:
		return nil
	case CmdLeftMargin:
		return []byte{0x1d, 0x4c, byte(c.u16 & 0xff), byte(c.u16 >> 8)}
	case CmdJustification:
		return []byte{0x1b, 0x61, byte(c.just)}
	default:
		return nil
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
