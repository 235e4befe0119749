// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package escpos

const (
	defaultWidth       = 384
	defaultCharSpacing = 0

	tmT20II80mmWidth    = 576
	tmT20II58mmWidth    = 420
	tmT20IICharSpacing  = 2
	tmT20IIFontAWidth   = 12
	tmT20IIFontBWidth   = 9
)

// PrinterConfig describes a physical printer: paper width, default char
// spacing, and glyph cell widths per Font.
type PrinterConfig struct {
	Width      int
	CharSpacing int
	FontWidths FontWidths
}

// DefaultPrinterConfig is a generic 384-dot (58mm) configuration.
func DefaultPrinterConfig() PrinterConfig {
	return PrinterConfig{
		Width:       defaultWidth,
		CharSpacing: defaultCharSpacing,
		FontWidths:  DefaultFontWidths(),
	}
}

func tmT20IIBase(width int) PrinterConfig {
	cfg := DefaultPrinterConfig()
	cfg.Width = width
	cfg.CharSpacing = tmT20IICharSpacing
	cfg.FontWidths.Set(FontA, tmT20IIFontAWidth)
	cfg.FontWidths.Set(FontB, tmT20IIFontBWidth)
	return cfg
}

// TMT20II80mm is the Epson TM-T20II preset for 80mm paper.
func TMT20II80mm() PrinterConfig {
	return tmT20IIBase(tmT20II80mmWidth)
}

// TMT20II58mm is the Epson TM-T20II preset for 58mm paper.
func TMT20II58mm() PrinterConfig {
	return tmT20IIBase(tmT20II58mmWidth)
}
