// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/draw"

	"github.com/bits-and-blooms/bitset"
	"github.com/kofi-q/escpos-md"
	"github.com/nfnt/resize"
)

// verticalDensityFactor corrects for the printer's 1-byte raster mode
// packing 8 vertical dots per horizontal dot of density: see §4.7 step 3.
const verticalDensityFactor = 3.0

// Image is a decoded 8-bit grayscale raster plus the options controlling
// how AsBytes rescales and binarizes it. Construct one with New.
type Image struct {
	gray *image.Gray
	opts Options
}

// New validates opts.Scale and stores src, converted to grayscale.
func New(src image.Image, opts Options) (*Image, error) {
	if opts.Scale <= 0 || opts.Scale > 1 {
		return nil, &escpos.Error{
			Kind: escpos.KindInvalidImageScale,
			Msg:  "scale must be in (0, 1]",
		}
	}
	return &Image{gray: toGray(src), opts: opts}, nil
}

func toGray(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, src, bounds.Min, draw.Src)
	return gray
}

// AsBytes implements escpos.Image, following §4.7 steps 1-7:
// LineSpacing(0), a scale+justification crop against the source's own
// width, a final resize to printerWidth accounting for the printer's
// vertical dot density, binarization, band packing, and a line spacing
// restore.
func (img *Image) AsBytes(printerWidth int, justification escpos.Justification, lineSpacing *uint8) []byte {
	var out []byte
	out = append(out, escpos.CmdLineSpacingCommand(0).AsBytes()...)

	justified := img.justifiedCrop(justification)

	bounds := justified.Bounds()
	aspect := float64(bounds.Dx()) / float64(bounds.Dy())
	finalH := int(float64(printerWidth) * img.opts.Scale / (aspect * verticalDensityFactor))
	if finalH < 1 {
		finalH = 1
	}

	resized := resize.Resize(uint(printerWidth), uint(finalH), justified, img.opts.Filter)
	binarized := binarize(toGray(resized), img.opts.Algorithm)

	out = append(out, packBands(binarized, printerWidth)...)

	if lineSpacing != nil {
		out = append(out, escpos.CmdLineSpacingCommand(*lineSpacing).AsBytes()...)
	} else {
		out = append(out, escpos.CmdDefaultLineSpacingCommand().AsBytes()...)
	}
	return out
}

// justifiedCrop implements §4.7 step 2: resize to scale*width, paste
// onto a white canvas of the source's full width at the offset the
// justification implies, crop back to that width. This bakes
// justification into the pixels ahead of the final per-printer resize.
func (img *Image) justifiedCrop(justification escpos.Justification) *image.Gray {
	bounds := img.gray.Bounds()
	inW, inH := bounds.Dx(), bounds.Dy()
	aspect := float64(inW) / float64(inH)

	scaledW := int(float64(inW) * img.opts.Scale)
	scaledH := int(float64(scaledW) / aspect)

	var xOffset int
	switch justification {
	case escpos.JustificationCenter:
		xOffset = (inW - scaledW) / 2
	case escpos.JustificationRight:
		xOffset = inW - scaledW
	default:
		xOffset = 0
	}

	resized := resize.Resize(uint(scaledW), uint(scaledH), img.gray, img.opts.Filter)

	canvas := image.NewGray(image.Rect(0, 0, inW, scaledH))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(
		canvas,
		image.Rect(xOffset, 0, xOffset+scaledW, scaledH),
		resized,
		image.Point{},
		draw.Src,
	)

	return canvas
}

// packBands groups rows into 8-row bands and emits one Bitmap command
// sequence per band, per §4.7 steps 5-6.
func packBands(gray *image.Gray, printerWidth int) []byte {
	bounds := gray.Bounds()
	height := bounds.Dy()
	bandCount := (height + 7) / 8

	var out []byte
	for b := 0; b < bandCount; b++ {
		band := bitset.New(uint(printerWidth) * 8)
		rowTop := b * 8
		rowsInBand := 8
		if rowTop+rowsInBand > height {
			rowsInBand = height - rowTop
		}

		for r := 0; r < rowsInBand; r++ {
			y := rowTop + r
			for x := 0; x < printerWidth && x < bounds.Dx(); x++ {
				if gray.GrayAt(x, y).Y == 0 {
					band.Set(uint(x)*8 + uint(7-r))
				}
			}
		}

		out = append(out, escpos.CmdBitmapCommand().AsBytes()...)
		out = append(out, 0x01)
		out = append(out, byte(printerWidth&0xff), byte(printerWidth>>8))

		row := make([]byte, printerWidth)
		for x := 0; x < printerWidth; x++ {
			var v byte
			for bit := 0; bit < 8; bit++ {
				if band.Test(uint(x)*8 + uint(bit)) {
					v |= 1 << uint(bit)
				}
			}
			row[x] = v
		}
		out = append(out, row...)
		out = append(out, '\n')
	}
	return out
}
