package raster_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/kofi-q/escpos-md"
	"github.com/kofi-q/escpos-md/raster"
	"github.com/stretchr/testify/require"
)

func checkerboard(size int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func TestNewRejectsOutOfRangeScale(t *testing.T) {
	_, err := raster.New(checkerboard(4), raster.Options{Scale: 0, Filter: raster.DefaultOptions().Filter})
	require.Error(t, err)

	var escErr *escpos.Error
	require.ErrorAs(t, err, &escErr)
	require.Equal(t, escpos.KindInvalidImageScale, escErr.Kind)

	_, err = raster.New(checkerboard(4), raster.Options{Scale: 1.5, Filter: raster.DefaultOptions().Filter})
	require.Error(t, err)
}

func TestAsBytesThresholdBandLayout(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range src.Pix {
		src.Pix[i] = 200
	}

	opts := raster.DefaultOptions()
	opts.Algorithm = raster.AlgoThreshold{Threshold: 128}
	opts.Scale = 1

	img, err := raster.New(src, opts)
	require.NoError(t, err)

	printableWidth := 8
	out := img.AsBytes(printableWidth, escpos.JustificationLeft, nil)

	require.Equal(t, escpos.CmdLineSpacingCommand(0).AsBytes(), out[:len(escpos.CmdLineSpacingCommand(0).AsBytes())])

	// one 8-byte-wide band should appear: finalH = floor(8/(1*3)) = 2,
	// ceil(2/8) = 1 band, each carrying a 5-byte header, 8 payload bytes
	// and a trailing line feed.
	bitmapHeader := escpos.CmdBitmapCommand().AsBytes()
	require.Contains(t, string(out), string(bitmapHeader))

	tail := escpos.CmdDefaultLineSpacingCommand().AsBytes()
	require.Equal(t, tail, out[len(out)-len(tail):])
}

func TestAsBytesRestoresExplicitLineSpacing(t *testing.T) {
	src := checkerboard(8)
	img, err := raster.New(src, raster.DefaultOptions())
	require.NoError(t, err)

	spacing := uint8(30)
	out := img.AsBytes(8, escpos.JustificationLeft, &spacing)

	tail := escpos.CmdLineSpacingCommand(30).AsBytes()
	require.Equal(t, tail, out[len(out)-len(tail):])
}
