package rasterio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/kofi-q/escpos-md/raster"
	"github.com/kofi-q/escpos-md/rasterio"
	"github.com/stretchr/testify/require"
)

func checkerboardPNG(t *testing.T, size int) []byte {
	t.Helper()
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
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadDecodesPNGIntoRasterImage(t *testing.T) {
	data := checkerboardPNG(t, 16)

	img, err := rasterio.Load(bytes.NewReader(data), raster.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, img)

	out := img.AsBytes(16, 0, nil)
	require.NotEmpty(t, out)
}

func TestFileLoaderResolvesRelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), checkerboardPNG(t, 8), 0o644))

	loader := rasterio.FileLoader{BaseDir: dir, Options: raster.DefaultOptions()}

	img, err := loader.Load("logo.png")
	require.NoError(t, err)
	require.NotNil(t, img)
}

func TestFileLoaderMissingFileFails(t *testing.T) {
	loader := rasterio.FileLoader{BaseDir: t.TempDir(), Options: raster.DefaultOptions()}
	_, err := loader.Load("missing.png")
	require.Error(t, err)
}
