// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rasterio decodes PNG/JPEG/GIF source images and hands them to
// the raster package's bit-packer. Format decoding is the stdlib's job;
// this package only registers the decoders and wires them to raster.New.
package rasterio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/kofi-q/escpos-md/raster"
)

// Load decodes r as PNG, JPEG or GIF (whichever decoder the image/...
// blank imports above registered that can parse it) and builds a
// raster.Image from the result with opts.
func Load(r io.Reader, opts raster.Options) (*raster.Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("rasterio: decode: %w", err)
	}

	img, err := raster.New(src, opts)
	if err != nil {
		return nil, fmt.Errorf("rasterio: %s image: %w", format, err)
	}
	return img, nil
}
