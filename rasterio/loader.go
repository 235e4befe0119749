// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rasterio

import (
	"fmt"
	"os"
	"path/filepath"

	escpos "github.com/kofi-q/escpos-md"
	"github.com/kofi-q/escpos-md/raster"
)

// FileLoader implements render.ImageLoader by resolving a Markdown
// image URL as a path relative to BaseDir and decoding it with Load.
type FileLoader struct {
	BaseDir string
	Options raster.Options
}

// Load reads and decodes the image at url (resolved against BaseDir if
// it's not already absolute).
func (l FileLoader) Load(url string) (escpos.Image, error) {
	path := url
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.BaseDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rasterio: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, l.Options)
}
