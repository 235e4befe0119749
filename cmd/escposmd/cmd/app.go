// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	escpos "github.com/kofi-q/escpos-md"
	"github.com/kofi-q/escpos-md/raster"
	"github.com/kofi-q/escpos-md/rasterio"
	"github.com/kofi-q/escpos-md/style"
	"github.com/kofi-q/escpos-md/styleyaml"
	"github.com/kofi-q/escpos-md/transport"
	"github.com/spf13/viper"
)

func printerConfig() (escpos.PrinterConfig, error) {
	cfg, err := presetConfig(viper.GetString("printer"))
	if err != nil {
		return escpos.PrinterConfig{}, err
	}
	if width := viper.GetInt("width"); width > 0 {
		cfg.Width = width
	}
	return cfg, nil
}

func presetConfig(preset string) (escpos.PrinterConfig, error) {
	switch preset {
	case "", "generic":
		return escpos.DefaultPrinterConfig(), nil
	case "tmt20ii-80mm":
		return escpos.TMT20II80mm(), nil
	case "tmt20ii-58mm":
		return escpos.TMT20II58mm(), nil
	default:
		return escpos.PrinterConfig{}, fmt.Errorf("escposmd: unrecognized printer preset %q", preset)
	}
}

func loadSheet() (*style.Sheet, error) {
	path := viper.GetString("stylesheet")
	if path == "" {
		return style.DefaultSheet(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("escposmd: open stylesheet %s: %w", path, err)
	}
	defer f.Close()

	return styleyaml.Load(f, style.DefaultStyle())
}

func imageOptions() (raster.Options, error) {
	opts := raster.DefaultOptions()
	switch viper.GetString("dither") {
	case "", "floyd-steinberg":
		opts.Algorithm = raster.AlgoDithering{}
	case "threshold":
		opts.Algorithm = raster.AlgoThreshold{Threshold: uint8(viper.GetUint("threshold"))}
	default:
		return opts, fmt.Errorf("escposmd: unrecognized --dither value %q", viper.GetString("dither"))
	}
	return opts, nil
}

func newImageLoader() (rasterio.FileLoader, error) {
	opts, err := imageOptions()
	if err != nil {
		return rasterio.FileLoader{}, err
	}
	return rasterio.FileLoader{BaseDir: viper.GetString("images-dir"), Options: opts}, nil
}

// sinkCloser pairs an escpos.Sink with the Close that releases whatever
// resource backs it.
type sinkCloser struct {
	escpos.Sink
	io.Closer
}

func openSink() (sinkCloser, error) {
	if addr := viper.GetString("out-tcp"); addr != "" {
		s, err := transport.DialTCP(addr)
		if err != nil {
			return sinkCloser{}, err
		}
		return sinkCloser{Sink: s, Closer: s}, nil
	}
	if path := viper.GetString("out-file"); path != "" {
		s, err := transport.OpenFile(path)
		if err != nil {
			return sinkCloser{}, err
		}
		return sinkCloser{Sink: s, Closer: s}, nil
	}
	return sinkCloser{Sink: os.Stdout, Closer: io.NopCloser(nil)}, nil
}
