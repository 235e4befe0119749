// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package raster converts a decoded grayscale image into the banded
// ESC * column bitmap bytes a thermal printer expects.
package raster

import (
	"github.com/nfnt/resize"
)

// Algorithm selects how a pixel's 8-bit gray level collapses to 1 bit.
type Algorithm interface {
	isAlgorithm()
}

// AlgoDithering applies Floyd-Steinberg error diffusion before
// binarizing, the default: it keeps the perceived density of gradients
// and photos instead of banding them into hard edges.
type AlgoDithering struct{}

// AlgoThreshold keeps a pixel black whenever its gray level is at or
// below Threshold, with no error diffusion. Good for line art and
// already-high-contrast scans.
type AlgoThreshold struct {
	Threshold uint8
}

func (AlgoDithering) isAlgorithm() {}
func (AlgoThreshold) isAlgorithm() {}

// Options configures how New rescales and binarizes an image. The final
// justification, applied in AsBytes, is a per-call argument instead: it
// tracks the printer's current Justification state rather than being
// fixed at image-construction time.
type Options struct {
	Algorithm Algorithm
	Scale     float64
	Filter    resize.InterpolationFunction
}

// DefaultOptions dithers at full scale through a Lanczos3 filter
// (nfnt/resize's closest match to the Gaussian downscale the reference
// renderer uses).
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgoDithering{},
		Scale:     1.0,
		Filter:    resize.Lanczos3,
	}
}
