// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package raster

import "image"

// binarize reduces gray to pure 0/255 pixels per the selected Algorithm.
func binarize(gray *image.Gray, algo Algorithm) *image.Gray {
	switch a := algo.(type) {
	case AlgoThreshold:
		return threshold(gray, a.Threshold)
	default:
		return floydSteinberg(gray)
	}
}

func threshold(gray *image.Gray, t uint8) *image.Gray {
	bounds := gray.Bounds()
	out := image.NewGray(bounds)
	for i, v := range gray.Pix {
		if v > t {
			out.Pix[i] = 255
		} else {
			out.Pix[i] = 0
		}
	}
	return out
}

// floydSteinberg applies standard Floyd-Steinberg error diffusion, then
// clamps every pixel to 0 or 255.
func floydSteinberg(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	buf := make([]float64, w*h)
	for i, v := range gray.Pix {
		buf[i] = float64(v)
	}

	out := image.NewGray(bounds)
	at := func(x, y int) int { return y*w + x }

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			old := buf[at(x, y)]
			var newVal float64
			if old > 127 {
				newVal = 255
			}
			out.Pix[at(x, y)] = byte(newVal)

			errv := old - newVal
			if x+1 < w {
				buf[at(x+1, y)] += errv * 7 / 16
			}
			if x-1 >= 0 && y+1 < h {
				buf[at(x-1, y+1)] += errv * 3 / 16
			}
			if y+1 < h {
				buf[at(x, y+1)] += errv * 5 / 16
			}
			if x+1 < w && y+1 < h {
				buf[at(x+1, y+1)] += errv * 1 / 16
			}
		}
	}

	return out
}
