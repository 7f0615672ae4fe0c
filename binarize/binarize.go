// seehuhn.de/go/handfont - turn handwriting samples into TrueType fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package binarize turns a handwriting sample into a two-level bitmap
// suitable for vector tracing.
package binarize

import (
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/handfont/internal/raster"
)

// The two levels of a binarized image.
const (
	Ink        uint8 = 0
	Background uint8 = 255
)

// threshold separates ink from background.  Luminance values strictly
// above the threshold become background.
const threshold = 128

// ErrUnreadableImage is returned (wrapped) if a sample cannot be decoded.
var ErrUnreadableImage = errors.New("binarize: unreadable sample image")

// Bytes decodes an encoded sample and binarizes it.
func Bytes(data []byte) (*image.Gray, error) {
	img, err := raster.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableImage, err)
	}
	return Image(img), nil
}

// Image converts img to luminance, inverts it if it looks like light ink on
// a dark field, and thresholds the result.  Every pixel of the returned
// image is either Ink or Background.
func Image(img image.Image) *image.Gray {
	src := raster.ToGray(img)
	invert := IsInverted(src)

	b := src.Bounds()
	res := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			v := src.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			if invert {
				v = 255 - v
			}
			out := Ink
			if v > threshold {
				out = Background
			}
			res.Pix[y*res.Stride+x] = out
		}
	}
	return res
}

// IsInverted reports whether the mean luminance of img is below the
// midpoint, which indicates light ink on a dark background.
func IsInverted(img *image.Gray) bool {
	return raster.Mean(img) < threshold
}
