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

// Package raster decodes page and sample images and reduces them to
// single-channel luminance.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	// registered decoders for the accepted input formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// ErrUnreadable is returned (wrapped) when an image cannot be decoded.
var ErrUnreadable = errors.New("unreadable image")

// Decode reads an image in any of the supported formats
// (PNG, JPEG, GIF, BMP, TIFF, WebP) and returns its luminance.
func Decode(r io.Reader) (*image.Gray, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty %s image", ErrUnreadable, format)
	}
	return ToGray(img), nil
}

// DecodeBytes is like Decode, but reads from a byte slice.
func DecodeBytes(data []byte) (*image.Gray, error) {
	return Decode(bytes.NewReader(data))
}

// ToGray converts img to an 8-bit grey image with origin (0, 0).
// If img already is such an image, it is returned unchanged.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	if g, ok := img.(*image.Gray); ok && b.Min == (image.Point{}) {
		return g
	}
	res := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(res, res.Bounds(), img, b.Min, draw.Src)
	return res
}

// Mean returns the mean luminance of img.
func Mean(img *image.Gray) float64 {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return 0
	}
	var sum uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for _, v := range row {
			sum += uint64(v)
		}
	}
	return float64(sum) / float64(n)
}
