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

// Package segment locates individual characters on a scanned page of
// handwriting.
//
// The page is thresholded so that ink becomes foreground, cleaned with a
// morphological opening followed by a closing, and split into connected
// regions.  Regions closer than a proximity threshold are merged, the
// result is put into reading order, and regions too small to be a
// character are discarded.
package segment

import (
	"errors"
	"fmt"
	"image"
	"io"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/handfont/internal/raster"
)

// ErrUnreadableImage is returned (wrapped) if the page cannot be decoded.
var ErrUnreadableImage = errors.New("segment: unreadable page image")

// Options control the segmentation.  A nil *Options selects the defaults.
type Options struct {
	// Threshold is the largest luminance still counted as ink.
	// The default is 127.
	Threshold uint8

	// MergeDistance is the proximity (in pixels) below which two regions
	// are merged.  The default is 20.  Use a negative value to disable
	// merging of regions which are not overlapping.
	MergeDistance int

	// MinSize is the noise limit: regions whose width or height is
	// less than or equal to MinSize are dropped.  The default is 10.  Use
	// a negative value to keep all regions.
	MinSize int
}

var defaultOptions = Options{
	Threshold:     127,
	MergeDistance: 20,
	MinSize:       10,
}

func (opt *Options) withDefaults() Options {
	if opt == nil {
		return defaultOptions
	}
	res := *opt
	if res.Threshold == 0 {
		res.Threshold = defaultOptions.Threshold
	}
	if res.MergeDistance == 0 {
		res.MergeDistance = defaultOptions.MergeDistance
	} else if res.MergeDistance < 0 {
		res.MergeDistance = 0
	}
	if res.MinSize == 0 {
		res.MinSize = defaultOptions.MinSize
	} else if res.MinSize < 0 {
		res.MinSize = 0
	}
	return res
}

// Crop is one character-sized region of a page.
type Crop struct {
	// Index is the position of the region in reading order, counted
	// before small regions were removed.
	Index int

	// Box is the location of the region on the page.
	Box Box

	// Image shows the cleaned-up region, dark ink on a light background.
	Image *image.Gray
}

// Decode reads a page image and segments it.
// An unreadable page is reported as an error wrapping ErrUnreadableImage.
func Decode(r io.Reader, opt *Options) ([]Crop, error) {
	page, err := raster.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableImage, err)
	}
	return Page(page, opt), nil
}

// Page finds the character regions on a page.
// The result is in reading order.
func Page(img image.Image, opt *Options) []Crop {
	o := opt.withDefaults()

	ink := threshold(raster.ToGray(img), o.Threshold)
	ink = ink.open().close()

	boxes := MergeBoxes(ink.components(), o.MergeDistance)
	SortReadingOrder(boxes)

	var res []Crop
	for i, box := range boxes {
		if box.W <= o.MinSize || box.H <= o.MinSize {
			continue
		}
		res = append(res, Crop{
			Index: i,
			Box:   box,
			Image: ink.crop(box),
		})
	}
	return res
}

// SortReadingOrder sorts boxes by top edge, and boxes with equal top edge
// by left edge.  The sort is stable.
func SortReadingOrder(boxes []Box) {
	slices.SortStableFunc(boxes, func(a, b Box) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}
