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

package segment

import "image"

// bitmap is a two-level image.  A true value marks ink.
type bitmap struct {
	w, h int
	pix  []bool
}

func newBitmap(w, h int) *bitmap {
	return &bitmap{w: w, h: h, pix: make([]bool, w*h)}
}

// threshold marks every pixel with luminance at most t as ink.
func threshold(img *image.Gray, t uint8) *bitmap {
	b := img.Bounds()
	res := newBitmap(b.Dx(), b.Dy())
	for y := 0; y < res.h; y++ {
		for x := 0; x < res.w; x++ {
			res.pix[y*res.w+x] = img.GrayAt(b.Min.X+x, b.Min.Y+y).Y <= t
		}
	}
	return res
}

// at returns the pixel at (x, y).  Pixels outside the image take the value
// outside.
func (bm *bitmap) at(x, y int, outside bool) bool {
	if x < 0 || y < 0 || x >= bm.w || y >= bm.h {
		return outside
	}
	return bm.pix[y*bm.w+x]
}

// erode applies a 3x3 erosion.  The area outside the image does not erode
// the border.
func (bm *bitmap) erode() *bitmap {
	res := newBitmap(bm.w, bm.h)
	for y := 0; y < bm.h; y++ {
		for x := 0; x < bm.w; x++ {
			v := true
			for dy := -1; dy <= 1 && v; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if !bm.at(x+dx, y+dy, true) {
						v = false
						break
					}
				}
			}
			res.pix[y*bm.w+x] = v
		}
	}
	return res
}

// dilate applies a 3x3 dilation.
func (bm *bitmap) dilate() *bitmap {
	res := newBitmap(bm.w, bm.h)
	for y := 0; y < bm.h; y++ {
		for x := 0; x < bm.w; x++ {
			v := false
			for dy := -1; dy <= 1 && !v; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if bm.at(x+dx, y+dy, false) {
						v = true
						break
					}
				}
			}
			res.pix[y*bm.w+x] = v
		}
	}
	return res
}

// open removes specks smaller than the structuring element.
func (bm *bitmap) open() *bitmap {
	return bm.erode().dilate()
}

// close fills gaps smaller than the structuring element.
func (bm *bitmap) close() *bitmap {
	return bm.dilate().erode()
}

// components returns the bounding boxes of the 8-connected ink regions, in
// the order in which a row-by-row scan first meets them.
func (bm *bitmap) components() []Box {
	seen := make([]bool, len(bm.pix))
	var boxes []Box
	var stack []int
	for start, isInk := range bm.pix {
		if !isInk || seen[start] {
			continue
		}

		x0, y0 := start%bm.w, start/bm.w
		x1, y1 := x0, y0
		seen[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			px, py := p%bm.w, p/bm.w
			x0, x1 = min(x0, px), max(x1, px)
			y0, y1 = min(y0, py), max(y1, py)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					qx, qy := px+dx, py+dy
					if !bm.at(qx, qy, false) {
						continue
					}
					q := qy*bm.w + qx
					if !seen[q] {
						seen[q] = true
						stack = append(stack, q)
					}
				}
			}
		}
		boxes = append(boxes, Box{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1})
	}
	return boxes
}

// crop renders the area inside box with dark ink on a white background.
// The result has its origin at (0, 0).
func (bm *bitmap) crop(box Box) *image.Gray {
	r := box.Rect()
	res := image.NewGray(r.Sub(r.Min))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := res.Pix[(y-r.Min.Y)*res.Stride:]
		for x := r.Min.X; x < r.Max.X; x++ {
			v := uint8(255)
			if bm.at(x, y, false) {
				v = 0
			}
			row[x-r.Min.X] = v
		}
	}
	return res
}
