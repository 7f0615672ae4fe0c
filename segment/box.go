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

import (
	"fmt"
	"image"
)

// Box is an axis-aligned rectangle in pixel coordinates.
// X and Y give the top-left corner.
type Box struct {
	X, Y, W, H int
}

func (b Box) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", b.W, b.H, b.X, b.Y)
}

// Rect converts the box to an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// Union returns the smallest box containing both b and other.
func (b Box) Union(other Box) Box {
	x0 := min(b.X, other.X)
	y0 := min(b.Y, other.Y)
	x1 := max(b.X+b.W, other.X+other.W)
	y1 := max(b.Y+b.H, other.Y+other.H)
	return Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Near reports whether the two boxes are within distance d of each other,
// i.e. whether b, grown by d on every side, touches other.
func (b Box) Near(other Box, d int) bool {
	return !(b.X > other.X+other.W+d ||
		other.X > b.X+b.W+d ||
		b.Y > other.Y+other.H+d ||
		other.Y > b.Y+b.H+d)
}

// MergeBoxes combines nearby boxes.
//
// The boxes are visited once, in the given order.  Each box is merged into
// the first previously kept box it is near to, or kept as a new box if
// there is none.  Merging is not repeated until no more changes occur, so
// a chain of boxes where only neighbours are close may remain split.
func MergeBoxes(boxes []Box, dist int) []Box {
	var merged []Box
boxLoop:
	for _, box := range boxes {
		for i, m := range merged {
			if box.Near(m, dist) {
				merged[i] = m.Union(box)
				continue boxLoop
			}
		}
		merged = append(merged, box)
	}
	return merged
}
