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

// Package outline represents glyph outlines made of straight lines and
// cubic Bézier curves, and reads them from the SVG files written by a
// bitmap tracer.
package outline

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Kind distinguishes the two types of path segments.
type Kind uint8

// These are the possible values of Kind.
const (
	Line Kind = iota + 1
	Cubic
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// A Segment continues a contour from the current point to To.
// For cubic segments, C1 and C2 are the control points; they are unused for
// straight lines.
type Segment struct {
	Kind   Kind
	C1, C2 vec.Vec2
	To     vec.Vec2
}

// A Contour is a closed loop of segments, starting and ending at Start.
// If the last segment does not end at Start, the contour is closed by an
// implicit straight line.
type Contour struct {
	Start    vec.Vec2
	Segments []Segment
}

// Outline is the vector geometry of one glyph.
type Outline struct {
	Contours []Contour
}

// NumSegments returns the total number of segments in all contours.
func (o *Outline) NumSegments() int {
	if o == nil {
		return 0
	}
	n := 0
	for _, c := range o.Contours {
		n += len(c.Segments)
	}
	return n
}

// IsEmpty reports whether the outline contains no geometry.
func (o *Outline) IsEmpty() bool {
	return o.NumSegments() == 0
}

// BBox returns the bounding box of all points of the outline, including the
// control points of curves.  The zero rectangle is returned for an empty
// outline.
func (o *Outline) BBox() rect.Rect {
	if o.IsEmpty() {
		return rect.Rect{}
	}
	bbox := rect.Rect{
		LLx: math.Inf(+1),
		LLy: math.Inf(+1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	add := func(p vec.Vec2) {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}
	for _, c := range o.Contours {
		if len(c.Segments) == 0 {
			continue
		}
		add(c.Start)
		for _, s := range c.Segments {
			switch s.Kind {
			case Line:
				add(s.To)
			case Cubic:
				add(s.C1)
				add(s.C2)
				add(s.To)
			default:
				panic("unexpected segment kind " + s.Kind.String())
			}
		}
	}
	return bbox
}

// Transform returns a copy of the outline with every point, including
// control points, mapped through m.
func (o *Outline) Transform(m matrix.Matrix) *Outline {
	res := &Outline{
		Contours: make([]Contour, len(o.Contours)),
	}
	for i, c := range o.Contours {
		segs := make([]Segment, len(c.Segments))
		for j, s := range c.Segments {
			switch s.Kind {
			case Line:
				segs[j] = Segment{Kind: Line, To: apply(m, s.To)}
			case Cubic:
				segs[j] = Segment{
					Kind: Cubic,
					C1:   apply(m, s.C1),
					C2:   apply(m, s.C2),
					To:   apply(m, s.To),
				}
			default:
				panic("unexpected segment kind " + s.Kind.String())
			}
		}
		res.Contours[i] = Contour{
			Start:    apply(m, c.Start),
			Segments: segs,
		}
	}
	return res
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}
