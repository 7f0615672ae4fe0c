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

// Package normalize scales traced glyph outlines into font design units
// and places them relative to the baseline, according to the typographic
// role of the character.
package normalize

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/handfont/outline"
)

// Class is the typographic role of a character.
type Class int

// These are the possible values of Class.
const (
	Default Class = iota
	Upper
	Ascender
	Descender
)

func (c Class) String() string {
	switch c {
	case Default:
		return "default"
	case Upper:
		return "upper"
	case Ascender:
		return "ascender"
	case Descender:
		return "descender"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// ClassOf returns the typographic class of r.
func ClassOf(r rune) Class {
	switch {
	case r >= 'A' && r <= 'Z':
		return Upper
	case r == 'b', r == 'd', r == 'f', r == 'h', r == 'k', r == 'l', r == 't':
		return Ascender
	case r == 'g', r == 'p', r == 'q', r == 'y':
		return Descender
	default:
		return Default
	}
}

// Target returns the size of the box, in design units, into which glyphs of
// class c are scaled.
func (c Class) Target() (width, height float64) {
	switch c {
	case Upper, Ascender:
		return 600, 700
	default:
		return 500, 500
	}
}

const (
	// descenderScale enlarges descenders before they are dropped below the
	// baseline.
	descenderScale = 1.5

	// descenderLift is added to the shift of descenders.
	descenderLift = 200

	// SideBearing is added to the scaled glyph width to get the advance
	// width.
	SideBearing = 100
)

// Metrics describe how a raw outline is mapped into design units.
type Metrics struct {
	Scale   float64 // uniform scale factor
	ShiftY  float64 // added to every y coordinate after scaling
	Advance int     // advance width in design units
}

// Matrix returns the transformation described by m.
func (m Metrics) Matrix() matrix.Matrix {
	return matrix.Matrix{m.Scale, 0, 0, m.Scale, 0, m.ShiftY}
}

// Compute determines scale, baseline shift and advance width for a glyph
// with raw bounding box bbox and typographic class c.
//
// The scale is the largest factor which fits the glyph into the target
// box of its class.  Descenders are scaled by an additional factor 1.5 and
// shifted down so that roughly their lower third hangs below the baseline.
// If the raw box has zero width or height, the scale is 1.
func Compute(bbox rect.Rect, c Class) Metrics {
	w := bbox.URx - bbox.LLx
	h := bbox.URy - bbox.LLy

	scale := 1.0
	if w != 0 && h != 0 {
		tw, th := c.Target()
		scale = min(th/h, tw/w)
	}

	var shift float64
	if c == Descender {
		scale *= descenderScale
		shift = descenderLift - h*scale*2/3
	}

	return Metrics{
		Scale:   scale,
		ShiftY:  shift,
		Advance: int(math.Round(w*scale)) + SideBearing,
	}
}

// Glyph scales and shifts the outline of the character r.
// The input outline is not modified.
func Glyph(o *outline.Outline, r rune) (*outline.Outline, Metrics) {
	m := Compute(o.BBox(), ClassOf(r))
	return o.Transform(m.Matrix()), m
}
