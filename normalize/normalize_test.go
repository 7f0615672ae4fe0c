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

package normalize

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/handfont/outline"
)

func TestClassOf(t *testing.T) {
	cases := map[rune]Class{
		'A': Upper, 'Q': Upper, 'Z': Upper,
		'b': Ascender, 'd': Ascender, 'f': Ascender, 'h': Ascender,
		'k': Ascender, 'l': Ascender, 't': Ascender,
		'g': Descender, 'p': Descender, 'q': Descender, 'y': Descender,
		'a': Default, 'x': Default, 'j': Default, '3': Default,
		'?': Default, 'Ä': Default,
	}
	for r, want := range cases {
		if got := ClassOf(r); got != want {
			t.Errorf("ClassOf(%q) = %s, want %s", r, got, want)
		}
	}
}

func TestComputeDescender(t *testing.T) {
	// a "g" with a raw box of 100 units wide and 80 units high
	bbox := rect.Rect{URx: 100, URy: 80}
	m := Compute(bbox, Descender)
	if m.Scale != 7.5 {
		t.Errorf("scale = %g, want 7.5", m.Scale)
	}
	if m.ShiftY != -200 {
		t.Errorf("shift = %g, want -200", m.ShiftY)
	}
	if m.Advance != 850 {
		t.Errorf("advance = %d, want 850", m.Advance)
	}
}

func TestComputeTargets(t *testing.T) {
	cases := []struct {
		bbox  rect.Rect
		class Class
		scale float64
		adv   int
	}{
		{rect.Rect{URx: 600, URy: 700}, Upper, 1, 700},
		{rect.Rect{URx: 600, URy: 700}, Ascender, 1, 700},
		{rect.Rect{URx: 500, URy: 500}, Default, 1, 600},
		{rect.Rect{LLx: 10, LLy: 10, URx: 110, URy: 360}, Upper, 2, 300},
		{rect.Rect{URx: 1000, URy: 250}, Default, 0.5, 600},
		{rect.Rect{URx: 0, URy: 250}, Upper, 1, 100},
		{rect.Rect{URx: 40, URy: 0}, Default, 1, 140},
	}
	for i, c := range cases {
		m := Compute(c.bbox, c.class)
		if math.Abs(m.Scale-c.scale) > 1e-9 {
			t.Errorf("%d: scale = %g, want %g", i, m.Scale, c.scale)
		}
		if m.ShiftY != 0 {
			t.Errorf("%d: unexpected shift %g", i, m.ShiftY)
		}
		if m.Advance != c.adv {
			t.Errorf("%d: advance = %d, want %d", i, m.Advance, c.adv)
		}
	}
}

func TestScaleIdempotent(t *testing.T) {
	for _, r := range []rune{'A', 'b', 'x'} {
		o := outline.ParsePath("M13 7 l170 0 0 90 -170 0z")
		once, _ := Glyph(o, r)
		_, m := Glyph(once, r)
		if math.Abs(m.Scale-1) > 1e-9 {
			t.Errorf("%q: second scale = %g", r, m.Scale)
		}
	}
}

func TestGlyphDescender(t *testing.T) {
	o := outline.ParsePath("M0 0 L100 0 L100 80 L0 80 Z")
	got, m := Glyph(o, 'g')

	scaledHeight := 80 * m.Scale
	bbox := got.BBox()
	if math.Abs(bbox.LLy-(-scaledHeight/3)) > 0.5 {
		t.Errorf("lower bound %g, want %g", bbox.LLy, -scaledHeight/3)
	}
	if math.Abs(bbox.URy-2*scaledHeight/3) > 0.5 {
		t.Errorf("upper bound %g, want %g", bbox.URy, 2*scaledHeight/3)
	}
	// x is scaled but not shifted
	if bbox.LLx != 0 || bbox.URx != 750 {
		t.Errorf("unexpected x range %g..%g", bbox.LLx, bbox.URx)
	}
	// the input is unchanged
	if o.BBox() != (rect.Rect{URx: 100, URy: 80}) {
		t.Error("input outline was modified")
	}
}
