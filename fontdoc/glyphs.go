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

package fontdoc

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"

	"seehuhn.de/go/handfont/outline"
)

// quadTolerance is the maximal distance, in design units, between a cubic
// curve and its quadratic approximation.
const quadTolerance = 1.0

// toGlyf converts an outline to TrueType form.
// Coordinates are rounded to integers, cubic curves are replaced by
// quadratic curves, and repeated on-curve points are merged.  Contours
// with fewer than two points are dropped.  If no contour is left, nil is
// returned.
func toGlyf(o *outline.Outline) *glyf.SimpleUnpacked {
	g := &glyf.SimpleUnpacked{}
	for _, c := range o.Contours {
		if len(c.Segments) == 0 {
			continue
		}
		var pts glyf.Contour
		add := func(p vec.Vec2, onCurve bool) {
			q := glyf.Point{X: toFUnit(p.X), Y: toFUnit(p.Y), OnCurve: onCurve}
			if n := len(pts); n > 0 && onCurve && pts[n-1] == q {
				return
			}
			pts = append(pts, q)
		}

		add(c.Start, true)
		cur := c.Start
		for _, s := range c.Segments {
			switch s.Kind {
			case outline.Line:
				add(s.To, true)
			case outline.Cubic:
				for _, q := range outline.CubicToQuads(cur, s.C1, s.C2, s.To, quadTolerance) {
					add(q.Ctrl, false)
					add(q.To, true)
				}
			default:
				panic("unexpected segment kind " + s.Kind.String())
			}
			cur = s.To
		}

		// the contour is closed implicitly
		if n := len(pts); n > 1 && pts[n-1] == pts[0] {
			pts = pts[:n-1]
		}
		if len(pts) < 2 {
			continue
		}
		g.Contours = append(g.Contours, pts)
	}
	if len(g.Contours) == 0 {
		return nil
	}
	return g
}

func toFUnit(x float64) funit.Int16 {
	x = math.Round(x)
	x = min(max(x, math.MinInt16), math.MaxInt16)
	return funit.Int16(x)
}
