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

package outline

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// MaxQuadPieces limits the number of quadratic pieces used to approximate
// a single cubic segment.
const MaxQuadPieces = 16

// QuadPiece is a quadratic Bézier curve from an implied start point, via
// the off-curve control point Ctrl, to the on-curve point To.
type QuadPiece struct {
	Ctrl, To vec.Vec2
}

// CubicToQuads approximates the cubic Bézier curve p0, c1, c2, p3 by a
// sequence of quadratic curves, such that the distance between the two
// curves is at most tol.  At most MaxQuadPieces pieces are used.
//
// The cubic is split at equally spaced parameter values and each part is
// replaced by the quadratic whose control point is (3(c1+c2) - p0 - p3)/4.
func CubicToQuads(p0, c1, c2, p3 vec.Vec2, tol float64) []QuadPiece {
	// The error of the single-quadratic approximation is bounded by
	// sqrt(3)/36 * |p3 - 3 c2 + 3 c1 - p0|, and shrinks with the cube of
	// the number of pieces.
	d := vec.Vec2{
		X: p3.X - 3*c2.X + 3*c1.X - p0.X,
		Y: p3.Y - 3*c2.Y + 3*c1.Y - p0.Y,
	}
	errBound := math.Sqrt(3) / 36 * d.Length()
	n := 1
	if tol > 0 && errBound > tol {
		n = int(math.Ceil(math.Cbrt(errBound / tol)))
	}
	n = min(max(n, 1), MaxQuadPieces)

	res := make([]QuadPiece, 0, n)
	a, b, c, e := p0, c1, c2, p3
	for i := 0; i < n; i++ {
		var rest [4]vec.Vec2
		if i < n-1 {
			t := 1 / float64(n-i)
			var first [4]vec.Vec2
			first, rest = splitCubic(a, b, c, e, t)
			a, b, c, e = first[0], first[1], first[2], first[3]
		}
		res = append(res, QuadPiece{
			Ctrl: vec.Vec2{
				X: (3*(b.X+c.X) - a.X - e.X) / 4,
				Y: (3*(b.Y+c.Y) - a.Y - e.Y) / 4,
			},
			To: e,
		})
		if i < n-1 {
			a, b, c, e = rest[0], rest[1], rest[2], rest[3]
		}
	}
	return res
}

// splitCubic divides a cubic Bézier curve at parameter t using de
// Casteljau's algorithm.
func splitCubic(p0, p1, p2, p3 vec.Vec2, t float64) (first, second [4]vec.Vec2) {
	lerp := func(a, b vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
	}
	p01 := lerp(p0, p1)
	p12 := lerp(p1, p2)
	p23 := lerp(p2, p3)
	p012 := lerp(p01, p12)
	p123 := lerp(p12, p23)
	mid := lerp(p012, p123)
	first = [4]vec.Vec2{p0, p01, p012, mid}
	second = [4]vec.Vec2{mid, p123, p23, p3}
	return first, second
}
