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
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// ParsePath converts SVG path data into an outline.
//
// Move-to commands start a new contour, line-to and cubic curve-to commands
// append segments, and close-path commands end the current contour.  Both
// absolute and relative forms are understood, as are implicit command
// repetitions.  All other commands (H, V, S, Q, T and A) are skipped: their
// arguments are consumed and the current point is moved to their end point,
// but no geometry is added.  Parsing stops at the first malformed number;
// the geometry read up to that point is returned.
func ParsePath(d string) *Outline {
	p := &pathParser{s: d}
	p.run()
	p.flush()
	return &Outline{Contours: p.contours}
}

type pathParser struct {
	s   string
	pos int

	cmd      byte
	current  vec.Vec2
	start    vec.Vec2
	open     bool
	segments []Segment
	contours []Contour
}

// argCount gives the number of arguments for each command letter.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'C': 6, 'Z': 0,
	'H': 1, 'V': 1, 'S': 4, 'Q': 4, 'T': 2, 'A': 7,
}

func (p *pathParser) run() {
	for {
		p.skipSeparators()
		if p.pos >= len(p.s) {
			return
		}

		c := p.s[p.pos]
		upper := c &^ 0x20
		if _, isCmd := argCount[upper]; isCmd && isLetter(c) {
			p.pos++
			p.cmd = c
			if upper == 'Z' {
				p.closePath()
				continue
			}
		} else if p.cmd == 0 || p.cmd&^0x20 == 'Z' {
			// numbers without a command, or garbage
			return
		} else if isLetter(c) {
			// unknown command letter
			return
		}

		args, ok := p.readArgs(argCount[p.cmd&^0x20])
		if !ok {
			return
		}
		p.apply(args)
	}
}

func (p *pathParser) apply(args []float64) {
	rel := p.cmd >= 'a'
	point := func(x, y float64) vec.Vec2 {
		if rel {
			return vec.Vec2{X: p.current.X + x, Y: p.current.Y + y}
		}
		return vec.Vec2{X: x, Y: y}
	}

	switch p.cmd &^ 0x20 {
	case 'M':
		p.flush()
		p.current = point(args[0], args[1])
		p.start = p.current
		p.open = true
		// further coordinate pairs are implicit line-to commands
		if rel {
			p.cmd = 'l'
		} else {
			p.cmd = 'L'
		}
	case 'L':
		to := point(args[0], args[1])
		p.add(Segment{Kind: Line, To: to})
	case 'C':
		c1 := point(args[0], args[1])
		c2 := point(args[2], args[3])
		to := point(args[4], args[5])
		p.add(Segment{Kind: Cubic, C1: c1, C2: c2, To: to})
	case 'H':
		if rel {
			p.current.X += args[0]
		} else {
			p.current.X = args[0]
		}
	case 'V':
		if rel {
			p.current.Y += args[0]
		} else {
			p.current.Y = args[0]
		}
	case 'S', 'Q', 'T', 'A':
		n := len(args)
		p.current = point(args[n-2], args[n-1])
	}
}

func (p *pathParser) add(seg Segment) {
	if !p.open {
		// drawing after a close-path continues from the contour start
		p.start = p.current
		p.open = true
	}
	p.segments = append(p.segments, seg)
	p.current = seg.To
}

func (p *pathParser) closePath() {
	p.flush()
	p.current = p.start
}

// flush finishes the current contour.  Contours without segments are
// dropped.
func (p *pathParser) flush() {
	if p.open && len(p.segments) > 0 {
		p.contours = append(p.contours, Contour{
			Start:    p.start,
			Segments: p.segments,
		})
	}
	p.segments = nil
	p.open = false
}

func (p *pathParser) readArgs(n int) ([]float64, bool) {
	args := make([]float64, n)
	for i := range args {
		p.skipSeparators()
		x, ok := p.readNumber()
		if !ok {
			return nil, false
		}
		args[i] = x
	}
	return args, true
}

func (p *pathParser) skipSeparators() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			p.pos++
		default:
			return
		}
	}
}

// readNumber reads an SVG number.  A sign, or a second decimal point,
// starts a new number, so that "1-2" and "1.5.5" are read as two numbers
// each.
func (p *pathParser) readNumber() (float64, bool) {
	start := p.pos
	i := p.pos
	if i < len(p.s) && (p.s[i] == '+' || p.s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(p.s) && isDigit(p.s[i]) {
		i++
		digits++
	}
	if i < len(p.s) && p.s[i] == '.' {
		i++
		for i < len(p.s) && isDigit(p.s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if i < len(p.s) && (p.s[i] == 'e' || p.s[i] == 'E') {
		j := i + 1
		if j < len(p.s) && (p.s[j] == '+' || p.s[j] == '-') {
			j++
		}
		if j < len(p.s) && isDigit(p.s[j]) {
			for j < len(p.s) && isDigit(p.s[j]) {
				j++
			}
			i = j
		}
	}
	x, err := strconv.ParseFloat(p.s[start:i], 64)
	if err != nil {
		return 0, false
	}
	p.pos = i
	return x, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
