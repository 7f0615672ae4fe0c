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
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
	"golang.org/x/image/font"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/hmtx"

	"seehuhn.de/go/handfont/outline"
)

func box(x0, y0, x1, y1 float64) outline.Contour {
	return outline.Contour{
		Start: vec.Vec2{X: x0, Y: y0},
		Segments: []outline.Segment{
			{Kind: outline.Line, To: vec.Vec2{X: x1, Y: y0}},
			{Kind: outline.Line, To: vec.Vec2{X: x1, Y: y1}},
			{Kind: outline.Line, To: vec.Vec2{X: x0, Y: y1}},
			{Kind: outline.Line, To: vec.Vec2{X: x0, Y: y0}},
		},
	}
}

func ring(cx, cy, r float64) outline.Contour {
	const k = 0.5523
	return outline.Contour{
		Start: vec.Vec2{X: cx + r, Y: cy},
		Segments: []outline.Segment{
			{Kind: outline.Cubic, C1: vec.Vec2{X: cx + r, Y: cy + k*r}, C2: vec.Vec2{X: cx + k*r, Y: cy + r}, To: vec.Vec2{X: cx, Y: cy + r}},
			{Kind: outline.Cubic, C1: vec.Vec2{X: cx - k*r, Y: cy + r}, C2: vec.Vec2{X: cx - r, Y: cy + k*r}, To: vec.Vec2{X: cx - r, Y: cy}},
			{Kind: outline.Cubic, C1: vec.Vec2{X: cx - r, Y: cy - k*r}, C2: vec.Vec2{X: cx - k*r, Y: cy - r}, To: vec.Vec2{X: cx, Y: cy - r}},
			{Kind: outline.Cubic, C1: vec.Vec2{X: cx + k*r, Y: cy - r}, C2: vec.Vec2{X: cx + r, Y: cy - k*r}, To: vec.Vec2{X: cx + r, Y: cy}},
		},
	}
}

type sample struct {
	r        rune
	advance  int
	contours int
}

func testDocument(t *testing.T) (*Document, []sample) {
	t.Helper()
	doc := New(Names{Family: "Test Hand"})
	doc.Timestamp = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	recs := []*GlyphRecord{
		{Rune: 'A', Advance: 700, Outline: &outline.Outline{
			Contours: []outline.Contour{box(0, 0, 600, 700)},
		}},
		{Rune: 'o', Advance: 600, Outline: &outline.Outline{
			Contours: []outline.Contour{ring(250, 250, 250), ring(250, 250, 150)},
		}},
		{Rune: 'g', Advance: 850, Outline: &outline.Outline{
			Contours: []outline.Contour{box(0, -200, 750, 400)},
		}},
	}
	for _, rec := range recs {
		if err := doc.Add(rec); err != nil {
			t.Fatal(err)
		}
	}
	return doc, []sample{{'A', 700, 1}, {'g', 850, 1}, {'o', 600, 2}}
}

func TestEmptyDocument(t *testing.T) {
	doc := New(Names{})
	buf := &bytes.Buffer{}
	n, err := doc.Write(buf)
	if !errors.Is(err, ErrNoGlyphs) {
		t.Fatalf("got error %v, want %v", err, ErrNoGlyphs)
	}
	if n != 0 || buf.Len() != 0 {
		t.Errorf("%d bytes written", buf.Len())
	}
}

func TestAdd(t *testing.T) {
	doc := New(Names{})

	err := doc.Add(&GlyphRecord{Rune: 'x', Outline: &outline.Outline{}})
	if !errors.Is(err, ErrEmptyOutline) {
		t.Errorf("empty outline: got %v", err)
	}
	err = doc.Add(&GlyphRecord{Rune: 'x'})
	if !errors.Is(err, ErrEmptyOutline) {
		t.Errorf("nil outline: got %v", err)
	}

	o := &outline.Outline{Contours: []outline.Contour{box(0, 0, 10, 10)}}
	var unmappable *UnmappableError
	err = doc.Add(&GlyphRecord{Rune: 0x1F600, Outline: o})
	if !errors.As(err, &unmappable) || unmappable.Rune != 0x1F600 {
		t.Errorf("non-BMP rune: got %v", err)
	}

	// the later record replaces the earlier one
	if err := doc.Add(&GlyphRecord{Rune: 'x', Outline: o, Advance: 1}); err != nil {
		t.Fatal(err)
	}
	if err := doc.Add(&GlyphRecord{Rune: 'x', Outline: o, Advance: 2}); err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 1 || doc.Glyph('x').Advance != 2 {
		t.Errorf("got %d glyphs, advance %d", doc.Len(), doc.Glyph('x').Advance)
	}
}

func TestRunesSorted(t *testing.T) {
	doc, samples := testDocument(t)
	var want []rune
	for _, s := range samples {
		want = append(want, s.r)
	}
	if d := cmp.Diff(want, doc.Runes()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

// TestRoundTripXImage reads the font back using golang.org/x/image.
func TestRoundTripXImage(t *testing.T) {
	doc, samples := testDocument(t)
	data, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	f, err := xsfnt.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.NumGlyphs() != len(samples)+1 {
		t.Errorf("got %d glyphs, want %d", f.NumGlyphs(), len(samples)+1)
	}
	if upem := f.UnitsPerEm(); upem != UnitsPerEm {
		t.Errorf("unitsPerEm = %d", upem)
	}

	var buf xsfnt.Buffer
	for _, s := range samples {
		gid, err := f.GlyphIndex(&buf, s.r)
		if err != nil {
			t.Fatal(err)
		}
		if gid == 0 {
			t.Errorf("%q is not mapped", s.r)
			continue
		}
		adv, err := f.GlyphAdvance(&buf, gid, fixed.I(UnitsPerEm), font.HintingNone)
		if err != nil {
			t.Fatal(err)
		}
		if adv != fixed.I(s.advance) {
			t.Errorf("%q: advance %v, want %d", s.r, adv, s.advance)
		}

		segs, err := f.LoadGlyph(&buf, gid, fixed.I(UnitsPerEm), nil)
		if err != nil {
			t.Fatal(err)
		}
		contours := 0
		for _, seg := range segs {
			if seg.Op == xsfnt.SegmentOpMoveTo {
				contours++
			}
		}
		if contours != s.contours {
			t.Errorf("%q: %d contours, want %d", s.r, contours, s.contours)
		}
	}

	family, err := f.Name(&buf, xsfnt.NameIDFamily)
	if err != nil {
		t.Fatal(err)
	}
	if family != "Test Hand" {
		t.Errorf("family name %q", family)
	}
	psName, err := f.Name(&buf, xsfnt.NameIDPostScript)
	if err != nil {
		t.Fatal(err)
	}
	if psName != "TestHand-Regular" {
		t.Errorf("PostScript name %q", psName)
	}
}

// TestRoundTripSfnt reads the font back using seehuhn.de/go/sfnt.
func TestRoundTripSfnt(t *testing.T) {
	doc, samples := testDocument(t)
	data, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if info.UnitsPerEm != UnitsPerEm {
		t.Errorf("unitsPerEm = %d", info.UnitsPerEm)
	}
	if info.FamilyName != "Test Hand" {
		t.Errorf("family name %q", info.FamilyName)
	}

	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		t.Fatal(err)
	}
	outlines, ok := info.Outlines.(*glyf.Outlines)
	if !ok {
		t.Fatalf("unexpected outline type %T", info.Outlines)
	}

	for _, s := range samples {
		gid := subtable.Lookup(s.r)
		if gid == 0 {
			t.Errorf("%q is not mapped", s.r)
			continue
		}
		if w := int(info.GlyphWidth(gid)); w != s.advance {
			t.Errorf("%q: width %d, want %d", s.r, w, s.advance)
		}
		if name := info.GlyphName(gid); name != string(s.r) {
			t.Errorf("%q: glyph name %q", s.r, name)
		}

		g := outlines.Glyphs[gid]
		if g == nil {
			t.Errorf("%q: blank glyph", s.r)
			continue
		}
		simple, ok := g.Data.(glyf.SimpleGlyph)
		if !ok {
			t.Fatalf("%q: unexpected glyph type %T", s.r, g.Data)
		}
		decoded, err := simple.Unpack()
		if err != nil {
			t.Fatal(err)
		}
		if len(decoded.Contours) != s.contours {
			t.Errorf("%q: %d contours, want %d", s.r, len(decoded.Contours), s.contours)
		}
	}
	if outlines.Glyphs[glyph.ID(0)] != nil {
		t.Error(".notdef is not blank")
	}
}

func TestTablesMetrics(t *testing.T) {
	doc, _ := testDocument(t)
	tables, err := doc.Tables()
	if err != nil {
		t.Fatal(err)
	}

	var tags []string
	for tag := range tables {
		tags = append(tags, tag)
	}
	want := []string{"OS/2", "cmap", "glyf", "head", "hhea", "hmtx", "loca", "maxp", "name", "post"}
	slices.Sort(tags)
	if d := cmp.Diff(want, tags); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	hhea := tables["hhea"]
	ascent := int16(hhea[4])<<8 | int16(hhea[5])
	descent := int16(hhea[6])<<8 | int16(hhea[7])
	if ascent != Ascent || descent != -Descent {
		t.Errorf("hhea ascent/descent %d/%d", ascent, descent)
	}

	os2 := tables["OS/2"]
	xHeight := int16(os2[86])<<8 | int16(os2[87])
	capHeight := int16(os2[88])<<8 | int16(os2[89])
	if xHeight != XHeight || capHeight != CapHeight {
		t.Errorf("OS/2 x-height/cap-height %d/%d", xHeight, capHeight)
	}

	head := tables["head"]
	upem := uint16(head[18])<<8 | uint16(head[19])
	if upem != UnitsPerEm {
		t.Errorf("head unitsPerEm %d", upem)
	}
	yMin := int16(head[38])<<8 | int16(head[39])
	yMax := int16(head[42])<<8 | int16(head[43])
	if yMin != -200 || yMax != 700 {
		t.Errorf("font bbox y range %d..%d", yMin, yMax)
	}
}

func TestZeroSideBearing(t *testing.T) {
	doc := New(Names{})
	o := &outline.Outline{Contours: []outline.Contour{box(40, 0, 540, 700)}}
	if err := doc.Add(&GlyphRecord{Rune: 'I', Outline: o, Advance: 600}); err != nil {
		t.Fatal(err)
	}
	tables, err := doc.Tables()
	if err != nil {
		t.Fatal(err)
	}

	info, err := hmtx.Decode(tables["hhea"], tables["hmtx"])
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]funit.Int16{NotdefAdvance, 600}, info.Widths); d != "" {
		t.Errorf("widths (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]funit.Int16{0, 0}, info.LSB); d != "" {
		t.Errorf("side bearings (-want +got):\n%s", d)
	}

	// the outline is not moved to x=0
	glyfData := tables["glyf"]
	xMin := int16(glyfData[2])<<8 | int16(glyfData[3])
	if xMin != 40 {
		t.Errorf("xMin = %d, want 40", xMin)
	}
}
