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

// Package fontdoc assembles normalized glyph outlines into a TrueType font.
//
// A [Document] collects one [GlyphRecord] per code point.  Outlines are
// given in font design units, with the baseline at y=0.  When the document
// is written, cubic curves are approximated by quadratic curves, glyph 0 is
// an empty ".notdef" glyph, and the remaining glyphs follow in code point
// order.
package fontdoc

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf16"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/handfont/outline"
)

// MediaType is the media type of the fonts written by this package.
const MediaType = "font/ttf"

// Global metrics of all generated fonts, in design units.
const (
	UnitsPerEm = 1000
	Ascent     = 800
	Descent    = 200 // below the baseline, stored as -200 in the tables
	XHeight    = 500
	CapHeight  = 700

	// NotdefAdvance is the advance width of the empty glyph 0.
	NotdefAdvance = 500
)

var (
	// ErrNoGlyphs is returned when a document without glyphs is written.
	ErrNoGlyphs = errors.New("fontdoc: no usable glyphs")

	// ErrEmptyOutline is returned by [Document.Add] for glyphs without
	// contours.
	ErrEmptyOutline = errors.New("fontdoc: empty outline")
)

// UnmappableError is returned by [Document.Add] for code points which
// cannot be stored in a format 4 character map.
type UnmappableError struct {
	Rune rune
}

func (err *UnmappableError) Error() string {
	return fmt.Sprintf("fontdoc: code point U+%04X is outside the BMP", err.Rune)
}

// GlyphRecord describes the glyph for one code point.
type GlyphRecord struct {
	Rune    rune
	Outline *outline.Outline // in design units
	Advance int              // advance width in design units
	LSB     int              // left side bearing, normally 0
}

// Document is a font under construction.
// The zero value is not usable; use [New].
type Document struct {
	Names Names

	// Timestamp is stored as the creation and modification time of the
	// font.  If it is zero, the time of writing is used.
	Timestamp time.Time

	glyphs map[rune]*GlyphRecord
}

// New returns an empty document using the given names.
func New(names Names) *Document {
	return &Document{
		Names:  names,
		glyphs: make(map[rune]*GlyphRecord),
	}
}

// Add adds a glyph to the document.
// If the document already contains a glyph for the same code point, the
// new record replaces the old one.
func (d *Document) Add(rec *GlyphRecord) error {
	if rec.Outline.IsEmpty() {
		return ErrEmptyOutline
	}
	r := rec.Rune
	if r < 0 || r > 0xFFFE || utf16.IsSurrogate(r) {
		return &UnmappableError{Rune: r}
	}
	d.glyphs[r] = rec
	return nil
}

// Len returns the number of glyphs in the document, not counting .notdef.
func (d *Document) Len() int {
	return len(d.glyphs)
}

// Runes returns the code points in the document, in increasing order.
// This is the order in which the glyphs are stored in the font.
func (d *Document) Runes() []rune {
	rr := maps.Keys(d.glyphs)
	slices.Sort(rr)
	return rr
}

// Glyph returns the record for r, or nil if there is none.
func (d *Document) Glyph(r rune) *GlyphRecord {
	return d.glyphs[r]
}
