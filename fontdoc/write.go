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
	"io"
	"math"
	"time"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/head"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/hmtx"
	"seehuhn.de/go/sfnt/maxp"
	"seehuhn.de/go/sfnt/name"
	"seehuhn.de/go/sfnt/os2"
	"seehuhn.de/go/sfnt/post"
)

// Write writes the document as a TrueType font.
// If the document contains no glyphs, [ErrNoGlyphs] is returned and
// nothing is written.
func (d *Document) Write(w io.Writer) (int64, error) {
	tables, err := d.Tables()
	if err != nil {
		return 0, err
	}
	return header.Write(w, header.ScalerTypeTrueType, tables)
}

// Bytes returns the binary font file.
func (d *Document) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	_, err := d.Write(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Tables returns the binary contents of all tables of the font, indexed
// by table tag.
//
// All glyphs are stored with a left side bearing of 0 in the "hmtx" table;
// the outlines keep their traced x coordinates.
func (d *Document) Tables() (map[string][]byte, error) {
	runes := d.Runes()
	if len(runes) == 0 {
		return nil, ErrNoGlyphs
	}
	numGlyphs := len(runes) + 1
	if numGlyphs >= 1<<16 {
		return nil, errTooManyGlyphs
	}
	fontNames, err := d.Names.Prepare()
	if err != nil {
		return nil, err
	}

	glyphs := make(glyf.Glyphs, numGlyphs)
	widths := make([]funit.Int16, numGlyphs)
	lsb := make([]funit.Int16, numGlyphs)
	extents := make([]funit.Rect16, numGlyphs)
	glyphNames := make([]string, numGlyphs)
	subtable := cmap.Format4{}

	// glyph 0 is the blank .notdef glyph
	widths[0] = NotdefAdvance
	glyphNames[0] = ".notdef"

	var fontBBox funit.Rect16
	ttf := &maxp.TTFInfo{MaxZones: 1}
	for i, r := range runes {
		gid := i + 1
		rec := d.glyphs[r]
		widths[gid] = funit.Int16(min(max(rec.Advance, 0), math.MaxInt16))
		lsb[gid] = funit.Int16(rec.LSB)
		glyphNames[gid] = names.FromUnicode(string(r))
		subtable[uint16(r)] = glyph.ID(gid)

		simple := toGlyf(rec.Outline)
		if simple == nil {
			continue
		}
		g := simple.AsGlyph()
		glyphs[gid] = &g
		extents[gid] = g.Rect16
		fontBBox.Extend(g.Rect16)

		numPoints := 0
		for _, c := range simple.Contours {
			numPoints += len(c)
		}
		ttf.MaxPoints = max(ttf.MaxPoints, uint16(numPoints))
		ttf.MaxContours = max(ttf.MaxContours, uint16(len(simple.Contours)))
	}
	enc := glyphs.Encode()

	hmtxInfo := &hmtx.Info{
		Widths:       widths,
		GlyphExtents: extents,
		LSB:          lsb,
		Ascent:       Ascent,
		Descent:      -Descent,
	}
	hheaData, hmtxData := hmtxInfo.Encode()

	timestamp := d.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	revision := head.Version(math.Round(fontNames.Version * 65536)).Round()
	headInfo := &head.Info{
		FontRevision:  revision,
		HasYBaseAt0:   true,
		UnitsPerEm:    UnitsPerEm,
		Created:       timestamp,
		Modified:      timestamp,
		FontBBox:      fontBBox,
		LowestRecPPEM: 8,
		LocaFormat:    enc.LocaFormat,
	}

	maxpInfo := &maxp.Info{
		NumGlyphs: numGlyphs,
		TTF:       ttf,
	}

	var widthSum, widthCount int
	for _, w := range widths {
		if w > 0 {
			widthSum += int(w)
			widthCount++
		}
	}
	os2Info := &os2.Info{
		WeightClass: os2.WeightNormal,
		WidthClass:  os2.WidthNormal,
		IsRegular:   true,

		FirstCharIndex: uint16(runes[0]),
		LastCharIndex:  uint16(runes[len(runes)-1]),

		Ascent:     Ascent,
		Descent:    -Descent,
		WinAscent:  Ascent,
		WinDescent: Descent,
		CapHeight:  CapHeight,
		XHeight:    XHeight,

		AvgGlyphWidth: funit.Int16((widthSum + widthCount/2) / widthCount),

		SubscriptXSize:     650,
		SubscriptYSize:     600,
		SubscriptYOffset:   75,
		SuperscriptXSize:   650,
		SuperscriptYSize:   600,
		SuperscriptYOffset: 350,
		StrikeoutSize:      50,
		StrikeoutPosition:  XHeight / 2,
	}
	if runes[0] < 0x80 {
		os2Info.UnicodeRange.Set(os2.URBasicLatin)
	}
	if runes[len(runes)-1] >= 0x80 && runes[0] <= 0xFF {
		os2Info.UnicodeRange.Set(os2.URLatin1Sup)
	}
	os2Info.CodePageRange.Set(os2.CP1252)

	psName := fontNames.PostScriptName()
	nameTable := &name.Table{
		Family:         fontNames.Family,
		Subfamily:      fontNames.Style,
		Identifier:     psName + "; " + revision.String() + "; " + timestamp.Format("2006-01-02"),
		FullName:       fontNames.FullName(),
		Version:        "Version " + revision.String(),
		PostScriptName: psName,
	}
	nameInfo := &name.Info{
		Windows: name.Tables{
			nameTableLanguage(fontNames.Language): nameTable,
		},
	}

	postInfo := &post.Info{
		Names: glyphNames,
	}

	cmapData := subtable.Encode(0)
	cmapTable := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: cmapData, // Unicode BMP
		{PlatformID: 3, EncodingID: 1}: cmapData, // Windows, Unicode BMP
	}

	tables := map[string][]byte{
		"head": headInfo.Encode(),
		"hhea": hheaData,
		"hmtx": hmtxData,
		"maxp": maxpInfo.Encode(),
		"OS/2": os2Info.Encode(),
		"name": nameInfo.Encode(1),
		"cmap": cmapTable.Encode(),
		"loca": enc.LocaData,
		"glyf": enc.GlyfData,
		"post": postInfo.Encode(),
	}
	return tables, nil
}

var errTooManyGlyphs = errors.New("fontdoc: too many glyphs")
