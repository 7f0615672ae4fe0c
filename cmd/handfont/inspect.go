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

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"unicode/utf16"

	"golang.org/x/text/unicode/runenames"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

func runInspect(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: handfont inspect <font.ttf>\n")
	}
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("inspect: need exactly one font file")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	return inspect(out, data)
}

func inspect(out io.Writer, data []byte) error {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return err
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return err
	}
	outlines, ok := info.Outlines.(*glyf.Outlines)
	if !ok {
		return errors.New("inspect: not a TrueType font")
	}

	fmt.Fprintf(out, "%s, %d units per em\n\n", info.FullName(), info.UnitsPerEm)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "char\tglyph\tname\tadvance\tcontours\tdescription")
	for r := rune(0); r <= 0xFFFF; r++ {
		if utf16.IsSurrogate(r) {
			continue
		}
		gid := subtable.Lookup(r)
		if gid == 0 {
			continue
		}
		fmt.Fprintf(w, "U+%04X\t%d\t%s\t%d\t%d\t%s\n",
			r, gid, info.GlyphName(gid), int(info.GlyphWidth(gid)),
			numContours(outlines, gid), runenames.Name(r))
	}
	return w.Flush()
}

func numContours(outlines *glyf.Outlines, gid glyph.ID) int {
	if int(gid) >= len(outlines.Glyphs) || outlines.Glyphs[gid] == nil {
		return 0
	}
	simple, ok := outlines.Glyphs[gid].Data.(glyf.SimpleGlyph)
	if !ok {
		return 0
	}
	decoded, err := simple.Unpack()
	if err != nil {
		return 0
	}
	return len(decoded.Contours)
}
