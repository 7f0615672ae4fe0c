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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ReadSVG extracts the geometry of all <path> elements of an SVG document,
// as written by potrace with the "-s" option.
//
// Potrace places its paths inside a group which flips the y-axis and
// scales by 0.1.  The path coordinates themselves already use a y-axis
// pointing upwards, which is what font outlines need, so group transforms
// are not applied.  A document without paths gives an empty outline.
func ReadSVG(r io.Reader) (*Outline, error) {
	dec := xml.NewDecoder(r)
	res := &Outline{}
	seenRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("outline: malformed SVG: %w", err)
		}

		elem, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch elem.Name.Local {
		case "svg":
			seenRoot = true
		case "path":
			for _, attr := range elem.Attr {
				if attr.Name.Local == "d" {
					o := ParsePath(attr.Value)
					res.Contours = append(res.Contours, o.Contours...)
				}
			}
		}
	}
	if !seenRoot {
		return nil, errors.New("outline: not an SVG document")
	}
	return res, nil
}
