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

package synth

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Item is one unvalidated input of a synthesis request.
type Item struct {
	Label string // the character the sample shows
	Data  []byte // the encoded raster image
}

// Sample is a validated input item.
type Sample struct {
	Label string
	Rune  rune
	Data  []byte
}

// ErrInvalidLabel is returned by [NewSample] for labels which do not
// consist of exactly one visible character.
var ErrInvalidLabel = errors.New("synth: label must be a single character")

// NewSample validates the label of a sample image.
// The label is normalized to NFC first, so that a base letter followed by
// a combining accent counts as a single character if a precomposed form
// exists.
func NewSample(label string, data []byte) (*Sample, error) {
	s := norm.NFC.String(label)
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return nil, ErrInvalidLabel
	}
	if !unicode.IsGraphic(r) || unicode.IsSpace(r) {
		return nil, ErrInvalidLabel
	}
	return &Sample{
		Label: label,
		Rune:  r,
		Data:  data,
	}, nil
}

// LabelFromName returns the label encoded in a file name: the base name
// without its extension.  For example, both "a.png" and "/tmp/a.png" give
// the label "a".
func LabelFromName(fname string) string {
	base := filepath.Base(fname)
	if ext := filepath.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
