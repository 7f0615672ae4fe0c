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
	"fmt"
	"strings"

	"github.com/xdg-go/stringprep"
	"golang.org/x/text/language"
)

// Names contains the naming information of a font.
type Names struct {
	Family   string  // default "Handwriting"
	Style    string  // default "Regular"
	Version  float64 // font revision, default 1.0
	Language language.Tag
}

const (
	defaultFamily = "Handwriting"
	defaultStyle  = "Regular"

	maxPostScriptName = 63
)

// Prepare normalizes the family and style names and fills in defaults.
// The names are normalized with SASLprep, which maps exotic spaces to
// ASCII spaces and rejects control characters.
func (n Names) Prepare() (Names, error) {
	family, err := stringprep.SASLprep.Prepare(n.Family)
	if err != nil {
		return n, fmt.Errorf("fontdoc: family name %q: %w", n.Family, err)
	}
	style, err := stringprep.SASLprep.Prepare(n.Style)
	if err != nil {
		return n, fmt.Errorf("fontdoc: style name %q: %w", n.Style, err)
	}

	n.Family = strings.Join(strings.Fields(family), " ")
	if n.Family == "" {
		n.Family = defaultFamily
	}
	n.Style = strings.Join(strings.Fields(style), " ")
	if n.Style == "" {
		n.Style = defaultStyle
	}
	if n.Version <= 0 {
		n.Version = 1
	}
	if n.Language == language.Und {
		n.Language = language.AmericanEnglish
	}
	return n, nil
}

// FullName returns the full font name, as shown in font menus.
func (n Names) FullName() string {
	if n.Style == defaultStyle {
		return n.Family
	}
	return n.Family + " " + n.Style
}

// PostScriptName returns a name for the font which consists of printable
// ASCII characters only, in the form "Family-Style".
func (n Names) PostScriptName() string {
	family := postScriptSafe(n.Family)
	if family == "" {
		family = defaultFamily
	}
	style := postScriptSafe(n.Style)
	if style == "" {
		style = defaultStyle
	}
	name := family + "-" + style
	if len(name) > maxPostScriptName {
		name = name[:maxPostScriptName]
	}
	return name
}

func postScriptSafe(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= ' ' || r >= 127 || strings.ContainsRune("[](){}<>/%-", r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// nameLanguages lists the languages for which "name" records can be
// written, in the form used by the sfnt/name package.
var nameLanguages = []string{
	"en-US", "en-GB", "de-DE", "fr-FR", "es-ES", "it-IT", "nl-NL",
}

var nameLanguageMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(nameLanguages))
	for i, key := range nameLanguages {
		tags[i] = language.MustParse(key)
	}
	return language.NewMatcher(tags)
}()

// nameTableLanguage returns the closest supported language for the
// "name" table.  Unsupported languages fall back to American English.
func nameTableLanguage(tag language.Tag) string {
	_, idx, conf := nameLanguageMatcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return nameLanguages[idx]
}
