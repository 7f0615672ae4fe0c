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
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Reason classifies request level failures.
type Reason int

// These are the possible values of Reason.
const (
	ReasonNoInput  Reason = iota + 1 // the request contained no items
	ReasonNoGlyphs                   // no glyph could be produced
	ReasonAssembly                   // the font could not be assembled
	ReasonResource                   // scratch storage could not be managed
	ReasonCanceled                   // the request timed out or was canceled
)

func (r Reason) String() string {
	switch r {
	case ReasonNoInput:
		return "no-input"
	case ReasonNoGlyphs:
		return "no-glyphs"
	case ReasonAssembly:
		return "assembly"
	case ReasonResource:
		return "resource"
	case ReasonCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Error is returned when a synthesis request fails as a whole.
type Error struct {
	Reason Reason
	Err    error

	// Diagnostics lists the items which were dropped before the request
	// failed.
	Diagnostics []Diagnostic
}

func (err *Error) Error() string {
	if err.Err == nil {
		return "synth: " + err.Reason.String()
	}
	return "synth: " + err.Reason.String() + ": " + err.Err.Error()
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Problem describes why an input item was dropped.
type Problem int

// These are the possible values of Problem.
const (
	ProblemInvalidLabel Problem = iota + 1
	ProblemUnreadable
	ProblemTracer
	ProblemTimeout
	ProblemEmpty
	ProblemDuplicate
	ProblemUnmappable
)

func (p Problem) String() string {
	switch p {
	case ProblemInvalidLabel:
		return "invalid-label"
	case ProblemUnreadable:
		return "unreadable-image"
	case ProblemTracer:
		return "tracer-failed"
	case ProblemTimeout:
		return "tracer-timeout"
	case ProblemEmpty:
		return "empty-outline"
	case ProblemDuplicate:
		return "duplicate"
	case ProblemUnmappable:
		return "unmappable"
	default:
		return fmt.Sprintf("Problem(%d)", int(p))
	}
}

// Diagnostic reports an input item which did not make it into the font.
type Diagnostic struct {
	Index   int    // position of the item in the request
	Label   string // label as given in the request
	Problem Problem
	Err     error
}

func (d Diagnostic) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "item %d %q", d.Index, d.Label)
	if r := []rune(d.Label); len(r) == 1 {
		fmt.Fprintf(b, " (U+%04X %s)", r[0], runenames.Name(r[0]))
	}
	fmt.Fprintf(b, ": %s", d.Problem)
	if d.Err != nil {
		fmt.Fprintf(b, ": %v", d.Err)
	}
	return b.String()
}
