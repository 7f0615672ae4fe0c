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

// Package trace converts two-level bitmaps into vector outlines.
//
// The actual tracing is done by an external collaborator, normally the
// potrace program.  Tracer implementations must respect the deadline of the
// context passed to them.
package trace

import (
	"context"
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/handfont/outline"
)

// A Tracer converts a bitmap into an outline.
//
// The bitmap uses 0 for ink and 255 for background.  Dir is a scratch
// directory which the tracer may use for intermediate files; it is owned
// by the caller.  The returned outline uses the coordinates of the tracer,
// with the y axis pointing up.
type Tracer interface {
	Trace(ctx context.Context, dir string, bm *image.Gray) (*outline.Outline, error)
}

// Func adapts an ordinary function to the Tracer interface.
type Func func(ctx context.Context, dir string, bm *image.Gray) (*outline.Outline, error)

// Trace implements the [Tracer] interface.
func (f Func) Trace(ctx context.Context, dir string, bm *image.Gray) (*outline.Outline, error) {
	return f(ctx, dir, bm)
}

// TracingError is returned when the tracer fails for one glyph.
type TracingError struct {
	Label string
	Err   error
}

func (err *TracingError) Error() string {
	if err.Timeout() {
		return fmt.Sprintf("trace %q: timed out", err.Label)
	}
	return fmt.Sprintf("trace %q: %v", err.Label, err.Err)
}

func (err *TracingError) Unwrap() error {
	return err.Err
}

// Timeout reports whether the tracer was stopped because the deadline
// for the glyph passed.
func (err *TracingError) Timeout() bool {
	return errors.Is(err.Err, context.DeadlineExceeded)
}
