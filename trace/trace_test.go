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

package trace

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/handfont/outline"
)

func square() *image.Gray {
	bm := image.NewGray(image.Rect(0, 0, 60, 60))
	draw.Draw(bm, bm.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(bm, image.Rect(15, 15, 45, 45), image.Black, image.Point{}, draw.Src)
	return bm
}

func TestFunc(t *testing.T) {
	want := outline.ParsePath("M0 0L10 0L10 10Z")
	var tr Tracer = Func(func(ctx context.Context, dir string, bm *image.Gray) (*outline.Outline, error) {
		return want, nil
	})
	got, err := tr.Trace(context.Background(), t.TempDir(), square())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestTracingError(t *testing.T) {
	base := fmt.Errorf("potrace: %w", context.DeadlineExceeded)
	err := error(&TracingError{Label: "g", Err: base})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("deadline not visible through TracingError")
	}
	var te *TracingError
	if !errors.As(err, &te) || !te.Timeout() {
		t.Error("timeout not detected")
	}
	if msg := err.Error(); msg != `trace "g": timed out` {
		t.Errorf("message %q", msg)
	}

	err = &TracingError{Label: "x", Err: errors.New("boom")}
	if msg := err.Error(); msg != `trace "x": boom` {
		t.Errorf("message %q", msg)
	}
}

func TestPotraceMissing(t *testing.T) {
	p := &Potrace{Path: filepath.Join(t.TempDir(), "no-such-potrace")}
	if p.Available() {
		t.Fatal("missing binary reported as available")
	}
	dir := t.TempDir()
	_, err := p.Trace(context.Background(), dir, square())
	if err == nil {
		t.Fatal("missing binary did not fail")
	}

	// intermediate files are removed on failure
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("%d files left in scratch directory", len(entries))
	}
}

func TestPotraceCancelled(t *testing.T) {
	p := &Potrace{}
	if !p.Available() {
		t.Skip("potrace not installed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	_, err := p.Trace(ctx, t.TempDir(), square())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("got %v, want deadline exceeded", err)
	}
}

func TestPotrace(t *testing.T) {
	p := &Potrace{}
	if !p.Available() {
		t.Skip("potrace not installed")
	}
	o, err := p.Trace(context.Background(), t.TempDir(), square())
	if err != nil {
		t.Fatal(err)
	}
	if o.IsEmpty() {
		t.Fatal("no outline traced")
	}
	bbox := o.BBox()
	w, h := bbox.URx-bbox.LLx, bbox.URy-bbox.LLy
	if w <= 0 || h <= 0 || w/h < 0.9 || w/h > 1.1 {
		t.Errorf("square traced with bbox %v", bbox)
	}
}
