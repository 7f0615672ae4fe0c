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

// Package synth turns labeled handwriting samples into a TrueType font.
//
// Every sample is processed independently: the image is binarized, traced,
// and the outline is scaled and positioned according to the typographic
// class of its character.  Problems with individual samples are reported
// as diagnostics and do not stop the request.  Only when no glyph at all
// can be produced, or when the font cannot be assembled, does [Build]
// fail.
package synth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/handfont/binarize"
	"seehuhn.de/go/handfont/fontdoc"
	"seehuhn.de/go/handfont/internal/scratch"
	"seehuhn.de/go/handfont/normalize"
	"seehuhn.de/go/handfont/trace"
)

// Options control a synthesis request.
type Options struct {
	// Tracer converts bitmaps to outlines.  The default runs potrace.
	Tracer trace.Tracer

	// Workers limits the number of samples processed concurrently.
	// The default is GOMAXPROCS.
	Workers int

	// GlyphTimeout limits the time the tracer may spend on one sample.
	// The default is 30 seconds.
	GlyphTimeout time.Duration

	// RequestTimeout, if positive, limits the time for the whole request.
	RequestTimeout time.Duration

	// ScratchRoot is the directory where the per-request scratch directory
	// is created.  The default is the system directory for temporary files.
	ScratchRoot string

	// Font contains the names of the generated font.
	Font fontdoc.Names

	// Logger receives progress messages.  If nil, nothing is logged.
	Logger *slog.Logger
}

const defaultGlyphTimeout = 30 * time.Second

func (opt *Options) withDefaults() Options {
	var res Options
	if opt != nil {
		res = *opt
	}
	if res.Tracer == nil {
		res.Tracer = &trace.Potrace{}
	}
	if res.Workers <= 0 {
		res.Workers = runtime.GOMAXPROCS(0)
	}
	if res.GlyphTimeout <= 0 {
		res.GlyphTimeout = defaultGlyphTimeout
	}
	if res.Logger == nil {
		res.Logger = slog.New(nopHandler{})
	}
	return res
}

// Result is the outcome of a successful synthesis request.
type Result struct {
	Font      []byte // the TrueType font file
	MediaType string
	Glyphs    []rune // the characters in the font, in increasing order

	// Diagnostics lists the items which were dropped.
	Diagnostics []Diagnostic
}

// glyphResult is written by exactly one worker.
type glyphResult struct {
	rec  *fontdoc.GlyphRecord
	diag *Diagnostic
}

// Build processes the items of one request and assembles a font.
//
// Items are validated first.  If several items have the same character,
// the last one is used and the others are reported as duplicates.
// Failed items are listed in the diagnostics of the result.  If the request
// fails as a whole, the returned error is an [*Error].
func Build(ctx context.Context, items []Item, opt *Options) (res *Result, err error) {
	o := opt.withDefaults()
	log := o.Logger

	if o.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.RequestTimeout)
		defer cancel()
	}

	if len(items) == 0 {
		return nil, &Error{Reason: ReasonNoInput}
	}
	log.Info("synthesis started", "items", len(items))

	samples, indices, diags := selectSamples(items)
	if len(samples) == 0 {
		return nil, &Error{
			Reason:      ReasonNoGlyphs,
			Err:         fontdoc.ErrNoGlyphs,
			Diagnostics: warnAll(log, diags),
		}
	}

	dir, err := scratch.New(o.ScratchRoot, "handfont")
	if err != nil {
		return nil, &Error{Reason: ReasonResource, Err: err, Diagnostics: warnAll(log, diags)}
	}
	defer func() {
		closeErr := dir.Close()
		if closeErr == nil {
			return
		}
		log.Warn("cannot remove scratch directory", "path", dir.Path, "error", closeErr)
		if err == nil {
			res = nil
			err = &Error{Reason: ReasonResource, Err: closeErr, Diagnostics: diags}
		}
	}()

	results := make([]glyphResult, len(samples))
	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i, s := range samples {
		g.Go(func() error {
			results[i] = processSample(ctx, &o, dir, indices[i], s)
			return nil
		})
	}
	_ = g.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, &Error{Reason: ReasonCanceled, Err: ctxErr, Diagnostics: warnAll(log, diags)}
	}

	doc := fontdoc.New(o.Font)
	for i, r := range results {
		if r.diag != nil {
			diags = append(diags, *r.diag)
			continue
		}
		if err := doc.Add(r.rec); err != nil {
			diags = append(diags, Diagnostic{
				Index:   indices[i],
				Label:   samples[i].Label,
				Problem: ProblemUnmappable,
				Err:     err,
			})
		}
	}
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return a.Index - b.Index
	})
	diags = warnAll(log, diags)

	data, err := doc.Bytes()
	if errors.Is(err, fontdoc.ErrNoGlyphs) {
		return nil, &Error{Reason: ReasonNoGlyphs, Err: err, Diagnostics: diags}
	} else if err != nil {
		return nil, &Error{Reason: ReasonAssembly, Err: err, Diagnostics: diags}
	}

	log.Info("synthesis finished",
		"glyphs", doc.Len(),
		"dropped", len(diags),
		"bytes", len(data))
	return &Result{
		Font:        data,
		MediaType:   fontdoc.MediaType,
		Glyphs:      doc.Runes(),
		Diagnostics: diags,
	}, nil
}

// selectSamples validates the items and removes duplicates.
// The returned samples keep the order of the request; indices gives the
// position of each sample in the request.
func selectSamples(items []Item) ([]*Sample, []int, []Diagnostic) {
	var diags []Diagnostic
	valid := make([]*Sample, len(items))
	last := make(map[rune]int)
	for i, item := range items {
		s, err := NewSample(item.Label, item.Data)
		if err != nil {
			diags = append(diags, Diagnostic{
				Index:   i,
				Label:   item.Label,
				Problem: ProblemInvalidLabel,
				Err:     err,
			})
			continue
		}
		if j, seen := last[s.Rune]; seen {
			diags = append(diags, Diagnostic{
				Index:   j,
				Label:   valid[j].Label,
				Problem: ProblemDuplicate,
				Err:     fmt.Errorf("replaced by item %d", i),
			})
			valid[j] = nil
		}
		last[s.Rune] = i
		valid[i] = s
	}

	var samples []*Sample
	var indices []int
	for i, s := range valid {
		if s != nil {
			samples = append(samples, s)
			indices = append(indices, i)
		}
	}
	return samples, indices, diags
}

// processSample converts one sample into a glyph record.
func processSample(ctx context.Context, o *Options, dir *scratch.Dir, index int, s *Sample) glyphResult {
	log := o.Logger.With("label", s.Label)
	fail := func(p Problem, err error) glyphResult {
		return glyphResult{diag: &Diagnostic{
			Index:   index,
			Label:   s.Label,
			Problem: p,
			Err:     err,
		}}
	}

	bm, err := binarize.Bytes(s.Data)
	if err != nil {
		return fail(ProblemUnreadable, err)
	}

	glyphDir, err := dir.Sub(fmt.Sprintf("u%04x", s.Rune))
	if err != nil {
		return fail(ProblemTracer, err)
	}

	start := time.Now()
	glyphCtx, cancel := context.WithTimeout(ctx, o.GlyphTimeout)
	defer cancel()
	raw, err := o.Tracer.Trace(glyphCtx, glyphDir, bm)
	if err == nil && glyphCtx.Err() != nil {
		err = glyphCtx.Err()
	}
	if err != nil {
		tErr := &trace.TracingError{Label: s.Label, Err: err}
		if tErr.Timeout() {
			return fail(ProblemTimeout, tErr)
		}
		return fail(ProblemTracer, tErr)
	}
	if raw.IsEmpty() {
		return fail(ProblemEmpty, nil)
	}

	scaled, m := normalize.Glyph(raw, s.Rune)
	log.Debug("glyph traced",
		"class", normalize.ClassOf(s.Rune),
		"segments", raw.NumSegments(),
		"scale", m.Scale,
		"shift", m.ShiftY,
		"advance", m.Advance,
		"duration", time.Since(start))
	return glyphResult{rec: &fontdoc.GlyphRecord{
		Rune:    s.Rune,
		Outline: scaled,
		Advance: m.Advance,
	}}
}

func warnAll(log *slog.Logger, diags []Diagnostic) []Diagnostic {
	for _, d := range diags {
		log.Warn("item dropped",
			"index", d.Index,
			"label", d.Label,
			"problem", d.Problem.String(),
			"error", d.Err)
	}
	return diags
}
