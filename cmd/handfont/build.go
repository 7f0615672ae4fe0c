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
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/handfont/fontdoc"
	"seehuhn.de/go/handfont/synth"
	"seehuhn.de/go/handfont/trace"
)

var sampleExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

func runBuild(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	outFile := fs.String("o", "handwriting.ttf", "write the font to `file`")
	family := fs.String("family", "Handwriting", "font family `name`")
	style := fs.String("style", "Regular", "font style `name`")
	version := fs.Float64("font-version", 1, "font revision")
	potrace := fs.String("potrace", "potrace", "`path` of the potrace program")
	workers := fs.Int("j", 0, "number of samples traced in parallel (default GOMAXPROCS)")
	glyphTimeout := fs.Duration("timeout", 30*time.Second, "time limit for tracing one sample")
	requestTimeout := fs.Duration("deadline", 0, "time limit for the whole run (0 for none)")
	scratchRoot := fs.String("scratch", "", "create temporary files below `dir`")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: handfont build [options] <sample or directory>...\n\n")
		fmt.Fprintf(fs.Output(), "The character shown by a sample is given by its file name, e.g. \"a.png\".\n")
		fmt.Fprintf(fs.Output(), "Directories are searched for image files (not recursively).\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("build: no samples given")
	}

	items, err := collectItems(fs.Args())
	if err != nil {
		return err
	}

	opt := &synth.Options{
		Tracer:         &trace.Potrace{Path: *potrace},
		Workers:        *workers,
		GlyphTimeout:   *glyphTimeout,
		RequestTimeout: *requestTimeout,
		ScratchRoot:    *scratchRoot,
		Font: fontdoc.Names{
			Family:  *family,
			Style:   *style,
			Version: *version,
		},
		Logger: logger,
	}
	res, err := synth.Build(ctx, items, opt)
	var sErr *synth.Error
	if errors.As(err, &sErr) {
		printDiagnostics(sErr.Diagnostics)
	}
	if err != nil {
		return err
	}
	printDiagnostics(res.Diagnostics)

	err = os.WriteFile(*outFile, res.Font, 0o644)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d glyphs to %s\n", len(res.Glyphs), *outFile)
	return nil
}

// collectItems reads the sample files.  Directories are expanded to the
// image files they contain, in lexical order.
func collectItems(args []string) ([]synth.Item, error) {
	var files []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if e.Type().IsRegular() && slices.Contains(sampleExtensions, ext) {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}

	items := make([]synth.Item, 0, len(files))
	for _, fname := range files {
		data, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		items = append(items, synth.Item{
			Label: synth.LabelFromName(fname),
			Data:  data,
		})
	}
	return items, nil
}

func printDiagnostics(diags []synth.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, "skipped", d)
	}
}
