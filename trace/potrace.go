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
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/handfont/outline"
)

// Potrace runs the potrace program to trace bitmaps.
// The zero value runs "potrace" from $PATH.
type Potrace struct {
	// Path is the location of the potrace binary.
	Path string

	// Args are additional command line arguments, for example
	// "--turdsize=4".
	Args []string
}

// Trace implements the [Tracer] interface.
//
// The bitmap is written as a BMP file into dir, potrace is asked to write
// an SVG file next to it, and the SVG paths are parsed.  If ctx expires,
// the potrace process is killed.
func (p *Potrace) Trace(ctx context.Context, dir string, bm *image.Gray) (*outline.Outline, error) {
	in, err := os.CreateTemp(dir, "glyph-*.bmp")
	if err != nil {
		return nil, err
	}
	inName := in.Name()
	defer os.Remove(inName)
	err = bmp.Encode(in, bm)
	if err1 := in.Close(); err == nil {
		err = err1
	}
	if err != nil {
		return nil, fmt.Errorf("potrace: writing bitmap: %w", err)
	}

	outName := strings.TrimSuffix(inName, filepath.Ext(inName)) + ".svg"
	defer os.Remove(outName)

	path := p.Path
	if path == "" {
		path = "potrace"
	}
	args := append(append([]string{}, p.Args...), "-s", "-o", outName, inName)
	cmd := exec.CommandContext(ctx, path, args...)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	err = cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("potrace: %w", ctxErr)
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return nil, fmt.Errorf("potrace: %w", err)
	}

	svg, err := os.Open(outName)
	if err != nil {
		return nil, fmt.Errorf("potrace: %w", err)
	}
	defer svg.Close()
	o, err := outline.ReadSVG(svg)
	if err != nil {
		return nil, fmt.Errorf("potrace: %w", err)
	}
	return o, nil
}

// Available reports whether the potrace binary can be found.
func (p *Potrace) Available() bool {
	path := p.Path
	if path == "" {
		path = "potrace"
	}
	_, err := exec.LookPath(path)
	return err == nil
}
