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
	"flag"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/handfont/segment"
)

func runSegment(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("segment", flag.ExitOnError)
	outDir := fs.String("o", "characters", "write the character images to `dir`")
	threshold := fs.Uint("threshold", 127, "largest grey value counted as ink")
	merge := fs.Int("merge", 20, "merge regions closer than `n` pixels")
	minSize := fs.Int("min", 10, "drop regions not larger than `n` pixels")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: handfont segment [options] <page image>\n\n")
		fmt.Fprintf(fs.Output(), "For every character, one line \"index x y width height\" is printed.\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("segment: need exactly one page image")
	}
	opt, err := segmentOptions(*threshold, *merge, *minSize)
	if err != nil {
		return err
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	crops, err := segment.Decode(f, opt)
	if err != nil {
		return err
	}
	if _, err := segment.WriteCrops(*outDir, crops); err != nil {
		return err
	}
	return printCrops(out, crops)
}

// segmentOptions converts the command line flags to segmentation options.
// In segment.Options a zero value selects the default, so an explicit 0
// for -merge or -min is passed on as a negative value.
func segmentOptions(threshold uint, merge, minSize int) (*segment.Options, error) {
	if threshold < 1 || threshold > 255 {
		return nil, fmt.Errorf("segment: threshold %d not in range 1-255", threshold)
	}
	if merge < 0 {
		return nil, fmt.Errorf("segment: invalid merge distance %d", merge)
	}
	if minSize < 0 {
		return nil, fmt.Errorf("segment: invalid minimum size %d", minSize)
	}

	opt := &segment.Options{
		Threshold:     uint8(threshold),
		MergeDistance: merge,
		MinSize:       minSize,
	}
	if merge == 0 {
		opt.MergeDistance = -1
	}
	if minSize == 0 {
		opt.MinSize = -1
	}
	return opt, nil
}

func printCrops(out io.Writer, crops []segment.Crop) error {
	for _, c := range crops {
		_, err := fmt.Fprintf(out, "%d %d %d %d %d\n", c.Index, c.Box.X, c.Box.Y, c.Box.W, c.Box.H)
		if err != nil {
			return err
		}
	}
	return nil
}
