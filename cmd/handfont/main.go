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

// Command handfont turns handwriting samples into a TrueType font.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"seehuhn.de/go/handfont/internal/buildinfo"
	"seehuhn.de/go/handfont/internal/profile"
)

var (
	verbose     = flag.Bool("v", false, "log progress and debug messages")
	showVersion = flag.Bool("version", false, "print the version and exit")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile  = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "handfont - turn handwriting samples into a TrueType font\n")
		fmt.Fprintf(out, "%s\n\n", buildinfo.Short("handfont"))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  handfont [options] segment [-o dir] <page image>\n")
		fmt.Fprintf(out, "  handfont [options] build [-o font.ttf] <sample>...\n")
		fmt.Fprintf(out, "  handfont [options] inspect <font.ttf>\n\n")
		fmt.Fprintf(out, "Commands:\n")
		fmt.Fprintf(out, "  segment   split a scanned page into one image per character\n")
		fmt.Fprintf(out, "  build     trace sample images and write a font; the label of a\n")
		fmt.Fprintf(out, "            sample is its file name without extension\n")
		fmt.Fprintf(out, "  inspect   list the characters of a font\n\n")
		fmt.Fprintf(out, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(out, "\nUse \"handfont <command> -h\" for the options of a command.\n")
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  handfont segment -o chars page.png\n")
		fmt.Fprintf(out, "  handfont -v build -family \"My Hand\" -o myhand.ttf samples/\n")
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(buildinfo.Short("handfont"))
		return
	}
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "handfont:", err)
		os.Exit(1)
	}
}

func run(cmd string, args []string) (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := stop(); err == nil {
			err = stopErr
		}
	}()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(os.Stderr, level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	switch cmd {
	case "segment":
		return runSegment(os.Stdout, args)
	case "build":
		return runBuild(ctx, logger, args)
	case "inspect":
		return runInspect(os.Stdout, args)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}
