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

// Package buildinfo reports the version of the running binary.
package buildinfo

import (
	"runtime/debug"
)

// Info describes the module the binary was built from.
type Info struct {
	Path     string // module path
	Version  string // module version, or "" for development builds
	Revision string // abbreviated VCS revision, if known
	Dirty    bool   // the working tree had local modifications
}

// Read returns the build information of the running binary.
// The second return value is false if no information is available.
func Read() (Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}
	return fromBuildInfo(bi), true
}

func fromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{Path: bi.Main.Path}
	if v := bi.Main.Version; v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
			if len(info.Revision) > 8 {
				info.Revision = info.Revision[:8]
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String returns the version, falling back to the VCS revision.
// The result is empty if neither is known.
func (info Info) String() string {
	switch {
	case info.Version != "":
		return info.Version
	case info.Revision == "":
		return ""
	case info.Dirty:
		return info.Revision + "+dirty"
	default:
		return info.Revision
	}
}

// Short returns a one line description of a tool, for example
// "handfont (seehuhn.de/go/handfont v0.1.0)".
func Short(toolName string) string {
	info, ok := Read()
	if !ok {
		return toolName
	}
	return info.short(toolName)
}

func (info Info) short(toolName string) string {
	v := info.String()
	if v == "" {
		return toolName
	}
	return toolName + " (" + info.Path + " " + v + ")"
}
