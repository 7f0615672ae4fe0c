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

// Package scratch manages temporary directories for single requests.
package scratch

import (
	"fmt"
	"os"
	"sync"
)

// Dir is a freshly created, uniquely named directory.
// The directory and everything inside it is removed by Close.
type Dir struct {
	Path string

	once sync.Once
	err  error
}

// New creates a new scratch directory inside root.
// If root is empty, the default directory for temporary files is used.
func New(root, prefix string) (*Dir, error) {
	if root != "" {
		if err := os.MkdirAll(root, 0o700); err != nil {
			return nil, fmt.Errorf("scratch: %w", err)
		}
	}
	path, err := os.MkdirTemp(root, prefix+"-*")
	if err != nil {
		return nil, fmt.Errorf("scratch: %w", err)
	}
	return &Dir{Path: path}, nil
}

// Sub creates a new, uniquely named subdirectory.
func (d *Dir) Sub(prefix string) (string, error) {
	path, err := os.MkdirTemp(d.Path, prefix+"-*")
	if err != nil {
		return "", fmt.Errorf("scratch: %w", err)
	}
	return path, nil
}

// Close removes the directory.  It is safe to call Close more than once.
func (d *Dir) Close() error {
	d.once.Do(func() {
		err := os.RemoveAll(d.Path)
		if err != nil {
			d.err = fmt.Errorf("scratch: %w", err)
		}
	})
	return d.err
}
