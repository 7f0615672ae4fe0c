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

package segment

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// FileName returns the name under which WriteCrops stores c.
func (c *Crop) FileName() string {
	return fmt.Sprintf("character_%d.png", c.Index)
}

// WriteCrops stores every crop as a PNG file in dir and returns the
// file names written, in the order of crops.
func WriteCrops(dir string, crops []Crop) ([]string, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}
	res := make([]string, 0, len(crops))
	for i := range crops {
		fname := filepath.Join(dir, crops[i].FileName())
		err := writePNG(fname, &crops[i])
		if err != nil {
			return res, err
		}
		res = append(res, fname)
	}
	return res, nil
}

func writePNG(fname string, c *Crop) error {
	out, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("segment: %w", err)
	}
	err = png.Encode(out, c.Image)
	if err != nil {
		out.Close()
		return fmt.Errorf("segment: %s: %w", fname, err)
	}
	return out.Close()
}
