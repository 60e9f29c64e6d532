// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package snapshot

import (
	"image/png"
	"os"
	"path/filepath"

	"github.com/jetsetilly/tvsurface/curated"
	"github.com/jetsetilly/tvsurface/logger"
	"github.com/jetsetilly/tvsurface/resources"
)

// PNG saves stills as PNG files. Filenames are created with
// resources.UniqueFilename().
type PNG struct {
	// the directory in which to save files. the working directory is used if
	// the Dir field is empty
	Dir string

	// the label used in the filename
	Label string

	// the filename of the most recent file saved
	last string
}

// Save implements the Snapshotter interface.
func (p *PNG) Save(still Still) error {
	if still.Empty() {
		return curated.Errorf(NoSnapshot, "png")
	}

	label := p.Label
	if label == "" {
		label = "tv"
	}

	fn := filepath.Join(p.Dir, resources.UniqueFilename("snapshot", label)+".png")

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}

	err = png.Encode(f, still.Image())
	if err != nil {
		f.Close()
		return curated.Errorf("snapshot: %v", err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}

	p.last = fn
	logger.Logf(logger.Allow, "snapshot", "saved to %s", fn)

	return nil
}

// Last returns the filename of the most recently saved file.
func (p *PNG) Last() string {
	return p.last
}
