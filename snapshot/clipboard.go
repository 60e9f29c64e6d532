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
	"bytes"
	"image/png"
	"sync"

	"golang.design/x/clipboard"

	"github.com/jetsetilly/tvsurface/curated"
	"github.com/jetsetilly/tvsurface/logger"
)

// Clipboard copies stills to the system clipboard.
type Clipboard struct {
	once sync.Once
	err  error
}

// Save implements the Snapshotter interface.
func (c *Clipboard) Save(still Still) error {
	if still.Empty() {
		return curated.Errorf(NoSnapshot, "clipboard")
	}

	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return curated.Errorf(ClipboardFailure, c.err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, still.Image()); err != nil {
		return curated.Errorf("snapshot: %v", err)
	}

	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	logger.Logf(logger.Allow, "snapshot", "copied %dx%d image to clipboard", still.Width, still.Height)

	return nil
}

// Multi saves a still with every Snapshotter in the list. The first error
// stops the process.
type Multi []Snapshotter

// Save implements the Snapshotter interface.
func (m Multi) Save(still Still) error {
	for _, s := range m {
		if err := s.Save(still); err != nil {
			return err
		}
	}
	return nil
}
