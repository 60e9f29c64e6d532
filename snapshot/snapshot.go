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

// Package snapshot saves still images of the TV surface. A Still is produced
// by the TV surface when a snapshot has been requested and is passed to a
// Snapshotter.
//
// The PNG type saves each still to a uniquely named file. The Clipboard type
// copies the still to the system clipboard as a PNG image.
package snapshot

import (
	"image"
	"image/color"
)

// Sentinal error patterns.
const (
	NoSnapshot       = "snapshot: no image (%s)"
	ClipboardFailure = "snapshot: clipboard unavailable: %v"
)

// Still is a single image taken from the TV surface. Pixels are of the form
// 0x00RRGGBB.
type Still struct {
	Width  int
	Height int
	Pixels []uint32
}

// Empty returns true if the Still contains no pixels.
func (s Still) Empty() bool {
	return s.Width <= 0 || s.Height <= 0 || len(s.Pixels) < s.Width*s.Height
}

// Image converts the still to an image.RGBA.
func (s Still) Image() *image.RGBA {
	if s.Empty() {
		return image.NewRGBA(image.Rectangle{})
	}

	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := range s.Height {
		for x := range s.Width {
			p := s.Pixels[y*s.Width+x]
			img.SetRGBA(x, y, color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 255})
		}
	}

	return img
}

// Snapshotter is implemented by types that can save a Still.
type Snapshotter interface {
	Save(still Still) error
}
