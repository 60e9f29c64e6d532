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

// Package source contains implementations of signal.Source that are useful
// for testing and demonstrating the TV surface.
package source

import (
	"github.com/jetsetilly/tvsurface/curated"
	"github.com/jetsetilly/tvsurface/signal"
)

// Sentinal error patterns.
const (
	BadDimensions = "source: bad dimensions (%dx%d)"
)

// colours for the bars. the top two thirds of the frame is seven vertical
// bars, like the SMPTE pattern
var barColours = [...]signal.ColorSignal{
	0x0c, // grey
	0x1c, // yellow
	0xac, // cyan
	0xcc, // green
	0x5c, // magenta
	0x4c, // red
	0x8c, // blue
}

// the size of the moving block
const (
	blockWidth  = 8
	blockHeight = 16
)

// Bars is a colour bar test pattern. The bottom third of the frame is a
// luminance ramp. A white block moves across the frame with each call to
// Step() so that the effect of the phosphor blender can be seen.
type Bars struct {
	width  int
	height int

	frame signal.IndexedFrame

	// the pattern without the block
	pattern signal.IndexedFrame

	blockX int
	blockY int
	frames int
}

// NewBars is the preferred method of initialisation for the Bars type.
func NewBars(width int, height int) (*Bars, error) {
	if width <= 0 || height <= 0 || width > signal.FrameBufferWidth || height > signal.FrameBufferHeight {
		return nil, curated.Errorf(BadDimensions, width, height)
	}

	b := &Bars{
		width:   width,
		height:  height,
		frame:   signal.NewIndexedFrame(width, height),
		pattern: signal.NewIndexedFrame(width, height),
		blockY:  height / 3,
	}

	barWidth := max(1, width/len(barColours))
	split := height * 2 / 3

	for y := range height {
		row := b.pattern.Row(width, y)
		for x := range row {
			if y < split {
				row[x] = barColours[min(x/barWidth, len(barColours)-1)]
				continue
			}

			// eight steps of luminance
			lum := signal.ColorSignal(x * 8 / width)
			row[x] = lum << 1
		}
	}

	b.draw()

	return b, nil
}

func (b *Bars) draw() {
	copy(b.frame, b.pattern)
	for y := b.blockY; y < min(b.blockY+blockHeight, b.height); y++ {
		row := b.frame.Row(b.width, y)
		for x := b.blockX; x < min(b.blockX+blockWidth, b.width); x++ {
			row[x] = 0x0e
		}
	}
}

// Step moves to the next frame.
func (b *Bars) Step() {
	b.frames++
	b.blockX += 2
	if b.blockX >= b.width {
		b.blockX = 0
	}
	b.draw()
}

// Frames returns the number of calls to Step().
func (b *Bars) Frames() int {
	return b.frames
}

// FrameBuffer implements the signal.Source interface.
func (b *Bars) FrameBuffer() signal.IndexedFrame {
	return b.frame
}

// Width implements the signal.Source interface.
func (b *Bars) Width() int {
	return b.width
}

// Height implements the signal.Source interface.
func (b *Bars) Height() int {
	return b.height
}

// Static is a source that always returns the same frame.
type Static struct {
	width  int
	height int
	frame  signal.IndexedFrame
}

// NewStatic is the preferred method of initialisation for the Static type.
// The frame is not copied.
func NewStatic(width int, height int, frame signal.IndexedFrame) (*Static, error) {
	if width <= 0 || height <= 0 || len(frame) != width*height {
		return nil, curated.Errorf(BadDimensions, width, height)
	}
	return &Static{
		width:  width,
		height: height,
		frame:  frame,
	}, nil
}

// FrameBuffer implements the signal.Source interface.
func (s *Static) FrameBuffer() signal.IndexedFrame {
	return s.frame
}

// Width implements the signal.Source interface.
func (s *Static) Width() int {
	return s.width
}

// Height implements the signal.Source interface.
func (s *Static) Height() int {
	return s.height
}
