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

// Package signal exposes the interface between the video source and the TV
// surface.
//
// The video source produces an IndexedFrame once per video frame. Each pixel
// in the frame is a ColorSignal, the value that was written to one of the
// colour registers of the video chip. The TV surface never writes to the
// frame.
package signal

import "fmt"

// ColorSignal is the value of a 2600 colour register. The upper nibble is the
// hue and bits 3 to 1 are the luminance. The least-significant bit is not used
// by the video chip and is used here to select the alternate (colour loss)
// entry in the palette.
type ColorSignal uint8

// ShiftBit selects the alternate palette entry for a ColorSignal.
const ShiftBit ColorSignal = 0x01

// VideoBlack is the ColorSignal for black with no shift.
const VideoBlack ColorSignal = 0x00

// Hue returns the hue nibble of the signal.
func (c ColorSignal) Hue() uint8 {
	return uint8(c&0xf0) >> 4
}

// Luminance returns the three luminance bits of the signal.
func (c ColorSignal) Luminance() uint8 {
	return uint8(c&0x0e) >> 1
}

// Shifted returns true if the shift bit is set.
func (c ColorSignal) Shifted() bool {
	return c&ShiftBit == ShiftBit
}

func (c ColorSignal) String() string {
	return fmt.Sprintf("%02x", uint8(c))
}

// Maximum dimensions of a frame.
const (
	FrameBufferWidth  = 160
	FrameBufferHeight = 320
)

// IndexedFrame is a row major list of ColorSignals for a single video frame.
type IndexedFrame []ColorSignal

// NewIndexedFrame allocates an IndexedFrame for the specified dimensions.
// Dimensions are capped to FrameBufferWidth and FrameBufferHeight.
func NewIndexedFrame(width, height int) IndexedFrame {
	width = max(0, min(width, FrameBufferWidth))
	height = max(0, min(height, FrameBufferHeight))
	return make(IndexedFrame, width*height)
}

// Row returns the pixels for the numbered row of a frame of the given width.
func (f IndexedFrame) Row(width int, y int) []ColorSignal {
	return f[y*width : (y+1)*width]
}

// Source is implemented by anything that produces frames for the TV surface.
// The frame returned by FrameBuffer() is only valid until the next frame is
// produced and must have length Width() * Height().
type Source interface {
	FrameBuffer() IndexedFrame
	Width() int
	Height() int
}
