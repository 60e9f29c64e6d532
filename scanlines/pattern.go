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

package scanlines

// Size of a pattern. Width is the width of the tile and Height is the number
// of rows that make up one scan line. Each pattern has Repeats variations of
// the tile stacked vertically, so the texel table has Height * Repeats rows.
type Size struct {
	Width   int
	Height  int
	Repeats int
}

// Rows returns the number of rows in the texel table.
func (s Size) Rows() int {
	return s.Height * s.Repeats
}

var sizes = [NumMasks]Size{
	Standard:  {Width: 1, Height: 2, Repeats: 1},
	Thin:      {Width: 1, Height: 3, Repeats: 1},
	Pixelated: {Width: 3, Height: 3, Repeats: 2},
	MAME:      {Width: 3, Height: 4, Repeats: 3},
}

// texel tables. the RGB component of every texel is black and the alpha
// channel gives the amount of darkening
var (
	standardPattern = [][]uint32{
		{0x00000000},
		{0xff000000},
	}

	thinPattern = [][]uint32{
		{0x00000000},
		{0x00000000},
		{0xff000000},
	}

	// original tile data from the arcadeotaku forum with the RGB values
	// replaced by black
	pixelatedPattern = [][]uint32{
		{0x08000000, 0x02000000, 0x80000000},
		{0x08000000, 0x80000000, 0x40000000},
		{0xff000000, 0xff000000, 0xff000000},
		{0x80000000, 0x04000000, 0x04000000},
		{0x04000000, 0x80000000, 0x20000000},
		{0xff000000, 0xff000000, 0xff000000},
	}

	// MAME CRT simulation tile with the RGB values inverted into the alpha
	// channel
	mamePattern = [][]uint32{
		{0x4b000000, 0x5a000000, 0x3c000000},
		{0x00000000, 0x0f000000, 0x0f000000},
		{0x0f000000, 0x00000000, 0x1e000000},
		{0xff000000, 0xff000000, 0xff000000},
		{0x5a000000, 0x3c000000, 0x4b000000},
		{0x0f000000, 0x0f000000, 0x00000000},
		{0x00000000, 0x1e000000, 0x0f000000},
		{0xff000000, 0xff000000, 0xff000000},
		{0x3c000000, 0x4b000000, 0x5a000000},
		{0x0f000000, 0x00000000, 0x0f000000},
		{0x1e000000, 0x0f000000, 0x00000000},
		{0xff000000, 0xff000000, 0xff000000},
	}
)

var patterns = [NumMasks][][]uint32{
	Standard:  standardPattern,
	Thin:      thinPattern,
	Pixelated: pixelatedPattern,
	MAME:      mamePattern,
}

// Pattern returns the size and texel table for the mask. An invalid mask
// returns the pattern for DefaultMask. The returned table must not be
// modified.
func Pattern(m Mask) (Size, [][]uint32) {
	if m < 0 || m >= NumMasks {
		m = DefaultMask
	}
	return sizes[m], patterns[m]
}

// Build the pixel data for the mask tiled to cover the target width and
// height. The texel at (x, y) is the texel in the table at row y modulo the
// number of rows and column x modulo the tile width.
func Build(m Mask, targetWidth int, targetHeight int) []uint32 {
	sz, tbl := Pattern(m)

	if targetWidth <= 0 || targetHeight <= 0 {
		return []uint32{}
	}

	data := make([]uint32, targetWidth*targetHeight)
	for y := range targetHeight {
		row := tbl[y%sz.Rows()]
		line := data[y*targetWidth : (y+1)*targetWidth]
		for x := range line {
			line[x] = row[x%sz.Width]
		}
	}

	return data
}

// SurfaceSize returns the dimensions of the surface required for the mask,
// for a frame of the specified size. Patterns with a tile width of one need
// only be one pixel wide because the surface is stretched horizontally.
func SurfaceSize(m Mask, frameWidth int, frameHeight int) (int, int) {
	sz, _ := Pattern(m)

	width := 1
	if sz.Width > 1 {
		width = frameWidth * sz.Width
	}

	return width, frameHeight * sz.Height
}
