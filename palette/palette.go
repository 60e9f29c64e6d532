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

package palette

import (
	"github.com/jetsetilly/tvsurface/signal"
)

// NumEntries is the number of entries in a palette Table.
const NumEntries = 256

// Table of RGB values. Each entry is of the form 0x00RRGGBB.
type Table [NumEntries]uint32

// Lookup returns the RGB value for the ColorSignal.
func (t *Table) Lookup(c signal.ColorSignal) uint32 {
	return t[c]
}

// MapIndexedPixel returns the RGB value for the index, after the shift value
// has been applied. The shift value should be zero or signal.ShiftBit.
func (t *Table) MapIndexedPixel(idx signal.ColorSignal, shift signal.ColorSignal) uint32 {
	return t[idx|shift]
}

// Custom creates a Table from a list of RGB values. The list is used in index
// order and any entries not specified are black. Values in the list must be of
// the form 0x00RRGGBB. Any alpha component is discarded.
func Custom(entries []uint32) Table {
	var t Table
	for i := 0; i < len(entries) && i < NumEntries; i++ {
		t[i] = entries[i] & 0x00ffffff
	}
	return t
}

// Palettes groups the TIA and RGB tables.
type Palettes struct {
	// adjusted for brightness, contrast, saturation, hue and gamma
	TIA Table

	// unadjusted values. used as the reference for the composite decoder
	RGB Table
}

// Pack the red, green and blue components into a single value of the form
// 0x00RRGGBB.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack a value of the form 0x00RRGGBB into its components.
func Unpack(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func clamp(v float64) float64 {
	return max(0.0, min(v, 1.0))
}

// RGBToYIQ converts an RGB value of the form 0x00RRGGBB to YIQ components.
// The Y component is in the range 0.0 to 1.0.
func RGBToYIQ(c uint32) (Y, I, Q float64) {
	r, g, b := Unpack(c)
	R := float64(r) / 255
	G := float64(g) / 255
	B := float64(b) / 255

	Y = 0.299*R + 0.587*G + 0.114*B
	I = 0.5959*R - 0.2746*G - 0.3213*B
	Q = 0.2115*R - 0.5227*G + 0.31122*B

	return Y, I, Q
}

// YIQToRGB converts YIQ components to an RGB value of the form 0x00RRGGBB.
// Results are clamped.
//
// Conversion values taken from the "NTSC 1953 colorimetry" section of:
// https://en.wikipedia.org/w/index.php?title=YIQ&oldid=1220238306
func YIQToRGB(Y, I, Q float64) uint32 {
	R := clamp(Y + (0.956 * I) + (0.619 * Q))
	G := clamp(Y - (0.272 * I) - (0.647 * Q))
	B := clamp(Y - (1.106 * I) + (1.703 * Q))
	return Pack(uint8(R*255+0.5), uint8(G*255+0.5), uint8(B*255+0.5))
}

// greyscale returns the luma-only version of an RGB value.
func greyscale(c uint32) uint32 {
	Y, _, _ := RGBToYIQ(c)
	y := uint8(clamp(Y)*255 + 0.5)
	return Pack(y, y, y)
}
