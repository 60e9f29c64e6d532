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

// Package phosphor simulates the persistence of the phosphor on a CRT screen.
//
// The Blender combines each new pixel with the pixel that was previously
// shown in the same position. The previous pixel decays according to the
// blend level and the brighter of the new and decayed pixel is shown. The
// buffer of previous pixels is owned by the caller.
//
// Average() is a separate, softer policy used when producing still images.
package phosphor

import (
	"github.com/jetsetilly/tvsurface/logger"
)

// DefaultLevel is the blend level used when no valid level is available.
const DefaultLevel = 50

// Blender blends new pixels with the decayed pixels of the previous frame.
// The zero value is a disabled Blender with a blend level of zero.
type Blender struct {
	enabled bool
	level   int

	// lut[new][prev] for a single colour channel
	lut *[256][256]uint8
}

// Initialize the Blender. The level is clamped to the range 0 to 100. Returns
// true if either the enable flag or the level has changed, in which case the
// caller should clear the buffer of previous pixels.
func (b *Blender) Initialize(enable bool, level int) bool {
	level = max(0, min(level, 100))

	if b.lut != nil && enable == b.enabled && level == b.level {
		return false
	}

	b.enabled = enable
	b.level = level
	b.lut = buildLUT(level)

	logger.Logf(logger.Allow, "phosphor", "enabled=%v level=%d", enable, level)

	return true
}

// Enabled returns true if phosphor blending is enabled.
func (b *Blender) Enabled() bool {
	return b.enabled
}

// Level returns the blend level.
func (b *Blender) Level() int {
	return b.level
}

// buildLUT creates the lookup table for a single colour channel. the previous
// value is scaled by the blend level and the brighter of the new value and
// the scaled value is used
func buildLUT(level int) *[256][256]uint8 {
	var lut [256][256]uint8
	for c := range 256 {
		for p := range 256 {
			d := uint8((p * level) / 100)
			lut[c][p] = max(uint8(c), d)
		}
	}
	return &lut
}

// GetPixel returns the blend of the new pixel c with the previous pixel p.
// Both values are of the form 0x00RRGGBB.
//
// If Initialize() has never been called the new pixel is returned unchanged.
func (b *Blender) GetPixel(c uint32, p uint32) uint32 {
	if b.lut == nil {
		return c & 0x00ffffff
	}

	rc, gc, bc := uint8(c>>16), uint8(c>>8), uint8(c)
	rp, gp, bp := uint8(p>>16), uint8(p>>8), uint8(p)

	return uint32(b.lut[rc][rp])<<16 | uint32(b.lut[gc][gp])<<8 | uint32(b.lut[bc][bp])
}

// Average returns the 50:50 mean of each colour channel of c and p. It is
// used to create a still image from two consecutive frames and is distinct
// from the live blending of GetPixel().
func Average(c uint32, p uint32) uint32 {
	rc, gc, bc := c>>16&0xff, c>>8&0xff, c&0xff
	rp, gp, bp := p>>16&0xff, p>>8&0xff, p&0xff
	return (rc+rp)/2<<16 | (gc+gp)/2<<8 | (bc+bp)/2
}

// AverageBuffers averages two buffers into dest using Average(). All buffers
// must be of the same length.
func AverageBuffers(dest []uint32, c []uint32, p []uint32) {
	for i := range dest {
		dest[i] = Average(c[i], p[i])
	}
}
