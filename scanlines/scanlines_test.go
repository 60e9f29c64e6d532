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

package scanlines_test

import (
	"testing"

	"github.com/jetsetilly/tvsurface/scanlines"
	"github.com/jetsetilly/tvsurface/test"
)

func TestNames(t *testing.T) {
	test.ExpectEquality(t, scanlines.Standard.String(), "standard")
	test.ExpectEquality(t, scanlines.Pixelated.String(), "pixels")
	test.ExpectEquality(t, scanlines.MAME.Label(), "'MAME'")
	test.ExpectEquality(t, scanlines.Thin.Label(), "'Thin lines'")

	for _, s := range scanlines.Settings() {
		test.ExpectEquality(t, scanlines.FromSetting(s).String(), s)
	}

	// unrecognised settings fall back to the default
	test.ExpectEquality(t, scanlines.FromSetting("dots"), scanlines.Standard)
	test.ExpectEquality(t, scanlines.FromSetting(" MAME "), scanlines.MAME)
}

func TestCycle(t *testing.T) {
	test.ExpectEquality(t, scanlines.Cycle(scanlines.Standard, 1), scanlines.Thin)
	test.ExpectEquality(t, scanlines.Cycle(scanlines.MAME, 1), scanlines.Standard)
	test.ExpectEquality(t, scanlines.Cycle(scanlines.Standard, -1), scanlines.MAME)
	test.ExpectEquality(t, scanlines.Cycle(scanlines.Pixelated, 0), scanlines.Pixelated)
	test.ExpectEquality(t, scanlines.Cycle(scanlines.Thin, 9), scanlines.Pixelated)
	test.ExpectEquality(t, scanlines.Cycle(scanlines.Thin, -9), scanlines.Standard)
	test.ExpectEquality(t, scanlines.Cycle(scanlines.Mask(99), 0), scanlines.Standard)
}

func TestPatternTables(t *testing.T) {
	for m := range scanlines.NumMasks {
		sz, tbl := scanlines.Pattern(m)
		test.DemandEquality(t, len(tbl), sz.Rows(), m)
		for _, row := range tbl {
			test.ExpectEquality(t, len(row), sz.Width, m)
			for _, texel := range row {
				// texels are always black
				test.ExpectEquality(t, texel&0x00ffffff, uint32(0), m)
			}
		}
	}

	_, tbl := scanlines.Pattern(scanlines.MAME)
	test.ExpectEquality(t, tbl[0][1], uint32(0x5a000000))
	_, tbl = scanlines.Pattern(scanlines.Pixelated)
	test.ExpectEquality(t, tbl[4][2], uint32(0x20000000))
}

func TestBuild(t *testing.T) {
	for m := range scanlines.NumMasks {
		sz, tbl := scanlines.Pattern(m)
		for _, dim := range [][2]int{{1, 1}, {7, 5}, {160, 228}, {480, 912}} {
			w, h := dim[0], dim[1]
			data := scanlines.Build(m, w, h)
			test.DemandEquality(t, len(data), w*h, m)

			for y := range h {
				for x := range w {
					// horizontal tiling
					test.DemandEquality(t, data[y*w+x], data[y*w+x%sz.Width], m, x, y)

					// matches the table
					test.DemandEquality(t, data[y*w+x], tbl[y%sz.Rows()][x%sz.Width], m, x, y)
				}
			}
		}
	}

	test.ExpectEquality(t, len(scanlines.Build(scanlines.MAME, 0, 10)), 0)
}

func TestSurfaceSize(t *testing.T) {
	w, h := scanlines.SurfaceSize(scanlines.Standard, 160, 228)
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 456)

	w, h = scanlines.SurfaceSize(scanlines.Thin, 160, 228)
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 684)

	w, h = scanlines.SurfaceSize(scanlines.Pixelated, 160, 228)
	test.ExpectEquality(t, w, 480)
	test.ExpectEquality(t, h, 684)

	w, h = scanlines.SurfaceSize(scanlines.MAME, 160, 228)
	test.ExpectEquality(t, w, 480)
	test.ExpectEquality(t, h, 912)

	// width of the surface is a whole number of tiles
	for m := range scanlines.NumMasks {
		sz, _ := scanlines.Pattern(m)
		w, _ := scanlines.SurfaceSize(m, 160, 228)
		test.ExpectEquality(t, w%sz.Width, 0, m)
	}
}
