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

package signal_test

import (
	"testing"

	"github.com/jetsetilly/tvsurface/signal"
	"github.com/jetsetilly/tvsurface/test"
)

func TestColorSignal(t *testing.T) {
	c := signal.ColorSignal(0x4e)
	test.ExpectEquality(t, c.Hue(), uint8(0x04))
	test.ExpectEquality(t, c.Luminance(), uint8(0x07))
	test.ExpectFailure(t, c.Shifted())

	c |= signal.ShiftBit
	test.ExpectSuccess(t, c.Shifted())
	test.ExpectEquality(t, c.String(), "4f")
}

func TestIndexedFrame(t *testing.T) {
	f := signal.NewIndexedFrame(4, 2)
	test.DemandEquality(t, len(f), 8)

	f[5] = 0x1e
	test.ExpectEquality(t, len(f.Row(4, 1)), 4)
	test.ExpectEquality(t, f.Row(4, 1)[1], signal.ColorSignal(0x1e))

	// dimensions are capped
	f = signal.NewIndexedFrame(1000, 1000)
	test.ExpectEquality(t, len(f), signal.FrameBufferWidth*signal.FrameBufferHeight)
}
