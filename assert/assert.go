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

// Package assert contains checks for conditions that can only be false as a
// result of a programming error. A failed assertion panics.
package assert

import "github.com/jetsetilly/tvsurface/curated"

// Sentinal error pattern used in the panic value.
const DimensionMismatch = "assert: %s: dimensions %dx%d do not match %dx%d"

// Dimensions panics if the width and height of one thing do not match the
// width and height of another. The what argument names the thing being
// checked.
func Dimensions(what string, gotWidth, gotHeight int, wantWidth, wantHeight int) {
	if gotWidth != wantWidth || gotHeight != wantHeight {
		panic(curated.Errorf(DimensionMismatch, what, gotWidth, gotHeight, wantWidth, wantHeight))
	}
}

// Length panics if a buffer is not the expected length.
func Length(what string, got int, want int) {
	if got != want {
		panic(curated.Errorf("assert: %s: length %d does not match %d", what, got, want))
	}
}

// AtLeast panics if a buffer is smaller than the required length.
func AtLeast(what string, got int, want int) {
	if got < want {
		panic(curated.Errorf("assert: %s: length %d is less than %d", what, got, want))
	}
}
