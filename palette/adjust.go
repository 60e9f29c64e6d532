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
	"math"
)

// AdjustYIQ applies contrast, brightness, saturation and hue settings to YIQ
// values. hue is in degrees. a brightness and contrast value of 1.0 leaves the
// luminance unchanged.
func AdjustYIQ(Y, I, Q float64, brightness, contrast, saturation, hue float64) (float64, float64, float64) {
	// C = contrast
	// YIQ * |  C   0   0  |
	//       |  0   1   0  |
	//       |  0   0   1  |
	Y *= contrast

	// B = brightness
	// YIQ + |  B   0   0  |
	//       |  0   1   0  |
	//       |  0   0   1  |
	Y += (brightness - 1.0)

	// clamp Y after contrast and brightness transforms
	Y = clamp(Y)

	// S = saturation
	// YIQ * |  1   0   0  |
	//       |  0   S   0  |
	//       |  0   0   S  |
	I *= saturation
	Q *= saturation

	// the hue rotation of I and Q should happen on the unrotated values
	//
	// H = hue
	// YIQ * |  1     0       0     |
	//       |  0  cos(H)  -sin(H)  |
	//       |  0  sin(H)   cos(H)  |
	h := hue * math.Pi / 180.0
	q := (math.Sin(h) * I) + (math.Cos(h) * Q)
	I = (math.Cos(h) * I) - (math.Sin(h) * Q)
	Q = q

	return Y, I, Q
}

// the gamma of the display the palette is being created for
const displayGamma = 2.2

// gammaCorrect converts values for a CRT with the specified gamma into values
// for the display.
func gammaCorrect(R, G, B float64, gamma float64) (float64, float64, float64) {
	if gamma <= 0 {
		return R, G, B
	}
	g := gamma / displayGamma
	return math.Pow(R, g), math.Pow(G, g), math.Pow(B, g)
}
