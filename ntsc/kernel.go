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

package ntsc

import (
	"math"

	"github.com/jetsetilly/tvsurface/palette"
)

// the number of signal samples for every pixel in the indexed frame. the
// colour subcarrier completes one cycle for every pixel
const samplesPerPixel = 4

// the number of output pixels for every pixel in the indexed frame
const outputPerPixel = 2

// OutWidth returns the width of the decoded output for an indexed frame of
// the specified width.
func OutWidth(width int) int {
	return width * outputPerPixel
}

// value of the subcarrier at each of the four sample phases
var (
	carrierCos = [samplesPerPixel]float64{1, 0, -1, 0}
	carrierSin = [samplesPerPixel]float64{0, 1, 0, -1}
)

// the smallest filter that removes the subcarrier completely. the response of
// the filter is zero at the subcarrier frequency and at twice the subcarrier
// frequency
var notch = []float64{0.125, 0.25, 0.25, 0.25, 0.125}

// kernel contains everything required to decode a scanline. it is created
// from a Setup and a palette and is not changed once created
type kernel struct {
	// filter applied to the signal to recover the luma component
	luma []float64

	// filter applied to the demodulated signal to recover the chroma
	// components
	chroma []float64

	// filter used to estimate luma when separating the chroma component from
	// the signal. the fringing value is the amount of the estimated luma used
	// in place of the true luma
	separation []float64
	fringing   float64

	// YIQ values for every palette entry with the colour adjustments applied
	yiq [palette.NumEntries][3]float64

	gamma [256]uint8

	// the number of samples required either side of a scanline
	margin int
}

func radius(k []float64) int {
	return len(k) / 2
}

func newKernel(setup Setup, pal *palette.Table) *kernel {
	k := &kernel{}

	// resolution controls the bandwidth of the luma channel. the gaussian is
	// wider for lower resolutions
	sigma := 0.5 + (1.0-setup.Resolution)*1.0
	gauss := gaussian(sigma)

	// the clean luma filter removes the subcarrier. the artifacts value
	// controls how much of the subcarrier is allowed to remain
	clean := convolve(notch, gauss)
	artifacts := (setup.Artifacts + 1.0) / 2.0
	k.luma = mix(clean, pad(gauss, radius(clean)), artifacts)

	// sharpness moves the luma filter towards the narrowest clean filter. a
	// negative sharpness moves it away, which blurs the image
	k.luma = mix(k.luma, pad(notch, radius(k.luma)), setup.Sharpness*0.5)

	// bleed widens the chroma filter
	tri := triangle(2 + int((setup.Bleed+1.0)*3.0))
	k.chroma = convolve(notch, tri)

	k.separation = clean
	k.fringing = (setup.Fringing + 1.0) / 2.0

	k.margin = radius(k.luma) + radius(k.chroma) + radius(k.separation) + samplesPerPixel

	// colour adjustments are applied to the palette entries rather than to
	// the decoded signal
	brightness := 1.0 + setup.Brightness*0.25
	contrast := 1.0 + setup.Contrast*0.5
	saturation := 1.0 + setup.Saturation
	hue := setup.Hue * 45.0
	for i := range pal {
		Y, I, Q := palette.RGBToYIQ(pal[i])
		Y, I, Q = palette.AdjustYIQ(Y, I, Q, brightness, contrast, saturation, hue)
		k.yiq[i] = [3]float64{Y, I, Q}
	}

	// a gamma adjustment of zero leaves values unchanged
	exp := 1.0 / (1.0 + setup.Gamma*0.5)
	for i := range k.gamma {
		if setup.Gamma == 0 {
			k.gamma[i] = uint8(i)
			continue
		}
		k.gamma[i] = uint8(math.Pow(float64(i)/255.0, exp)*255.0 + 0.5)
	}

	return k
}

// gaussian returns a normalised gaussian filter
func gaussian(sigma float64) []float64 {
	r := int(math.Ceil(sigma * 2.5))
	k := make([]float64, r*2+1)
	for i := range k {
		x := float64(i - r)
		k[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
	}
	return normalise(k)
}

// triangle returns a normalised triangular filter of the specified radius
func triangle(r int) []float64 {
	k := make([]float64, r*2+1)
	for i := range k {
		d := i - r
		if d < 0 {
			d = -d
		}
		k[i] = float64(r + 1 - d)
	}
	return normalise(k)
}

func normalise(k []float64) []float64 {
	var sum float64
	for _, v := range k {
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// convolve returns the full convolution of two filters. the result has a
// radius equal to the sum of the radii of a and b
func convolve(a []float64, b []float64) []float64 {
	c := make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			c[i+j] += a[i] * b[j]
		}
	}
	return c
}

// pad returns a copy of the filter with zeros on either side so that it has
// the specified radius
func pad(k []float64, r int) []float64 {
	p := make([]float64, r*2+1)
	copy(p[r-radius(k):], k)
	return p
}

// mix returns a + (b - a) * t. both filters must be the same length
func mix(a []float64, b []float64, t float64) []float64 {
	m := make([]float64, len(a))
	for i := range a {
		m[i] = a[i] + (b[i]-a[i])*t
	}
	return m
}
