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

// Package surface defines the interface to the service that allocates and
// renders the surfaces used by the TV surface. Two implementations are
// provided: the Image type in this package, which composites surfaces onto an
// image.RGBA, and the sdlsurface package, which renders surfaces as SDL
// textures.
//
// Surfaces allocated without initial data are opaque and pixel values are of
// the form 0x00RRGGBB. Surfaces allocated with initial data are overlays and
// pixel values are of the form 0xAARRGGBB.
package surface

import (
	"fmt"
	"image"
	"strings"

	"github.com/jetsetilly/tvsurface/curated"
)

// Sentinal error patterns.
const (
	UnknownInterpolation = "surface: unknown interpolation (%s)"
	BadDimensions        = "surface: bad dimensions (%dx%d)"
)

// Interpolation is the method used to scale a surface.
type Interpolation int

// List of valid Interpolation values.
const (
	None Interpolation = iota
	Sharp
	Blur
)

func (i Interpolation) String() string {
	switch i {
	case None:
		return "none"
	case Sharp:
		return "sharp"
	case Blur:
		return "blur"
	}
	return fmt.Sprintf("unknown (%d)", int(i))
}

// ParseInterpolation returns the Interpolation for the name returned by
// Interpolation.String().
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None, nil
	case "sharp":
		return Sharp, nil
	case "blur":
		return Blur, nil
	}
	return None, curated.Errorf(UnknownInterpolation, s)
}

// InterpolationFor returns the Interpolation to use for the TV surface
// according to the state of the interpolation preference.
func InterpolationFor(inter bool) Interpolation {
	if inter {
		return Blur
	}
	return Sharp
}

// Attributes control how a surface is composited onto the surfaces beneath
// it. Changes to the Attributes of a surface take effect after a call to
// Surface.ApplyAttributes().
type Attributes struct {
	// if Blending is false the surface replaces whatever is beneath it
	Blending bool

	// opacity of the surface in percent. only used if Blending is true
	BlendAlpha int
}

// Surface is a rectangle of pixels that can be scaled and rendered.
type Surface interface {
	// the allocated size of the surface
	Width() int
	Height() int

	// the pixel data of the surface and the number of pixels in each row.
	// changes are seen on the next call to Render()
	BasePtr() ([]uint32, int)

	Attributes() *Attributes
	ApplyAttributes()

	// the area of the surface that is rendered. the source area is always
	// anchored at the top-left of the surface
	SetSrcSize(width int, height int)
	SrcSize() (int, int)

	// the area of the screen that the surface is rendered to
	SetDstRect(r image.Rectangle)
	DstRect() image.Rectangle

	SetInterpolation(interp Interpolation)

	// clear the pixel data
	Invalidate()

	Render() error
}

// Service allocates surfaces.
type Service interface {
	// the data argument is optional. if it is not nil then its length must
	// be width * height
	AllocateSurface(width int, height int, interp Interpolation, data []uint32) (Surface, error)
	DeallocateSurface(s Surface)
}
