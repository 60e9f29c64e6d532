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

package surface

import (
	"image"
	"image/color"
	"slices"
	"sync"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/tvsurface/curated"
)

// Image implements the Service interface. Surfaces are rendered onto a single
// image.RGBA in the order that Render() is called.
type Image struct {
	crit     sync.Mutex
	screen   *image.RGBA
	surfaces []*imageSurface
}

// NewImage is the preferred method of initialisation for the Image type.
func NewImage(width int, height int) *Image {
	return &Image{
		screen: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Screen returns the image that surfaces are rendered to.
func (img *Image) Screen() *image.RGBA {
	return img.screen
}

// Clear the screen to black.
func (img *Image) Clear() {
	img.crit.Lock()
	defer img.crit.Unlock()
	draw.Draw(img.screen, img.screen.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
}

// Resize the screen. The contents of the screen are lost.
func (img *Image) Resize(width int, height int) {
	img.crit.Lock()
	defer img.crit.Unlock()
	img.screen = image.NewRGBA(image.Rect(0, 0, width, height))
}

// NumSurfaces returns the number of allocated surfaces.
func (img *Image) NumSurfaces() int {
	img.crit.Lock()
	defer img.crit.Unlock()
	return len(img.surfaces)
}

// AllocateSurface implements the Service interface.
func (img *Image) AllocateSurface(width int, height int, interp Interpolation, data []uint32) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(BadDimensions, width, height)
	}
	if interp < None || interp > Blur {
		return nil, curated.Errorf(UnknownInterpolation, interp)
	}

	s := &imageSurface{
		img:     img,
		width:   width,
		height:  height,
		pixels:  make([]uint32, width*height),
		srcW:    width,
		srcH:    height,
		dst:     image.Rect(0, 0, width, height),
		interp:  interp,
		overlay: data != nil,
		conv:    image.NewNRGBA(image.Rect(0, 0, width, height)),
	}

	if data != nil {
		if len(data) != len(s.pixels) {
			return nil, curated.Errorf(BadDimensions, width, height)
		}
		copy(s.pixels, data)
	}

	img.crit.Lock()
	defer img.crit.Unlock()
	img.surfaces = append(img.surfaces, s)

	return s, nil
}

// DeallocateSurface implements the Service interface.
func (img *Image) DeallocateSurface(s Surface) {
	img.crit.Lock()
	defer img.crit.Unlock()
	img.surfaces = slices.DeleteFunc(img.surfaces, func(is *imageSurface) bool {
		return is == s
	})
}

type imageSurface struct {
	img *Image

	width  int
	height int
	pixels []uint32

	srcW int
	srcH int
	dst  image.Rectangle

	interp Interpolation

	attr    Attributes
	applied Attributes

	// surface has an alpha channel
	overlay bool

	// pixels are converted into this image before scaling
	conv *image.NRGBA
}

func (s *imageSurface) Width() int {
	return s.width
}

func (s *imageSurface) Height() int {
	return s.height
}

func (s *imageSurface) BasePtr() ([]uint32, int) {
	return s.pixels, s.width
}

func (s *imageSurface) Attributes() *Attributes {
	return &s.attr
}

func (s *imageSurface) ApplyAttributes() {
	s.applied = s.attr
	s.applied.BlendAlpha = max(0, min(s.applied.BlendAlpha, 100))
}

func (s *imageSurface) SetSrcSize(width int, height int) {
	s.srcW = max(0, min(width, s.width))
	s.srcH = max(0, min(height, s.height))
}

func (s *imageSurface) SrcSize() (int, int) {
	return s.srcW, s.srcH
}

func (s *imageSurface) SetDstRect(r image.Rectangle) {
	s.dst = r.Canon()
}

func (s *imageSurface) DstRect() image.Rectangle {
	return s.dst
}

func (s *imageSurface) SetInterpolation(interp Interpolation) {
	s.interp = interp
}

func (s *imageSurface) Invalidate() {
	clear(s.pixels)
}

func (s *imageSurface) scaler() draw.Scaler {
	switch s.interp {
	case Blur:
		return draw.ApproxBiLinear
	default:
		return draw.NearestNeighbor
	}
}

// convert pixel data in the source area to NRGBA. the alpha value of each
// pixel is scaled by the blend alpha
func (s *imageSurface) convert() {
	blending := s.applied.Blending
	alpha := uint32(s.applied.BlendAlpha)

	for y := range s.srcH {
		row := s.pixels[y*s.width : y*s.width+s.srcW]
		pix := s.conv.Pix[y*s.conv.Stride:]
		for x, p := range row {
			a := uint32(0xff)
			if s.overlay && blending {
				a = p >> 24
			}
			if blending {
				a = a * alpha / 100
			}
			pix[x*4] = uint8(p >> 16)
			pix[x*4+1] = uint8(p >> 8)
			pix[x*4+2] = uint8(p)
			pix[x*4+3] = uint8(a)
		}
	}
}

func (s *imageSurface) Render() error {
	if s.srcW == 0 || s.srcH == 0 || s.dst.Empty() {
		return nil
	}

	s.convert()

	op := draw.Src
	if s.applied.Blending {
		op = draw.Over
	}

	s.img.crit.Lock()
	defer s.img.crit.Unlock()
	s.scaler().Scale(s.img.screen, s.dst, s.conv, image.Rect(0, 0, s.srcW, s.srcH), op, nil)

	return nil
}
