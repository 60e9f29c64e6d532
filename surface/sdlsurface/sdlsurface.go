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

// Package sdlsurface implements the surface.Service interface with SDL
// textures. The Window type opens an SDL window with a renderer suitable for
// the Service.
package sdlsurface

import (
	"encoding/binary"
	"image"
	"slices"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/tvsurface/curated"
	"github.com/jetsetilly/tvsurface/logger"
	"github.com/jetsetilly/tvsurface/surface"
)

// the number of bytes in each pixel of a texture
const pixelDepth = 4

// Service implements the surface.Service interface.
type Service struct {
	renderer *sdl.Renderer
	surfaces []*texture
}

// NewService is the preferred method of initialisation for the Service type.
func NewService(renderer *sdl.Renderer) *Service {
	return &Service{renderer: renderer}
}

// AllocateSurface implements the surface.Service interface.
func (svc *Service) AllocateSurface(width int, height int, interp surface.Interpolation, data []uint32) (surface.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(surface.BadDimensions, width, height)
	}
	if data != nil && len(data) != width*height {
		return nil, curated.Errorf(surface.BadDimensions, width, height)
	}

	t := &texture{
		svc:     svc,
		width:   width,
		height:  height,
		pixels:  make([]uint32, width*height),
		srcW:    width,
		srcH:    height,
		dst:     image.Rect(0, 0, width, height),
		overlay: data != nil,
	}
	copy(t.pixels, data)

	if err := t.create(interp); err != nil {
		return nil, err
	}

	svc.surfaces = append(svc.surfaces, t)

	return t, nil
}

// DeallocateSurface implements the surface.Service interface.
func (svc *Service) DeallocateSurface(s surface.Surface) {
	svc.surfaces = slices.DeleteFunc(svc.surfaces, func(t *texture) bool {
		if t == s {
			t.destroy()
			return true
		}
		return false
	})
}

// Destroy all surfaces allocated by the service.
func (svc *Service) Destroy() {
	for _, t := range svc.surfaces {
		t.destroy()
	}
	svc.surfaces = svc.surfaces[:0]
}

type texture struct {
	svc *Service
	tex *sdl.Texture

	width  int
	height int
	pixels []uint32

	srcW int
	srcH int
	dst  image.Rectangle

	interp surface.Interpolation

	attr    surface.Attributes
	applied surface.Attributes

	overlay bool
}

// scale quality is a property of the texture and is taken from the SDL hint
// at the moment of creation
func (t *texture) create(interp surface.Interpolation) error {
	quality := "nearest"
	if interp == surface.Blur {
		quality = "linear"
	}
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, quality)

	tex, err := t.svc.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(t.width), int32(t.height))
	if err != nil {
		return curated.Errorf("sdlsurface: %v", err)
	}

	t.destroy()
	t.tex = tex
	t.interp = interp
	t.setBlendMode()

	return nil
}

func (t *texture) destroy() {
	if t.tex != nil {
		t.tex.Destroy()
		t.tex = nil
	}
}

func (t *texture) setBlendMode() {
	if t.tex == nil {
		return
	}
	if t.applied.Blending {
		t.tex.SetBlendMode(sdl.BlendMode(sdl.BLENDMODE_BLEND))
		t.tex.SetAlphaMod(uint8(t.applied.BlendAlpha * 255 / 100))
	} else {
		t.tex.SetBlendMode(sdl.BlendMode(sdl.BLENDMODE_NONE))
		t.tex.SetAlphaMod(255)
	}
}

func (t *texture) Width() int {
	return t.width
}

func (t *texture) Height() int {
	return t.height
}

func (t *texture) BasePtr() ([]uint32, int) {
	return t.pixels, t.width
}

func (t *texture) Attributes() *surface.Attributes {
	return &t.attr
}

func (t *texture) ApplyAttributes() {
	t.applied = t.attr
	t.applied.BlendAlpha = max(0, min(t.applied.BlendAlpha, 100))
	t.setBlendMode()
}

func (t *texture) SetSrcSize(width int, height int) {
	t.srcW = max(0, min(width, t.width))
	t.srcH = max(0, min(height, t.height))
}

func (t *texture) SrcSize() (int, int) {
	return t.srcW, t.srcH
}

func (t *texture) SetDstRect(r image.Rectangle) {
	t.dst = r.Canon()
}

func (t *texture) DstRect() image.Rectangle {
	return t.dst
}

func (t *texture) SetInterpolation(interp surface.Interpolation) {
	if interp == t.interp && t.tex != nil {
		return
	}
	if err := t.create(interp); err != nil {
		logger.Log(logger.Allow, "sdlsurface", err)
	}
}

func (t *texture) Invalidate() {
	clear(t.pixels)
}

func (t *texture) Render() error {
	if t.tex == nil || t.srcW == 0 || t.srcH == 0 || t.dst.Empty() {
		return nil
	}

	data, pitch, err := t.tex.Lock(nil)
	if err != nil {
		return curated.Errorf("sdlsurface: %v", err)
	}

	// ARGB8888 is stored as a native endian 32bit value
	var alpha uint32
	if !t.overlay {
		alpha = 0xff000000
	}
	for y := range t.srcH {
		row := t.pixels[y*t.width : y*t.width+t.srcW]
		dest := data[y*pitch:]
		for x, p := range row {
			binary.NativeEndian.PutUint32(dest[x*pixelDepth:], p|alpha)
		}
	}

	t.tex.Unlock()

	src := &sdl.Rect{W: int32(t.srcW), H: int32(t.srcH)}
	dst := &sdl.Rect{
		X: int32(t.dst.Min.X),
		Y: int32(t.dst.Min.Y),
		W: int32(t.dst.Dx()),
		H: int32(t.dst.Dy()),
	}

	if err := t.svc.renderer.Copy(t.tex, src, dst); err != nil {
		return curated.Errorf("sdlsurface: %v", err)
	}

	return nil
}
