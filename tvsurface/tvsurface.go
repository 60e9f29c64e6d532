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

package tvsurface

import (
	"image"

	"github.com/jetsetilly/tvsurface/assert"
	"github.com/jetsetilly/tvsurface/logger"
	"github.com/jetsetilly/tvsurface/notifications"
	"github.com/jetsetilly/tvsurface/ntsc"
	"github.com/jetsetilly/tvsurface/palette"
	"github.com/jetsetilly/tvsurface/phosphor"
	"github.com/jetsetilly/tvsurface/scanlines"
	"github.com/jetsetilly/tvsurface/signal"
	"github.com/jetsetilly/tvsurface/snapshot"
	"github.com/jetsetilly/tvsurface/surface"
)

// the shading surface darkens a stopped display by this amount (percent)
const shadeAlpha = 35

// TVSurface converts frames from a signal.Source into an image on the
// surfaces provided by a surface.Service.
type TVSurface struct {
	svc   surface.Service
	prefs *Preferences
	msgr  notifications.Messenger

	src signal.Source

	palettes *palette.Generator
	pal      palette.Table

	ntsc     *ntsc.Decoder
	phosphor phosphor.Blender

	composite bool
	filter    Filter

	tiaSurface   surface.Surface
	baseSurface  surface.Surface
	slineSurface surface.Surface
	shadeSurface surface.Surface

	scanlinesEnabled bool

	// the current and previous phosphor buffers. both buffers are always the
	// same length
	rgb  []uint32
	prev []uint32

	// a snapshot has been requested. it is taken at the end of the next call
	// to Render() and the request is then cleared
	snapshotRequested bool
	snapshotter       snapshot.Snapshotter
}

// the size of the buffers and of the TIA surface
var (
	maxWidth  = ntsc.OutWidth(signal.FrameBufferWidth)
	maxHeight = signal.FrameBufferHeight
)

// NewTVSurface is the preferred method of initialisation for the TVSurface
// type. The Messenger argument can be nil, in which case messages are sent to
// the log.
//
// Preferences for the composite decoder and the palette are added to the
// Preferences and all values are then loaded.
func NewTVSurface(svc surface.Service, p *Preferences, msgr notifications.Messenger) (*TVSurface, error) {
	if msgr == nil {
		msgr = notifications.LogMessenger{Tag: "tvsurface"}
	}

	tv := &TVSurface{
		svc:      svc,
		prefs:    p,
		msgr:     msgr,
		palettes: palette.NewGenerator(),
		ntsc:     ntsc.NewDecoder(),
		rgb:      make([]uint32, maxWidth*maxHeight),
		prev:     make([]uint32, maxWidth*maxHeight),
	}

	err := p.Register(tv.ntsc)
	if err != nil {
		return nil, err
	}
	err = p.Register(tv.palettes)
	if err != nil {
		return nil, err
	}
	err = p.Load(true)
	if err != nil {
		return nil, err
	}

	interp := surface.None
	if tv.CorrectAspect() {
		interp = surface.InterpolationFor(p.Interpolate.Get().(bool))
	}
	tv.tiaSurface, err = svc.AllocateSurface(maxWidth, maxHeight, interp, nil)
	if err != nil {
		return nil, err
	}

	// unfiltered image for snapshots in 1x mode
	tv.baseSurface, err = svc.AllocateSurface(signal.FrameBufferWidth*2, maxHeight, surface.None, nil)
	if err != nil {
		return nil, err
	}

	tv.shadeSurface, err = svc.AllocateSurface(1, 1, surface.Sharp, []uint32{0xff000000})
	if err != nil {
		return nil, err
	}
	attr := tv.shadeSurface.Attributes()
	attr.Blending = true
	attr.BlendAlpha = shadeAlpha
	tv.shadeSurface.ApplyAttributes()

	err = tv.createScanlineSurface()
	if err != nil {
		return nil, err
	}

	tv.ntsc.EnableThreading(p.Threads.Get().(bool))
	tv.ntsc.SetPhosphor(&tv.phosphor)

	return tv, nil
}

// Initialize the TVSurface for a new source. The dst argument is the area of
// the screen used by the TV surface.
func (tv *TVSurface) Initialize(src signal.Source, dst image.Rectangle) error {
	tv.src = src

	tv.tiaSurface.SetDstRect(dst)

	tv.SetPalette(tv.palettes.Palettes())

	tv.EnablePhosphor(tv.prefs.Phosphor.Get().(bool), tv.prefs.PhosphorLevel())

	err := tv.createScanlineSurface()
	if err != nil {
		return err
	}

	tv.SetNTSC(ntsc.PresetFromSetting(tv.prefs.Filter.Get().(int)), false)

	logger.Logf(logger.Allow, "tvsurface", "initialised for %dx%d source", src.Width(), src.Height())

	return nil
}

// SetDstRect changes the area of the screen used by the TV surface.
func (tv *TVSurface) SetDstRect(dst image.Rectangle) {
	tv.tiaSurface.SetDstRect(dst)
	tv.slineSurface.SetDstRect(dst)
}

// DstRect returns the area of the screen used by the TV surface.
func (tv *TVSurface) DstRect() image.Rectangle {
	return tv.tiaSurface.DstRect()
}

// SetPalette sets the palettes used for direct lookup and by the composite
// decoder.
func (tv *TVSurface) SetPalette(pals palette.Palettes) {
	tv.pal = pals.TIA

	// the composite decoder applies its own adjustments and so needs the
	// unadjusted values
	tv.ntsc.SetPalette(pals.RGB)
}

// Palette returns the Generator used to create the palettes. After changing
// a palette preference SetPalette() should be called with the result of
// Generator.Palettes().
func (tv *TVSurface) Palette() *palette.Generator {
	return tv.palettes
}

// MapIndexedPixel returns the RGB value for an indexed colour and shift value.
func (tv *TVSurface) MapIndexedPixel(idx signal.ColorSignal, shift signal.ColorSignal) uint32 {
	return tv.pal.MapIndexedPixel(idx, shift)
}

// Filter returns the active filter.
func (tv *TVSurface) Filter() Filter {
	return tv.filter
}

// NTSC returns the composite decoder.
func (tv *TVSurface) NTSC() *ntsc.Decoder {
	return tv.ntsc
}

// SetSnapshotter sets the Snapshotter that receives stills requested with
// SaveSnapshot().
func (tv *TVSurface) SetSnapshotter(s snapshot.Snapshotter) {
	tv.snapshotter = s
}

// SaveSnapshot requests a snapshot at the end of the next call to Render().
func (tv *TVSurface) SaveSnapshot() {
	tv.snapshotRequested = true
	if n, ok := tv.msgr.(notifications.Notify); ok {
		_ = n.Notify(notifications.NotifySnapshot)
	}
}

// the dimensions of the current frame. the frame buffer and the surfaces
// must be large enough for the source
func (tv *TVSurface) frame() (signal.IndexedFrame, int, int) {
	w, h := tv.src.Width(), tv.src.Height()
	fb := tv.src.FrameBuffer()
	assert.Length("frame buffer", len(fb), w*h)
	assert.AtLeast("surface width", tv.tiaSurface.Width(), ntsc.OutWidth(w))
	assert.AtLeast("surface height", tv.tiaSurface.Height(), h)
	return fb, w, h
}

// update the filter after a change to the composite or phosphor state
func (tv *TVSurface) updateFilter() {
	f := FilterFor(tv.composite, tv.phosphor.Enabled())
	if f == tv.filter {
		return
	}
	tv.filter = f
	logger.Logf(logger.Allow, "tvsurface", "filter: %s", f)
	if n, ok := tv.msgr.(notifications.Notify); ok {
		_ = n.Notify(notifications.NotifyFilterChanged)
	}
}

// Render the current frame from the source. If shade is true then the image
// is darkened to indicate that emulation has stopped.
//
// If a snapshot has been requested then it is taken after rendering and given
// to the Snapshotter.
func (tv *TVSurface) Render(shade bool) error {
	if tv.src == nil {
		return nil
	}

	fb, w, h := tv.frame()
	snap := tv.snapshotRequested

	out, pitch := tv.tiaSurface.BasePtr()

	switch tv.filter {
	case Normal:
		tv.renderNormal(fb, w, h, out, pitch)

	case Phosphor:
		if snap {
			copy(tv.prev[:w*h], tv.rgb[:w*h])
		}
		tv.renderPhosphor(fb, w, h, out, pitch)

	case CompositeNormal:
		tv.ntsc.Render(fb, w, h, out, pitch, nil)

	case CompositePhosphor:
		n := ntsc.OutWidth(w) * h
		if snap {
			copy(tv.prev[:n], tv.rgb[:n])
		}
		tv.ntsc.Render(fb, w, h, out, pitch, tv.rgb[:n])
	}

	err := tv.tiaSurface.Render()
	if err != nil {
		return err
	}

	if tv.scanlinesEnabled {
		err = tv.slineSurface.Render()
		if err != nil {
			return err
		}
	}

	if shade {
		tv.shadeSurface.SetDstRect(tv.tiaSurface.DstRect())
		err = tv.shadeSurface.Render()
		if err != nil {
			return err
		}
	}

	if snap {
		tv.snapshotRequested = false
		still := tv.RenderForSnapshot()
		if tv.snapshotter != nil {
			err = tv.snapshotter.Save(still)
			if err != nil {
				logger.Log(logger.Allow, "snapshot", err)
				tv.msgr.ShowTextMessage("Snapshot failed")
				return nil
			}
			tv.msgr.ShowTextMessage("Snapshot saved")
		}
	}

	return nil
}

func (tv *TVSurface) renderNormal(fb signal.IndexedFrame, w int, h int, out []uint32, pitch int) {
	for y := range h {
		row := out[y*pitch : y*pitch+w]
		for x, c := range fb.Row(w, y) {
			row[x] = tv.pal[c]
		}
	}
}

// the phosphor buffer has a pitch equal to the width of the frame
func (tv *TVSurface) renderPhosphor(fb signal.IndexedFrame, w int, h int, out []uint32, pitch int) {
	for y := range h {
		row := out[y*pitch : y*pitch+w]
		rgb := tv.rgb[y*w : (y+1)*w]
		for x, c := range fb.Row(w, y) {
			p := tv.phosphor.GetPixel(tv.pal[c], rgb[x])
			rgb[x] = p
			row[x] = p
		}
	}
}

// RenderForSnapshot returns a still of the current frame without scanlines or
// shading. In the phosphor modes the still is the average of the current and
// previous phosphor buffers, otherwise the frame is rendered again.
//
// The still is always OutWidth() pixels wide. In the non-composite modes each
// pixel is doubled horizontally.
func (tv *TVSurface) RenderForSnapshot() snapshot.Still {
	if tv.src == nil {
		return snapshot.Still{}
	}

	fb, w, h := tv.frame()
	out, pitch := tv.tiaSurface.BasePtr()

	switch tv.filter {
	case Normal:
		tv.renderNormal(fb, w, h, out, pitch)

	case CompositeNormal:
		tv.ntsc.Render(fb, w, h, out, pitch, nil)

	case Phosphor:
		for y := range h {
			phosphor.AverageBuffers(out[y*pitch:y*pitch+w], tv.rgb[y*w:(y+1)*w], tv.prev[y*w:(y+1)*w])
		}

	case CompositePhosphor:
		ow := ntsc.OutWidth(w)
		for y := range h {
			phosphor.AverageBuffers(out[y*pitch:y*pitch+ow], tv.rgb[y*ow:(y+1)*ow], tv.prev[y*ow:(y+1)*ow])
		}
	}

	ow := ntsc.OutWidth(w)
	still := snapshot.Still{
		Width:  ow,
		Height: h,
		Pixels: make([]uint32, ow*h),
	}

	for y := range h {
		src := out[y*pitch:]
		dst := still.Pixels[y*ow : (y+1)*ow]
		if tv.filter.Composite() {
			copy(dst, src[:ow])
			continue
		}
		for x := range w {
			dst[x*2] = src[x]
			dst[x*2+1] = src[x]
		}
	}

	return still
}

// BaseSurface fills a surface with the unfiltered frame, scaled 2x
// horizontally, and returns the surface and the area of the surface that
// contains the image.
func (tv *TVSurface) BaseSurface() (surface.Surface, image.Rectangle) {
	if tv.src == nil {
		return tv.baseSurface, image.Rectangle{}
	}

	fb, w, h := tv.frame()
	buf, pitch := tv.baseSurface.BasePtr()

	for y := range h {
		row := buf[y*pitch : y*pitch+w*2]
		for x := range row {
			row[x] = tv.pal[fb[y*w+x/2]]
		}
	}

	return tv.baseSurface, image.Rect(0, 0, w*2, h)
}

func (tv *TVSurface) height() int {
	if tv.src == nil {
		return signal.FrameBufferHeight
	}
	return tv.src.Height()
}

// create the scanline surface for the current mask and source height
func (tv *TVSurface) createScanlineSurface() error {
	mask := tv.prefs.Mask()

	w, h := scanlines.SurfaceSize(mask, signal.FrameBufferWidth, tv.height())
	data := scanlines.Build(mask, w, h)

	if tv.slineSurface != nil {
		tv.svc.DeallocateSurface(tv.slineSurface)
	}

	var err error
	tv.slineSurface, err = tv.svc.AllocateSurface(w, h, surface.InterpolationFor(tv.prefs.Interpolate.Get().(bool)), data)
	if err != nil {
		return err
	}

	tv.slineSurface.SetSrcSize(w, h)
	tv.slineSurface.SetDstRect(tv.tiaSurface.DstRect())

	tv.EnableNTSC(tv.NTSCEnabled())

	logger.Logf(logger.Allow, "scanlines", "%s mask (%dx%d)", mask, w, h)
	if n, ok := tv.msgr.(notifications.Notify); ok {
		_ = n.Notify(notifications.NotifyMaskRebuilt)
	}

	return nil
}
