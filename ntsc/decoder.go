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
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/tvsurface/assert"
	"github.com/jetsetilly/tvsurface/logger"
	"github.com/jetsetilly/tvsurface/palette"
	"github.com/jetsetilly/tvsurface/prefs"
	"github.com/jetsetilly/tvsurface/signal"
)

// PixelBlender is used by Render() when a blend buffer is supplied. It is
// satisfied by phosphor.Blender.
type PixelBlender interface {
	GetPixel(c uint32, p uint32) uint32
}

// Decoder converts indexed frames into RGB by simulating the encoding and
// decoding of a composite video signal.
//
// A Decoder is not safe for concurrent use. It should be owned by a single
// render pipeline.
type Decoder struct {
	preset Preset
	setup  Setup

	// the adjustable that will be changed by ChangeCurrentAdjustable()
	current Adjustable

	// values for the Custom preset
	custom [NumAdjustables]prefs.Float

	pal palette.Table

	// the kernel is rebuilt by Render() whenever dirty is true
	kernel *kernel
	dirty  bool

	threading bool
	workers   int

	blender PixelBlender
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// The initial preset is Off, which has the same setup as the Composite preset.
func NewDecoder() *Decoder {
	d := &Decoder{
		preset:  Off,
		setup:   compositeSetup,
		dirty:   true,
		workers: runtime.NumCPU(),
	}

	for a := range NumAdjustables {
		d.custom[a].Set(0.0)
		d.custom[a].SetHookPost(func(_ prefs.Value) error {
			if d.preset == Custom {
				d.setup.Set(a, d.custom[a].Get().(float64))
				d.dirty = true
			}
			return nil
		})
	}

	return d
}

// AddToDisk registers the values of the Custom preset with the prefs Disk.
func (d *Decoder) AddToDisk(dsk *prefs.Disk) error {
	for a := range NumAdjustables {
		if err := dsk.Add(a.Setting(), &d.custom[a]); err != nil {
			return err
		}
	}
	return nil
}

// SetPalette replaces the palette that is used to create the signal. The
// adjustables are not changed.
func (d *Decoder) SetPalette(pal palette.Table) {
	d.pal = pal
	d.dirty = true
}

// SetPhosphor sets the PixelBlender used when Render() is called with a blend
// buffer.
func (d *Decoder) SetPhosphor(b PixelBlender) {
	d.blender = b
}

// Preset returns the current preset.
func (d *Decoder) Preset() Preset {
	return d.preset
}

// Setup returns the adjustable values currently in use.
func (d *Decoder) Setup() Setup {
	return d.setup
}

// SetPreset changes the adjustable values to those of the preset and returns
// the label for the preset. The Custom preset uses the values stored in the
// prefs system. An invalid preset is treated as DefaultPreset.
//
// The Off preset leaves the adjustable values unchanged. The decoder should
// not be used when the preset is Off.
func (d *Decoder) SetPreset(p Preset) string {
	if !p.Valid() {
		p = DefaultPreset
	}

	d.preset = p

	switch p {
	case Off:
	case Custom:
		for a := range NumAdjustables {
			d.setup.Set(a, d.custom[a].Get().(float64))
		}
	default:
		d.setup, _ = PresetSetup(p)
	}

	d.dirty = true
	logger.Logf(logger.Allow, "ntsc", "preset: %s", p)

	return p.String()
}

// the adjustable functions only operate on the Custom preset. if another
// preset is active then the Custom preset is selected first
func (d *Decoder) requireCustom() {
	if d.preset != Custom {
		d.SetPreset(Custom)
	}
}

func (d *Decoder) adjustableInfo(a Adjustable) (string, string, int) {
	v := d.setup.Percent(a)
	return a.String(), fmt.Sprintf("%d%%", v), v
}

// SetAdjustable sets the adjustable to the percentage value. The value is
// clamped to the range 0 to 100. Returns the label for the adjustable, the
// new value as a string and the new value as a percentage.
func (d *Decoder) SetAdjustable(a Adjustable, percent int) (string, string, int) {
	if a < 0 || a >= NumAdjustables {
		a = d.current
	}
	d.requireCustom()

	// the post hook on the custom pref updates the setup
	_ = d.custom[a].Set(fromPercent(percent))

	return d.adjustableInfo(a)
}

// ChangeAdjustable changes the adjustable by a single step in the specified
// direction. The return values are the same as for SetAdjustable().
func (d *Decoder) ChangeAdjustable(a Adjustable, direction int) (string, string, int) {
	if a < 0 || a >= NumAdjustables {
		a = d.current
	}
	d.requireCustom()
	return d.SetAdjustable(a, d.setup.Percent(a)+direction*adjustableStep)
}

// SelectAdjustable moves the current adjustable in the specified direction,
// wrapping around at either end of the list. The return values are the same
// as for SetAdjustable() but for the newly selected adjustable.
func (d *Decoder) SelectAdjustable(direction int) (string, string, int) {
	c := (int(d.current) + direction) % int(NumAdjustables)
	if c < 0 {
		c += int(NumAdjustables)
	}
	d.current = Adjustable(c)
	return d.adjustableInfo(d.current)
}

// ChangeCurrentAdjustable is the same as ChangeAdjustable() for the currently
// selected adjustable.
func (d *Decoder) ChangeCurrentAdjustable(direction int) (string, string, int) {
	return d.ChangeAdjustable(d.current, direction)
}

// CurrentAdjustable returns the adjustable selected by SelectAdjustable().
func (d *Decoder) CurrentAdjustable() Adjustable {
	return d.current
}

// EnableThreading allows Render() to decode scanlines concurrently.
func (d *Decoder) EnableThreading(enable bool) {
	d.threading = enable
	logger.Logf(logger.Allow, "ntsc", "threading: %v", enable)
}

// Threading returns true if threading is enabled.
func (d *Decoder) Threading() bool {
	return d.threading
}

// SetWorkers sets the number of goroutines used when threading is enabled. A
// value of less than one sets the number of workers to the number of CPUs.
func (d *Decoder) SetWorkers(n int) {
	if n < 1 {
		n = runtime.NumCPU()
	}
	d.workers = n
}

// Render decodes the indexed frame into the out buffer. The out buffer must
// have room for height rows of outPitch pixels, and outPitch must be at least
// OutWidth(width). Output pixels are of the form 0x00RRGGBB.
//
// If blend is not nil then each output pixel is blended with the pixel in the
// same position in the blend buffer, using the PixelBlender given to
// SetPhosphor(). The blend buffer is then updated with the result. The blend
// buffer has a pitch of OutWidth(width).
//
// A width or height of zero does nothing.
func (d *Decoder) Render(in signal.IndexedFrame, width int, height int, out []uint32, outPitch int, blend []uint32) {
	if width <= 0 || height <= 0 {
		return
	}

	assert.Length("ntsc indexed frame", len(in), width*height)
	assert.AtLeast("ntsc output pitch", outPitch, OutWidth(width))
	assert.AtLeast("ntsc output", len(out), (height-1)*outPitch+OutWidth(width))
	if blend != nil {
		assert.Length("ntsc blend buffer", len(blend), OutWidth(width)*height)
		if d.blender == nil {
			blend = nil
		}
	}

	if d.dirty || d.kernel == nil {
		d.kernel = newKernel(d.setup, &d.pal)
		d.dirty = false
	}

	job := renderJob{
		k:        d.kernel,
		in:       in,
		width:    width,
		out:      out,
		outPitch: outPitch,
		blend:    blend,
		blender:  d.blender,
	}

	if !d.threading || d.workers <= 1 || height < 2 {
		job.rows(0, height)
		return
	}

	// rows are divided into contiguous blocks. each block writes to a
	// different part of the output buffer
	workers := min(d.workers, height)
	block := (height + workers - 1) / workers

	var g errgroup.Group
	for y := 0; y < height; y += block {
		end := min(y+block, height)
		g.Go(func() error {
			job.rows(y, end)
			return nil
		})
	}
	_ = g.Wait()
}

type renderJob struct {
	k        *kernel
	in       signal.IndexedFrame
	width    int
	out      []uint32
	outPitch int
	blend    []uint32
	blender  PixelBlender
}

// rows decodes the rows from y0 up to but not including y1
func (j renderJob) rows(y0 int, y1 int) {
	k := j.k
	m := k.margin
	n := j.width * samplesPerPixel

	// the signal and the true luma for the scanline, with a margin on either
	// side. samples in the margin repeat the first and last pixels
	sig := make([]float64, n+m*2)
	luma := make([]float64, len(sig))

	// the signal with the luma removed
	chroma := make([]float64, len(sig))

	lumaR := radius(k.luma)
	chromaR := radius(k.chroma)
	sepR := radius(k.separation)

	for y := y0; y < y1; y++ {
		row := j.in.Row(j.width, y)

		for i := range sig {
			s := i - m
			p := max(0, min(s>>2, j.width-1))
			yiq := &k.yiq[row[p]]
			ph := s & (samplesPerPixel - 1)
			sig[i] = yiq[0] + yiq[1]*carrierCos[ph] + yiq[2]*carrierSin[ph]
			luma[i] = yiq[0]
		}

		// separate chroma by removing a mix of the true luma and the
		// estimated luma. the estimate is inaccurate at sharp changes in
		// luminance, which causes colour fringes
		for i := range chroma {
			l := luma[i]
			if k.fringing > 0 && i >= sepR && i < len(sig)-sepR {
				var est float64
				for t, w := range k.separation {
					est += w * sig[i-sepR+t]
				}
				l += (est - l) * k.fringing
			}
			chroma[i] = sig[i] - l
		}

		outRow := j.out[y*j.outPitch : y*j.outPitch+OutWidth(j.width)]
		var blendRow []uint32
		if j.blend != nil {
			blendRow = j.blend[y*OutWidth(j.width) : (y+1)*OutWidth(j.width)]
		}

		for x := range outRow {
			c := x*(samplesPerPixel/outputPerPixel) + 1 + m

			var Y, I, Q float64
			for t, w := range k.luma {
				Y += w * sig[c-lumaR+t]
			}
			for t, w := range k.chroma {
				s := c - chromaR + t
				ph := (s - m) & (samplesPerPixel - 1)
				I += w * chroma[s] * carrierCos[ph]
				Q += w * chroma[s] * carrierSin[ph]
			}

			r, g, b := palette.Unpack(palette.YIQToRGB(Y, I*2, Q*2))
			px := palette.Pack(k.gamma[r], k.gamma[g], k.gamma[b])

			if blendRow != nil {
				px = j.blender.GetPixel(px, blendRow[x])
				blendRow[x] = px
			}

			outRow[x] = px
		}
	}
}
