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

package ntsc_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/jetsetilly/tvsurface/ntsc"
	"github.com/jetsetilly/tvsurface/palette"
	"github.com/jetsetilly/tvsurface/phosphor"
	"github.com/jetsetilly/tvsurface/prefs"
	"github.com/jetsetilly/tvsurface/signal"
	"github.com/jetsetilly/tvsurface/test"
)

var testPalette = palette.Custom([]uint32{
	0x000000, 0x000000,
	0x808080, 0x808080,
	0xffffff, 0xffffff,
	0xff0000, 0x4c4c4c,
	0x00ff00, 0x969696,
	0x0000ff, 0x1d1d1d,
})

// frame with vertical stripes of changing colour
func stripes(width, height int) signal.IndexedFrame {
	f := make(signal.IndexedFrame, width*height)
	for y := range height {
		for x := range width {
			f[y*width+x] = signal.ColorSignal(((x/3 + y) % 6) * 2)
		}
	}
	return f
}

func flat(width, height int, c signal.ColorSignal) signal.IndexedFrame {
	f := make(signal.IndexedFrame, width*height)
	for i := range f {
		f[i] = c
	}
	return f
}

func TestPresetCycle(t *testing.T) {
	p := ntsc.Off
	for range ntsc.NumPresets {
		p = ntsc.CyclePreset(p, 1)
	}
	test.ExpectEquality(t, p, ntsc.Off)

	test.ExpectEquality(t, ntsc.CyclePreset(ntsc.Custom, 1), ntsc.Off)
	test.ExpectEquality(t, ntsc.CyclePreset(ntsc.Off, -1), ntsc.Custom)
	test.ExpectEquality(t, ntsc.CyclePreset(ntsc.SVideo, 0), ntsc.SVideo)
	test.ExpectEquality(t, ntsc.CyclePreset(ntsc.Preset(-5), 1), ntsc.RGB)

	test.ExpectEquality(t, ntsc.PresetFromSetting(3), ntsc.Composite)
	test.ExpectEquality(t, ntsc.PresetFromSetting(99), ntsc.Off)
	test.ExpectEquality(t, ntsc.PresetFromSetting(-1), ntsc.Off)
}

func TestPresetLabels(t *testing.T) {
	d := ntsc.NewDecoder()
	test.ExpectEquality(t, d.SetPreset(ntsc.RGB), "RGB")
	test.ExpectEquality(t, d.SetPreset(ntsc.SVideo), "S-VIDEO")
	test.ExpectEquality(t, d.SetPreset(ntsc.Composite), "COMPOSITE")
	test.ExpectEquality(t, d.SetPreset(ntsc.BadAdjust), "BAD ADJUST")
	test.ExpectEquality(t, d.SetPreset(ntsc.Custom), "CUSTOM")
	test.ExpectEquality(t, d.SetPreset(ntsc.Preset(100)), "Disabled")
	test.ExpectEquality(t, d.Preset(), ntsc.Off)

	d.SetPreset(ntsc.RGB)
	test.ExpectEquality(t, d.Setup().Artifacts, -1.0)
	test.ExpectEquality(t, d.Setup().Percent(ntsc.Artifacts), 0)
	test.ExpectEquality(t, d.Setup().Percent(ntsc.Hue), 50)
}

func TestAdjustables(t *testing.T) {
	d := ntsc.NewDecoder()
	d.SetPreset(ntsc.RGB)

	// changing an adjustable selects the custom preset
	label, value, v := d.SetAdjustable(ntsc.Sharpness, 150)
	test.ExpectEquality(t, d.Preset(), ntsc.Custom)
	test.ExpectEquality(t, label, "Sharpness")
	test.ExpectEquality(t, value, "100%")
	test.ExpectEquality(t, v, 100)
	test.ExpectEquality(t, d.Setup().Sharpness, 1.0)

	_, value, v = d.ChangeAdjustable(ntsc.Sharpness, -1)
	test.ExpectEquality(t, value, "98%")
	test.ExpectEquality(t, v, 98)

	_, _, v = d.SetAdjustable(ntsc.Bleed, -20)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, d.Setup().Bleed, -1.0)

	// selection wraps around
	test.ExpectEquality(t, d.CurrentAdjustable(), ntsc.Contrast)
	label, _, _ = d.SelectAdjustable(-1)
	test.ExpectEquality(t, label, "Bleeding")
	label, _, _ = d.SelectAdjustable(2)
	test.ExpectEquality(t, label, "Brightness")

	_, value, _ = d.ChangeCurrentAdjustable(1)
	test.ExpectEquality(t, value, "52%")

	// custom values survive a change of preset
	d.SetPreset(ntsc.Composite)
	test.ExpectEquality(t, d.Setup().Sharpness, 0.0)
	d.SetPreset(ntsc.Custom)
	test.ExpectEquality(t, d.Setup().Percent(ntsc.Sharpness), 98)
	test.ExpectEquality(t, d.Setup().Percent(ntsc.Brightness), 52)
}

func TestDisk(t *testing.T) {
	dsk, err := prefs.NewDisk("")
	test.DemandSuccess(t, err)

	d := ntsc.NewDecoder()
	test.DemandSuccess(t, d.AddToDisk(dsk))

	// registering twice is an error
	test.ExpectFailure(t, d.AddToDisk(dsk))

	d.SetPreset(ntsc.Custom)
	d.SetAdjustable(ntsc.Fringing, 75)
	test.ExpectSuccess(t, dsk.Set("tv.resolution", "0.5"))
	test.ExpectEquality(t, d.Setup().Resolution, 0.5)
	test.ExpectEquality(t, d.Setup().Fringing, 0.5)

	// out of range values in the prefs are clamped when applied
	test.ExpectSuccess(t, dsk.Set("tv.gamma", "3.0"))
	test.ExpectEquality(t, d.Setup().Gamma, 1.0)
}

func TestFlatField(t *testing.T) {
	const width = 16
	const height = 4

	for _, p := range []ntsc.Preset{ntsc.RGB, ntsc.SVideo, ntsc.Composite} {
		d := ntsc.NewDecoder()
		d.SetPalette(testPalette)
		d.SetPreset(p)

		for _, c := range []signal.ColorSignal{0x00, 0x02, 0x04} {
			out := make([]uint32, ntsc.OutWidth(width)*height)
			d.Render(flat(width, height, c), width, height, out, ntsc.OutWidth(width), nil)

			// a field of a single grey is decoded without any change
			for i := range out {
				if !test.ExpectEquality(t, out[i], testPalette[c], p, c, i) {
					break
				}
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	const width = signal.FrameBufferWidth
	const height = 50

	frame := stripes(width, height)

	for _, p := range []ntsc.Preset{ntsc.RGB, ntsc.Composite, ntsc.BadAdjust} {
		d := ntsc.NewDecoder()
		d.SetPalette(testPalette)
		d.SetPreset(p)

		d.EnableThreading(false)
		single := make([]uint32, ntsc.OutWidth(width)*height)
		d.Render(frame, width, height, single, ntsc.OutWidth(width), nil)

		d.EnableThreading(true)
		for _, w := range []int{2, 3, 8, 64} {
			d.SetWorkers(w)
			threaded := make([]uint32, ntsc.OutWidth(width)*height)
			d.Render(frame, width, height, threaded, ntsc.OutWidth(width), nil)
			if diff := deep.Equal(single, threaded); diff != nil {
				t.Errorf("%s with %d workers: %v", p, w, diff)
			}
		}

		// rendering is repeatable
		again := make([]uint32, ntsc.OutWidth(width)*height)
		d.Render(frame, width, height, again, ntsc.OutWidth(width), nil)
		if diff := deep.Equal(single, again); diff != nil {
			t.Errorf("%s repeated: %v", p, diff)
		}
	}
}

// the blend buffer is updated in place by every worker
func TestDeterminismWithBlend(t *testing.T) {
	const width = signal.FrameBufferWidth
	const height = 50

	first := stripes(width, height)
	second := flat(width, height, 0x00)

	var b phosphor.Blender
	b.Initialize(true, 60)

	render := func(threading bool, workers int) ([]uint32, []uint32) {
		d := ntsc.NewDecoder()
		d.SetPalette(testPalette)
		d.SetPreset(ntsc.Composite)
		d.SetPhosphor(&b)
		d.EnableThreading(threading)
		if workers > 0 {
			d.SetWorkers(workers)
		}

		blend := make([]uint32, ntsc.OutWidth(width)*height)
		out := make([]uint32, ntsc.OutWidth(width)*height)
		d.Render(first, width, height, out, ntsc.OutWidth(width), blend)
		d.Render(second, width, height, out, ntsc.OutWidth(width), blend)
		return out, blend
	}

	single, singleBlend := render(false, 0)

	// the stripes persist into the black frame
	var lit bool
	for _, p := range single {
		if p != 0 {
			lit = true
			break
		}
	}
	test.ExpectSuccess(t, lit)

	for _, w := range []int{2, 3, 8, 64} {
		out, blend := render(true, w)
		if diff := deep.Equal(single, out); diff != nil {
			t.Errorf("output with %d workers: %v", w, diff)
		}
		if diff := deep.Equal(singleBlend, blend); diff != nil {
			t.Errorf("blend buffer with %d workers: %v", w, diff)
		}
	}
}

func TestArtifacts(t *testing.T) {
	const width = 32
	const height = 2

	frame := stripes(width, height)

	render := func(p ntsc.Preset) []uint32 {
		d := ntsc.NewDecoder()
		d.SetPalette(testPalette)
		d.SetPreset(p)
		out := make([]uint32, ntsc.OutWidth(width)*height)
		d.Render(frame, width, height, out, ntsc.OutWidth(width), nil)
		return out
	}

	// composite and rgb connections produce different images for a frame with
	// sharp colour changes
	rgb := render(ntsc.RGB)
	composite := render(ntsc.Composite)
	if deep.Equal(rgb, composite) == nil {
		t.Errorf("composite output is the same as rgb output: %s", spew.Sdump(rgb[:8]))
	}
}

func TestPitch(t *testing.T) {
	const width = 8
	const height = 3
	const pitch = 20

	d := ntsc.NewDecoder()
	d.SetPalette(testPalette)
	d.SetPreset(ntsc.RGB)

	out := make([]uint32, pitch*height)
	for i := range out {
		out[i] = 0xdeadbeef
	}
	d.Render(flat(width, height, 0x04), width, height, out, pitch, nil)

	for y := range height {
		for x := range pitch {
			if x < ntsc.OutWidth(width) {
				test.ExpectEquality(t, out[y*pitch+x], uint32(0xffffff), x, y)
			} else {
				test.ExpectEquality(t, out[y*pitch+x], uint32(0xdeadbeef), x, y)
			}
		}
	}
}

func TestBlend(t *testing.T) {
	const width = 4
	const height = 2

	var b phosphor.Blender
	b.Initialize(true, 100)

	d := ntsc.NewDecoder()
	d.SetPalette(testPalette)
	d.SetPreset(ntsc.RGB)
	d.SetPhosphor(&b)

	blend := make([]uint32, ntsc.OutWidth(width)*height)
	out := make([]uint32, ntsc.OutWidth(width)*height)

	d.Render(flat(width, height, 0x04), width, height, out, ntsc.OutWidth(width), blend)
	test.ExpectEquality(t, out[0], uint32(0xffffff))
	test.ExpectEquality(t, blend[0], uint32(0xffffff))

	// the white frame persists after a black frame
	d.Render(flat(width, height, 0x00), width, height, out, ntsc.OutWidth(width), blend)
	for i := range out {
		test.ExpectEquality(t, out[i], uint32(0xffffff), i)
	}

	// without a blend buffer the black frame is shown
	d.Render(flat(width, height, 0x00), width, height, out, ntsc.OutWidth(width), nil)
	test.ExpectEquality(t, out[0], uint32(0x000000))
}

func TestZeroDimensions(t *testing.T) {
	d := ntsc.NewDecoder()
	d.SetPalette(testPalette)
	d.SetPreset(ntsc.Composite)

	out := []uint32{0x123456}
	d.Render(nil, 0, 10, out, 0, nil)
	d.Render(nil, 10, 0, out, 0, nil)
	test.ExpectEquality(t, out[0], uint32(0x123456))
	test.ExpectEquality(t, ntsc.OutWidth(160), 320)
}

func TestMismatch(t *testing.T) {
	d := ntsc.NewDecoder()
	d.SetPreset(ntsc.Composite)

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()

	out := make([]uint32, 10)
	d.Render(flat(4, 4, 0), 4, 4, out, ntsc.OutWidth(4), nil)
}

func TestPresetNames(t *testing.T) {
	test.DemandEquality(t, len(ntsc.PresetNames()), int(ntsc.NumPresets))

	p, ok := ntsc.PresetFromName(" SVideo ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, ntsc.SVideo)

	p, ok = ntsc.PresetFromName("pal")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, p, ntsc.DefaultPreset)

	for i, n := range ntsc.PresetNames() {
		p, ok := ntsc.PresetFromName(n)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, p, ntsc.Preset(i))
	}
}
