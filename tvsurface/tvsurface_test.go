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

package tvsurface_test

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tvsurface/notifications"
	"github.com/jetsetilly/tvsurface/ntsc"
	"github.com/jetsetilly/tvsurface/palette"
	"github.com/jetsetilly/tvsurface/phosphor"
	"github.com/jetsetilly/tvsurface/prefs"
	"github.com/jetsetilly/tvsurface/scanlines"
	"github.com/jetsetilly/tvsurface/signal"
	"github.com/jetsetilly/tvsurface/snapshot"
	"github.com/jetsetilly/tvsurface/source"
	"github.com/jetsetilly/tvsurface/surface"
	"github.com/jetsetilly/tvsurface/test"
	"github.com/jetsetilly/tvsurface/tvsurface"
)

// messages records everything sent to the Messenger
type messages struct {
	text    []string
	gauge   []string
	notices []notifications.Notice
}

func (m *messages) ShowTextMessage(msg string) {
	m.text = append(m.text, msg)
}

func (m *messages) ShowGaugeMessage(label string, value string, _ int) {
	m.gauge = append(m.gauge, label+": "+value)
}

func (m *messages) Notify(notice notifications.Notice) error {
	m.notices = append(m.notices, notice)
	return nil
}

func (m *messages) lastText() string {
	if len(m.text) == 0 {
		return ""
	}
	return m.text[len(m.text)-1]
}

func (m *messages) lastGauge() string {
	if len(m.gauge) == 0 {
		return ""
	}
	return m.gauge[len(m.gauge)-1]
}

// stills records every still given to the Snapshotter
type stills struct {
	saved []snapshot.Still
}

func (s *stills) Save(still snapshot.Still) error {
	s.saved = append(s.saved, still)
	return nil
}

const (
	white = 0xffffff
	black = 0x000000
	red   = 0xff0000
	green = 0x00ff00
)

type harness struct {
	tv   *tvsurface.TVSurface
	msgs *messages
	path string
}

func newHarness(t *testing.T, frame signal.IndexedFrame, width int, height int) *harness {
	t.Helper()

	path := filepath.Join(t.TempDir(), "preferences")
	return newHarnessWithPath(t, path, frame, width, height)
}

func newHarnessWithPath(t *testing.T, path string, frame signal.IndexedFrame, width int, height int) *harness {
	t.Helper()

	p, err := tvsurface.NewPreferences(path)
	test.DemandSuccess(t, err)

	h := &harness{
		msgs: &messages{},
		path: path,
	}

	h.tv, err = tvsurface.NewTVSurface(surface.NewImage(640, 480), p, h.msgs)
	test.DemandSuccess(t, err)

	src, err := source.NewStatic(width, height, frame)
	test.DemandSuccess(t, err)

	err = h.tv.Initialize(src, image.Rect(0, 0, 640, 480))
	test.DemandSuccess(t, err)

	h.tv.SetPalette(palette.Palettes{
		TIA: palette.Custom([]uint32{red, green, white, black}),
		RGB: palette.Custom([]uint32{red, green, white, black}),
	})

	return h
}

func TestFilterTable(t *testing.T) {
	h := newHarness(t, make(signal.IndexedFrame, 2), 2, 1)
	tv := h.tv

	test.ExpectEquality(t, tv.Filter(), tvsurface.Normal)

	tv.EnablePhosphor(true, 50)
	test.ExpectEquality(t, tv.Filter(), tvsurface.Phosphor)

	tv.SetNTSC(ntsc.Composite, false)
	test.ExpectEquality(t, tv.Filter(), tvsurface.CompositePhosphor)

	tv.EnablePhosphor(false, 50)
	test.ExpectEquality(t, tv.Filter(), tvsurface.CompositeNormal)

	tv.SetNTSC(ntsc.Off, false)
	test.ExpectEquality(t, tv.Filter(), tvsurface.Normal)

	// filter changes are notified
	test.ExpectEquality(t, len(h.msgs.notices) >= 4, true)
	for _, n := range h.msgs.notices {
		test.ExpectEquality(t, n == notifications.NotifyFilterChanged || n == notifications.NotifyMaskRebuilt, true)
	}
}

func TestNormal(t *testing.T) {
	h := newHarness(t, signal.IndexedFrame{0, 1}, 2, 1)

	err := h.tv.Render(false)
	test.DemandSuccess(t, err)

	s := h.tv.RenderForSnapshot()
	test.DemandEquality(t, len(s.Pixels), 4)
	test.ExpectEquality(t, s.Width, 4)
	test.ExpectEquality(t, s.Height, 1)
	test.ExpectEquality(t, s.Pixels[0], uint32(red))
	test.ExpectEquality(t, s.Pixels[1], uint32(red))
	test.ExpectEquality(t, s.Pixels[2], uint32(green))
	test.ExpectEquality(t, s.Pixels[3], uint32(green))

	test.ExpectEquality(t, h.tv.MapIndexedPixel(0, signal.ShiftBit), uint32(green))
}

func TestPhosphorPersistence(t *testing.T) {
	fb := signal.IndexedFrame{2, 2}
	h := newHarness(t, fb, 2, 1)

	h.tv.EnablePhosphor(true, 100)
	test.DemandSuccess(t, h.tv.Render(false))

	// the previous frame persists at a blend level of 100
	fb[0] = 3
	fb[1] = 3
	test.DemandSuccess(t, h.tv.Render(false))

	h.tv.SaveSnapshot()
	test.DemandSuccess(t, h.tv.Render(false))
	s := h.tv.RenderForSnapshot()
	test.ExpectEquality(t, s.Pixels[0], uint32(white))

	// changing the filter clears the phosphor buffer
	h.tv.SetNTSC(ntsc.RGB, false)
	h.tv.SetNTSC(ntsc.Off, false)
	test.DemandSuccess(t, h.tv.Render(false))

	st := &stills{}
	h.tv.SetSnapshotter(st)
	h.tv.SaveSnapshot()
	test.DemandSuccess(t, h.tv.Render(false))
	test.DemandEquality(t, len(st.saved), 1)
	test.ExpectEquality(t, st.saved[0].Pixels[0], uint32(black))
}

func TestPhosphorStill(t *testing.T) {
	fb := signal.IndexedFrame{2, 2}
	h := newHarness(t, fb, 2, 1)

	st := &stills{}
	h.tv.SetSnapshotter(st)

	// at a blend level of zero nothing persists but the still is the mean of
	// the previous and the current frame
	h.tv.EnablePhosphor(true, 0)
	test.DemandSuccess(t, h.tv.Render(false))

	fb[0] = 3
	fb[1] = 3
	h.tv.SaveSnapshot()
	test.DemandSuccess(t, h.tv.Render(false))

	test.DemandEquality(t, len(st.saved), 1)
	test.ExpectEquality(t, st.saved[0].Pixels[0], uint32(0x7f7f7f))
	test.ExpectEquality(t, st.saved[0].Pixels[1], uint32(0x7f7f7f))
}

func TestPhosphorPreferences(t *testing.T) {
	h := newHarness(t, make(signal.IndexedFrame, 2), 2, 1)
	h.tv.EnablePhosphor(true, 80)

	h2 := newHarnessWithPath(t, h.path, make(signal.IndexedFrame, 2), 2, 1)
	test.ExpectSuccess(t, h2.tv.PhosphorEnabled())
	test.ExpectEquality(t, h2.tv.PhosphorLevel(), 80)
	test.ExpectEquality(t, h2.tv.Filter(), tvsurface.Phosphor)

	h2.tv.EnablePhosphor(false, 80)
	h3 := newHarnessWithPath(t, h.path, make(signal.IndexedFrame, 2), 2, 1)
	test.ExpectFailure(t, h3.tv.PhosphorEnabled())
}

func TestPhosphorLevelOutOfRange(t *testing.T) {
	prefs.PushCommandLineStack("tv.phosphor::true; tv.phosblend::150")
	defer prefs.PopCommandLineStack()

	h := newHarness(t, make(signal.IndexedFrame, 2), 2, 1)
	test.ExpectSuccess(t, h.tv.PhosphorEnabled())
	test.ExpectEquality(t, h.tv.PhosphorLevel(), phosphor.DefaultLevel)
}

func TestPresetCycle(t *testing.T) {
	h := newHarness(t, make(signal.IndexedFrame, 2), 2, 1)
	tv := h.tv

	test.ExpectEquality(t, tv.NTSCPreset(), ntsc.Off)

	tv.ChangeNTSC(1)
	test.ExpectEquality(t, tv.NTSCPreset(), ntsc.RGB)
	test.ExpectEquality(t, h.msgs.lastText(), "TV filtering (RGB mode)")
	test.ExpectSuccess(t, tv.NTSCEnabled())

	for range int(ntsc.NumPresets) - 1 {
		tv.ChangeNTSC(1)
	}
	test.ExpectEquality(t, tv.NTSCPreset(), ntsc.Off)
	test.ExpectEquality(t, h.msgs.lastText(), "TV filtering disabled")
	test.ExpectFailure(t, tv.NTSCEnabled())

	tv.ChangeNTSC(-1)
	test.ExpectEquality(t, tv.NTSCPreset(), ntsc.Custom)
	tv.ChangeNTSC(1)
	test.ExpectEquality(t, tv.NTSCPreset(), ntsc.Off)

	// adjusting a value selects the custom preset
	tv.ChangeNTSCAdjustable(ntsc.Sharpness, 1)
	test.ExpectEquality(t, tv.NTSCPreset(), ntsc.Custom)
	test.ExpectEquality(t, tv.Filter(), tvsurface.CompositeNormal)
}

func TestComposite(t *testing.T) {
	fb := make(signal.IndexedFrame, 8*2)
	for i := range fb {
		fb[i] = 2
	}
	h := newHarness(t, fb, 8, 2)

	h.tv.SetNTSC(ntsc.RGB, false)
	test.DemandSuccess(t, h.tv.Render(false))

	s := h.tv.RenderForSnapshot()
	test.ExpectEquality(t, s.Width, ntsc.OutWidth(8))
	test.ExpectEquality(t, s.Height, 2)
	test.ExpectEquality(t, len(s.Pixels), ntsc.OutWidth(8)*2)
}

func TestScanlineIntensity(t *testing.T) {
	h := newHarness(t, make(signal.IndexedFrame, 2), 2, 1)
	tv := h.tv

	test.ExpectEquality(t, tv.ScanlineIntensity(), 25)

	tv.SetScanlineIntensity(150)
	test.ExpectEquality(t, tv.ScanlineIntensity(), 100)
	test.ExpectEquality(t, h.msgs.lastGauge(), "Scanline intensity: 100%")

	tv.ChangeScanlineIntensity(1)
	test.ExpectEquality(t, tv.ScanlineIntensity(), 100)

	tv.ChangeScanlineIntensity(-1)
	test.ExpectEquality(t, tv.ScanlineIntensity(), 98)

	tv.SetScanlineIntensity(-10)
	test.ExpectEquality(t, tv.ScanlineIntensity(), 0)
	test.ExpectEquality(t, h.msgs.lastGauge(), "Scanline intensity: Off")

	tv.ChangeScanlineIntensity(-1)
	test.ExpectEquality(t, tv.ScanlineIntensity(), 0)
}

func TestScanlineMask(t *testing.T) {
	h := newHarness(t, make(signal.IndexedFrame, 2), 2, 1)

	test.ExpectEquality(t, h.tv.ScanlineMask(), scanlines.Standard)

	err := h.tv.CycleScanlineMask(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.msgs.lastText(), "Scanline pattern 'Standard'")

	err = h.tv.CycleScanlineMask(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.tv.ScanlineMask(), scanlines.Thin)
	test.ExpectEquality(t, h.msgs.lastText(), "Scanline pattern 'Thin lines'")

	err = h.tv.CycleScanlineMask(-2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.tv.ScanlineMask(), scanlines.MAME)

	// the mask is saved to the preferences file
	h2 := newHarnessWithPath(t, h.path, make(signal.IndexedFrame, 2), 2, 1)
	test.ExpectEquality(t, h2.tv.ScanlineMask(), scanlines.MAME)
}

func TestEffectsInfo(t *testing.T) {
	h := newHarness(t, make(signal.IndexedFrame, 2), 2, 1)
	tv := h.tv

	test.ExpectEquality(t, tv.EffectsInfo(), "Disabled, normal mode, inter=disabled, aspect correction=enabled")

	tv.EnablePhosphor(true, 50)
	test.ExpectEquality(t, tv.EffectsInfo(), "Disabled, phosphor mode, inter=disabled, aspect correction=enabled")

	tv.SetNTSC(ntsc.SVideo, false)
	test.ExpectEquality(t, tv.EffectsInfo(), "S-VIDEO, phosphor, scanlines=25, inter=disabled, aspect correction=enabled")

	tv.EnablePhosphor(false, 50)
	tv.SetScanlineIntensity(40)
	test.ExpectEquality(t, tv.EffectsInfo(), "S-VIDEO, scanlines=40, inter=disabled, aspect correction=enabled")
}

func TestSnapshot(t *testing.T) {
	h := newHarness(t, signal.IndexedFrame{0, 1}, 2, 1)

	st := &stills{}
	h.tv.SetSnapshotter(st)

	test.DemandSuccess(t, h.tv.Render(false))
	test.ExpectEquality(t, len(st.saved), 0)

	h.tv.SaveSnapshot()
	test.DemandSuccess(t, h.tv.Render(true))
	test.DemandEquality(t, len(st.saved), 1)
	test.ExpectEquality(t, st.saved[0].Width, 4)
	test.ExpectEquality(t, st.saved[0].Height, 1)
	test.ExpectEquality(t, h.msgs.lastText(), "Snapshot saved")

	// the request is consumed
	test.DemandSuccess(t, h.tv.Render(false))
	test.ExpectEquality(t, len(st.saved), 1)
}

// a source where the frame buffer does not match the reported dimensions
type mismatch struct{}

func (mismatch) FrameBuffer() signal.IndexedFrame { return make(signal.IndexedFrame, 3) }
func (mismatch) Width() int                       { return 2 }
func (mismatch) Height() int                      { return 2 }

func TestMismatch(t *testing.T) {
	h := newHarness(t, make(signal.IndexedFrame, 2), 2, 1)
	test.DemandSuccess(t, h.tv.Initialize(mismatch{}, image.Rect(0, 0, 320, 240)))

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	_ = h.tv.Render(false)
	t.Errorf("expected panic")
}
