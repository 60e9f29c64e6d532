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
	"fmt"
	"strings"

	"github.com/jetsetilly/tvsurface/logger"
	"github.com/jetsetilly/tvsurface/ntsc"
	"github.com/jetsetilly/tvsurface/scanlines"
	"github.com/jetsetilly/tvsurface/signal"
	"github.com/jetsetilly/tvsurface/surface"
)

// the amount the scanline intensity changes with each step of
// ChangeScanlineIntensity(), in percent
const scanlineStep = 2

// changes to settings are saved immediately
func (tv *TVSurface) save() {
	if err := tv.prefs.Save(); err != nil {
		logger.Log(logger.Allow, "tvsurface", err)
	}
}

// SetNTSC selects the composite decoder preset. The Off preset disables the
// composite decoder. If show is true a message is sent to the Messenger.
func (tv *TVSurface) SetNTSC(preset ntsc.Preset, show bool) {
	if !preset.Valid() {
		preset = ntsc.DefaultPreset
	}

	var msg string
	if preset == ntsc.Off {
		tv.EnableNTSC(false)
		msg = "TV filtering disabled"
	} else {
		tv.EnableNTSC(true)
		msg = fmt.Sprintf("TV filtering (%s mode)", tv.ntsc.SetPreset(preset))
	}

	_ = tv.prefs.Filter.Set(int(preset))
	tv.save()

	if show {
		tv.msgr.ShowTextMessage(msg)
	}
}

// NTSCPreset returns the preset stored in the preferences.
func (tv *TVSurface) NTSCPreset() ntsc.Preset {
	return ntsc.PresetFromSetting(tv.prefs.Filter.Get().(int))
}

// ChangeNTSC moves to the preset that is direction steps away from the
// current preset. The list of presets wraps around.
func (tv *TVSurface) ChangeNTSC(direction int) {
	tv.SetNTSC(ntsc.CyclePreset(tv.NTSCPreset(), direction), true)
}

// SetNTSCAdjustable selects the adjustable that is direction steps away from
// the currently selected adjustable. The Custom preset is selected.
func (tv *TVSurface) SetNTSCAdjustable(direction int) {
	tv.SetNTSC(ntsc.Custom, false)
	tv.msgr.ShowGaugeMessage(tv.ntsc.SelectAdjustable(direction))
}

// ChangeNTSCAdjustable changes the adjustable by one step in the specified
// direction. The Custom preset is selected.
func (tv *TVSurface) ChangeNTSCAdjustable(adj ntsc.Adjustable, direction int) {
	tv.SetNTSC(ntsc.Custom, false)
	label, value, v := tv.ntsc.ChangeAdjustable(adj, direction)
	tv.save()
	tv.msgr.ShowGaugeMessage(label, value, v)
}

// ChangeCurrentNTSCAdjustable changes the selected adjustable by one step in
// the specified direction. The Custom preset is selected.
func (tv *TVSurface) ChangeCurrentNTSCAdjustable(direction int) {
	tv.SetNTSC(ntsc.Custom, false)
	label, value, v := tv.ntsc.ChangeCurrentAdjustable(direction)
	tv.save()
	tv.msgr.ShowGaugeMessage(label, value, v)
}

// ChangeScanlineIntensity changes the scanline intensity by direction steps.
// The intensity is clamped to the range 0 to 100.
func (tv *TVSurface) ChangeScanlineIntensity(direction int) {
	tv.SetScanlineIntensity(tv.slineSurface.Attributes().BlendAlpha + direction*scanlineStep)
}

// SetScanlineIntensity sets the scanline intensity. The value is clamped to
// the range 0 to 100. An intensity of zero disables scanlines.
func (tv *TVSurface) SetScanlineIntensity(intensity int) {
	intensity = max(0, min(intensity, 100))

	attr := tv.slineSurface.Attributes()
	attr.BlendAlpha = intensity
	tv.slineSurface.ApplyAttributes()

	_ = tv.prefs.Scanlines.Set(intensity)
	tv.save()

	tv.EnableNTSC(tv.NTSCEnabled())

	value := "Off"
	if intensity > 0 {
		value = fmt.Sprintf("%d%%", intensity)
	}
	tv.msgr.ShowGaugeMessage("Scanline intensity", value, intensity)
}

// ScanlineIntensity returns the current scanline intensity.
func (tv *TVSurface) ScanlineIntensity() int {
	return tv.prefs.Scanlines.Get().(int)
}

// ScanlineMask returns the current scanline mask.
func (tv *TVSurface) ScanlineMask() scanlines.Mask {
	return tv.prefs.Mask()
}

// CycleScanlineMask moves to the scanline mask that is direction steps away
// from the current mask. A direction of zero shows the current mask without
// changing it.
func (tv *TVSurface) CycleScanlineMask(direction int) error {
	mask := tv.ScanlineMask()

	if direction != 0 {
		mask = scanlines.Cycle(mask, direction)
		_ = tv.prefs.ScanMask.Set(mask.String())
		tv.save()

		err := tv.createScanlineSurface()
		if err != nil {
			return err
		}
	}

	tv.msgr.ShowTextMessage(fmt.Sprintf("Scanline pattern %s", mask.Label()))

	return nil
}

// EnablePhosphor enables or disables phosphor blending. If the state has
// changed the phosphor buffer is cleared and the preferences are saved.
func (tv *TVSurface) EnablePhosphor(enable bool, level int) {
	if tv.phosphor.Initialize(enable, level) {
		tv.updateFilter()
		clear(tv.rgb)

		_ = tv.prefs.Phosphor.Set(tv.phosphor.Enabled())
		_ = tv.prefs.PhosphorBlend.Set(tv.phosphor.Level())
		tv.save()
	}
}

// PhosphorEnabled returns true if phosphor blending is enabled.
func (tv *TVSurface) PhosphorEnabled() bool {
	return tv.phosphor.Enabled()
}

// PhosphorLevel returns the phosphor blend level.
func (tv *TVSurface) PhosphorLevel() int {
	return tv.phosphor.Level()
}

// EnableNTSC enables or disables the composite decoder. The phosphor buffer is
// cleared and the scanline attributes are reapplied.
func (tv *TVSurface) EnableNTSC(enable bool) {
	tv.composite = enable
	tv.updateFilter()

	w := signal.FrameBufferWidth
	if enable {
		w = ntsc.OutWidth(signal.FrameBufferWidth)
	}

	sw, sh := tv.tiaSurface.SrcSize()
	if w != sw || tv.height() != sh {
		tv.tiaSurface.SetSrcSize(w, tv.height())
		tv.tiaSurface.Invalidate()
	}

	intensity := tv.prefs.Scanlines.Get().(int)
	tv.scanlinesEnabled = intensity > 0
	attr := tv.slineSurface.Attributes()
	attr.Blending = tv.scanlinesEnabled
	attr.BlendAlpha = intensity
	tv.slineSurface.ApplyAttributes()

	clear(tv.rgb)
}

// NTSCEnabled returns true if the composite decoder is enabled.
func (tv *TVSurface) NTSCEnabled() bool {
	return tv.composite
}

// EffectsInfo returns a description of the current TV effects.
func (tv *TVSurface) EffectsInfo() string {
	var s strings.Builder

	intensity := tv.slineSurface.Attributes().BlendAlpha

	switch tv.filter {
	case Normal:
		s.WriteString("Disabled, normal mode")
	case Phosphor:
		s.WriteString("Disabled, phosphor mode")
	case CompositeNormal:
		fmt.Fprintf(&s, "%s, scanlines=%d", tv.ntsc.Preset(), intensity)
	case CompositePhosphor:
		fmt.Fprintf(&s, "%s, phosphor, scanlines=%d", tv.ntsc.Preset(), intensity)
	}

	fmt.Fprintf(&s, ", inter=%s", enabled(tv.prefs.Interpolate.Get().(bool)))
	fmt.Fprintf(&s, ", aspect correction=%s", enabled(tv.CorrectAspect()))

	return s.String()
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

// UpdateSurfaceSettings applies the interpolation preference to the surfaces.
func (tv *TVSurface) UpdateSurfaceSettings() {
	interp := surface.InterpolationFor(tv.prefs.Interpolate.Get().(bool))
	tv.tiaSurface.SetInterpolation(interp)
	tv.slineSurface.SetInterpolation(interp)
}

// CorrectAspect returns true if the image should be corrected for the aspect
// ratio of the television.
func (tv *TVSurface) CorrectAspect() bool {
	return tv.prefs.CorrectAspect.Get().(bool)
}

// EnableThreading enables or disables threading in the composite decoder. The
// preference is updated.
func (tv *TVSurface) EnableThreading(enable bool) {
	tv.ntsc.EnableThreading(enable)
	_ = tv.prefs.Threads.Set(enable)
	tv.save()
}
