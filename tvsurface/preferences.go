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
	"github.com/jetsetilly/tvsurface/phosphor"
	"github.com/jetsetilly/tvsurface/prefs"
	"github.com/jetsetilly/tvsurface/scanlines"
)

// Preferences for the TVSurface. The values for the composite decoder and the
// palette are added to the same prefs.Disk by NewTVSurface().
type Preferences struct {
	dsk *prefs.Disk

	// the ntsc.Preset. stored as an integer
	Filter prefs.Int

	Phosphor      prefs.Bool
	PhosphorBlend prefs.Int

	// scanline intensity in percent. zero disables scanlines
	Scanlines prefs.Int

	// stored as one of the values returned by scanlines.Settings(). an
	// unrecognised value selects the default mask
	ScanMask *prefs.Generic
	mask     scanlines.Mask

	Interpolate   prefs.Bool
	CorrectAspect prefs.Bool

	// use more than one goroutine in the composite decoder
	Threads prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	filter        = 0
	phosphorOn    = false
	phosphorBlend = phosphor.DefaultLevel
	scanlineLevel = 25
	interpolate   = false
	correctAspect = true
	threads       = false
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The path is the preferences file to use. An empty path
// means the preferences are never saved.
//
// Values are not loaded until the Preferences are used by NewTVSurface().
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.ScanMask = prefs.NewGeneric(
		func(s string) error {
			p.mask = scanlines.FromSetting(s)
			return nil
		},
		func() string {
			return p.mask.String()
		},
	)
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("tv.filter", &p.Filter)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tv.phosphor", &p.Phosphor)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tv.phosblend", &p.PhosphorBlend)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tv.scanlines", &p.Scanlines)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tv.scanmask", p.ScanMask)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tia.inter", &p.Interpolate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tia.correct_aspect", &p.CorrectAspect)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("threads", &p.Threads)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Mask returns the scanline mask.
func (p *Preferences) Mask() scanlines.Mask {
	return scanlines.FromSetting(p.ScanMask.String())
}

// PhosphorLevel returns the phosphor blend level. A stored value outside the
// range 0 to 100 results in phosphor.DefaultLevel.
func (p *Preferences) PhosphorLevel() int {
	level := p.PhosphorBlend.Get().(int)
	if level < 0 || level > 100 {
		return phosphor.DefaultLevel
	}
	return level
}

// SetDefaults reverts all TV settings to default values.
func (p *Preferences) SetDefaults() {
	p.Filter.Set(filter)
	p.Phosphor.Set(phosphorOn)
	p.PhosphorBlend.Set(phosphorBlend)
	p.Scanlines.Set(scanlineLevel)
	p.ScanMask.Set(scanlines.DefaultMask.String())
	p.Interpolate.Set(interpolate)
	p.CorrectAspect.Set(correctAspect)
	p.Threads.Set(threads)
}

// Load TV preferences. Values pushed onto the command line stack take
// precedence if useCommandLine is true.
func (p *Preferences) Load(useCommandLine bool) error {
	return p.dsk.Load(useCommandLine)
}

// Save current TV preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Set a preference value by key. The key can be any key added to the
// preferences, including the keys for the composite decoder and the palette.
func (p *Preferences) Set(key string, value prefs.Value) error {
	return p.dsk.Set(key, value)
}

// Registrar is implemented by types that add their own values to the
// preferences.
type Registrar interface {
	AddToDisk(dsk *prefs.Disk) error
}

// Register adds the values of another type to the preferences. Values should
// be registered before the preferences are loaded.
func (p *Preferences) Register(r Registrar) error {
	return r.AddToDisk(p.dsk)
}
