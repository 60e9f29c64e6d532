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
	"strings"
)

// Preset is a named Setup.
type Preset int

// List of valid Preset values. The order is the order used by CyclePreset().
const (
	Off Preset = iota
	RGB
	SVideo
	Composite
	BadAdjust
	Custom
	NumPresets
)

// DefaultPreset is used when a Preset cannot be determined from a setting.
const DefaultPreset = Off

// String returns the label for the preset.
func (p Preset) String() string {
	switch p {
	case Off:
		return "Disabled"
	case RGB:
		return "RGB"
	case SVideo:
		return "S-VIDEO"
	case Composite:
		return "COMPOSITE"
	case BadAdjust:
		return "BAD ADJUST"
	case Custom:
		return "CUSTOM"
	}
	return fmt.Sprintf("unknown preset (%d)", int(p))
}

// Valid returns false if the Preset is out of range.
func (p Preset) Valid() bool {
	return p >= Off && p < NumPresets
}

// PresetFromSetting converts the integer stored in the preferences file to a
// Preset. An out of range value results in DefaultPreset.
func PresetFromSetting(v int) Preset {
	p := Preset(v)
	if !p.Valid() {
		return DefaultPreset
	}
	return p
}

// the names used to select a preset on the command line
var presetNames = [NumPresets]string{"off", "rgb", "svideo", "composite", "badadjust", "custom"}

// PresetNames returns the list of names accepted by PresetFromName().
func PresetNames() []string {
	return presetNames[:]
}

// PresetFromName returns the Preset for one of the names returned by
// PresetNames(). Matching is not case sensitive. Returns false if the name is
// not recognised.
func PresetFromName(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for i, n := range presetNames {
		if strings.EqualFold(n, name) {
			return Preset(i), true
		}
	}
	return DefaultPreset, false
}

// CyclePreset returns the preset that is direction steps away from current,
// wrapping around at either end of the list. A direction of zero returns
// current.
func CyclePreset(current Preset, direction int) Preset {
	if !current.Valid() {
		current = DefaultPreset
	}
	p := (int(current) + direction) % int(NumPresets)
	if p < 0 {
		p += int(NumPresets)
	}
	return Preset(p)
}

// the setups for the fixed presets. values not specified are neutral
var (
	rgbSetup = Setup{
		Sharpness:  0.2,
		Resolution: 0.7,
		Artifacts:  -1.0,
		Fringing:   -1.0,
		Bleed:      -1.0,
	}

	svideoSetup = Setup{
		Sharpness:  0.2,
		Resolution: 0.2,
		Artifacts:  -1.0,
		Fringing:   -1.0,
	}

	compositeSetup = Setup{}

	badAdjustSetup = Setup{
		Hue:        0.1,
		Saturation: -0.3,
		Contrast:   0.3,
		Brightness: 0.25,
		Sharpness:  0.2,
		Resolution: 0.1,
		Artifacts:  0.5,
		Fringing:   0.5,
		Bleed:      0.5,
	}
)

// PresetSetup returns the Setup for one of the fixed presets. The Off and
// Custom presets have no fixed values and return false.
func PresetSetup(p Preset) (Setup, bool) {
	switch p {
	case RGB:
		return rgbSetup, true
	case SVideo:
		return svideoSetup, true
	case Composite:
		return compositeSetup, true
	case BadAdjust:
		return badAdjustSetup, true
	}
	return Setup{}, false
}
