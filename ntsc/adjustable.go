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
	"math"
)

// Adjustable identifies one of the values in a Setup.
type Adjustable int

// List of valid Adjustable values. The order is the order in which
// adjustables are selected by Decoder.SelectAdjustable().
const (
	Contrast Adjustable = iota
	Brightness
	Hue
	Saturation
	Gamma
	Sharpness
	Resolution
	Artifacts
	Fringing
	Bleed
	NumAdjustables
)

// String returns the label for the adjustable.
func (a Adjustable) String() string {
	switch a {
	case Contrast:
		return "Contrast"
	case Brightness:
		return "Brightness"
	case Hue:
		return "Hue"
	case Saturation:
		return "Saturation"
	case Gamma:
		return "Gamma"
	case Sharpness:
		return "Sharpness"
	case Resolution:
		return "Resolution"
	case Artifacts:
		return "Artifacts"
	case Fringing:
		return "Fringing"
	case Bleed:
		return "Bleeding"
	}
	return fmt.Sprintf("unknown adjustable (%d)", int(a))
}

// Setting returns the name used for the adjustable in the preferences file.
func (a Adjustable) Setting() string {
	switch a {
	case Contrast:
		return "tv.contrast"
	case Brightness:
		return "tv.brightness"
	case Hue:
		return "tv.hue"
	case Saturation:
		return "tv.saturation"
	case Gamma:
		return "tv.gamma"
	case Sharpness:
		return "tv.sharpness"
	case Resolution:
		return "tv.resolution"
	case Artifacts:
		return "tv.artifacts"
	case Fringing:
		return "tv.fringing"
	case Bleed:
		return "tv.bleed"
	}
	return ""
}

// Setup is a complete set of adjustable values. Every value is in the range
// -1.0 to 1.0 with 0.0 being the neutral setting.
type Setup struct {
	Contrast   float64
	Brightness float64
	Hue        float64
	Saturation float64
	Gamma      float64
	Sharpness  float64
	Resolution float64
	Artifacts  float64
	Fringing   float64
	Bleed      float64
}

func (s *Setup) field(a Adjustable) *float64 {
	switch a {
	case Contrast:
		return &s.Contrast
	case Brightness:
		return &s.Brightness
	case Hue:
		return &s.Hue
	case Saturation:
		return &s.Saturation
	case Gamma:
		return &s.Gamma
	case Sharpness:
		return &s.Sharpness
	case Resolution:
		return &s.Resolution
	case Artifacts:
		return &s.Artifacts
	case Fringing:
		return &s.Fringing
	case Bleed:
		return &s.Bleed
	}
	return nil
}

// Get returns the value of the adjustable. An invalid adjustable returns zero.
func (s Setup) Get(a Adjustable) float64 {
	if f := s.field(a); f != nil {
		return *f
	}
	return 0.0
}

// Set the value of the adjustable. The value is clamped to the range -1.0 to
// 1.0 and NaN is treated as zero.
func (s *Setup) Set(a Adjustable, v float64) {
	if f := s.field(a); f != nil {
		*f = clampAdjustable(v)
	}
}

// Percent returns the value of the adjustable as a percentage.
func (s Setup) Percent(a Adjustable) int {
	return toPercent(s.Get(a))
}

func clampAdjustable(v float64) float64 {
	if math.IsNaN(v) {
		return 0.0
	}
	return max(-1.0, min(v, 1.0))
}

// adjustables are presented as a percentage where 50% is the neutral value
func toPercent(v float64) int {
	return int(math.Round((clampAdjustable(v) + 1.0) * 50.0))
}

func fromPercent(p int) float64 {
	p = max(0, min(p, 100))
	return float64(p)/50.0 - 1.0
}

// the amount by which an adjustable changes with each step of
// ChangeAdjustable(), in percent
const adjustableStep = 2
