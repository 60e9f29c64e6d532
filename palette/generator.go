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

package palette

import (
	"math"
	"strings"
	"sync"

	"github.com/jetsetilly/tvsurface/logger"
	"github.com/jetsetilly/tvsurface/prefs"
	"github.com/jetsetilly/tvsurface/signal"
)

// List of television specifications understood by the Generator.
const (
	SpecNTSC  = "NTSC"
	SpecPAL   = "PAL"
	SpecSECAM = "SECAM"
)

// the colour clocks of the video chip for each specification (in MHz)
const (
	ntscClock = 1.193182 * 3
	palClock  = 1.182298 * 3
)

// Phase values for the NTSC and PAL colour wheels, in degrees.
//
// The Field Service phase is what we get if we follow the "VCS Domestic Field
// Service Manual", page 3-9.
//
// The PAL default is the result of dividing the colour wheel equally by 15.
const (
	NTSCFieldService = 26.7
	PALDefault       = 24.0
)

// Default values for the colour adjustments.
const (
	DefaultBrightness = 0.949
	DefaultContrast   = 1.205
	DefaultSaturation = 0.874
	DefaultHue        = 0.0
	DefaultGamma      = 2.2
)

// the min/max values for the Y component. used to generate the luminosity
// range for hues 1 to 15
const (
	minY = 0.40
	maxY = 1.00
)

// Adjust contains the preference values that are applied to the TIA table.
type Adjust struct {
	Brightness prefs.Float
	Contrast   prefs.Float
	Saturation prefs.Float

	// hue rotation in degrees
	Hue prefs.Float
}

// Generator creates Palettes for the different television specifications.
// Generated palettes are cached until a preference value changes.
type Generator struct {
	crit  sync.Mutex
	valid bool
	cache Palettes

	// television specification. one of SpecNTSC, SpecPAL or SpecSECAM. any
	// other value is treated as SpecNTSC
	Spec prefs.String

	Adjust Adjust
	Gamma  prefs.Float

	NTSCPhase prefs.Float
	PALPhase  prefs.Float
}

// NewGenerator is the preferred method of initialisation for the Generator
// type.
func NewGenerator() *Generator {
	g := &Generator{}
	g.SetDefaults()

	invalidate := func(_ prefs.Value) error {
		g.crit.Lock()
		defer g.crit.Unlock()
		g.valid = false
		return nil
	}

	g.Spec.SetHookPost(invalidate)
	g.Adjust.Brightness.SetHookPost(invalidate)
	g.Adjust.Contrast.SetHookPost(invalidate)
	g.Adjust.Saturation.SetHookPost(invalidate)
	g.Adjust.Hue.SetHookPost(invalidate)
	g.Gamma.SetHookPost(invalidate)
	g.NTSCPhase.SetHookPost(invalidate)
	g.PALPhase.SetHookPost(invalidate)

	return g
}

// SetDefaults reverts all palette settings to default values.
func (g *Generator) SetDefaults() {
	g.Spec.Set(SpecNTSC)
	g.Adjust.Brightness.Set(DefaultBrightness)
	g.Adjust.Contrast.Set(DefaultContrast)
	g.Adjust.Saturation.Set(DefaultSaturation)
	g.Adjust.Hue.Set(DefaultHue)
	g.Gamma.Set(DefaultGamma)
	g.NTSCPhase.Set(NTSCFieldService)
	g.PALPhase.Set(PALDefault)
}

// AddToDisk registers the palette preferences with a prefs.Disk.
func (g *Generator) AddToDisk(dsk *prefs.Disk) error {
	entries := []struct {
		key string
		p   prefs.Pref
	}{
		{"palette.spec", &g.Spec},
		{"palette.brightness", &g.Adjust.Brightness},
		{"palette.contrast", &g.Adjust.Contrast},
		{"palette.saturation", &g.Adjust.Saturation},
		{"palette.hue", &g.Adjust.Hue},
		{"palette.gamma", &g.Gamma},
		{"palette.ntscphase", &g.NTSCPhase},
		{"palette.palphase", &g.PALPhase},
	}

	for _, e := range entries {
		if err := dsk.Add(e.key, e.p); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) spec() string {
	s := strings.ToUpper(strings.TrimSpace(g.Spec.String()))
	switch s {
	case SpecNTSC, SpecPAL, SpecSECAM:
		return s
	}
	return SpecNTSC
}

// Palettes returns the TIA and RGB tables for the current preferences.
func (g *Generator) Palettes() Palettes {
	g.crit.Lock()
	defer g.crit.Unlock()

	if g.valid {
		return g.cache
	}

	spec := g.spec()
	for i := 0; i < NumEntries; i += 2 {
		col := signal.ColorSignal(i)
		g.cache.TIA[i] = g.generate(spec, col, true)
		g.cache.RGB[i] = g.generate(spec, col, false)

		// the shifted entry is the colour loss version of the unshifted entry
		g.cache.TIA[i+1] = greyscale(g.cache.TIA[i])
		g.cache.RGB[i+1] = greyscale(g.cache.RGB[i])
	}
	g.valid = true

	logger.Logf(logger.Allow, "palette", "generated %s palette", spec)

	return g.cache
}

// generate a single entry for the specification. if adjust is false the
// brightness, contrast, saturation, hue and gamma settings are not applied
func (g *Generator) generate(spec string, col signal.ColorSignal, adjust bool) uint32 {
	lum := col.Luminance()
	hue := col.Hue()

	var Y, phi, saturation float64

	switch spec {
	case SpecPAL:
		// PAL creates a grayscale for hues 0, 1, 14 and 15
		if hue > 0x01 && hue < 0x0e {
			saturation = 0.3
		}

		// even-numbered hue numbers go in the opposite direction
		if hue&0x01 == 0x01 {
			phi = float64(hue) * -g.PALPhase.Get().(float64)
		} else {
			phi = (float64(hue) - 2) * g.PALPhase.Get().(float64)
		}
		phi += 180 - (palClock * 16)

	case SpecSECAM:
		// the hue nibble is ignored by SECAM consoles. lum 7 is completely
		// desaturated
		if lum > 0 && lum < 7 {
			saturation = 0.3
		}

		switch lum {
		case 1:
			phi = 225
		case 2:
			phi = 135
		case 3:
			phi = 180
		case 4:
			phi = 45
		case 5:
			phi = 270
		case 6:
			phi = 90
		}

		// treat luminance zero as hue zero so that it produces black
		if lum == 0 {
			hue = 0
		}

	default:
		// NTSC creates a grayscale for hue 0
		if hue != 0x00 {
			saturation = 0.3
		}

		// the colour burst reference is 180° by definition. the adjustment
		// by the colour clock puts hue 1 in the gold/orange section of the
		// colour wheel as described in the "Stella Programmer's Guide"
		phi = (float64(hue)-1)*-g.NTSCPhase.Get().(float64) + 180 - (ntscClock * 16)
	}

	// hue and luminance of zero is black
	if hue == 0x00 && lum == 0x00 {
		Y = 0.0
		saturation = 0.0
	} else {
		Y = minY + (float64(lum)/8)*(maxY-minY)
	}

	phi *= math.Pi / 180

	// the YUV model used by PAL and SECAM is handled the same as YIQ for the
	// purposes of adjustment
	var I, Q float64
	if spec == SpecNTSC {
		I = saturation * math.Sin(phi)
		Q = saturation * math.Cos(phi)
	} else {
		I = saturation * -math.Sin(phi)
		Q = saturation * -math.Cos(phi)
	}

	if adjust {
		Y, I, Q = AdjustYIQ(Y, I, Q,
			g.Adjust.Brightness.Get().(float64),
			g.Adjust.Contrast.Get().(float64),
			g.Adjust.Saturation.Get().(float64),
			g.Adjust.Hue.Get().(float64))
	}

	var R, G, B float64
	if spec == SpecNTSC {
		R = clamp(Y + (0.956 * I) + (0.619 * Q))
		G = clamp(Y - (0.272 * I) - (0.647 * Q))
		B = clamp(Y - (1.106 * I) + (1.703 * Q))
	} else {
		// YUV conversion values taken from the "SDTV with BT.470" section of:
		// https://en.wikipedia.org/w/index.php?title=Y%E2%80%B2UV&oldid=1249546174
		U, V := I, Q
		R = clamp(Y + (1.140 * V))
		G = clamp(Y - (0.395 * U) - (0.581 * V))
		B = clamp(Y + (2.033 * U))
	}

	if adjust {
		R, G, B = gammaCorrect(R, G, B, g.Gamma.Get().(float64))
	}

	return Pack(uint8(R*255+0.5), uint8(G*255+0.5), uint8(B*255+0.5))
}
