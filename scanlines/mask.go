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

// Package scanlines creates the overlay that simulates the visible gaps
// between the scan lines of a CRT.
//
// There are four named mask patterns. Each pattern is a small table of texels
// that is tiled to cover the output. Texels are black with only the alpha
// channel varying, so that the overlay darkens whatever is beneath it.
package scanlines

import (
	"fmt"
	"strings"
)

// Mask identifies one of the scanline patterns.
type Mask int

// List of valid Mask values.
const (
	Standard Mask = iota
	Thin
	Pixelated
	MAME
	NumMasks
)

// DefaultMask is used when a Mask cannot be determined from a setting.
const DefaultMask = Standard

// String returns the name of the mask as used in the preferences file.
func (m Mask) String() string {
	switch m {
	case Standard:
		return "standard"
	case Thin:
		return "thin"
	case Pixelated:
		return "pixels"
	case MAME:
		return "mame"
	}
	return fmt.Sprintf("unknown mask (%d)", int(m))
}

// Label returns the quoted name of the mask suitable for presentation to the
// user.
func (m Mask) Label() string {
	switch m {
	case Standard:
		return "'Standard'"
	case Thin:
		return "'Thin lines'"
	case Pixelated:
		return "'Pixelated'"
	case MAME:
		return "'MAME'"
	}
	return "'Unknown'"
}

// FromSetting returns the Mask for the name used in the preferences file. An
// unrecognised name results in DefaultMask.
func FromSetting(s string) Mask {
	s = strings.ToLower(strings.TrimSpace(s))
	for m := range NumMasks {
		if m.String() == s {
			return m
		}
	}
	return DefaultMask
}

// Settings returns the preference names of all masks, in cycle order.
func Settings() []string {
	s := make([]string, 0, NumMasks)
	for m := range NumMasks {
		s = append(s, m.String())
	}
	return s
}

// Cycle returns the mask that is direction steps away from current. The
// direction can be negative and the result wraps around. A direction of zero
// returns current, or DefaultMask if current is not valid.
func Cycle(current Mask, direction int) Mask {
	if current < 0 || current >= NumMasks {
		current = DefaultMask
	}
	m := (int(current) + direction) % int(NumMasks)
	if m < 0 {
		m += int(NumMasks)
	}
	return Mask(m)
}
