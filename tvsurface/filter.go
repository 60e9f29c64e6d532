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

import "fmt"

// Filter is the method used to create pixels for the TV surface.
type Filter int

// List of valid Filter values.
const (
	Normal Filter = iota
	Phosphor
	CompositeNormal
	CompositePhosphor
)

func (f Filter) String() string {
	switch f {
	case Normal:
		return "normal"
	case Phosphor:
		return "phosphor"
	case CompositeNormal:
		return "composite"
	case CompositePhosphor:
		return "composite+phosphor"
	}
	return fmt.Sprintf("unknown filter (%d)", int(f))
}

// Composite returns true if the filter uses the composite decoder.
func (f Filter) Composite() bool {
	return f == CompositeNormal || f == CompositePhosphor
}

// Phosphor returns true if the filter uses phosphor blending.
func (f Filter) Phosphor() bool {
	return f == Phosphor || f == CompositePhosphor
}

// FilterFor returns the Filter for the combination of composite decoding and
// phosphor blending.
func FilterFor(composite bool, phosphor bool) Filter {
	if composite {
		if phosphor {
			return CompositePhosphor
		}
		return CompositeNormal
	}
	if phosphor {
		return Phosphor
	}
	return Normal
}
