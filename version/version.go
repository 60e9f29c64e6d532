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

// Package version reports the version of the tvsurface binary. The version
// number is set by the linker when building a release. Otherwise the version
// is derived from the VCS information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// The name to use when referring to the application
const ApplicationName = "tvsurface"

// set with -ldflags "-X github.com/jetsetilly/tvsurface/version.number=v0.1.0"
var number string

type info struct {
	version  string
	revision string
}

var cached = sync.OnceValue(func() info {
	var vcs bool
	var inf info
	var modified bool

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, v := range bi.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if inf.revision == "" {
		inf.revision = "no revision information"
	} else if modified {
		inf.revision = fmt.Sprintf("%s+dirty", inf.revision)
	}

	switch {
	case number != "":
		inf.version = number
	case vcs:
		inf.version = "unreleased"
	default:
		// "go run ." or a build without vcs information
		inf.version = "local"
	}

	return inf
})

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	inf := cached()
	return inf.version, inf.revision, number != "" && inf.version == number
}

// Title returns a string suitable for a window title.
func Title() string {
	v, _, _ := Version()
	return fmt.Sprintf("%s (%s)", ApplicationName, v)
}
