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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RENDER", "PLAY", "PREFS")
//	_, _ = md.Parse()
//
// In this context, a mode is a special command line argument that when
// specified, puts the program into a different mode of operation. The first
// sub-mode in the list is the default and is selected if no mode is given on
// the command line. Sub-mode comparisons are case insensitive.
//
// Once a mode has been selected, the flags for that mode are added after a
// call to NewMode() and Parse() is called again:
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		frames := md.AddInt("frames", 1, "number of frames to render")
//		mask := md.AddChoice("mask", "standard", []string{"standard", "thin"}, "scanline mask")
//		_, _ = md.Parse()
//	}
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// functions.
//
// Help messages are handled automatically. The -help flag prints the flags
// for the current mode along with the list of available sub-modes, and Parse()
// returns ParseHelp.
package modalflag
