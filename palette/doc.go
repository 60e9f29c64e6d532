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

// Package palette maps the ColorSignal values produced by the video source to
// RGB values.
//
// A Table has an entry for every possible ColorSignal value, including the
// alternate (shifted) entries. The Palettes type groups the two variants of
// the table used by the TV surface: the TIA table is used when pixels are
// displayed directly and the RGB table is the raw palette consumed by the
// composite decoder, which applies its own picture adjustments.
//
// Palettes are created by a Generator according to the television
// specification (NTSC, PAL or SECAM) and the colour adjustment preferences.
// The Custom() function creates a table from a list of explicit values.
package palette
