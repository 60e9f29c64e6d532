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

// Package ntsc simulates the decoding of a composite video signal.
//
// The Decoder synthesises the signal that a television would receive for each
// scanline of an indexed frame, four samples for every pixel, and then
// decodes the signal back into RGB. How well the luma and chroma components
// are separated is controlled by the Adjustables. Poor separation results in
// the colour artifacts and fringing typical of a composite connection. Perfect
// separation is the equivalent of an S-Video or RGB connection.
//
// Adjustables are grouped into Presets. Only the Custom preset can be
// changed. The values for the Custom preset are stored in the prefs system
// with the keys returned by Adjustable.Setting().
//
// Each output scanline is independent of every other scanline and so rendering
// can be spread over several goroutines with EnableThreading(). The output is
// the same regardless of whether threading is enabled.
package ntsc
