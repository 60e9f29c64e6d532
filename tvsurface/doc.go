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

// Package tvsurface presents the frames produced by a video source. Frames
// are indexed colour and are converted to RGB with a palette or with the
// composite decoder of the ntsc package. Phosphor persistence, scanlines and
// shading can be applied on top.
//
// The active Filter is derived from whether the composite decoder and the
// phosphor blender are enabled. It is never set directly.
//
//	composite  phosphor  filter
//	---------  --------  -----------------
//	false      false     Normal
//	false      true      Phosphor
//	true       false     CompositeNormal
//	true       true      CompositePhosphor
//
// Changing either component clears the phosphor buffers.
//
// The TVSurface uses three surfaces from a surface.Service: one for the frame,
// one for the scanline mask and a single pixel surface for shading. A fourth
// surface is used by BaseSurface() for unfiltered images.
//
// A TVSurface is not safe for concurrent use. A program with more than one
// display needs more than one TVSurface.
package tvsurface
