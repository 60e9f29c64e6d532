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

package main

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/tvsurface/modalflag"
	"github.com/jetsetilly/tvsurface/snapshot"
	"github.com/jetsetilly/tvsurface/test"
	"github.com/jetsetilly/tvsurface/tvsurface"
)

func TestTVFlags(t *testing.T) {
	md := &modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-preset", "SVIDEO", "-mask", "mame", "-scanlines", "40", "-phosphor", "-prefs", "tia.inter::true"})
	md.NewMode()
	flags := addTVFlags(md)

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)

	test.ExpectEquality(t, flags.commandLine(), "tia.inter::true; tv.filter::2; tv.scanmask::mame; tv.scanlines::40; tv.phosphor::true")

	md.NewArgs([]string{"-preset", "pal"})
	md.NewMode()
	_ = addTVFlags(md)
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestRenderBars(t *testing.T) {
	tvp, err := tvsurface.NewPreferences("")
	test.DemandSuccess(t, err)

	st := &stills{}
	img, err := renderBars(tvp, renderOpts{width: 320, height: 240, frames: 3, still: st})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 320)
	test.ExpectEquality(t, img.Bounds().Dy(), 240)

	// the snapshot is taken on the final frame only
	test.DemandEquality(t, len(st.saved), 1)
	test.ExpectEquality(t, st.saved[0].Width, 320)
	test.ExpectEquality(t, st.saved[0].Height, playHeight)

	// something has been drawn
	var lit bool
	for y := 0; y < 240 && !lit; y++ {
		for x := 0; x < 320; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{A: 0xff}) {
				lit = true
				break
			}
		}
	}
	test.ExpectSuccess(t, lit)
}

func TestRenderShade(t *testing.T) {
	lum := func(shade bool) int {
		tvp, err := tvsurface.NewPreferences("")
		test.DemandSuccess(t, err)
		img, err := renderBars(tvp, renderOpts{width: 320, height: 240, frames: 1, shade: shade})
		test.DemandSuccess(t, err)

		var n int
		for _, v := range img.Pix {
			n += int(v)
		}
		return n
	}

	test.ExpectSuccess(t, lum(true) < lum(false))
}

type stills struct {
	saved []snapshot.Still
}

func (s *stills) Save(still snapshot.Still) error {
	s.saved = append(s.saved, still)
	return nil
}
