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

package snapshot_test

import (
	"image/png"
	"os"
	"testing"

	"github.com/jetsetilly/tvsurface/curated"
	"github.com/jetsetilly/tvsurface/snapshot"
	"github.com/jetsetilly/tvsurface/test"
)

func TestStill(t *testing.T) {
	s := snapshot.Still{Width: 2, Height: 1, Pixels: []uint32{0xff0000, 0x00ff00}}
	test.ExpectFailure(t, s.Empty())

	img := s.Image()
	test.ExpectEquality(t, img.Bounds().Dx(), 2)
	test.ExpectEquality(t, img.RGBAAt(0, 0).R, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(1, 0).G, uint8(0xff))
	test.ExpectEquality(t, img.RGBAAt(1, 0).A, uint8(0xff))

	s.Pixels = s.Pixels[:1]
	test.ExpectSuccess(t, s.Empty())
}

type counter struct {
	n int
}

func (c *counter) Save(_ snapshot.Still) error {
	c.n++
	return nil
}

func TestPNG(t *testing.T) {
	p := &snapshot.PNG{Dir: t.TempDir(), Label: "test"}

	err := p.Save(snapshot.Still{})
	test.ExpectSuccess(t, curated.Is(err, snapshot.NoSnapshot))

	s := snapshot.Still{Width: 2, Height: 2, Pixels: []uint32{0x000000, 0xffffff, 0x808080, 0x0000ff}}
	test.DemandSuccess(t, p.Save(s))

	f, err := os.Open(p.Last())
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 2)
	_, _, b, _ := img.At(1, 1).RGBA()
	test.ExpectEquality(t, b>>8, 0xff)
}

func TestMulti(t *testing.T) {
	var a, b counter
	m := snapshot.Multi{&a, &b}
	test.ExpectSuccess(t, m.Save(snapshot.Still{Width: 1, Height: 1, Pixels: []uint32{0}}))
	test.ExpectEquality(t, a.n, 1)
	test.ExpectEquality(t, b.n, 1)
}
