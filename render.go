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
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/jetsetilly/tvsurface/logger"
	"github.com/jetsetilly/tvsurface/modalflag"
	"github.com/jetsetilly/tvsurface/notifications"
	"github.com/jetsetilly/tvsurface/resources"
	"github.com/jetsetilly/tvsurface/signal"
	"github.com/jetsetilly/tvsurface/snapshot"
	"github.com/jetsetilly/tvsurface/source"
	"github.com/jetsetilly/tvsurface/surface"
	"github.com/jetsetilly/tvsurface/tvsurface"
)

// options for renderBars()
type renderOpts struct {
	width  int
	height int

	// number of frames to render. the test pattern moves with each frame
	frames int

	shade bool

	// take a snapshot on the final frame
	still snapshot.Snapshotter
}

// renderBars renders the test pattern on an image surface and returns the
// resulting screen.
func renderBars(tvp *tvsurface.Preferences, opts renderOpts) (*image.RGBA, error) {
	svc := surface.NewImage(opts.width, opts.height)

	tv, err := tvsurface.NewTVSurface(svc, tvp, notifications.LogMessenger{Tag: "render"})
	if err != nil {
		return nil, err
	}

	bars, err := source.NewBars(signal.FrameBufferWidth, playHeight)
	if err != nil {
		return nil, err
	}

	err = tv.Initialize(bars, svc.Screen().Bounds())
	if err != nil {
		return nil, err
	}
	tv.UpdateSurfaceSettings()

	logger.Log(logger.Allow, "render", tv.EffectsInfo())

	for i := range max(1, opts.frames) {
		if i > 0 {
			bars.Step()
		}
		if i == max(1, opts.frames)-1 && opts.still != nil {
			tv.SetSnapshotter(opts.still)
			tv.SaveSnapshot()
		}
		svc.Clear()
		err = tv.Render(opts.shade)
		if err != nil {
			return nil, err
		}
	}

	return svc.Screen(), nil
}

func render(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flags := addTVFlags(md)
	width := md.AddInt("width", 640, "width of image")
	height := md.AddInt("height", 480, "height of image")
	frames := md.AddInt("frames", 1, "number of frames to render")
	shade := md.AddBool("shade", false, "shade the image")
	out := md.AddString("out", "", "output filename (default is a unique filename)")
	still := md.AddBool("still", false, "also save the unprocessed still image")
	clipboard := md.AddBool("clipboard", false, "copy the unprocessed still image to the clipboard")
	usePrefs := md.AddBool("useprefs", false, "use and update the preferences file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("image dimensions must be positive (%dx%d)", *width, *height)
	}

	flags.apply()
	defer flags.unused()

	var path string
	if *usePrefs {
		path, err = preferencesPath()
		if err != nil {
			return err
		}
	}

	tvp, err := tvsurface.NewPreferences(path)
	if err != nil {
		return err
	}

	opts := renderOpts{
		width:  *width,
		height: *height,
		frames: *frames,
		shade:  *shade,
	}
	var stills snapshot.Multi
	if *still {
		stills = append(stills, &snapshot.PNG{Label: "still"})
	}
	if *clipboard {
		stills = append(stills, &snapshot.Clipboard{})
	}
	if len(stills) > 0 {
		opts.still = stills
	}

	img, err := renderBars(tvp, opts)
	if err != nil {
		return err
	}

	fn := *out
	if fn == "" {
		fn = resources.UniqueFilename("render", "bars") + ".png"
	}

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if err != nil {
		f.Close()
		return err
	}
	err = f.Close()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "rendered to %s\n", fn)

	return nil
}
