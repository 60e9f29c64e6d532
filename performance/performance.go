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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/tvsurface/curated"
	"github.com/jetsetilly/tvsurface/notifications"
	"github.com/jetsetilly/tvsurface/ntsc"
	"github.com/jetsetilly/tvsurface/performance/limiter"
	"github.com/jetsetilly/tvsurface/signal"
	"github.com/jetsetilly/tvsurface/source"
	"github.com/jetsetilly/tvsurface/surface"
	"github.com/jetsetilly/tvsurface/tvsurface"
)

// the target frame rate of an NTSC television
const targetFPS = 60

// the time given for the frame rate to settle before measurement begins
const leadTime = time.Second

// sentinal error returned by the render loop.
var timedOut = errors.New("performance timed out")

// Options for Check().
type Options struct {
	Preset   ntsc.Preset
	Phosphor bool

	// the frame rate is not limited to the target rate
	Uncapped bool

	// run the composite decoder with more than one goroutine
	Threads bool
}

// Check the performance of the TV surface by rendering a test pattern for
// the specified duration.
//
// The Profile argument specifies which profiles are created while rendering.
func Check(output io.Writer, profile Profile, opts Options, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	p, err := tvsurface.NewPreferences("")
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// messages from the TV surface are not interesting
	msgr := notifications.LogMessenger{Tag: "performance"}

	svc := surface.NewImage(ntsc.OutWidth(signal.FrameBufferWidth)*2, signal.FrameBufferHeight*2)
	tv, err := tvsurface.NewTVSurface(svc, p, msgr)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	bars, err := source.NewBars(signal.FrameBufferWidth, 192)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = tv.Initialize(bars, svc.Screen().Bounds())
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	tv.EnableThreading(opts.Threads)
	tv.EnablePhosphor(opts.Phosphor, p.PhosphorLevel())
	tv.SetNTSC(opts.Preset, false)

	var lim *limiter.FpsLimiter
	if !opts.Uncapped {
		lim = limiter.NewFPSLimiter(targetFPS)
		defer lim.Stop()
	}

	var startFrame int

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}
				startFrame = bars.Frames()
			default:
			}

			if lim != nil {
				lim.Wait()
			}

			bars.Step()
			err := tv.Render(false)
			if err != nil {
				return err
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := bars.Frames() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds(), targetFPS)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
