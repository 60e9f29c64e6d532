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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"sync/atomic"
	"time"
)

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	secondsPerFrame atomic.Int64 // time.Duration

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	go func() {
		// the sleep period is adjusted every frame to account for the time
		// spent outside of the sleep
		adjusted := time.Duration(lim.secondsPerFrame.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)

			spf := time.Duration(lim.secondsPerFrame.Load())
			nt := time.Now()
			adjusted -= nt.Sub(t) - spf
			adjusted = max(0, min(adjusted, spf*2))
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits. Values less than
// one are treated as one.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	framesPerSecond = max(1, framesPerSecond)
	lim.secondsPerFrame.Store(int64(time.Second / time.Duration(framesPerSecond)))
}

// Wait will block until trigger
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	close(lim.quit)
}
