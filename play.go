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
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/tvsurface/logger"
	"github.com/jetsetilly/tvsurface/modalflag"
	"github.com/jetsetilly/tvsurface/ntsc"
	"github.com/jetsetilly/tvsurface/performance/limiter"
	"github.com/jetsetilly/tvsurface/signal"
	"github.com/jetsetilly/tvsurface/snapshot"
	"github.com/jetsetilly/tvsurface/source"
	"github.com/jetsetilly/tvsurface/statsview"
	"github.com/jetsetilly/tvsurface/surface/sdlsurface"
	"github.com/jetsetilly/tvsurface/tvsurface"
	"github.com/jetsetilly/tvsurface/version"
)

// the height of the test pattern. the usual height of an NTSC frame
const playHeight = 192

// the frame rate of the PLAY mode
const playFPS = 60

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flags := addTVFlags(md)
	width := md.AddInt("width", 960, "initial width of window")
	height := md.AddInt("height", 720, "initial height of window")
	dir := md.AddString("snapshots", "", "directory for snapshots (default is the current directory)")
	clipboard := md.AddBool("clipboard", false, "copy snapshots to the clipboard")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	flags.apply()
	defer flags.unused()

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		stop := statsview.Launch(md.Output)
		defer stop()
	}

	path, err := preferencesPath()
	if err != nil {
		return err
	}

	var snapshotter snapshot.Snapshotter = &snapshot.PNG{Dir: *dir, Label: "bars"}
	if *clipboard {
		snapshotter = snapshot.Multi{snapshotter, &snapshot.Clipboard{}}
	}

	sync.creator <- func() (GuiCreator, error) {
		return newPlayer(path, *width, *height, snapshotter)
	}

	var pl *player
	select {
	case g := <-sync.creation:
		pl = g.(*player)
	case err := <-sync.creationError:
		return err
	}

	return <-pl.done
}

// player shows the test pattern in an SDL window. all functions are called
// from the main thread except where noted
type player struct {
	win  *sdlsurface.Window
	tv   *tvsurface.TVSurface
	bars *source.Bars
	lim  *limiter.FpsLimiter

	paused bool

	// the result of the player is sent on the done channel. it is buffered
	// and will only ever have one value sent to it
	done  chan error
	ended bool
}

func newPlayer(path string, width int, height int, snapshotter snapshot.Snapshotter) (*player, error) {
	pl := &player{
		done: make(chan error, 1),
	}

	var err error

	pl.win, err = sdlsurface.NewWindow(version.Title(), width, height)
	if err != nil {
		return nil, err
	}

	p, err := tvsurface.NewPreferences(path)
	if err != nil {
		pl.win.Destroy()
		return nil, err
	}

	pl.tv, err = tvsurface.NewTVSurface(pl.win, p, pl)
	if err != nil {
		pl.win.Destroy()
		return nil, err
	}
	pl.tv.SetSnapshotter(snapshotter)

	pl.bars, err = source.NewBars(signal.FrameBufferWidth, playHeight)
	if err != nil {
		pl.win.Destroy()
		return nil, err
	}

	err = pl.tv.Initialize(pl.bars, pl.dstRect())
	if err != nil {
		pl.win.Destroy()
		return nil, err
	}
	pl.tv.UpdateSurfaceSettings()

	pl.lim = limiter.NewFPSLimiter(playFPS)

	logger.Log(logger.Allow, "play", pl.tv.EffectsInfo())

	return pl, nil
}

// dstRect returns the area of the window used by the TV surface. the image
// has an aspect ratio of 4:3 if aspect correction is enabled
func (pl *player) dstRect() image.Rectangle {
	w, h := pl.win.Size()

	aspect := 4.0 / 3.0
	if pl.tv != nil && !pl.tv.CorrectAspect() {
		aspect = float64(signal.FrameBufferWidth*2) / float64(playHeight)
	}

	dw, dh := w, int(float64(w)/aspect)
	if dh > h {
		dw, dh = int(float64(h)*aspect), h
	}

	x := (w - dw) / 2
	y := (h - dh) / 2
	return image.Rect(x, y, x+dw, y+dh)
}

func (pl *player) end(err error) {
	if pl.ended {
		return
	}
	pl.ended = true
	pl.done <- err
}

// Destroy implements the GuiCreator interface.
func (pl *player) Destroy(output io.Writer) {
	pl.lim.Stop()
	pl.win.Destroy()
}

// Service implements the GuiCreator interface.
func (pl *player) Service() {
	if pl.ended {
		return
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			pl.end(nil)
			return

		case *sdl.KeyboardEvent:
			pl.serviceKeyboard(ev)

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				pl.tv.SetDstRect(pl.dstRect())
			}
		}
	}

	if !pl.lim.HasWaited() {
		return
	}

	if !pl.paused {
		pl.bars.Step()
	}

	err := pl.win.Clear()
	if err == nil {
		err = pl.tv.Render(pl.paused)
	}
	if err != nil {
		pl.end(err)
		return
	}
	pl.win.Present()
}

func (pl *player) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat == 1 || ev.Type != sdl.KEYDOWN {
		return
	}

	shift := ev.Keysym.Mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || ev.Keysym.Mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT

	dir := 1
	if shift {
		dir = -1
	}

	switch ev.Keysym.Scancode {
	case sdl.SCANCODE_ESCAPE:
		pl.end(nil)

	case sdl.SCANCODE_P:
		pl.paused = !pl.paused

	case sdl.SCANCODE_F7:
		pl.tv.ChangeNTSC(dir)

	case sdl.SCANCODE_F8:
		err := pl.tv.CycleScanlineMask(dir)
		if err != nil {
			pl.end(err)
		}

	case sdl.SCANCODE_F9:
		pl.tv.EnablePhosphor(!pl.tv.PhosphorEnabled(), pl.tv.PhosphorLevel())
		if pl.tv.PhosphorEnabled() {
			pl.ShowTextMessage("Phosphor effect enabled")
		} else {
			pl.ShowTextMessage("Phosphor effect disabled")
		}

	case sdl.SCANCODE_F10:
		pl.tv.ChangeScanlineIntensity(-1)

	case sdl.SCANCODE_F11:
		pl.tv.ChangeScanlineIntensity(1)

	case sdl.SCANCODE_F12:
		pl.tv.SaveSnapshot()

	case sdl.SCANCODE_LEFTBRACKET:
		pl.tv.SetNTSCAdjustable(-1)

	case sdl.SCANCODE_RIGHTBRACKET:
		pl.tv.SetNTSCAdjustable(1)

	case sdl.SCANCODE_MINUS:
		pl.tv.ChangeCurrentNTSCAdjustable(-1)

	case sdl.SCANCODE_EQUALS:
		pl.tv.ChangeCurrentNTSCAdjustable(1)

	case sdl.SCANCODE_I:
		pl.ShowTextMessage(pl.tv.EffectsInfo())

	case sdl.SCANCODE_T:
		enable := !pl.tv.NTSC().Threading()
		pl.tv.EnableThreading(enable)
		pl.ShowTextMessage(fmt.Sprintf("Threading %v", enable))

	case sdl.SCANCODE_0, sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3, sdl.SCANCODE_4, sdl.SCANCODE_5:
		pl.tv.SetNTSC(ntsc.PresetFromSetting(presetKey(ev.Keysym.Scancode)), true)
	}
}

// presetKey returns the preset setting for the number keys
func presetKey(sc sdl.Scancode) int {
	if sc == sdl.SCANCODE_0 {
		return int(ntsc.Off)
	}
	return int(sc-sdl.SCANCODE_1) + 1
}

// ShowTextMessage implements the notifications.Messenger interface. Messages
// are shown in the window title.
func (pl *player) ShowTextMessage(msg string) {
	pl.win.SetTitle(fmt.Sprintf("%s - %s", version.Title(), msg))
	logger.Log(logger.Allow, "play", msg)
}

// ShowGaugeMessage implements the notifications.Messenger interface.
func (pl *player) ShowGaugeMessage(label string, value string, gauge int) {
	pl.ShowTextMessage(fmt.Sprintf("%s: %s", label, value))
}
