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

package sdlsurface

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/tvsurface/curated"
	"github.com/jetsetilly/tvsurface/logger"
)

// Window is an SDL window with a renderer. The embedded Service allocates
// surfaces for the renderer.
type Window struct {
	*Service

	window   *sdl.Window
	renderer *sdl.Renderer
}

// NewWindow creates an SDL window of the specified size. SDL is initialised
// if required. Must be called from the main thread.
func NewWindow(title string, width int, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("sdlsurface: %v", err)
	}

	win := &Window{}

	var err error

	win.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf("sdlsurface: %v", err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		logger.Logf(logger.Allow, "sdlsurface", "using software renderer: %v", err)
		win.renderer, err = sdl.CreateRenderer(win.window, -1, uint32(sdl.RENDERER_SOFTWARE))
		if err != nil {
			win.window.Destroy()
			return nil, curated.Errorf("sdlsurface: %v", err)
		}
	}

	win.Service = NewService(win.renderer)

	return win, nil
}

// Size returns the size of the drawable area of the window.
func (win *Window) Size() (int, int) {
	w, h, err := win.renderer.GetOutputSize()
	if err != nil {
		ww, wh := win.window.GetSize()
		return int(ww), int(wh)
	}
	return int(w), int(h)
}

// SetTitle changes the title of the window.
func (win *Window) SetTitle(title string) {
	win.window.SetTitle(title)
}

// Clear the renderer to black.
func (win *Window) Clear() error {
	if err := win.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return curated.Errorf("sdlsurface: %v", err)
	}
	if err := win.renderer.Clear(); err != nil {
		return curated.Errorf("sdlsurface: %v", err)
	}
	return nil
}

// Present everything rendered since the last call to Clear().
func (win *Window) Present() {
	win.renderer.Present()
}

// Destroy the window and all surfaces. SDL is shut down.
func (win *Window) Destroy() {
	win.Service.Destroy()
	win.renderer.Destroy()
	win.window.Destroy()
	sdl.Quit()
}
