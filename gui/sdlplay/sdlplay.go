// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay is the SDL implementation of the gui.GUI interface.
//
// SDL requires that the functions that create and destroy windows, and the
// event pump, all run on the main OS thread. NewSdlPlay(), Service() and
// Destroy() must therefore only ever be called from the main goroutine; see
// the mainSync type in the main package for how the rest of the program
// arranges that. UpdateDisplay() and SetTitle() may be called from any
// goroutine; they forward their work to the Service() function.
package sdlplay

import (
	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/chip8/display"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of bytes per pixel in the texture
const pixelDepth = 4

// SdlPlay is an SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// all audio is handled by the beeper type
	snd *beeper

	// connects the SDL event pump with the emulation
	events chan gui.Event

	// pixels is the byte array we copy to the texture before applying to the
	// renderer
	pixels []byte

	// functions that need to be performed in the main thread are queued here
	// and serviced by the Service() function
	service chan func()
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the main goroutine.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		pixels:  make([]byte, display.Width*display.Height*pixelDepth),
		service: make(chan func(), 1),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow("Gopher8",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(display.Width)*scale), int32(float32(display.Height)*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the renderer scales the texture to the window for us
	err = scr.renderer.SetLogicalSize(display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_RGBA32,
		sdl.TEXTUREACCESS_STREAMING, display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.snd, err = newBeeper()
	if err != nil {
		// sound is not fatal to the GUI. log and continue in silence
		logger.Logf("sdlplay", "no audio: %v", err)
	}

	setupService()

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(events chan gui.Event) {
	scr.events = events
}

// SetTitle implements the gui.GUI interface.
func (scr *SdlPlay) SetTitle(title string) {
	scr.service <- func() {
		scr.window.SetTitle("Gopher8: " + title)
	}
}

// UpdateDisplay implements the gui.GUI interface.
func (scr *SdlPlay) UpdateDisplay(dsp *display.Display) error {
	done := make(chan error)
	scr.service <- func() {
		done <- scr.render(dsp)
	}
	return <-done
}

// render the framebuffer. white pixels on black.
//
// MUST ONLY be called from the main goroutine.
func (scr *SdlPlay) render(dsp *display.Display) error {
	i := 0
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			var v byte
			if dsp.Pixel(x, y) {
				v = 0xff
			}
			scr.pixels[i] = v
			scr.pixels[i+1] = v
			scr.pixels[i+2] = v
			scr.pixels[i+3] = 0xff
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, display.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.renderer.Present()

	return nil
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the main goroutine.
func (scr *SdlPlay) Destroy() {
	if scr.snd != nil {
		_ = scr.snd.EndBeeping()
	}
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}

// Beeper returns the audio implementation attached to the window, or nil if
// audio could not be initialised.
func (scr *SdlPlay) Beeper() chip8.Beeper {
	if scr.snd == nil {
		return nil
	}
	return scr.snd
}
