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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// the traditional mapping of the 4x4 CHIP-8 keypad onto the left hand side
// of a modern keyboard:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   ->   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keymap = map[sdl.Scancode]uint8{
	sdl.SCANCODE_1: 0x1, sdl.SCANCODE_2: 0x2, sdl.SCANCODE_3: 0x3, sdl.SCANCODE_4: 0xc,
	sdl.SCANCODE_Q: 0x4, sdl.SCANCODE_W: 0x5, sdl.SCANCODE_E: 0x6, sdl.SCANCODE_R: 0xd,
	sdl.SCANCODE_A: 0x7, sdl.SCANCODE_S: 0x8, sdl.SCANCODE_D: 0x9, sdl.SCANCODE_F: 0xe,
	sdl.SCANCODE_Z: 0xa, sdl.SCANCODE_X: 0x0, sdl.SCANCODE_C: 0xb, sdl.SCANCODE_V: 0xf,
}

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and there is
	// nothing in this GUI for a mouse to do
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service the SDL event queue and any outstanding main-thread work. To be
// called repeatedly.
//
// MUST ONLY be called from the main goroutine.
func (scr *SdlPlay) Service() {
	// do not check for events if no event channel has been set
	if scr.events != nil {
		// loop until there are no more events to retrieve. servicing only
		// one event per call would make a queue of key presses take several
		// frames to resolve
		empty := false
		for !empty {
			// check for SDL events, timing out straight away if there's
			// nothing
			ev := sdl.WaitEventTimeout(1)

			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				scr.postEvent(gui.EventQuit{})

			case *sdl.KeyboardEvent:
				if ev.Repeat != 0 {
					break
				}
				if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					if ev.Type == sdl.KEYDOWN {
						scr.postEvent(gui.EventPause{})
					}
					break
				}
				if k, ok := keymap[ev.Keysym.Scancode]; ok {
					scr.postEvent(gui.EventKeypad{
						Key:     k,
						Pressed: ev.Type == sdl.KEYDOWN,
					})
				}

			case nil:
				// a nil value means WaitEventTimeout has timed out and the
				// event queue is empty
				empty = true
			}
		}
	}

	// keep the beep playing if there is one
	if scr.snd != nil {
		scr.snd.service()
	}

	// run any outstanding service functions
	select {
	case f := <-scr.service:
		f()
	default:
	}
}

// post the event without blocking. the emulation drains the channel at its
// own pace; a dropped event is better than a stalled event pump
func (scr *SdlPlay) postEvent(ev gui.Event) {
	select {
	case scr.events <- ev:
	default:
	}
}
