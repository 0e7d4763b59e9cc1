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

// Package gui defines the interface between the emulation and its windowed
// front-end. The only implementation is in the sdlplay sub-package but the
// emulation and the debugger only ever see the types defined here.
//
// Events flow from the GUI to the emulation through a channel registered
// with SetEventChannel(). The GUI never touches the emulated machine
// directly.
package gui

import (
	"github.com/jetsetilly/gopher8/chip8/display"
)

// Event represents all the different kinds of events that can flow from the
// GUI to the emulation.
type Event interface{}

// EventQuit is sent when the user closes the window or otherwise asks for
// the emulation to end.
type EventQuit struct{}

// EventPause is sent when the user presses the Escape key. What a pause
// means depends on the consumer: the play loop ends the session while the
// debugger pauses a running emulation.
type EventPause struct{}

// EventKeypad is sent when the state of one of the sixteen emulated keys
// changes.
type EventKeypad struct {
	Key     uint8
	Pressed bool
}

// GUI defines the operations the emulation requires of a windowed front-end.
type GUI interface {
	// SetEventChannel registers the channel events are forwarded to. The
	// channel should be buffered; events are dropped if the channel is full.
	SetEventChannel(chan Event)

	// UpdateDisplay presents the current state of the framebuffer. Called at
	// the end of every frame, not on every emulated instruction.
	UpdateDisplay(*display.Display) error

	// SetTitle sets the window title. Called with the short name of the
	// attached ROM.
	SetTitle(string)

	// Destroy the GUI and release its resources.
	Destroy()
}
