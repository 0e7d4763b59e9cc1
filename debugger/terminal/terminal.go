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

package terminal

import (
	"os"

	"github.com/jetsetilly/gopher8/gui"
)

// Sentinel errors. Returned by TermRead() if caught whilst waiting for
// input. Not all terminal implementations will return these errors because
// of the context in which they operate and in those instances signals should
// be caught by the Signal channel found in the ReadEvents type.
const (
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"
)

// ReadEvents should be monitored during a TermRead(). Implementations that
// cannot monitor the channels (because they block in a Read() somewhere)
// limit the responsiveness of the debugger but are otherwise fine.
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal        chan os.Signal
	SignalHandler func(os.Signal) error

	// events from the GUI, if one is attached. key presses arriving here
	// find their way to the emulated keypad
	GuiEvents       chan gui.Event
	GuiEventHandler func(gui.Event) error

	// RawEvents allows functions to be pushed into the debugger goroutine.
	// errors are not returned by RawEvents so errors should be logged
	RawEvents chan func()
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the line terminator,
	// when completed.
	//
	// If possible the TermRead() implementation should regularly check the
	// ReadEvents channels for activity. Not all implementations will be able
	// to do so because of the context in which they operate.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// TermReadCheck returns true if there is input to be read. Not all
	// implementations will be able to return anything meaningful in which
	// case a return value of false is fine.
	TermReadCheck() bool

	// IsInteractive should return true for implementations that expect user
	// interaction. Scripted input sources should return false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// making sure the terminal is returned to canonical mode.
	CleanUp()

	// Register a tab completion implementation to use with the terminal. Not
	// all implementations need to respond meaningfully to this.
	RegisterTabCompletion(TabCompletion)

	// Silence all input and output except error messages. In other words,
	// TermPrintLine() should display error messages even if silenced is
	// true.
	Silence(silenced bool)
}

// TabCompletion defines the operations required for tab completion. A good
// implementation can be found in the commandline sub-package.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
