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

// Package govern defines the execution states of the debugger. It is a
// leaf package so that anything that needs to know the state of the debugger
// can import it without cyclic trouble.
package govern

// State is the execution state of the emulation inside the debugger.
type State int

// List of possible emulation states.
//
// Halted is distinct from Paused: a paused emulation can be resumed while a
// halted emulation has suffered a fatal fault and can only be reset.
const (
	Paused State = iota
	Running
	Halted
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	case Halted:
		return "halted"
	}
	return "unknown"
}
