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

// Package timer implements the delay and sound timers of the CHIP-8. Both
// are 8-bit counters decremented at 60Hz by an external driver, independent
// of the instruction rate. While the sound timer is non-zero a tone is
// playing.
package timer

// TickHz is the rate at which the external driver should call Tick().
const TickHz = 60

// Timers implements the delay and sound timers.
type Timers struct {
	Delay uint8
	Sound uint8
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Tick decrements both timers, flooring at zero. Safe to call any number of
// times once a timer has reached zero.
func (tmr *Timers) Tick() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// Beeping returns true while the sound timer is non-zero.
func (tmr *Timers) Beeping() bool {
	return tmr.Sound > 0
}
