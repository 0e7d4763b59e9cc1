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

// Package chip8 assembles the components of the CHIP-8 machine (the
// sub-packages of this package) into a working emulation.
//
// The Step() function runs exactly one instruction and reports, through the
// Result type, whether the instruction changed the display or left the
// machine blocked waiting for a key press. Drivers of the emulation (the
// playmode package and the debugger) decide what a step result means for
// pacing; the chip8 package itself has no concept of real time except for
// the nominal rates StepHz and timer.TickHz.
//
// Errors returned by Step() are fatal. Once an error has been returned the
// machine should be Reset() before stepping again.
package chip8
