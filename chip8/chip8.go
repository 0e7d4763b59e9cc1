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

package chip8

import (
	"github.com/jetsetilly/gopher8/chip8/cpu"
	"github.com/jetsetilly/gopher8/chip8/display"
	"github.com/jetsetilly/gopher8/chip8/keypad"
	"github.com/jetsetilly/gopher8/chip8/memory"
	"github.com/jetsetilly/gopher8/chip8/timer"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/romloader"
)

// StepHz is the default instruction rate of the emulated machine. The real
// machines varied; 700 instructions per second is a good middle ground for
// the common run of ROMs.
const StepHz = 700

// Beeper implementations make the sound timer audible. The emulation calls
// SetBeeping() whenever the beeping state changes, never on every tick.
type Beeper interface {
	SetBeeping(beeping bool) error
	EndBeeping() error
}

// Chip8 is the emulated machine. Everything the machine is made of is
// accessible through the public fields, which the debugger makes liberal use
// of. Changing the fields mid-instruction from another goroutine is not
// supported; the debugger runs the emulation and inspects it from the same
// goroutine.
type Chip8 struct {
	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Keypad  *keypad.Keypad
	Timers  *timer.Timers

	// random number source for the RND instruction. tests set ZeroSeed for
	// a predictable sequence
	Rnd *random.Random

	// the ROM most recently attached with AttachROM(). kept so that Reset()
	// can reload the program
	Loader romloader.Loader

	beepers []Beeper
	beeping bool
}

// NewChip8 is the preferred method of initialisation for the Chip8 type.
func NewChip8() *Chip8 {
	vm := &Chip8{
		CPU:     cpu.NewCPU(),
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(),
		Keypad:  keypad.NewKeypad(),
		Timers:  timer.NewTimers(),
		Rnd:     random.NewRandom(),
	}
	return vm
}

// AttachROM loads the ROM and resets the machine ready for execution.
func (vm *Chip8) AttachROM(romload romloader.Loader) error {
	err := romload.Load()
	if err != nil {
		return err
	}
	vm.Loader = romload
	return vm.Reset()
}

// Reset the machine to its power-on state. If a ROM has been attached it is
// reloaded into memory.
func (vm *Chip8) Reset() error {
	vm.CPU.Reset()
	vm.Mem.Reset()
	vm.Display.Clear()
	vm.Keypad.Reset()
	vm.Timers.Reset()
	vm.Rnd.Reset()

	if vm.Loader.HasLoaded() {
		err := vm.Mem.LoadProgram(vm.Loader.Data)
		if err != nil {
			return err
		}
	}

	vm.beeping = false
	for _, b := range vm.beepers {
		_ = b.SetBeeping(false)
	}

	return nil
}

// AddBeeper attaches a Beeper implementation to the machine. More than one
// beeper can be attached.
func (vm *Chip8) AddBeeper(b Beeper) {
	vm.beepers = append(vm.beepers, b)
}

// EndBeepers tells all attached beepers that the emulation is ending.
func (vm *Chip8) EndBeepers() error {
	var retErr error
	for _, b := range vm.beepers {
		if err := b.EndBeeping(); err != nil {
			retErr = err
		}
	}
	return retErr
}

// TickTimers advances the delay and sound timers by one tick. To be called at
// timer.TickHz regardless of the instruction rate and regardless of whether
// the emulation is blocked waiting for a key.
func (vm *Chip8) TickTimers() {
	vm.Timers.Tick()
	vm.syncBeepers()
}

// notify beepers if the beeping state has changed since the last call
func (vm *Chip8) syncBeepers() {
	beeping := vm.Timers.Beeping()
	if beeping == vm.beeping {
		return
	}
	vm.beeping = beeping
	for _, b := range vm.beepers {
		_ = b.SetBeeping(beeping)
	}
}
