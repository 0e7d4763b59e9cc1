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

package chip8_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/chip8/cpu"
	"github.com/jetsetilly/gopher8/chip8/instructions"
	"github.com/jetsetilly/gopher8/chip8/memory"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

// create a machine with the program in place, ready to step
func newMachine(t *testing.T, program []byte) *chip8.Chip8 {
	t.Helper()
	vm := chip8.NewChip8()
	vm.Rnd.ZeroSeed = true
	test.ExpectedSuccess(t, vm.Mem.LoadProgram(program))
	return vm
}

func step(t *testing.T, vm *chip8.Chip8, expected chip8.Result) {
	t.Helper()
	res, err := vm.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(res), int(expected))
}

func TestDrawProgram(t *testing.T) {
	// clear the display, point I at the sprite data embedded in the program
	// and draw one row at (0, 0)
	vm := newMachine(t, []byte{
		0x00, 0xe0, // CLS
		0x61, 0x00, // LD V1, $0
		0xa2, 0x0a, // LD I, $20A
		0xd1, 0x11, // DRW V1, V1, $1
		0x12, 0x08, // JP $208
		0xff, 0x00, // sprite data
	})

	step(t, vm, chip8.Drawn)  // CLS
	step(t, vm, chip8.Normal) // LD V1
	step(t, vm, chip8.Normal) // LD I
	step(t, vm, chip8.Drawn)  // DRW

	for x := 0; x < 8; x++ {
		test.Equate(t, vm.Display.Pixel(x, 0), true)
	}
	test.Equate(t, vm.Display.Pixel(8, 0), false)
	test.Equate(t, vm.CPU.V[cpu.VF], 0)

	// the jump loops on itself
	step(t, vm, chip8.Normal)
	test.Equate(t, vm.CPU.PC, 0x208)

	// drawing the same sprite again reports the collision through VF
	vm.CPU.PC = 0x206
	step(t, vm, chip8.Drawn)
	test.Equate(t, vm.CPU.V[cpu.VF], 1)
	test.Equate(t, vm.Display.Pixel(0, 0), false)
}

func TestWaitKey(t *testing.T) {
	vm := newMachine(t, []byte{
		0xf1, 0x0a, // LD V1, K
	})

	// with no key pressed the instruction repeats and the program counter
	// does not move
	for i := 0; i < 3; i++ {
		step(t, vm, chip8.Blocked)
		test.Equate(t, vm.CPU.PC, memory.OriginProgram)
	}

	// timers still tick while the machine is blocked
	vm.Timers.Delay = 2
	vm.TickTimers()
	test.Equate(t, vm.Timers.Delay, 1)

	vm.Keypad.SetPressed(0x0b, true)
	step(t, vm, chip8.Normal)
	test.Equate(t, vm.CPU.V[0x1], 0x0b)
	test.Equate(t, vm.CPU.PC, memory.OriginProgram+2)
}

func TestCallReturn(t *testing.T) {
	vm := newMachine(t, []byte{
		0x22, 0x04, // CALL $204
		0x12, 0x02, // JP $202
		0x00, 0xee, // RET
	})

	step(t, vm, chip8.Normal)
	test.Equate(t, vm.CPU.PC, 0x204)
	test.Equate(t, vm.CPU.SP, 1)

	step(t, vm, chip8.Normal)
	test.Equate(t, vm.CPU.PC, 0x202)
	test.Equate(t, vm.CPU.SP, 0)
}

func TestStackFaults(t *testing.T) {
	// returning with an empty call stack is fatal
	vm := newMachine(t, []byte{0x00, 0xee})
	_, err := vm.Step()
	if !curated.Is(err, cpu.StackUnderflow) {
		t.Errorf("expected stack underflow, got %v", err)
	}

	// a call that never returns eventually exhausts the stack
	vm = newMachine(t, []byte{0x22, 0x00})
	for i := 0; i < cpu.StackDepth; i++ {
		step(t, vm, chip8.Normal)
	}
	_, err = vm.Step()
	if !curated.Is(err, cpu.StackOverflow) {
		t.Errorf("expected stack overflow, got %v", err)
	}
}

func TestDecodeFault(t *testing.T) {
	vm := newMachine(t, []byte{0x01, 0x23})
	_, err := vm.Step()
	if !curated.Is(err, instructions.DecodeError) {
		t.Errorf("expected decode fault, got %v", err)
	}

	// the program counter has not advanced past the faulting instruction
	test.Equate(t, vm.CPU.PC, memory.OriginProgram)
}

func TestArithmeticFlags(t *testing.T) {
	vm := newMachine(t, []byte{
		0x60, 0xff, // LD V0, $FF
		0x61, 0x02, // LD V1, $2
		0x80, 0x14, // ADD V0, V1 (carry)
		0x80, 0x15, // SUB V0, V1 (borrow)
	})

	step(t, vm, chip8.Normal)
	step(t, vm, chip8.Normal)

	// 0xff + 0x02 carries
	step(t, vm, chip8.Normal)
	test.Equate(t, vm.CPU.V[0x0], 0x01)
	test.Equate(t, vm.CPU.V[cpu.VF], 1)

	// 0x01 - 0x02 borrows so the NOT borrow flag is clear
	step(t, vm, chip8.Normal)
	test.Equate(t, vm.CPU.V[0x0], 0xff)
	test.Equate(t, vm.CPU.V[cpu.VF], 0)
}

func TestShiftQuirks(t *testing.T) {
	// the shift instructions read Vy and write Vx
	vm := newMachine(t, []byte{
		0x61, 0x05, // LD V1, $5
		0x80, 0x16, // SHR V0, V1
		0x80, 0x1e, // SHL V0, V1
	})

	step(t, vm, chip8.Normal)

	step(t, vm, chip8.Normal)
	test.Equate(t, vm.CPU.V[0x0], 0x02)
	test.Equate(t, vm.CPU.V[cpu.VF], 1)

	step(t, vm, chip8.Normal)
	test.Equate(t, vm.CPU.V[0x0], 0x0a)
	test.Equate(t, vm.CPU.V[cpu.VF], 0)
}

func TestLogicalFlagReset(t *testing.T) {
	// OR, AND and XOR clear the flag register
	vm := newMachine(t, []byte{
		0x60, 0x0f, // LD V0, $F
		0x61, 0xf0, // LD V1, $F0
		0x6f, 0x05, // LD VF, $5
		0x80, 0x11, // OR V0, V1
	})

	for i := 0; i < 4; i++ {
		step(t, vm, chip8.Normal)
	}
	test.Equate(t, vm.CPU.V[0x0], 0xff)
	test.Equate(t, vm.CPU.V[cpu.VF], 0)
}

func TestBCDAndRegisterFile(t *testing.T) {
	vm := newMachine(t, []byte{
		0x60, 0xfe, // LD V0, $FE
		0xa3, 0x00, // LD I, $300
		0xf0, 0x33, // LD B, V0
		0xf2, 0x65, // LD V2, [I]
	})

	step(t, vm, chip8.Normal)
	step(t, vm, chip8.Normal)

	// 254 decomposes into its decimal digits
	step(t, vm, chip8.Normal)
	for i, expected := range []uint8{2, 5, 4} {
		v, err := vm.Mem.Read(0x300 + uint16(i))
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, expected)
	}
	test.Equate(t, vm.CPU.I, 0x300)

	// the register load reads the digits back and moves I past them
	step(t, vm, chip8.Normal)
	test.Equate(t, vm.CPU.V[0x0], 2)
	test.Equate(t, vm.CPU.V[0x1], 5)
	test.Equate(t, vm.CPU.V[0x2], 4)
	test.Equate(t, vm.CPU.I, 0x303)
}

func TestFontSprite(t *testing.T) {
	vm := newMachine(t, []byte{
		0x60, 0x0a, // LD V0, $A
		0xf0, 0x29, // LD F, V0
	})

	step(t, vm, chip8.Normal)
	step(t, vm, chip8.Normal)
	test.Equate(t, vm.CPU.I, memory.FontAddress(0x0a))
}

type recordingBeeper struct {
	states []bool
	ended  bool
}

func (b *recordingBeeper) SetBeeping(beeping bool) error {
	b.states = append(b.states, beeping)
	return nil
}

func (b *recordingBeeper) EndBeeping() error {
	b.ended = true
	return nil
}

func TestBeeper(t *testing.T) {
	vm := newMachine(t, []byte{
		0x62, 0x02, // LD V2, $2
		0xf2, 0x18, // LD ST, V2
	})

	b := &recordingBeeper{}
	vm.AddBeeper(b)

	step(t, vm, chip8.Normal)
	step(t, vm, chip8.Normal)

	// setting the sound timer starts the beep. each tick is not a fresh
	// notification; only the change of state is reported
	test.Equate(t, len(b.states), 1)
	test.Equate(t, b.states[0], true)

	vm.TickTimers()
	test.Equate(t, len(b.states), 1)

	vm.TickTimers()
	test.Equate(t, len(b.states), 2)
	test.Equate(t, b.states[1], false)

	test.ExpectedSuccess(t, vm.EndBeepers())
	test.Equate(t, b.ended, true)
}

func TestResetReloadsProgram(t *testing.T) {
	vm := newMachine(t, []byte{
		0x60, 0x0a, // LD V0, $A
	})

	step(t, vm, chip8.Normal)
	test.Equate(t, vm.CPU.V[0x0], 0x0a)

	// no ROM is attached so the program area is zeroed on reset. the zero
	// opcode is a decode fault
	test.ExpectedSuccess(t, vm.Reset())
	test.Equate(t, vm.CPU.PC, memory.OriginProgram)
	_, err := vm.Step()
	test.ExpectedFailure(t, err)
}
