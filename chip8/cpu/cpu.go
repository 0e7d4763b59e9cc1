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

// Package cpu implements the register file of the CHIP-8: the sixteen
// general purpose registers, the index register, the program counter and the
// call stack. Instruction execution itself is handled by the chip8 package,
// which connects the registers to memory, display, keypad and timers.
package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/chip8/memory"
	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel errors for a breach of stack discipline. Both are fatal to the
// emulation.
const (
	StackOverflow  = "stack: overflow (call depth of %d exceeded)"
	StackUnderflow = "stack: underflow (return with empty call stack)"
)

// StackDepth is the number of entries in the call stack.
const StackDepth = 16

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// VF is the index of the flag register. Carry, borrow and sprite collision
// all report through this register.
const VF = 0x0f

// CPU is the register file of the CHIP-8.
type CPU struct {
	// general purpose registers
	V [NumRegisters]uint8

	// index register. used as a memory pointer so only the lower 12 bits are
	// significant
	I uint16

	// program counter. address of the next instruction to be fetched
	PC uint16

	// call stack. SP indexes the next free entry
	SP    uint8
	Stack [StackDepth]uint16
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU() *CPU {
	mc := &CPU{}
	mc.Reset()
	return mc
}

// Reset the registers to their power-on state. The program counter points at
// the program origin.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i] = 0
	}
	mc.I = 0
	mc.PC = memory.OriginProgram
	mc.SP = 0
	for i := range mc.Stack {
		mc.Stack[i] = 0
	}
}

// Push a return address onto the call stack.
func (mc *CPU) Push(address uint16) error {
	if mc.SP >= StackDepth {
		return curated.Errorf(StackOverflow, StackDepth)
	}
	mc.Stack[mc.SP] = address
	mc.SP++
	return nil
}

// Pop a return address from the call stack.
func (mc *CPU) Pop() (uint16, error) {
	if mc.SP == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	mc.SP--
	return mc.Stack[mc.SP], nil
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	for i := range mc.V {
		s.WriteString(fmt.Sprintf("V%X=%02x ", i, mc.V[i]))
		if i == 7 {
			s.WriteString("\n")
		}
	}
	s.WriteString(fmt.Sprintf("\nPC=%04x I=%04x SP=%02x", mc.PC, mc.I, mc.SP))
	return s.String()
}
