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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/chip8/cpu"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

func TestReset(t *testing.T) {
	mc := cpu.NewCPU()
	mc.V[0x3] = 0xff
	mc.I = 0x123
	mc.PC = 0x456
	_ = mc.Push(0x789)

	mc.Reset()

	test.Equate(t, mc.V[0x3], 0)
	test.Equate(t, mc.I, 0)
	test.Equate(t, mc.PC, 0x200)
	test.Equate(t, int(mc.SP), 0)
}

func TestStackDiscipline(t *testing.T) {
	mc := cpu.NewCPU()

	// sixteen nested pushes succeed
	for i := 0; i < cpu.StackDepth; i++ {
		test.ExpectedSuccess(t, mc.Push(uint16(0x200+i)))
	}

	// the seventeenth does not
	err := mc.Push(0x300)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, cpu.StackOverflow) {
		t.Errorf("expected stack overflow, got: %v", err)
	}

	// pop everything back in reverse order
	for i := cpu.StackDepth - 1; i >= 0; i-- {
		address, err := mc.Pop()
		test.ExpectedSuccess(t, err)
		test.Equate(t, address, 0x200+i)
	}

	// popping an empty stack fails
	_, err = mc.Pop()
	test.ExpectedFailure(t, err)
	if !curated.Is(err, cpu.StackUnderflow) {
		t.Errorf("expected stack underflow, got: %v", err)
	}
}
