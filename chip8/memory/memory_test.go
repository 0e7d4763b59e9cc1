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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/chip8/memory"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

func TestBounds(t *testing.T) {
	mem := memory.NewMemory()

	// last valid address
	_, err := mem.Read(0x0fff)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, mem.Write(0x0fff, 0xff))

	// first invalid address
	_, err = mem.Read(0x1000)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, memory.AccessError) {
		t.Errorf("expected access error, got: %v", err)
	}
	test.ExpectedFailure(t, mem.Write(0x1000, 0xff))
}

func TestLoadProgram(t *testing.T) {
	mem := memory.NewMemory()

	prog := []byte{0x12, 0x00, 0xff}
	test.ExpectedSuccess(t, mem.LoadProgram(prog))

	d, err := mem.Read(memory.OriginProgram)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x12)

	d, _ = mem.Read(memory.OriginProgram + 2)
	test.Equate(t, d, 0xff)

	// maximum size program is accepted
	test.ExpectedSuccess(t, mem.LoadProgram(make([]byte, memory.Size-memory.OriginProgram)))

	// one byte over is not
	err = mem.LoadProgram(make([]byte, memory.Size-memory.OriginProgram+1))
	test.ExpectedFailure(t, err)
	if !curated.Is(err, memory.ProgramTooLarge) {
		t.Errorf("expected program-too-large error, got: %v", err)
	}
}

func TestFont(t *testing.T) {
	mem := memory.NewMemory()

	// sprite for digit 0 begins with 0xf0 at the font origin
	d, err := mem.Read(memory.FontAddress(0x0))
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0xf0)

	// sprite addresses are five bytes apart
	test.Equate(t, memory.FontAddress(0x1), memory.OriginFont+5)
	test.Equate(t, memory.FontAddress(0xf), memory.OriginFont+75)

	// only the lower nibble of the digit matters
	test.Equate(t, memory.FontAddress(0x1a), memory.FontAddress(0x0a))
}
