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

// Package memory implements the 4k address space of the CHIP-8. The lower
// 512 bytes are reserved for the interpreter. The only thing of interest in
// that area is the font data, which lives at OriginFont. Program data is
// loaded at OriginProgram.
package memory

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel error returned on any access outside of the 4k address space.
// These errors are fatal to the emulation.
const AccessError = "memory: address out of range (%#04x)"

// Sentinel error returned by LoadProgram() when the program image will not
// fit in the space above OriginProgram.
const ProgramTooLarge = "memory: program too large (%d bytes, max %d)"

// Size of the CHIP-8 address space in bytes.
const Size = 4096

// List of memory origins. OriginFont is where the hex digit sprites are
// found. OriginProgram is where program data is loaded and where the program
// counter points on reset.
const (
	OriginFont    = 0x050
	OriginProgram = 0x200
)

// Memory implements the CHIP-8 address space.
type Memory struct {
	ram [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset the contents of memory. The font data is restored but the program
// area is zeroed; reattach the program with LoadProgram().
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[OriginFont:], fontData[:])
}

// LoadProgram copies the program image, verbatim, into memory starting at
// OriginProgram. No header, no relocation.
func (mem *Memory) LoadProgram(data []byte) error {
	if len(data) > Size-OriginProgram {
		return curated.Errorf(ProgramTooLarge, len(data), Size-OriginProgram)
	}
	copy(mem.ram[OriginProgram:], data)
	return nil
}

// Read a byte from the specified address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address >= Size {
		return 0, curated.Errorf(AccessError, address)
	}
	return mem.ram[address], nil
}

// Write a byte to the specified address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if address >= Size {
		return curated.Errorf(AccessError, address)
	}
	mem.ram[address] = data
	return nil
}

// FontAddress returns the address of the 5-byte sprite for the hex digit.
// Only the lower nibble of the digit argument is considered.
func FontAddress(digit uint8) uint16 {
	return OriginFont + uint16(digit&0x0f)*fontHeight
}
