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

// Package disassembly turns a ROM image into a listing of CHIP-8
// instructions.
//
// CHIP-8 programs mix instructions and sprite data freely and nothing in the
// image marks which is which, so the disassembly is a linear sweep of every
// 16-bit word in the program area. Words that do not decode are listed as
// data. The listing is therefore a guide, not a ground truth; only execution
// can say what is really an instruction.
package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/chip8/instructions"
	"github.com/jetsetilly/gopher8/chip8/memory"
	"github.com/jetsetilly/gopher8/romloader"
)

// Entry is a single line of the disassembly.
type Entry struct {
	// address of the word in CHIP-8 memory
	Address uint16

	// the raw 16-bit word
	Opcode uint16

	// the decoded instruction. only meaningful if IsInstruction is true
	Instruction instructions.Instruction

	// false if the word did not decode and is assumed to be data
	IsInstruction bool
}

func (e Entry) String() string {
	if !e.IsInstruction {
		return fmt.Sprintf("$%03X .. %04x", e.Address, e.Opcode)
	}
	return fmt.Sprintf("$%03X    %04x    %s", e.Address, e.Opcode, e.Instruction.String())
}

// Disassembly is the result of disassembling a ROM.
type Disassembly struct {
	entries []Entry
}

// FromLoader disassembles the ROM specified by the Loader. The ROM is loaded
// if it has not been loaded already.
func FromLoader(romload romloader.Loader) (*Disassembly, error) {
	err := romload.Load()
	if err != nil {
		return nil, err
	}
	return FromData(romload.Data), nil
}

// FromData disassembles a program image as it would appear in memory at the
// program origin.
func FromData(data []byte) *Disassembly {
	dsm := &Disassembly{}

	for i := 0; i+1 < len(data); i += 2 {
		opcode := uint16(data[i])<<8 | uint16(data[i+1])
		e := Entry{
			Address: memory.OriginProgram + uint16(i),
			Opcode:  opcode,
		}
		ins, err := instructions.Decode(opcode)
		e.Instruction = ins
		e.IsInstruction = err == nil
		dsm.entries = append(dsm.entries, e)
	}

	return dsm
}

// NumEntries returns the number of lines in the disassembly.
func (dsm *Disassembly) NumEntries() int {
	return len(dsm.entries)
}

// Entry returns the disassembly line covering the specified address. The
// second return value is false if the address is outside the disassembled
// area. Odd addresses round down to the word they fall inside.
func (dsm *Disassembly) Entry(address uint16) (Entry, bool) {
	if address < memory.OriginProgram {
		return Entry{}, false
	}
	idx := int(address-memory.OriginProgram) / 2
	if idx >= len(dsm.entries) {
		return Entry{}, false
	}
	return dsm.entries[idx], true
}

// Window returns the disassembly lines around the specified address. The
// lines argument is the maximum number of lines either side of the address.
func (dsm *Disassembly) Window(address uint16, lines int) []Entry {
	centre := int(address-memory.OriginProgram) / 2
	if address < memory.OriginProgram || centre >= len(dsm.entries) {
		return nil
	}

	from := centre - lines
	if from < 0 {
		from = 0
	}
	to := centre + lines + 1
	if to > len(dsm.entries) {
		to = len(dsm.entries)
	}

	return dsm.entries[from:to]
}

// Write the disassembly, one entry per line.
func (dsm *Disassembly) Write(w io.Writer) error {
	for _, e := range dsm.entries {
		_, err := io.WriteString(w, e.String())
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		if err != nil {
			return err
		}
	}
	return nil
}
