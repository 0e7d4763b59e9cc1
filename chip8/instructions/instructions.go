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

// Package instructions defines the CHIP-8 instruction set. The Decode()
// function turns a raw 16-bit opcode into a value of the Instruction type;
// execution of decoded instructions is the work of the chip8 package.
//
// Decoding produces a closed set of operators. Anything that does not decode
// is a fault (DecodeError) and the emulation will not continue beyond it.
package instructions

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel error returned by Decode() for an opcode that is not part of any
// instruction family.
const DecodeError = "decode: unknown opcode (%#04x)"

// Operator identifies the effect of an instruction.
type Operator int

// The closed list of CHIP-8 operators.
const (
	ClearDisplay Operator = iota
	Return
	Jump
	Call
	SkipEqualValue
	SkipNotEqualValue
	SkipEqualRegister
	SkipNotEqualRegister
	LoadValue
	AddValue
	Move
	Or
	And
	Xor
	Add
	Sub
	ShiftRight
	SubReverse
	ShiftLeft
	LoadIndex
	JumpOffset
	Random
	Draw
	SkipKeyPressed
	SkipKeyNotPressed
	ReadDelayTimer
	WaitKey
	SetDelayTimer
	SetSoundTimer
	AddIndex
	FontSprite
	BCD
	StoreRegisters
	LoadRegisters
)

// Instruction is a decoded opcode. The operand fields are all extracted
// during decoding, whether or not the operator uses them.
type Instruction struct {
	// the raw opcode the instruction was decoded from
	Opcode uint16

	Operator Operator

	// operand fields. x and y are register indexes; n, nn and nnn are the
	// 4-bit, 8-bit and 12-bit literals
	X   uint8
	Y   uint8
	N   uint8
	NN  uint8
	NNN uint16
}

// Decode a 16-bit opcode. The error, if there is one, is a curated error
// with the DecodeError pattern.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8((opcode >> 8) & 0x0f),
		Y:      uint8((opcode >> 4) & 0x0f),
		N:      uint8(opcode & 0x0f),
		NN:     uint8(opcode & 0xff),
		NNN:    opcode & 0x0fff,
	}

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x00e0:
			ins.Operator = ClearDisplay
		case 0x00ee:
			ins.Operator = Return
		default:
			// 0NNN "machine language routine" opcodes are not supported.
			// they decode as unknown
			return ins, curated.Errorf(DecodeError, opcode)
		}
	case 0x1000:
		ins.Operator = Jump
	case 0x2000:
		ins.Operator = Call
	case 0x3000:
		ins.Operator = SkipEqualValue
	case 0x4000:
		ins.Operator = SkipNotEqualValue
	case 0x5000:
		if opcode&0x000f != 0x0 {
			return ins, curated.Errorf(DecodeError, opcode)
		}
		ins.Operator = SkipEqualRegister
	case 0x6000:
		ins.Operator = LoadValue
	case 0x7000:
		ins.Operator = AddValue
	case 0x8000:
		switch opcode & 0x000f {
		case 0x0:
			ins.Operator = Move
		case 0x1:
			ins.Operator = Or
		case 0x2:
			ins.Operator = And
		case 0x3:
			ins.Operator = Xor
		case 0x4:
			ins.Operator = Add
		case 0x5:
			ins.Operator = Sub
		case 0x6:
			ins.Operator = ShiftRight
		case 0x7:
			ins.Operator = SubReverse
		case 0xe:
			ins.Operator = ShiftLeft
		default:
			return ins, curated.Errorf(DecodeError, opcode)
		}
	case 0x9000:
		if opcode&0x000f != 0x0 {
			return ins, curated.Errorf(DecodeError, opcode)
		}
		ins.Operator = SkipNotEqualRegister
	case 0xa000:
		ins.Operator = LoadIndex
	case 0xb000:
		ins.Operator = JumpOffset
	case 0xc000:
		ins.Operator = Random
	case 0xd000:
		ins.Operator = Draw
	case 0xe000:
		switch opcode & 0x00ff {
		case 0x9e:
			ins.Operator = SkipKeyPressed
		case 0xa1:
			ins.Operator = SkipKeyNotPressed
		default:
			return ins, curated.Errorf(DecodeError, opcode)
		}
	case 0xf000:
		switch opcode & 0x00ff {
		case 0x07:
			ins.Operator = ReadDelayTimer
		case 0x0a:
			ins.Operator = WaitKey
		case 0x15:
			ins.Operator = SetDelayTimer
		case 0x18:
			ins.Operator = SetSoundTimer
		case 0x1e:
			ins.Operator = AddIndex
		case 0x29:
			ins.Operator = FontSprite
		case 0x33:
			ins.Operator = BCD
		case 0x55:
			ins.Operator = StoreRegisters
		case 0x65:
			ins.Operator = LoadRegisters
		default:
			return ins, curated.Errorf(DecodeError, opcode)
		}
	}

	return ins, nil
}
