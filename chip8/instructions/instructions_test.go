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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/chip8/instructions"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

func TestOperandFields(t *testing.T) {
	ins, err := instructions.Decode(0xd12f)
	test.ExpectedSuccess(t, err)

	if ins.Operator != instructions.Draw {
		t.Errorf("expected Draw operator")
	}
	test.Equate(t, ins.X, 0x1)
	test.Equate(t, ins.Y, 0x2)
	test.Equate(t, ins.N, 0xf)
	test.Equate(t, ins.NN, 0x2f)
	test.Equate(t, ins.NNN, 0x12f)
}

func TestDecode(t *testing.T) {
	// one representative opcode from each instruction family
	families := map[uint16]instructions.Operator{
		0x00e0: instructions.ClearDisplay,
		0x00ee: instructions.Return,
		0x1228: instructions.Jump,
		0x2345: instructions.Call,
		0x3a01: instructions.SkipEqualValue,
		0x4a01: instructions.SkipNotEqualValue,
		0x5ab0: instructions.SkipEqualRegister,
		0x6a01: instructions.LoadValue,
		0x7a01: instructions.AddValue,
		0x8ab0: instructions.Move,
		0x8ab1: instructions.Or,
		0x8ab2: instructions.And,
		0x8ab3: instructions.Xor,
		0x8ab4: instructions.Add,
		0x8ab5: instructions.Sub,
		0x8ab6: instructions.ShiftRight,
		0x8ab7: instructions.SubReverse,
		0x8abe: instructions.ShiftLeft,
		0x9ab0: instructions.SkipNotEqualRegister,
		0xa123: instructions.LoadIndex,
		0xb123: instructions.JumpOffset,
		0xcaff: instructions.Random,
		0xd12f: instructions.Draw,
		0xea9e: instructions.SkipKeyPressed,
		0xeaa1: instructions.SkipKeyNotPressed,
		0xfa07: instructions.ReadDelayTimer,
		0xfa0a: instructions.WaitKey,
		0xfa15: instructions.SetDelayTimer,
		0xfa18: instructions.SetSoundTimer,
		0xfa1e: instructions.AddIndex,
		0xfa29: instructions.FontSprite,
		0xfa33: instructions.BCD,
		0xfa55: instructions.StoreRegisters,
		0xfa65: instructions.LoadRegisters,
	}

	for opcode, operator := range families {
		ins, err := instructions.Decode(opcode)
		test.ExpectedSuccess(t, err)
		if ins.Operator != operator {
			t.Errorf("opcode %#04x decoded to the wrong operator", opcode)
		}
	}
}

func TestDecodeFaults(t *testing.T) {
	for _, opcode := range []uint16{0x0000, 0x0123, 0x5ab1, 0x8ab8, 0x9ab1, 0xeaff, 0xfa00, 0xfaff} {
		_, err := instructions.Decode(opcode)
		test.ExpectedFailure(t, err)
		if !curated.Is(err, instructions.DecodeError) {
			t.Errorf("expected decode error for opcode %#04x, got: %v", opcode, err)
		}
	}
}

func TestMnemonics(t *testing.T) {
	ins, _ := instructions.Decode(0x1228)
	test.Equate(t, ins.String(), "JP $228")

	ins, _ = instructions.Decode(0x00e0)
	test.Equate(t, ins.String(), "CLS")

	ins, _ = instructions.Decode(0xd12f)
	test.Equate(t, ins.String(), "DRW V1, V2, $F")

	ins, _ = instructions.Decode(0xfa65)
	test.Equate(t, ins.String(), "LD VA, [I]")
}
