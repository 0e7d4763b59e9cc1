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

package instructions

import "fmt"

// Mnemonic returns the conventional assembler mnemonic for the operator.
func (op Operator) Mnemonic() string {
	switch op {
	case ClearDisplay:
		return "CLS"
	case Return:
		return "RET"
	case Jump, JumpOffset:
		return "JP"
	case Call:
		return "CALL"
	case SkipEqualValue, SkipEqualRegister:
		return "SE"
	case SkipNotEqualValue, SkipNotEqualRegister:
		return "SNE"
	case LoadValue, Move, LoadIndex, ReadDelayTimer, WaitKey,
		SetDelayTimer, SetSoundTimer, FontSprite, BCD,
		StoreRegisters, LoadRegisters:
		return "LD"
	case AddValue, Add, AddIndex:
		return "ADD"
	case Or:
		return "OR"
	case And:
		return "AND"
	case Xor:
		return "XOR"
	case Sub:
		return "SUB"
	case ShiftRight:
		return "SHR"
	case SubReverse:
		return "SUBN"
	case ShiftLeft:
		return "SHL"
	case Random:
		return "RND"
	case Draw:
		return "DRW"
	case SkipKeyPressed:
		return "SKP"
	case SkipKeyNotPressed:
		return "SKNP"
	}
	return "???"
}

// Operand returns the conventional assembler notation for the instruction's
// operands.
func (ins Instruction) Operand() string {
	switch ins.Operator {
	case ClearDisplay, Return:
		return ""
	case Jump, Call:
		return fmt.Sprintf("$%03X", ins.NNN)
	case JumpOffset:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case SkipEqualValue, SkipNotEqualValue:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case SkipEqualRegister, SkipNotEqualRegister:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case LoadValue, AddValue, Random:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case Move, Or, And, Xor, Add, Sub, SubReverse:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case ShiftRight, ShiftLeft:
		return fmt.Sprintf("V%X {, V%X}", ins.X, ins.Y)
	case LoadIndex:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case AddIndex:
		return fmt.Sprintf("I, V%X", ins.X)
	case Draw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	case SkipKeyPressed, SkipKeyNotPressed:
		return fmt.Sprintf("V%X", ins.X)
	case ReadDelayTimer:
		return fmt.Sprintf("V%X, DT", ins.X)
	case WaitKey:
		return fmt.Sprintf("V%X, K", ins.X)
	case SetDelayTimer:
		return fmt.Sprintf("DT, V%X", ins.X)
	case SetSoundTimer:
		return fmt.Sprintf("ST, V%X", ins.X)
	case FontSprite:
		return fmt.Sprintf("F, V%X", ins.X)
	case BCD:
		return fmt.Sprintf("B, V%X", ins.X)
	case StoreRegisters:
		return fmt.Sprintf("[I], V%X", ins.X)
	case LoadRegisters:
		return fmt.Sprintf("V%X, [I]", ins.X)
	}
	return ""
}

func (ins Instruction) String() string {
	operand := ins.Operand()
	if operand == "" {
		return ins.Operator.Mnemonic()
	}
	return fmt.Sprintf("%s %s", ins.Operator.Mnemonic(), operand)
}
