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
	"github.com/jetsetilly/gopher8/chip8/instructions"
	"github.com/jetsetilly/gopher8/chip8/memory"
)

// Result describes what happened during a call to Step().
type Result int

// List of valid Result values.
const (
	// the instruction completed and the machine is ready for the next one
	Normal Result = iota

	// the instruction completed and changed the display. drivers that pace
	// the emulation by the display use this to end the frame
	Drawn

	// the machine is waiting for a key press. the program counter has not
	// moved; calling Step() again repeats the wait
	Blocked
)

func (r Result) String() string {
	switch r {
	case Normal:
		return "normal"
	case Drawn:
		return "drawn"
	case Blocked:
		return "blocked"
	}
	return "unknown"
}

// Step runs one fetch-decode-execute cycle. Any error returned is fatal to
// the emulation: a decode fault, a memory access fault or a breach of stack
// discipline. The machine state after an error is the state at the moment of
// the fault.
func (vm *Chip8) Step() (Result, error) {
	// fetch. the two fetched bytes make a big-endian opcode
	hi, err := vm.Mem.Read(vm.CPU.PC)
	if err != nil {
		return Normal, err
	}
	lo, err := vm.Mem.Read(vm.CPU.PC + 1)
	if err != nil {
		return Normal, err
	}
	opcode := uint16(hi)<<8 | uint16(lo)

	ins, err := instructions.Decode(opcode)
	if err != nil {
		return Normal, err
	}

	// the program counter advances before execution. jumps and skips work
	// with the already-advanced value and the wait-for-key instruction winds
	// it back to repeat itself
	vm.CPU.PC += 2

	return vm.execute(ins)
}

func (vm *Chip8) execute(ins instructions.Instruction) (Result, error) {
	mc := vm.CPU

	switch ins.Operator {
	case instructions.ClearDisplay:
		vm.Display.Clear()
		return Drawn, nil

	case instructions.Return:
		address, err := mc.Pop()
		if err != nil {
			return Normal, err
		}
		mc.PC = address

	case instructions.Jump:
		mc.PC = ins.NNN

	case instructions.Call:
		err := mc.Push(mc.PC)
		if err != nil {
			return Normal, err
		}
		mc.PC = ins.NNN

	case instructions.SkipEqualValue:
		if mc.V[ins.X] == ins.NN {
			mc.PC += 2
		}

	case instructions.SkipNotEqualValue:
		if mc.V[ins.X] != ins.NN {
			mc.PC += 2
		}

	case instructions.SkipEqualRegister:
		if mc.V[ins.X] == mc.V[ins.Y] {
			mc.PC += 2
		}

	case instructions.SkipNotEqualRegister:
		if mc.V[ins.X] != mc.V[ins.Y] {
			mc.PC += 2
		}

	case instructions.LoadValue:
		mc.V[ins.X] = ins.NN

	case instructions.AddValue:
		// no carry flag for the immediate form
		mc.V[ins.X] += ins.NN

	case instructions.Move:
		mc.V[ins.X] = mc.V[ins.Y]

	case instructions.Or:
		mc.V[ins.X] |= mc.V[ins.Y]
		mc.V[cpu.VF] = 0

	case instructions.And:
		mc.V[ins.X] &= mc.V[ins.Y]
		mc.V[cpu.VF] = 0

	case instructions.Xor:
		mc.V[ins.X] ^= mc.V[ins.Y]
		mc.V[cpu.VF] = 0

	case instructions.Add:
		sum := uint16(mc.V[ins.X]) + uint16(mc.V[ins.Y])
		mc.V[ins.X] = uint8(sum)
		if sum > 0xff {
			mc.V[cpu.VF] = 1
		} else {
			mc.V[cpu.VF] = 0
		}

	case instructions.Sub:
		// the flag is NOT borrow. when X is the flag register the flag
		// result wins, so the flag is always written last
		vx := mc.V[ins.X]
		vy := mc.V[ins.Y]
		mc.V[ins.X] = vx - vy
		if vx >= vy {
			mc.V[cpu.VF] = 1
		} else {
			mc.V[cpu.VF] = 0
		}

	case instructions.ShiftRight:
		// original COSMAC behaviour. the value shifted is Vy, not Vx
		v := mc.V[ins.Y]
		mc.V[ins.X] = v >> 1
		mc.V[cpu.VF] = v & 0x01

	case instructions.SubReverse:
		vx := mc.V[ins.X]
		vy := mc.V[ins.Y]
		mc.V[ins.X] = vy - vx
		if vy >= vx {
			mc.V[cpu.VF] = 1
		} else {
			mc.V[cpu.VF] = 0
		}

	case instructions.ShiftLeft:
		v := mc.V[ins.Y]
		mc.V[ins.X] = v << 1
		mc.V[cpu.VF] = v >> 7

	case instructions.LoadIndex:
		mc.I = ins.NNN

	case instructions.JumpOffset:
		mc.PC = ins.NNN + uint16(mc.V[0])

	case instructions.Random:
		mc.V[ins.X] = vm.Rnd.Uint8() & ins.NN

	case instructions.Draw:
		sprite := make([]uint8, ins.N)
		for i := range sprite {
			var err error
			sprite[i], err = vm.Mem.Read(mc.I + uint16(i))
			if err != nil {
				return Normal, err
			}
		}
		if vm.Display.Draw(mc.V[ins.X], mc.V[ins.Y], sprite) {
			mc.V[cpu.VF] = 1
		} else {
			mc.V[cpu.VF] = 0
		}
		return Drawn, nil

	case instructions.SkipKeyPressed:
		if vm.Keypad.IsPressed(mc.V[ins.X]) {
			mc.PC += 2
		}

	case instructions.SkipKeyNotPressed:
		if !vm.Keypad.IsPressed(mc.V[ins.X]) {
			mc.PC += 2
		}

	case instructions.ReadDelayTimer:
		mc.V[ins.X] = vm.Timers.Delay

	case instructions.WaitKey:
		k, pressed := vm.Keypad.FirstPressed()
		if !pressed {
			// repeat the instruction on the next step. the timers keep
			// ticking while the machine waits
			mc.PC -= 2
			return Blocked, nil
		}
		mc.V[ins.X] = k

	case instructions.SetDelayTimer:
		vm.Timers.Delay = mc.V[ins.X]

	case instructions.SetSoundTimer:
		vm.Timers.Sound = mc.V[ins.X]
		vm.syncBeepers()

	case instructions.AddIndex:
		// no flag on overflow for this form
		mc.I += uint16(mc.V[ins.X])

	case instructions.FontSprite:
		mc.I = memory.FontAddress(mc.V[ins.X])

	case instructions.BCD:
		v := mc.V[ins.X]
		if err := vm.Mem.Write(mc.I, v/100); err != nil {
			return Normal, err
		}
		if err := vm.Mem.Write(mc.I+1, (v/10)%10); err != nil {
			return Normal, err
		}
		if err := vm.Mem.Write(mc.I+2, v%10); err != nil {
			return Normal, err
		}

	case instructions.StoreRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			if err := vm.Mem.Write(mc.I+i, mc.V[i]); err != nil {
				return Normal, err
			}
		}
		// original COSMAC behaviour. the index register moves past the
		// stored values
		mc.I += uint16(ins.X) + 1

	case instructions.LoadRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			v, err := vm.Mem.Read(mc.I + i)
			if err != nil {
				return Normal, err
			}
			mc.V[i] = v
		}
		mc.I += uint16(ins.X) + 1
	}

	return Normal, nil
}
