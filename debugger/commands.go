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

package debugger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/chip8/memory"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/logger"
)

// commandWords is used for tab completion in the attached terminal.
var commandWords = []string{
	"HELP", "STEP", "CONTINUE", "BREAK", "DELETE", "LIST", "CLEAR",
	"PRINT", "MEM", "DISASM", "SET", "RESET", "SCROLLBACK", "LOG", "QUIT",
}

var commandHelp = map[string]string{
	"HELP":       "HELP [command] - list commands or show help for one command",
	"STEP":       "STEP [n] - execute the next instruction (or the next n instructions)",
	"CONTINUE":   "CONTINUE - run until a breakpoint, a fault or an interrupt",
	"BREAK":      "BREAK <address> - halt execution when the program counter reaches the address",
	"DELETE":     "DELETE <id|address|ALL> - remove a breakpoint",
	"LIST":       "LIST - list breakpoints",
	"CLEAR":      "CLEAR - remove all breakpoints",
	"PRINT":      "PRINT REG|MEM <address> [n]|STACK|TIMERS - inspect machine state",
	"MEM":        "MEM <address> [n] - show memory contents. shorthand for PRINT MEM",
	"DISASM":     "DISASM [address] - show the disassembly around the address (default: program counter)",
	"SET":        "SET V<x>|I|PC|DT|ST <value> or SET KEY <key> DOWN|UP - poke machine state",
	"RESET":      "RESET - reset the machine and reload the ROM",
	"SCROLLBACK": "SCROLLBACK [n] - replay the terminal transcript. the cursor keys move through command history, not the transcript",
	"LOG":        "LOG - show recent log entries",
	"QUIT":       "QUIT - leave the debugger",
}

// parseInput tokenises and dispatches one line of input. An empty line
// repeats the most recent successful command.
func (dbg *Debugger) parseInput(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		if dbg.lastInput == "" {
			return nil
		}
		input = dbg.lastInput
	}

	dbg.printLine(terminal.StyleEcho, input)

	err := dbg.dispatch(commandline.TokeniseInput(input))
	if err == nil {
		dbg.lastInput = input
	}
	return err
}

func (dbg *Debugger) dispatch(tok *commandline.Tokens) error {
	cmd, _ := tok.Get()

	switch strings.ToUpper(cmd) {
	case "HELP":
		dbg.cmdHelp(tok)

	case "STEP":
		return dbg.cmdStep(tok)

	case "CONTINUE":
		if err := dbg.checkNotHalted(); err != nil {
			return err
		}
		dbg.runToHalt()

	case "BREAK":
		return dbg.cmdBreak(tok)

	case "DELETE":
		return dbg.cmdDelete(tok)

	case "LIST":
		l := dbg.breakpoints.list()
		if len(l) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		}
		for _, s := range l {
			dbg.printLine(terminal.StyleFeedback, s)
		}

	case "CLEAR":
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case "PRINT":
		return dbg.cmdPrint(tok)

	case "MEM":
		return dbg.cmdMem(tok)

	case "DISASM":
		return dbg.cmdDisasm(tok)

	case "SET":
		return dbg.cmdSet(tok)

	case "RESET":
		if err := dbg.vm.Reset(); err != nil {
			return err
		}
		dbg.state = govern.Paused
		dbg.haltReason = nil
		dbg.stepCount = 0
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case "SCROLLBACK":
		n, _ := tok.GetNumber()
		for _, l := range dbg.scrollback.tail(n) {
			// straight to the terminal. replaying the transcript should not
			// also extend it
			dbg.term.TermPrintLine(l.style, l.text)
		}

	case "LOG":
		s := &strings.Builder{}
		logger.Tail(s, 20)
		for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
			if l != "" {
				dbg.printLine(terminal.StyleLog, l)
			}
		}

	case "QUIT":
		dbg.running = false

	default:
		return curated.Errorf(CommandError, fmt.Sprintf("unknown command (%s). try HELP", cmd))
	}

	return nil
}

// checkNotHalted guards the commands that advance the emulation.
func (dbg *Debugger) checkNotHalted() error {
	if dbg.state == govern.Halted {
		return curated.Errorf(CommandError,
			fmt.Sprintf("machine has halted (%v). use RESET to start again", dbg.haltReason))
	}
	return nil
}

func (dbg *Debugger) cmdHelp(tok *commandline.Tokens) {
	if t, ok := tok.Get(); ok {
		if h, ok := commandHelp[strings.ToUpper(t)]; ok {
			dbg.printLine(terminal.StyleHelp, h)
			return
		}
		dbg.printLine(terminal.StyleHelp, fmt.Sprintf("no help for %s", strings.ToUpper(t)))
		return
	}

	cmds := make([]string, len(commandWords))
	copy(cmds, commandWords)
	sort.Strings(cmds)
	dbg.printLine(terminal.StyleHelp, strings.Join(cmds, " "))
}

func (dbg *Debugger) cmdStep(tok *commandline.Tokens) error {
	if err := dbg.checkNotHalted(); err != nil {
		return err
	}

	n, ok := tok.GetNumber()
	if !ok {
		n = 1
	}
	if n < 1 {
		return curated.Errorf(CommandError, "step count must be positive")
	}

	for i := 0; i < n; i++ {
		res := dbg.step()
		if dbg.state == govern.Halted {
			return nil
		}
		if res == chip8.Blocked {
			dbg.printLine(terminal.StyleFeedback, "waiting for key press")
			return nil
		}
		if i < n-1 && dbg.breakpoints.check(dbg.vm.CPU.PC) {
			dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint at $%03X", dbg.vm.CPU.PC))
			return nil
		}
	}

	dbg.printLine(terminal.StyleInstrument, dbg.disasmCurrent())

	return nil
}

func (dbg *Debugger) cmdBreak(tok *commandline.Tokens) error {
	address, ok := tok.GetNumber()
	if !ok {
		return curated.Errorf(CommandError, "BREAK requires an address")
	}
	if address < 0 || address >= memory.Size {
		return curated.Errorf(CommandError, fmt.Sprintf("address out of range (%#04x)", address))
	}

	id, err := dbg.breakpoints.add(uint16(address))
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint %d added at $%03X", id, address))
	return nil
}

func (dbg *Debugger) cmdDelete(tok *commandline.Tokens) error {
	if t, ok := tok.Peek(); ok && strings.ToUpper(t) == "ALL" {
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		return nil
	}

	n, ok := tok.GetNumber()
	if !ok {
		return curated.Errorf(CommandError, "DELETE requires a breakpoint id, an address or ALL")
	}
	if err := dbg.breakpoints.drop(n); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "breakpoint deleted")
	return nil
}

func (dbg *Debugger) cmdPrint(tok *commandline.Tokens) error {
	t, _ := tok.Get()

	switch strings.ToUpper(t) {
	case "REG":
		for _, l := range strings.Split(dbg.vm.CPU.String(), "\n") {
			if l != "" {
				dbg.printLine(terminal.StyleInstrument, l)
			}
		}

	case "MEM":
		return dbg.cmdMem(tok)

	case "STACK":
		if dbg.vm.CPU.SP == 0 {
			dbg.printLine(terminal.StyleInstrument, "stack empty")
			return nil
		}
		for i := int(dbg.vm.CPU.SP) - 1; i >= 0; i-- {
			dbg.printLine(terminal.StyleInstrument, fmt.Sprintf("%2d: $%03X", i, dbg.vm.CPU.Stack[i]))
		}

	case "TIMERS":
		dbg.printLine(terminal.StyleInstrument,
			fmt.Sprintf("DT=%02x ST=%02x", dbg.vm.Timers.Delay, dbg.vm.Timers.Sound))

	default:
		return curated.Errorf(CommandError, "PRINT requires one of REG, MEM, STACK or TIMERS")
	}

	return nil
}

// cmdMem is the hex dump behind both the MEM command and PRINT MEM.
func (dbg *Debugger) cmdMem(tok *commandline.Tokens) error {
	address, ok := tok.GetNumber()
	if !ok {
		return curated.Errorf(CommandError, "MEM requires an address")
	}
	n, ok := tok.GetNumber()
	if !ok {
		n = 16
	}
	if address < 0 || address >= memory.Size {
		return curated.Errorf(CommandError, fmt.Sprintf("address out of range (%#04x)", address))
	}
	if n < 1 || address+n > memory.Size {
		return curated.Errorf(CommandError, "length out of range")
	}

	s := strings.Builder{}
	for i := 0; i < n; i++ {
		if i%8 == 0 {
			if s.Len() > 0 {
				dbg.printLine(terminal.StyleInstrument, s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("$%03X:", address+i))
		}
		v, err := dbg.vm.Mem.Read(uint16(address + i))
		if err != nil {
			return err
		}
		s.WriteString(fmt.Sprintf(" %02x", v))
	}
	if s.Len() > 0 {
		dbg.printLine(terminal.StyleInstrument, s.String())
	}

	return nil
}

func (dbg *Debugger) cmdDisasm(tok *commandline.Tokens) error {
	address, ok := tok.GetNumber()
	if !ok {
		address = int(dbg.vm.CPU.PC)
	}
	if address < 0 || address >= memory.Size {
		return curated.Errorf(CommandError, fmt.Sprintf("address out of range (%#04x)", address))
	}

	window := dbg.dsm.Window(uint16(address), 8)
	if len(window) == 0 {
		return curated.Errorf(CommandError, "address is outside the program area")
	}

	for _, e := range window {
		cursor := "  "
		if e.Address == dbg.vm.CPU.PC {
			cursor = "> "
		}
		dbg.printLine(terminal.StyleInstrument, cursor+e.String())
	}
	return nil
}

func (dbg *Debugger) cmdSet(tok *commandline.Tokens) error {
	target, ok := tok.Get()
	if !ok {
		return curated.Errorf(CommandError, "SET requires a target")
	}
	target = strings.ToUpper(target)

	// SET KEY has its own shape
	if target == "KEY" {
		k, ok := tok.GetNumber()
		if !ok || k < 0 || k > 0x0f {
			return curated.Errorf(CommandError, "SET KEY requires a key between 0 and 15")
		}
		state, _ := tok.Get()
		switch strings.ToUpper(state) {
		case "DOWN":
			dbg.vm.Keypad.SetPressed(uint8(k), true)
		case "UP":
			dbg.vm.Keypad.SetPressed(uint8(k), false)
		default:
			return curated.Errorf(CommandError, "SET KEY requires DOWN or UP")
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("key %X %s", k, strings.ToLower(state)))
		return nil
	}

	value, ok := tok.GetNumber()
	if !ok {
		return curated.Errorf(CommandError, "SET requires a value")
	}

	switch {
	case len(target) == 2 && target[0] == 'V':
		reg, err := strconv.ParseUint(target[1:], 16, 4)
		if err != nil {
			return curated.Errorf(CommandError, fmt.Sprintf("no such register (%s)", target))
		}
		if value < 0 || value > 0xff {
			return curated.Errorf(CommandError, "register value out of range")
		}
		dbg.vm.CPU.V[reg] = uint8(value)

	case target == "I":
		if value < 0 || value >= memory.Size {
			return curated.Errorf(CommandError, "index value out of range")
		}
		dbg.vm.CPU.I = uint16(value)

	case target == "PC":
		if value < 0 || value >= memory.Size {
			return curated.Errorf(CommandError, "program counter out of range")
		}
		dbg.vm.CPU.PC = uint16(value)

	case target == "DT":
		if value < 0 || value > 0xff {
			return curated.Errorf(CommandError, "timer value out of range")
		}
		dbg.vm.Timers.Delay = uint8(value)

	case target == "ST":
		if value < 0 || value > 0xff {
			return curated.Errorf(CommandError, "timer value out of range")
		}
		dbg.vm.Timers.Sound = uint8(value)

	default:
		return curated.Errorf(CommandError, fmt.Sprintf("cannot set %s", target))
	}

	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("%s = %#x", target, value))
	return nil
}
