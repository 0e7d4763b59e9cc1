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

// Package debugger is the container for the debugging console of the
// emulated machine. It pairs a chip8.Chip8 instance with a
// terminal.Terminal implementation and mediates between the two: commands
// arrive through the terminal and drive the emulation; results go back out
// through the terminal and into the scrollback transcript.
//
// The emulation and the debugger run in the same goroutine. The terminal
// implementation is expected to monitor the ReadEvents channels so that the
// debugger stays responsive to GUI events and operating system signals while
// waiting for input.
package debugger

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/chip8/instructions"
	"github.com/jetsetilly/gopher8/chip8/timer"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/romloader"
)

// Sentinel error for faulty command input. These errors are never fatal; the
// debugger prints them and waits for the next command.
const CommandError = "command error: %v"

// number of instructions between timer ticks, given the nominal rates of the
// two clocks
const stepsPerTick = chip8.StepHz / timer.TickHz

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	vm  *chip8.Chip8
	dsm *disassembly.Disassembly

	term   terminal.Terminal
	events *terminal.ReadEvents

	// the windowed front-end. may be nil, in which case the debugger is
	// terminal only
	scr gui.GUI

	state      govern.State
	haltReason error

	breakpoints *breakpoints
	scrollback  *scrollback

	// instructions since the last timer tick
	stepCount int

	// the most recent successful command. an empty input line repeats it
	lastInput string

	// the debugger remains in its input loop while this is true
	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The gui argument may be nil for a terminal-only session.
func NewDebugger(vm *chip8.Chip8, term terminal.Terminal, scr gui.GUI) (*Debugger, error) {
	dbg := &Debugger{
		vm:          vm,
		term:        term,
		scr:         scr,
		state:       govern.Paused,
		breakpoints: newBreakpoints(),
		scrollback:  newScrollback(),
	}

	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
		RawEvents: make(chan func(), 32),
	}
	signal.Notify(dbg.events.Signal, os.Interrupt)

	if scr != nil {
		dbg.events.GuiEvents = make(chan gui.Event, 32)
		dbg.events.GuiEventHandler = dbg.guiEventHandler
		scr.SetEventChannel(dbg.events.GuiEvents)
	}

	err := term.Initialise()
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	term.RegisterTabCompletion(commandline.NewTabCompletion(commandWords))

	return dbg, nil
}

// State returns the execution state of the emulation.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the debugger with the specified ROM attached. Returns when the user
// quits the session.
func (dbg *Debugger) Start(romload romloader.Loader) error {
	err := dbg.vm.AttachROM(romload)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	dbg.dsm = disassembly.FromData(dbg.vm.Loader.Data)

	if dbg.scr != nil {
		dbg.scr.SetTitle(dbg.vm.Loader.ShortName())
	}

	dbg.printLine(terminal.StyleFeedback,
		fmt.Sprintf("%s (%s)", dbg.vm.Loader.ShortName(), dbg.vm.Loader.Hash))

	defer dbg.term.CleanUp()

	dbg.running = true
	return dbg.inputLoop()
}

// inputLoop is the heart of the debugger. one command is read and dispatched
// per iteration.
func (dbg *Debugger) inputLoop() error {
	for dbg.running {
		input, err := dbg.term.TermRead(dbg.buildPrompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use QUIT to leave the debugger")
				continue
			}
			if curated.Is(err, terminal.UserQuit) || err == io.EOF {
				break
			}
			return err
		}

		err = dbg.parseInput(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	// the gui is not destroyed here. destruction is an SDL operation and must
	// happen in the main thread, which is the responsibility of the main
	// package

	return dbg.vm.EndBeepers()
}

// buildPrompt describes the instruction about to be executed.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	if dbg.state == govern.Halted {
		return terminal.Prompt{
			Type:    terminal.PromptTypeHalt,
			Content: "halted",
		}
	}
	return terminal.Prompt{
		Type:    terminal.PromptTypeStep,
		Content: dbg.disasmCurrent(),
	}
}

// disasmCurrent disassembles the instruction at the current program counter,
// from live memory rather than the static listing.
func (dbg *Debugger) disasmCurrent() string {
	pc := dbg.vm.CPU.PC

	hi, err := dbg.vm.Mem.Read(pc)
	if err != nil {
		return fmt.Sprintf("$%03X ??", pc)
	}
	lo, err := dbg.vm.Mem.Read(pc + 1)
	if err != nil {
		return fmt.Sprintf("$%03X ??", pc)
	}
	opcode := uint16(hi)<<8 | uint16(lo)

	ins, err := instructions.Decode(opcode)
	if err != nil {
		return fmt.Sprintf("$%03X .. %04x", pc, opcode)
	}
	return fmt.Sprintf("$%03X %04x %s", pc, opcode, ins.String())
}

// printLine sends the line to the terminal and the scrollback transcript.
func (dbg *Debugger) printLine(style terminal.Style, s string) {
	dbg.scrollback.add(style, s)
	dbg.term.TermPrintLine(style, s)
}

// guiEventHandler is called for every event from the GUI, both while paused
// and while running.
func (dbg *Debugger) guiEventHandler(ev gui.Event) error {
	switch ev := ev.(type) {
	case gui.EventQuit:
		dbg.running = false
		return curated.Errorf(terminal.UserQuit)
	case gui.EventPause:
		// the Escape key pauses a running emulation. when the emulation is
		// already paused there is nothing to do
		if dbg.state == govern.Running {
			return curated.Errorf(terminal.UserInterrupt)
		}
	case gui.EventKeypad:
		dbg.vm.Keypad.SetPressed(ev.Key, ev.Pressed)
	}
	return nil
}

// checkEvents services the ReadEvents channels without blocking. used while
// the emulation is running and the terminal is not being read.
func (dbg *Debugger) checkEvents() error {
	for {
		select {
		case sig := <-dbg.events.Signal:
			return dbg.events.SignalHandler(sig)
		case ev := <-dbg.events.GuiEvents:
			if err := dbg.events.GuiEventHandler(ev); err != nil {
				return err
			}
		case f := <-dbg.events.RawEvents:
			f()
		default:
			return nil
		}
	}
}

// step the emulation by one instruction. a fatal emulation error moves the
// debugger to the Halted state; it is reported but not returned.
func (dbg *Debugger) step() chip8.Result {
	res, err := dbg.vm.Step()
	if err != nil {
		dbg.state = govern.Halted
		dbg.haltReason = err
		dbg.printLine(terminal.StyleError, err.Error())
		return res
	}

	// a blocked result is a repeat of the wait-for-key instruction, not an
	// executed instruction. it does not count against the tick budget; the
	// run loop ticks the timers explicitly while the machine waits
	if res != chip8.Blocked {
		dbg.stepCount++
		if dbg.stepCount >= stepsPerTick {
			dbg.stepCount = 0
			dbg.vm.TickTimers()
		}
	}

	if res == chip8.Drawn && dbg.scr != nil {
		_ = dbg.scr.UpdateDisplay(dbg.vm.Display)
	}

	return res
}

// runToHalt runs the emulation until a breakpoint, a fatal fault, a user
// interrupt or a quit event.
func (dbg *Debugger) runToHalt() {
	dbg.state = govern.Running
	defer func() {
		if dbg.state == govern.Running {
			dbg.state = govern.Paused
		}
	}()

	// pace the emulation against the timer clock. stepsPerTick instructions
	// then wait for the next tick
	pace := time.NewTicker(time.Second / timer.TickHz)
	defer pace.Stop()

	// the instruction at the current address runs without a breakpoint
	// check. without this, CONTINUE from a breakpoint would never move
	first := true

	for dbg.running {
		if !first && dbg.breakpoints.check(dbg.vm.CPU.PC) {
			dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint at $%03X", dbg.vm.CPU.PC))
			return
		}
		first = false

		res := dbg.step()
		if dbg.state == govern.Halted {
			return
		}

		// while the machine is blocked waiting for a key there is nothing to
		// do except keep the timers ticking and the events serviced
		if res == chip8.Blocked || dbg.stepCount == 0 {
			<-pace.C
			if res == chip8.Blocked {
				dbg.vm.TickTimers()
			}
		}

		err := dbg.checkEvents()
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "paused")
				return
			}
			if curated.Is(err, terminal.UserQuit) {
				return
			}
			dbg.printLine(terminal.StyleError, err.Error())
			return
		}
	}
}
