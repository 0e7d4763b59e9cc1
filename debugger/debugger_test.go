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

package debugger_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/chip8/display"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// mockTerm is a scripted terminal. TermRead() returns the scripted lines in
// order and io.EOF when the script runs out.
type mockTerm struct {
	script []string
	lines  []string
	styles []terminal.Style
}

func newMockTerm(script ...string) *mockTerm {
	return &mockTerm{script: script}
}

func (trm *mockTerm) Initialise() error                           { return nil }
func (trm *mockTerm) CleanUp()                                    {}
func (trm *mockTerm) RegisterTabCompletion(terminal.TabCompletion) {}
func (trm *mockTerm) Silence(bool)                                {}
func (trm *mockTerm) TermReadCheck() bool                         { return false }
func (trm *mockTerm) IsInteractive() bool                         { return false }

func (trm *mockTerm) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if len(trm.script) == 0 {
		return "", io.EOF
	}
	s := trm.script[0]
	trm.script = trm.script[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	trm.styles = append(trm.styles, style)
	trm.lines = append(trm.lines, s)
}

func (trm *mockTerm) errorLines() []string {
	var l []string
	for i := range trm.lines {
		if trm.styles[i] == terminal.StyleError {
			l = append(l, trm.lines[i])
		}
	}
	return l
}

// startDebugger runs a scripted session to completion and returns the
// machine and terminal for inspection.
func startDebugger(t *testing.T, program []byte, script ...string) (*chip8.Chip8, *mockTerm, *debugger.Debugger) {
	t.Helper()

	vm := chip8.NewChip8()
	vm.Rnd.ZeroSeed = true
	trm := newMockTerm(script...)

	dbg, err := debugger.NewDebugger(vm, trm, nil)
	test.ExpectedSuccess(t, err)

	romload := romloader.NewLoader("test.ch8")
	romload.Data = program

	test.ExpectedSuccess(t, dbg.Start(romload))

	return vm, trm, dbg
}

func TestStep(t *testing.T) {
	vm, trm, dbg := startDebugger(t, []byte{
		0x60, 0x01, // LD V0, $1
		0x61, 0x02, // LD V1, $2
	}, "STEP", "QUIT")

	test.Equate(t, vm.CPU.PC, 0x202)
	test.Equate(t, vm.CPU.V[0x0], 0x01)
	test.Equate(t, vm.CPU.V[0x1], 0x00)
	test.Equate(t, dbg.State() == govern.Paused, true)
	test.Equate(t, len(trm.errorLines()), 0)
}

func TestBreakpointHaltsBeforeExecution(t *testing.T) {
	vm, trm, dbg := startDebugger(t, []byte{
		0x60, 0x01, // LD V0, $1
		0x61, 0x02, // LD V1, $2
		0x62, 0x03, // LD V2, $3
		0x12, 0x06, // JP $206
	}, "BREAK $204", "CONTINUE", "QUIT")

	// halted at the breakpoint with the instruction there not yet executed
	test.Equate(t, vm.CPU.PC, 0x204)
	test.Equate(t, vm.CPU.V[0x1], 0x02)
	test.Equate(t, vm.CPU.V[0x2], 0x00)
	test.Equate(t, dbg.State() == govern.Paused, true)
	test.Equate(t, len(trm.errorLines()), 0)
}

func TestContinueFromBreakpointMoves(t *testing.T) {
	vm, _, _ := startDebugger(t, []byte{
		0x60, 0x01, // LD V0, $1
		0x61, 0x02, // LD V1, $2
		0x12, 0x02, // JP $202
	}, "BREAK $202", "CONTINUE", "CONTINUE", "QUIT")

	// the second CONTINUE executes the instruction at the breakpoint and
	// comes back around the jump to halt at it again
	test.Equate(t, vm.CPU.PC, 0x202)
	test.Equate(t, vm.CPU.V[0x1], 0x02)
}

func TestUnknownCommand(t *testing.T) {
	vm, trm, dbg := startDebugger(t, []byte{
		0x60, 0x01, // LD V0, $1
	}, "FLIBBLE", "QUIT")

	// one error line and no change to the machine or the debugger
	errs := trm.errorLines()
	test.Equate(t, len(errs), 1)
	test.Equate(t, strings.Contains(errs[0], "unknown command"), true)
	test.Equate(t, vm.CPU.PC, 0x200)
	test.Equate(t, dbg.State() == govern.Paused, true)
}

func TestFatalFaultHalts(t *testing.T) {
	vm, trm, dbg := startDebugger(t, []byte{
		0x01, 0x23, // does not decode
	}, "STEP", "STEP", "QUIT")

	test.Equate(t, dbg.State() == govern.Halted, true)
	test.Equate(t, vm.CPU.PC, 0x200)

	// the first STEP reports the fault. the second STEP is refused
	errs := trm.errorLines()
	test.Equate(t, len(errs), 2)
	test.Equate(t, strings.Contains(errs[1], "halted"), true)
}

func TestResetAfterHalt(t *testing.T) {
	_, _, dbg := startDebugger(t, []byte{
		0x01, 0x23, // does not decode
	}, "STEP", "RESET", "QUIT")

	test.Equate(t, dbg.State() == govern.Paused, true)
}

func TestPrintAndSet(t *testing.T) {
	vm, trm, _ := startDebugger(t, []byte{
		0x60, 0x01, // LD V0, $1
	}, "SET V3 $AB", "SET KEY 5 DOWN", "PRINT REG", "PRINT TIMERS", "QUIT")

	test.Equate(t, vm.CPU.V[0x3], 0xab)
	test.Equate(t, vm.Keypad.IsPressed(0x5), true)
	test.Equate(t, len(trm.errorLines()), 0)

	found := false
	for _, l := range trm.lines {
		if strings.Contains(l, "V3=ab") {
			found = true
		}
	}
	test.Equate(t, found, true)
}

func TestDeleteBreakpoint(t *testing.T) {
	vm, trm, _ := startDebugger(t, []byte{
		0x60, 0x01, // LD V0, $1
		0x61, 0x02, // LD V1, $2
		0x12, 0x04, // JP $204
	}, "BREAK $202", "DELETE 1", "BREAK $204", "CONTINUE", "QUIT")

	// the deleted breakpoint at $202 does not halt the run
	test.Equate(t, vm.CPU.PC, 0x204)
	test.Equate(t, len(trm.errorLines()), 0)
}

func TestMemCommand(t *testing.T) {
	_, trm, _ := startDebugger(t, []byte{
		0x60, 0x01, // LD V0, $1
	}, "MEM $200 2", "QUIT")

	test.Equate(t, len(trm.errorLines()), 0)

	found := false
	for _, l := range trm.lines {
		if strings.Contains(l, "$200: 60 01") {
			found = true
		}
	}
	test.Equate(t, found, true)
}

func TestWaitForKeyLeavesTimersToTheDriver(t *testing.T) {
	script := []string{"SET DT $20"}
	for i := 0; i < 12; i++ {
		script = append(script, "STEP")
	}
	script = append(script, "QUIT")

	vm, trm, _ := startDebugger(t, []byte{
		0xf1, 0x0a, // LD V1, K
	}, script...)

	// the machine never moves past the wait-for-key instruction and the
	// repeated attempts do not accumulate towards a timer tick
	test.Equate(t, vm.CPU.PC, 0x200)
	test.Equate(t, vm.Timers.Delay, 0x20)
	test.Equate(t, len(trm.errorLines()), 0)
}

// mockGUI records the registered event channel so that tests can inject
// events directly.
type mockGUI struct {
	events chan gui.Event
}

func (scr *mockGUI) SetEventChannel(events chan gui.Event) { scr.events = events }
func (scr *mockGUI) UpdateDisplay(*display.Display) error  { return nil }
func (scr *mockGUI) SetTitle(string)                       {}
func (scr *mockGUI) Destroy()                              {}

func TestEscapePausesRunningEmulation(t *testing.T) {
	vm := chip8.NewChip8()
	vm.Rnd.ZeroSeed = true
	trm := newMockTerm("CONTINUE", "QUIT")
	scr := &mockGUI{}

	dbg, err := debugger.NewDebugger(vm, trm, scr)
	test.ExpectedSuccess(t, err)

	// the pause event is already waiting in the channel when CONTINUE starts
	// the run. the run loop services it after the first instruction
	scr.events <- gui.EventPause{}

	romload := romloader.NewLoader("test.ch8")
	romload.Data = []byte{
		0x12, 0x00, // JP $200
	}
	test.ExpectedSuccess(t, dbg.Start(romload))

	test.Equate(t, dbg.State() == govern.Paused, true)
	test.Equate(t, len(trm.errorLines()), 0)

	found := false
	for _, l := range trm.lines {
		if l == "paused" {
			found = true
		}
	}
	test.Equate(t, found, true)
}

func TestHelpScrollback(t *testing.T) {
	_, trm, _ := startDebugger(t, []byte{
		0x60, 0x01, // LD V0, $1
	}, "HELP SCROLLBACK", "QUIT")

	// the help text mentions that the cursor keys belong to command history
	found := false
	for _, l := range trm.lines {
		if strings.Contains(l, "command history") {
			found = true
		}
	}
	test.Equate(t, found, true)
}
