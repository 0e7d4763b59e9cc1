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

// Package playmode runs the emulation for the sake of playing a game. There
// is no debugging overhead, just a steady instruction rate, the display and
// the keypad.
package playmode

import (
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/chip8/timer"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
)

// Play the ROM in the prepared machine until the player quits or the machine
// faults. cps is the number of CHIP-8 instructions to execute per second; a
// value of zero or less selects chip8.StepHz.
func Play(vm *chip8.Chip8, scr gui.GUI, romload romloader.Loader, cps int) error {
	if cps <= 0 {
		cps = chip8.StepHz
	}
	stepsPerTick := cps / timer.TickHz
	if stepsPerTick < 1 {
		stepsPerTick = 1
	}

	err := vm.AttachROM(romload)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	scr.SetTitle(romload.ShortName())

	events := make(chan gui.Event, 32)
	scr.SetEventChannel(events)

	intEvents := make(chan os.Signal, 1)
	signal.Notify(intEvents, os.Interrupt)
	defer signal.Stop(intEvents)

	logger.Logf("playmode", "running %s (%s)", romload.ShortName(), romload.Hash)

	// the timers drive the pacing of the whole loop. every timer tick we run
	// the tick's worth of instructions and then wait for the next tick
	tck := time.NewTicker(time.Second / timer.TickHz)
	defer tck.Stop()

	for {
		select {
		case <-tck.C:
			vm.TickTimers()

			for i := 0; i < stepsPerTick; i++ {
				res, err := vm.Step()
				if err != nil {
					return curated.Errorf("playmode: %v", err)
				}

				switch res {
				case chip8.Drawn:
					if err := scr.UpdateDisplay(vm.Display); err != nil {
						return curated.Errorf("playmode: %v", err)
					}
				case chip8.Blocked:
					// waiting for a key press. give up the rest of the tick,
					// the keypad can only change when events are serviced
					i = stepsPerTick
				}
			}

		case <-intEvents:
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case gui.EventQuit:
				return nil
			case gui.EventPause:
				// there is nothing to pause for outside of the debugger so
				// the Escape key ends the session
				return nil
			case gui.EventKeypad:
				vm.Keypad.SetPressed(ev.Key, ev.Pressed)
			}
		}
	}
}
