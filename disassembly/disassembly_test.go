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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/test"
)

func TestFromData(t *testing.T) {
	dsm := disassembly.FromData([]byte{
		0x00, 0xe0, // CLS
		0xa2, 0x06, // LD I, $206
		0x12, 0x02, // JP $202
		0xff, 0x81, // sprite data. does not decode
	})
	test.Equate(t, dsm.NumEntries(), 4)

	e, ok := dsm.Entry(0x200)
	test.Equate(t, ok, true)
	test.Equate(t, e.IsInstruction, true)
	test.Equate(t, e.Instruction.String(), "CLS")

	// odd addresses round down to the enclosing word
	e, ok = dsm.Entry(0x203)
	test.Equate(t, ok, true)
	test.Equate(t, e.Instruction.String(), "LD I, $206")

	e, ok = dsm.Entry(0x206)
	test.Equate(t, ok, true)
	test.Equate(t, e.IsInstruction, false)

	_, ok = dsm.Entry(0x208)
	test.Equate(t, ok, false)
	_, ok = dsm.Entry(0x100)
	test.Equate(t, ok, false)
}

func TestWrite(t *testing.T) {
	dsm := disassembly.FromData([]byte{
		0x00, 0xe0,
		0xff, 0x81,
	})

	s := &strings.Builder{}
	test.ExpectedSuccess(t, dsm.Write(s))

	lines := strings.Split(strings.TrimSpace(s.String()), "\n")
	test.Equate(t, len(lines), 2)
	test.Equate(t, strings.Contains(lines[0], "CLS"), true)
	test.Equate(t, strings.Contains(lines[1], ".."), true)
}

func TestWindow(t *testing.T) {
	dsm := disassembly.FromData([]byte{
		0x00, 0xe0,
		0xa2, 0x06,
		0x12, 0x02,
		0x12, 0x04,
	})

	w := dsm.Window(0x204, 1)
	test.Equate(t, len(w), 3)
	test.Equate(t, int(w[0].Address), 0x202)
	test.Equate(t, int(w[2].Address), 0x206)

	// window clips at the start of the program
	w = dsm.Window(0x200, 1)
	test.Equate(t, len(w), 2)
	test.Equate(t, int(w[0].Address), 0x200)
}
