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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/test"
)

func TestTokeniseInput(t *testing.T) {
	tok := commandline.TokeniseInput("  break   $200 extra ")
	test.Equate(t, tok.Len(), 3)

	s, ok := tok.Get()
	test.Equate(t, ok, true)
	test.Equate(t, s, "break")

	// the hex indicator is normalised
	s, ok = tok.Peek()
	test.Equate(t, ok, true)
	test.Equate(t, s, "0x200")

	n, ok := tok.GetNumber()
	test.Equate(t, ok, true)
	test.Equate(t, n, 0x200)

	test.Equate(t, tok.Remainder(), "extra")
	_, _ = tok.Get()
	test.Equate(t, tok.IsEnd(), true)
	_, ok = tok.Get()
	test.Equate(t, ok, false)
}

func TestUnget(t *testing.T) {
	tok := commandline.TokeniseInput("print reg")
	_, _ = tok.Get()
	s, _ := tok.Get()
	test.Equate(t, s, "reg")
	tok.Unget()
	s, _ = tok.Get()
	test.Equate(t, s, "reg")
}

func TestGetNumber(t *testing.T) {
	tok := commandline.TokeniseInput("step ten 10")

	_, _ = tok.Get()

	// a token that does not parse as a number is not consumed
	_, ok := tok.GetNumber()
	test.Equate(t, ok, false)
	s, _ := tok.Get()
	test.Equate(t, s, "ten")

	n, ok := tok.GetNumber()
	test.Equate(t, ok, true)
	test.Equate(t, n, 10)
}
