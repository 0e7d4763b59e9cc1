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

package modalflag_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		t.Error("expected ParseContinue")
	}
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	test.Equate(t, *testFlag, false)

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		t.Error("expected ParseContinue")
	}
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")

	test.Equate(t, *testFlag, true)
	test.Equate(t, len(md.RemainingArgs()), 2)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"debug", "roms/pong.ch8"})
	md.AddSubModes("run", "debug", "disasm")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		t.Error("expected ParseContinue")
	}
	test.ExpectedSuccess(t, err)

	// sub-mode comparison is case insensitive
	test.Equate(t, md.Mode(), "DEBUG")

	// the mode selector is consumed by the next layer of parsing
	md.NewMode()
	_, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.GetArg(0), "roms/pong.ch8")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"roms/pong.ch8"})
	md.AddSubModes("run", "debug")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)

	// no mode selector in the arguments so the default mode is selected and
	// the argument is left in place
	test.Equate(t, md.Mode(), "RUN")
	test.Equate(t, md.GetArg(0), "roms/pong.ch8")
}

func TestModeFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"run", "-scale", "20", "roms/pong.ch8"})
	md.AddSubModes("run", "debug")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	scale := md.AddFloat64("scale", 10.0, "window scale")

	_, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(*scale), 20)
	test.Equate(t, md.GetArg(0), "roms/pong.ch8")
	test.Equate(t, md.Path(), "RUN")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	if p != modalflag.ParseHelp {
		t.Error("expected ParseHelp")
	}
	test.ExpectedSuccess(t, err)
	test.Equate(t, tw.Compare("No help available\n"), true)
}
