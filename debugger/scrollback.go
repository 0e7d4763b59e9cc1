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
	"github.com/jetsetilly/gopher8/debugger/terminal"
)

// the maximum number of lines kept in the scrollback. old lines are dropped
// as new lines arrive
const maxScrollback = 1024

type scrollbackLine struct {
	style terminal.Style
	text  string
}

// scrollback is the debugger's transcript of terminal output. every line
// printed through printLine() lands here, whatever terminal implementation
// is attached.
type scrollback struct {
	lines []scrollbackLine
}

func newScrollback() *scrollback {
	return &scrollback{
		lines: make([]scrollbackLine, 0, maxScrollback),
	}
}

func (scr *scrollback) add(style terminal.Style, text string) {
	if len(scr.lines) >= maxScrollback {
		scr.lines = scr.lines[1:]
	}
	scr.lines = append(scr.lines, scrollbackLine{style: style, text: text})
}

// tail returns the most recent lines, at most n of them.
func (scr *scrollback) tail(n int) []scrollbackLine {
	if n <= 0 || n > len(scr.lines) {
		n = len(scr.lines)
	}
	return scr.lines[len(scr.lines)-n:]
}
