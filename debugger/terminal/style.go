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

package terminal

// Style is used by the TermPrintLine() function to hint at what the
// appearance of the output should be. Terminal implementations are free to
// interpret a style however suits them, including ignoring it entirely.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back. interactive terminals that
	// already show what is being typed can discard these lines
	StyleEcho Style = iota

	// output of the HELP command
	StyleHelp

	// acknowledgements and confirmations from the debugger
	StyleFeedback

	// the instruction and register output of the STEP command
	StyleInstrument

	// log lines passed through from the logger package
	StyleLog

	// error messages. displayed even when the terminal is silenced
	StyleError
)
