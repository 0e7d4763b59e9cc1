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

package commandline

import (
	"strconv"
	"strings"
)

// Tokens represents tokenised input. This can be used to walk through the
// input string (using get()) for eas(ier) parsing.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

// TokeniseInput creates a new instance of Tokens.
//
// Tokens are separated by whitespace. The hex indicator "$" is normalised to
// the "0x" prefix that strconv understands, so "$200" and "0x200" parse the
// same way.
func TokeniseInput(input string) *Tokens {
	tok := &Tokens{
		input: input,
	}

	for _, t := range strings.Fields(input) {
		if strings.HasPrefix(t, "$") {
			t = "0x" + t[1:]
		}
		tok.tokens = append(tok.tokens, t)
	}

	return tok
}

// String returns the original input.
func (tok *Tokens) String() string {
	return tok.input
}

// Reset begins the token walk from the beginning.
func (tok *Tokens) Reset() {
	tok.curr = 0
}

// Len returns the number of tokens.
func (tok *Tokens) Len() int {
	return len(tok.tokens)
}

// IsEnd returns true if the token walk is at an end.
func (tok *Tokens) IsEnd() bool {
	return tok.curr >= len(tok.tokens)
}

// Get the next token and advance the token walk.
func (tok *Tokens) Get() (string, bool) {
	if tok.IsEnd() {
		return "", false
	}
	tok.curr++
	return tok.tokens[tok.curr-1], true
}

// Unget the most recent token. The next call to Get() will return the same
// token again.
func (tok *Tokens) Unget() {
	if tok.curr > 0 {
		tok.curr--
	}
}

// Peek at the next token without advancing the token walk.
func (tok *Tokens) Peek() (string, bool) {
	if tok.IsEnd() {
		return "", false
	}
	return tok.tokens[tok.curr], true
}

// Remainder returns the tokens not yet walked over, as a single string.
func (tok *Tokens) Remainder() string {
	if tok.IsEnd() {
		return ""
	}
	return strings.Join(tok.tokens[tok.curr:], " ")
}

// GetNumber gets the next token and parses it as a number. Decimal and hex
// (with either the "$" or "0x" prefix) are accepted.
func (tok *Tokens) GetNumber() (int, bool) {
	t, ok := tok.Get()
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(t, 0, 32)
	if err != nil {
		tok.Unget()
		return 0, false
	}
	return int(n), true
}
