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
	"strings"
)

// TabCompletion implements the terminal.TabCompletion interface over a fixed
// list of command words. Repeated calls to Complete() with the same input
// cycle through the matches.
type TabCompletion struct {
	words []string

	// state of the most recent completion cycle
	matches   []string
	idx       int
	prefix    string
	lastGuess string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(words []string) *TabCompletion {
	tc := &TabCompletion{
		words: make([]string, len(words)),
	}
	copy(tc.words, words)
	return tc
}

// Complete the last word of the input string. If the input has been seen
// before (and Reset() has not been called) the next match in the cycle is
// returned.
func (tc *TabCompletion) Complete(input string) string {
	if tc.lastGuess != "" && input == tc.lastGuess {
		// cycle to the next match
		if len(tc.matches) > 0 {
			tc.idx = (tc.idx + 1) % len(tc.matches)
			tc.lastGuess = tc.stitch()
			return tc.lastGuess
		}
		return input
	}

	tc.matches = tc.matches[:0]
	tc.idx = 0
	tc.lastGuess = ""

	// the word being completed is everything after the last space
	p := strings.LastIndex(input, " ")
	word := strings.ToUpper(input[p+1:])
	if word == "" {
		return input
	}

	for _, w := range tc.words {
		if strings.HasPrefix(w, word) {
			tc.matches = append(tc.matches, w)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.prefix = input[:p+1]
	tc.lastGuess = tc.stitch()
	return tc.lastGuess
}

// Reset the completion cycle.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.idx = 0
	tc.lastGuess = ""
}

// rebuild the input line from the stored prefix and the current match. the
// prefix is the input up to and including the last space
func (tc *TabCompletion) stitch() string {
	return tc.prefix + tc.matches[tc.idx] + " "
}
