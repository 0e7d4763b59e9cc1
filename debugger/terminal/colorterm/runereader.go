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

package colorterm

import (
	"bufio"
	"io"
)

type readRune struct {
	r   rune
	err error
}

// runeReader wraps the input stream in a goroutine so that the main input
// loop can select on rune delivery and the ReadEvents channels at the same
// time.
type runeReader chan readRune

func initRuneReader(input io.Reader) runeReader {
	ch := make(chan readRune)
	br := bufio.NewReader(input)

	go func() {
		for {
			r, _, err := br.ReadRune()
			ch <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return ch
}
