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
	"fmt"
	"sort"

	"github.com/jetsetilly/gopher8/curated"
)

// breakpoints keeps track of the addresses the emulation should halt at. A
// breakpoint is checked before the instruction at the address is executed.
type breakpoints struct {
	breaks map[uint16]int
	nextID int
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		breaks: make(map[uint16]int),
		nextID: 1,
	}
}

// add a breakpoint at the address. adding an address a second time is an
// error.
func (bk *breakpoints) add(address uint16) (int, error) {
	if id, ok := bk.breaks[address]; ok {
		return id, curated.Errorf(CommandError, fmt.Sprintf("breakpoint already exists at $%03X", address))
	}
	id := bk.nextID
	bk.nextID++
	bk.breaks[address] = id
	return id, nil
}

// drop the breakpoint with the specified id or address. ids and addresses
// share a number space; ids are small and addresses are at least the program
// origin so there is no ambiguity in practice.
func (bk *breakpoints) drop(n int) error {
	for address, id := range bk.breaks {
		if id == n || int(address) == n {
			delete(bk.breaks, address)
			return nil
		}
	}
	return curated.Errorf(CommandError, fmt.Sprintf("no breakpoint matching %d", n))
}

// drop all breakpoints.
func (bk *breakpoints) clear() {
	bk.breaks = make(map[uint16]int)
}

// check returns true if there is a breakpoint at the address.
func (bk *breakpoints) check(address uint16) bool {
	_, ok := bk.breaks[address]
	return ok
}

// list returns a description of every breakpoint, in address order.
func (bk *breakpoints) list() []string {
	addresses := make([]int, 0, len(bk.breaks))
	for address := range bk.breaks {
		addresses = append(addresses, int(address))
	}
	sort.Ints(addresses)

	l := make([]string, 0, len(addresses))
	for _, address := range addresses {
		l = append(l, fmt.Sprintf("%2d: $%03X", bk.breaks[uint16(address)], address))
	}
	return l
}
