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

// Package random is a replacement for the math/rand package in the standard
// library. It exists so that random number generation in the emulation can be
// made predictable when predictability is required, most obviously in unit
// tests.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all Random instances
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator for the emulation. Used by the
// randomise instruction (CXNN).
type Random struct {
	rand *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{
		rand: rand.New(rand.NewSource(baseSeed)),
	}
}

// Reset the sequence of random numbers. If ZeroSeed is true the sequence will
// be the same after every Reset().
func (rnd *Random) Reset() {
	if rnd.ZeroSeed {
		rnd.rand = rand.New(rand.NewSource(0))
		return
	}
	rnd.rand = rand.New(rand.NewSource(baseSeed))
}

// Uint8 returns a random byte.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.rand.Intn(256))
}

// Intn returns a random number between 0 and n.
func (rnd *Random) Intn(n int) int {
	return rnd.rand.Intn(n)
}
