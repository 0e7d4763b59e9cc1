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

package display_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/chip8/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestDrawAndCollision(t *testing.T) {
	dsp := display.NewDisplay()

	// drawing onto a clear display never collides
	collision := dsp.Draw(0, 0, []uint8{0xff})
	test.Equate(t, collision, false)
	for x := 0; x < 8; x++ {
		test.Equate(t, dsp.Pixel(x, 0), true)
	}
	test.Equate(t, dsp.Pixel(8, 0), false)

	// drawing the same sprite again erases it and reports the collision
	collision = dsp.Draw(0, 0, []uint8{0xff})
	test.Equate(t, collision, true)
	for x := 0; x < 8; x++ {
		test.Equate(t, dsp.Pixel(x, 0), false)
	}

	// partial overlap still counts as a collision
	dsp.Clear()
	_ = dsp.Draw(0, 0, []uint8{0x80})
	collision = dsp.Draw(0, 0, []uint8{0xc0})
	test.Equate(t, collision, true)
	test.Equate(t, dsp.Pixel(0, 0), false)
	test.Equate(t, dsp.Pixel(1, 0), true)
}

func TestClear(t *testing.T) {
	dsp := display.NewDisplay()
	_ = dsp.Draw(10, 10, []uint8{0xff, 0xff})
	dsp.Clear()

	// clear followed by any draw never reports a collision
	collision := dsp.Draw(10, 10, []uint8{0xff, 0xff})
	test.Equate(t, collision, false)
}

func TestCoordinateWrapping(t *testing.T) {
	dsp := display.NewDisplay()

	// a 1x1 sprite at the far corner affects only that cell
	_ = dsp.Draw(63, 31, []uint8{0x80})
	test.Equate(t, dsp.Pixel(63, 31), true)
	test.Equate(t, dsp.Pixel(0, 0), false)
	test.Equate(t, dsp.Pixel(0, 31), false)
	test.Equate(t, dsp.Pixel(63, 0), false)

	// drawing at x=64 is equivalent to drawing at x=0
	dsp.Clear()
	_ = dsp.Draw(64, 32, []uint8{0x80})
	test.Equate(t, dsp.Pixel(0, 0), true)
}

func TestSpriteClipping(t *testing.T) {
	dsp := display.NewDisplay()

	// a sprite drawn at the edge is clipped, not wrapped
	_ = dsp.Draw(62, 31, []uint8{0xff, 0xff})
	test.Equate(t, dsp.Pixel(62, 31), true)
	test.Equate(t, dsp.Pixel(63, 31), true)
	test.Equate(t, dsp.Pixel(0, 31), false)
	test.Equate(t, dsp.Pixel(62, 0), false)
}
