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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/chip8/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestPressRelease(t *testing.T) {
	key := keypad.NewKeypad()

	_, any := key.FirstPressed()
	test.Equate(t, any, false)

	key.SetPressed(0x0a, true)
	test.Equate(t, key.IsPressed(0x0a), true)
	test.Equate(t, key.IsPressed(0x0b), false)

	k, any := key.FirstPressed()
	test.Equate(t, any, true)
	test.Equate(t, k, 0x0a)

	// FirstPressed returns the lowest numbered key
	key.SetPressed(0x02, true)
	k, _ = key.FirstPressed()
	test.Equate(t, k, 0x02)

	key.SetPressed(0x02, false)
	k, _ = key.FirstPressed()
	test.Equate(t, k, 0x0a)

	key.Reset()
	_, any = key.FirstPressed()
	test.Equate(t, any, false)
}

func TestKeyMasking(t *testing.T) {
	key := keypad.NewKeypad()

	// only the lower nibble of a key index is significant
	key.SetPressed(0x1f, true)
	test.Equate(t, key.IsPressed(0x0f), true)
}
