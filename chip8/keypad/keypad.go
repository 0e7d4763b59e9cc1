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

// Package keypad implements the sixteen key keypad of the CHIP-8. The key
// state is written by the input adapter (the SDL front-end or the debugger's
// SET KEY command) and read by the emulation core. Key indexes are the
// CHIP-8 key codes 0x0 to 0xf; only the lower nibble of an index is
// considered.
package keypad

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad implements the CHIP-8 keypad.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset releases all keys.
func (key *Keypad) Reset() {
	for i := range key.keys {
		key.keys[i] = false
	}
}

// IsPressed returns the state of the specified key.
func (key *Keypad) IsPressed(k uint8) bool {
	return key.keys[k&0x0f]
}

// SetPressed sets the state of the specified key. Called by the input
// adapter, never by the emulation core.
func (key *Keypad) SetPressed(k uint8, pressed bool) {
	key.keys[k&0x0f] = pressed
}

// FirstPressed returns the lowest numbered key that is currently pressed.
// The second return value is false if no key is pressed.
func (key *Keypad) FirstPressed() (uint8, bool) {
	for i := range key.keys {
		if key.keys[i] {
			return uint8(i), true
		}
	}
	return 0, false
}
