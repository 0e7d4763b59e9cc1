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

// Package display implements the 64x32 monochrome framebuffer of the CHIP-8.
//
// Sprites are drawn by XORing sprite bits into the grid. The draw origin
// wraps around the screen edges (drawing at x=64 is the same as drawing at
// x=0) but the sprite itself is clipped at the right and bottom edges rather
// than wrapped.
//
// Renderers read the framebuffer through the Pixel() function between
// emulation steps. Nothing outside the emulation core should ever write to
// the framebuffer.
package display

// Dimensions of the CHIP-8 display in pixels.
const (
	Width  = 64
	Height = 32
)

// width of a sprite in pixels. sprites are always eight pixels wide and
// between one and fifteen pixels tall
const spriteWidth = 8

// Display implements the framebuffer.
type Display struct {
	grid [Height][Width]bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

// Clear the framebuffer.
func (dsp *Display) Clear() {
	for y := range dsp.grid {
		for x := range dsp.grid[y] {
			dsp.grid[y][x] = false
		}
	}
}

// Pixel returns the state of the pixel at (x, y). true means the pixel is
// lit. Coordinates wrap.
func (dsp *Display) Pixel(x, y int) bool {
	return dsp.grid[y%Height][x%Width]
}

// Draw a sprite with its top-left corner at (x, y). Every set bit in the
// sprite flips the corresponding pixel. Returns true if any pixel was
// flipped from lit to unlit (a collision, in CHIP-8 terms).
//
// The origin coordinates wrap. Sprite rows and columns that would fall off
// the right or bottom edge are clipped.
func (dsp *Display) Draw(x, y uint8, sprite []uint8) bool {
	xPos := int(x) % Width
	yPos := int(y) % Height

	rowCount := len(sprite)
	if rowCount > Height-yPos {
		rowCount = Height - yPos
	}
	colCount := spriteWidth
	if colCount > Width-xPos {
		colCount = Width - xPos
	}

	collision := false
	for row := 0; row < rowCount; row++ {
		for col := 0; col < colCount; col++ {
			if sprite[row]&(0x80>>col) != 0 {
				pixel := &dsp.grid[yPos+row][xPos+col]
				*pixel = !*pixel
				if !*pixel {
					collision = true
				}
			}
		}
	}

	return collision
}
