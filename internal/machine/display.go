package machine

import "strings"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome frame buffer. Only the clear and draw
// instructions mutate it.
type Display struct {
	pixels [DisplayHeight][DisplayWidth]bool
	dirty  bool
}

// Pixel returns whether the pixel at the given coordinates is lit.
// Coordinates outside of the display return false.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return d.pixels[y][x]
}

// Clear turns off all pixels and marks the display dirty.
func (d *Display) Clear() {
	d.pixels = [DisplayHeight][DisplayWidth]bool{}
	d.dirty = true
}

// Flip inverts the pixel at the given coordinates, marks the display dirty
// and returns whether the pixel was lit before.
func (d *Display) Flip(x, y int) bool {
	wasLit := d.pixels[y][x]
	d.pixels[y][x] = !wasLit
	d.dirty = true
	return wasLit
}

// Dirty returns whether the display changed since ClearDirty was last called.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ClearDirty resets the dirty flag after a renderer consumed the display.
func (d *Display) ClearDirty() {
	d.dirty = false
}

// Grid returns a copy of the pixel grid.
func (d *Display) Grid() [DisplayHeight][DisplayWidth]bool {
	return d.pixels
}

// String renders the display as text, one line per row, using '#' for lit
// and '.' for unlit pixels.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow(DisplayHeight * (DisplayWidth + 1))
	for y := range DisplayHeight {
		for x := range DisplayWidth {
			if d.pixels[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
