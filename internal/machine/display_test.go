package machine

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplay_Flip(t *testing.T) {
	var d Display
	assert.False(t, d.Dirty())

	assert.False(t, d.Flip(3, 4))
	assert.True(t, d.Pixel(3, 4))
	assert.True(t, d.Dirty())

	d.ClearDirty()
	assert.False(t, d.Dirty())

	assert.True(t, d.Flip(3, 4))
	assert.False(t, d.Pixel(3, 4))
	assert.True(t, d.Dirty())
}

func TestDisplay_PixelOutOfBounds(t *testing.T) {
	var d Display
	d.Flip(DisplayWidth-1, DisplayHeight-1)

	assert.True(t, d.Pixel(DisplayWidth-1, DisplayHeight-1))
	assert.False(t, d.Pixel(DisplayWidth, 0))
	assert.False(t, d.Pixel(0, DisplayHeight))
	assert.False(t, d.Pixel(-1, 0))
	assert.False(t, d.Pixel(0, -1))
}

func TestDisplay_Clear(t *testing.T) {
	var d Display
	d.Flip(0, 0)
	d.Flip(10, 20)
	d.ClearDirty()

	d.Clear()
	assert.True(t, d.Dirty())
	assert.Equal(t, [DisplayHeight][DisplayWidth]bool{}, d.Grid())
}

func TestDisplay_Grid(t *testing.T) {
	var d Display
	d.Flip(1, 2)

	grid := d.Grid()
	assert.True(t, grid[2][1])

	grid[2][1] = false
	assert.True(t, d.Pixel(1, 2))
}

func TestDisplay_String(t *testing.T) {
	var d Display
	d.Flip(0, 0)
	d.Flip(63, 31)

	lines := strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n")
	assert.Len(t, lines, DisplayHeight)
	assert.Equal(t, "#"+strings.Repeat(".", DisplayWidth-1), lines[0])
	assert.Equal(t, strings.Repeat(".", DisplayWidth), lines[1])
	assert.Equal(t, strings.Repeat(".", DisplayWidth-1)+"#", lines[DisplayHeight-1])
}
