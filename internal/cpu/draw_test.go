package cpu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
)

// spriteProgram draws the 8x2 sprite at $20C twice at (V0, V1).
func spriteProgram(x, y byte) []byte {
	return []byte{
		0x60, x, // V0 = x
		0x61, y, // V1 = y
		0xA2, 0x0C, // I = $20C
		0xD0, 0x12, // draw
		0xD0, 0x12, // draw again
		0x00, 0x00, // padding
		0xFF, 0x81, // sprite rows
	}
}

func TestDraw_DoubleXORRestores(t *testing.T) {
	c := newTestCPU(t, machine.Quirks{}, spriteProgram(3, 4)...)
	s := c.State()
	s.Display.Flip(3, 4) // pre-existing lit pixel collides with the first draw
	before := s.Display.Grid()

	runSteps(t, c, 4)
	assert.Equal(t, byte(1), s.V[machine.FlagRegister])
	assert.False(t, s.Display.Pixel(3, 4))
	assert.True(t, s.Display.Pixel(4, 4))
	assert.True(t, s.Display.Pixel(3, 5))
	assert.False(t, s.Display.Pixel(4, 5))
	assert.True(t, s.Display.Pixel(10, 5))

	runSteps(t, c, 1)
	// the second draw collides with the pixels of the first one
	assert.Equal(t, byte(1), s.V[machine.FlagRegister])
	if diff := cmp.Diff(before, s.Display.Grid()); diff != "" {
		t.Errorf("double draw did not restore display (-want +got):\n%s", diff)
	}
}

func TestDraw_NoCollision(t *testing.T) {
	c := newTestCPU(t, machine.Quirks{}, spriteProgram(0, 0)...)
	s := c.State()
	s.V[machine.FlagRegister] = 1

	runSteps(t, c, 4)
	assert.Equal(t, byte(0), s.V[machine.FlagRegister])
}

func TestDraw_Wrap(t *testing.T) {
	c := newTestCPU(t, machine.Quirks{}, spriteProgram(60, 31)...)
	runSteps(t, c, 4)

	s := c.State()
	// row 0 at y=31, columns 60-63 and wrapped 0-3
	for x := 60; x < 64; x++ {
		assert.True(t, s.Display.Pixel(x, 31))
	}
	for x := range 4 {
		assert.True(t, s.Display.Pixel(x, 31))
	}
	// row 1 wraps to y=0 with the outer pixels at x=60 and x=3
	assert.True(t, s.Display.Pixel(60, 0))
	assert.True(t, s.Display.Pixel(3, 0))
	assert.False(t, s.Display.Pixel(61, 0))
}

func TestDraw_Clipping(t *testing.T) {
	c := newTestCPU(t, machine.Quirks{Clipping: true}, spriteProgram(60, 31)...)
	runSteps(t, c, 4)

	s := c.State()
	for x := 60; x < 64; x++ {
		assert.True(t, s.Display.Pixel(x, 31))
	}
	for x := range 4 {
		assert.False(t, s.Display.Pixel(x, 31))
	}
	for x := range machine.DisplayWidth {
		assert.False(t, s.Display.Pixel(x, 0))
	}
}

func TestDraw_StartCoordinatesWrap(t *testing.T) {
	// coordinates are taken modulo the display size even with clipping
	c := newTestCPU(t, machine.Quirks{Clipping: true}, spriteProgram(64+2, 32+1)...)
	runSteps(t, c, 4)

	s := c.State()
	assert.True(t, s.Display.Pixel(2, 1))
	assert.True(t, s.Display.Pixel(9, 1))
	assert.True(t, s.Display.Pixel(2, 2))
}

func TestDraw_FlagRegisterCoordinates(t *testing.T) {
	c := newTestCPU(t, machine.Quirks{},
		0x6F, 0x08, // VF = 8
		0x60, 0x02, // V0 = 2
		0xA0, 0x00, // I = glyph 0
		0xDF, 0x01, // draw one row at (VF, V0)
	)
	runSteps(t, c, 4)

	s := c.State()
	assert.True(t, s.Display.Pixel(8, 2))
	assert.True(t, s.Display.Pixel(11, 2))
	assert.Equal(t, byte(0), s.V[machine.FlagRegister])
}

func TestDraw_ZeroHeight(t *testing.T) {
	c := executeWord(t, machine.Quirks{}, 0xD010, func(s *machine.State) {
		s.V[machine.FlagRegister] = 1
	})

	s := c.State()
	assert.Equal(t, byte(0), s.V[machine.FlagRegister])
	assert.False(t, s.Display.Dirty())
}
