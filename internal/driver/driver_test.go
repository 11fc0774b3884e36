package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/random"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestDriver(t *testing.T, quirks machine.Quirks, opts Options, frontend Frontend,
	program []byte, sinks ...SoundSink) (*Driver, *cpu.CPU) {

	t.Helper()

	logger := log.NewTestLogger(t)
	state, err := machine.New(program, quirks)
	assert.NoError(t, err)
	c := cpu.New(logger, state, random.New(1))
	return New(logger, c, frontend, opts, sinks...), c
}

// countingProgram increments V0 in an endless loop.
var countingProgram = []byte{
	0x70, 0x01, // V0 += 1
	0x12, 0x00, // jump $200
}

func TestDriver_InstructionsPerFrame(t *testing.T) {
	frontend := newFakeFrontend()
	d, c := newTestDriver(t, machine.Quirks{}, Options{InstructionsPerFrame: 10}, frontend, countingProgram)

	quit, err := d.Frame()
	assert.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, byte(5), c.State().V[0])
	assert.Equal(t, uint64(10), c.Steps())
	assert.Equal(t, uint64(1), d.Frames())
}

func TestDriver_TimersAndSound(t *testing.T) {
	program := []byte{
		0x60, 0x02, // V0 = 2
		0xF0, 0x18, // sound timer = V0
		0xF0, 0x15, // delay timer = V0
		0x12, 0x06, // loop
	}
	frontend := newFakeFrontend()
	sink := &recordingSink{}
	d, c := newTestDriver(t, machine.Quirks{}, Options{InstructionsPerFrame: 3}, frontend, program, sink)

	for range 4 {
		_, err := d.Frame()
		assert.NoError(t, err)
	}

	expected := []bool{true, true, false, false}
	assert.Equal(t, expected, frontend.sound)
	assert.Equal(t, expected, sink.sound)
	assert.Equal(t, byte(0), c.State().DelayTimer)
	assert.Equal(t, byte(0), c.State().SoundTimer)
}

func TestDriver_RenderOnlyWhenDirty(t *testing.T) {
	program := []byte{
		0xA0, 0x00, // I = glyph 0
		0xD0, 0x05, // draw
		0x12, 0x04, // loop
	}
	frontend := newFakeFrontend()
	d, c := newTestDriver(t, machine.Quirks{}, Options{InstructionsPerFrame: 2}, frontend, program)

	for range 3 {
		_, err := d.Frame()
		assert.NoError(t, err)
	}

	assert.Equal(t, 1, frontend.renders)
	assert.True(t, frontend.lastFrame[0][0])
	assert.False(t, c.State().Display.Dirty())
}

func TestDriver_DisplayWait(t *testing.T) {
	program := []byte{
		0xA0, 0x00, // I = glyph 0
		0xD0, 0x05, // draw
		0x70, 0x01, // V0 += 1
		0x12, 0x04, // loop
	}

	frontend := newFakeFrontend()
	d, c := newTestDriver(t, machine.Quirks{DisplayWait: true}, Options{InstructionsPerFrame: 10}, frontend, program)
	_, err := d.Frame()
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), c.Steps())

	frontend = newFakeFrontend()
	d, c = newTestDriver(t, machine.Quirks{}, Options{InstructionsPerFrame: 10}, frontend, program)
	_, err = d.Frame()
	assert.NoError(t, err)
	assert.Equal(t, uint64(10), c.Steps())
}

func TestDriver_WaitKeyAcrossFrames(t *testing.T) {
	program := []byte{
		0xF3, 0x0A, // V3 = key
		0x12, 0x02, // loop
	}
	frontend := newFakeFrontend()
	frontend.keys[2] = []byte{0x9}
	d, c := newTestDriver(t, machine.Quirks{}, Options{InstructionsPerFrame: 4}, frontend, program)

	for range 2 {
		_, err := d.Frame()
		assert.NoError(t, err)
		assert.Equal(t, uint16(machine.ProgramStart), c.State().PC)
	}

	_, err := d.Frame()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x9), c.State().V[3])
	assert.Equal(t, uint16(machine.ProgramStart+2), c.State().PC)
}

func TestDriver_RunFrameLimit(t *testing.T) {
	frontend := newFakeFrontend()
	d, _ := newTestDriver(t, machine.Quirks{}, Options{InstructionsPerFrame: 2, MaxFrames: 5}, frontend, countingProgram)

	err := d.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint64(5), d.Frames())
}

func TestDriver_RunQuit(t *testing.T) {
	frontend := newFakeFrontend()
	frontend.quitFrame = 3
	d, _ := newTestDriver(t, machine.Quirks{}, Options{InstructionsPerFrame: 2}, frontend, countingProgram)

	err := d.Run(context.Background())
	assert.True(t, errors.Is(err, ErrQuit))
	assert.Equal(t, uint64(3), d.Frames())
}

func TestDriver_RunCancelled(t *testing.T) {
	frontend := newFakeFrontend()
	d, _ := newTestDriver(t, machine.Quirks{}, Options{FPS: 60, InstructionsPerFrame: 2}, frontend, countingProgram)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := d.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), d.Frames())
}

func TestDriver_RunCPUError(t *testing.T) {
	frontend := newFakeFrontend()
	d, _ := newTestDriver(t, machine.Quirks{}, Options{InstructionsPerFrame: 2}, frontend, []byte{0x00, 0xEE})

	err := d.Run(context.Background())
	assert.True(t, errors.Is(err, cpu.ErrStackUnderflow))
	assert.ErrorContains(t, err, "executing frame 0")
}

func TestDriver_RenderError(t *testing.T) {
	frontend := newFakeFrontend()
	frontend.renderErr = errRender
	d, _ := newTestDriver(t, machine.Quirks{}, Options{InstructionsPerFrame: 1}, frontend, []byte{0x00, 0xE0})

	_, err := d.Frame()
	assert.True(t, errors.Is(err, errRender))
}
