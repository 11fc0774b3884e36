package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/random"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		input    byte
		expected byte
	}{
		{'1', 0x1}, {'4', 0xC}, {'q', 0x4}, {'R', 0xD},
		{'a', 0x7}, {'F', 0xE}, {'x', 0x0}, {'v', 0xF},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			key, ok := mapKey(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, key)
		})
	}

	_, ok := mapKey('p')
	assert.False(t, ok)
}

func TestTerminal_PollInput(t *testing.T) {
	term := newTerminal(&bytes.Buffer{}, 2)
	term.readInput(strings.NewReader("1W"))

	var keys machine.Keypad
	quit, err := term.PollInput(&keys)
	assert.NoError(t, err)
	assert.False(t, quit)
	assert.True(t, keys.Pressed(0x1))
	assert.True(t, keys.Pressed(0x5))
	assert.False(t, keys.Pressed(0x0))

	_, err = term.PollInput(&keys)
	assert.NoError(t, err)
	assert.True(t, keys.Pressed(0x1))

	_, err = term.PollInput(&keys)
	assert.NoError(t, err)
	assert.False(t, keys.Pressed(0x1))
	assert.False(t, keys.Pressed(0x5))
}

func TestTerminal_WaitKeyObservesPressOnce(t *testing.T) {
	program := []byte{
		0xF0, 0x0A, // V0 = wait for key
		0xF1, 0x0A, // V1 = wait for key
		0x12, 0x04, // loop
	}
	logger := log.NewTestLogger(t)
	state, err := machine.New(program, machine.Quirks{})
	assert.NoError(t, err)
	state.V[1] = 0xAA
	c := cpu.New(logger, state, random.New(1))

	term := newTerminal(&bytes.Buffer{}, 0)
	d := driver.New(logger, c, term, driver.Options{InstructionsPerFrame: 1})

	term.input <- 'w'
	for range 3 {
		quit, err := d.Frame()
		assert.NoError(t, err)
		assert.False(t, quit)
	}
	assert.Equal(t, byte(0x5), state.V[0])
	assert.Equal(t, byte(0xAA), state.V[1])
	assert.Equal(t, uint16(0x202), state.PC)

	term.input <- 'w'
	_, err = d.Frame()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x5), state.V[1])
	assert.Equal(t, uint16(0x204), state.PC)
}

func TestTerminal_PollInputQuit(t *testing.T) {
	for _, input := range []string{"\x1b", "\x03"} {
		term := newTerminal(&bytes.Buffer{}, 0)
		term.readInput(strings.NewReader(input))

		var keys machine.Keypad
		quit, err := term.PollInput(&keys)
		assert.NoError(t, err)
		assert.True(t, quit)
	}
}

func TestTerminal_Render(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, 0)

	var display machine.Display
	display.Flip(0, 0)
	display.Flip(0, 1)
	display.Flip(1, 0)
	display.Flip(2, 1)
	assert.NoError(t, term.Render(&display))

	lines := strings.Split(strings.TrimPrefix(out.String(), cursorHome), "\r\n")
	assert.Len(t, lines, machine.DisplayHeight/2+1)
	assert.Equal(t, "█▀▄"+strings.Repeat(" ", machine.DisplayWidth-3), lines[0])
	assert.Equal(t, strings.Repeat(" ", machine.DisplayWidth), lines[1])
}

func TestTerminal_SetSound(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, 0)

	assert.NoError(t, term.SetSound(true))
	assert.NoError(t, term.SetSound(true))
	assert.NoError(t, term.SetSound(false))
	assert.NoError(t, term.SetSound(true))
	assert.Equal(t, bell+bell, out.String())
}

func TestTerminal_Close(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, 0)

	restored := false
	term.restore = func() error {
		restored = true
		return nil
	}
	assert.NoError(t, term.Close())
	assert.True(t, restored)
	assert.Equal(t, showCursor+"\r\n", out.String())
}
