// Package terminal implements a frontend that draws the display with ANSI
// escape sequences and reads the keyboard from a terminal in raw mode.
//
// Terminals do not report key releases, so a key stays latched for a
// configurable number of frames after it was typed.
package terminal

import (
	"bytes"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/machine"
)

// DefaultHoldFrames is the number of frames a typed key stays pressed.
const DefaultHoldFrames = 6

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03

	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	bell        = "\a"
)

// keymap maps the typed characters of the left keyboard block to the
// hexadecimal keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var keymap = map[byte]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// mapKey returns the keypad key for a typed character.
func mapKey(c byte) (byte, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	key, ok := keymap[c]
	return key, ok
}

// Terminal is the terminal frontend.
type Terminal struct {
	out     io.Writer
	restore func() error

	input      chan byte
	held       [machine.KeyCount]int
	holdFrames int

	frame bytes.Buffer
	sound bool
}

func newTerminal(out io.Writer, holdFrames int) *Terminal {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &Terminal{
		out:        out,
		input:      make(chan byte, 64),
		holdFrames: holdFrames,
	}
}

// readInput forwards all bytes read from r to the input channel until r
// returns an error.
func (t *Terminal) readInput(r io.Reader) {
	defer close(t.input)

	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, c := range buf[:n] {
			t.input <- c
		}
		if err != nil {
			return
		}
	}
}

// PollInput consumes all typed characters and updates the keypad latch.
// Escape and Ctrl-C request to quit. A held key that was released by the
// machine since the last poll stays released until it is typed again.
func (t *Terminal) PollInput(keys *machine.Keypad) (bool, error) {
	for i := range t.held {
		switch {
		case t.held[i] > 0 && !keys.Pressed(byte(i)):
			t.held[i] = 0
		case t.held[i] > 0:
			t.held[i]--
		}
	}

	quit := false
	for done := false; !done; {
		select {
		case c, ok := <-t.input:
			if !ok {
				done = true
				break
			}
			if c == keyEscape || c == keyCtrlC {
				quit = true
				continue
			}
			if key, ok := mapKey(c); ok {
				t.held[key] = t.holdFrames
			}
		default:
			done = true
		}
	}

	for i, frames := range t.held {
		keys.Set(byte(i), frames > 0)
	}
	return quit, nil
}

// Render draws the display using half block characters, two pixel rows per
// text line.
func (t *Terminal) Render(display *machine.Display) error {
	t.frame.Reset()
	t.frame.WriteString(cursorHome)
	for y := 0; y < machine.DisplayHeight; y += 2 {
		for x := range machine.DisplayWidth {
			t.frame.WriteString(cell(display.Pixel(x, y), display.Pixel(x, y+1)))
		}
		t.frame.WriteString("\r\n")
	}

	if _, err := t.out.Write(t.frame.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

func cell(top, bottom bool) string {
	switch {
	case top && bottom:
		return "█"
	case top:
		return "▀"
	case bottom:
		return "▄"
	default:
		return " "
	}
}

// SetSound rings the terminal bell when the buzzer turns on.
func (t *Terminal) SetSound(on bool) error {
	if on && !t.sound {
		if _, err := io.WriteString(t.out, bell); err != nil {
			return fmt.Errorf("ringing bell: %w", err)
		}
	}
	t.sound = on
	return nil
}

// Close shows the cursor again and restores the terminal mode.
func (t *Terminal) Close() error {
	if _, err := io.WriteString(t.out, showCursor+"\r\n"); err != nil {
		return fmt.Errorf("restoring cursor: %w", err)
	}
	if t.restore == nil {
		return nil
	}
	if err := t.restore(); err != nil {
		return fmt.Errorf("restoring terminal mode: %w", err)
	}
	return nil
}
