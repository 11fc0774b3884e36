// Package headless implements a frontend without any user interaction. It
// keeps the last rendered display and writes it as text when closed, which
// makes it suitable for tests and batch runs.
package headless

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/machine"
)

// Headless is a frontend that never reports input.
type Headless struct {
	out io.Writer

	display     machine.Display
	renders     int
	soundFrames int
}

// New returns a headless frontend. The last rendered display is written to
// out on Close, a nil writer disables the output.
func New(out io.Writer) *Headless {
	return &Headless{out: out}
}

// PollInput leaves the keypad untouched.
func (h *Headless) PollInput(_ *machine.Keypad) (bool, error) {
	return false, nil
}

// Render keeps a copy of the display.
func (h *Headless) Render(display *machine.Display) error {
	h.display = *display
	h.renders++
	return nil
}

// SetSound counts the frames with an active buzzer.
func (h *Headless) SetSound(on bool) error {
	if on {
		h.soundFrames++
	}
	return nil
}

// Close writes the last rendered display.
func (h *Headless) Close() error {
	if h.out == nil {
		return nil
	}
	if _, err := fmt.Fprint(h.out, h.display.String()); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return nil
}

// Display returns the last rendered display.
func (h *Headless) Display() machine.Display {
	return h.display
}

// Renders returns the number of rendered frames.
func (h *Headless) Renders() int {
	return h.renders
}

// SoundFrames returns the number of frames the buzzer was active.
func (h *Headless) SoundFrames() int {
	return h.soundFrames
}
