package driver

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/machine"
)

var errRender = errors.New("render failed")

// fakeFrontend records the calls of the driver.
type fakeFrontend struct {
	// keys maps a frame number to the keys pressed during that frame
	keys      map[int][]byte
	quitFrame int // frame to request quit at, -1 never

	polls     int
	renders   int
	sound     []bool
	lastFrame [machine.DisplayHeight][machine.DisplayWidth]bool
	renderErr error
}

func newFakeFrontend() *fakeFrontend {
	return &fakeFrontend{
		keys:      map[int][]byte{},
		quitFrame: -1,
	}
}

func (f *fakeFrontend) PollInput(keys *machine.Keypad) (bool, error) {
	frame := f.polls
	f.polls++
	if frame == f.quitFrame {
		return true, nil
	}

	keys.Reset()
	for _, key := range f.keys[frame] {
		keys.Set(key, true)
	}
	return false, nil
}

func (f *fakeFrontend) Render(display *machine.Display) error {
	if f.renderErr != nil {
		return f.renderErr
	}
	f.renders++
	f.lastFrame = display.Grid()
	return nil
}

func (f *fakeFrontend) SetSound(on bool) error {
	f.sound = append(f.sound, on)
	return nil
}

func (f *fakeFrontend) Close() error {
	return nil
}

// recordingSink records the sound states it receives.
type recordingSink struct {
	sound []bool
}

func (r *recordingSink) SetSound(on bool) error {
	r.sound = append(r.sound, on)
	return nil
}
