// Package driver runs the CPU in real time.
//
// The driver owns the frame loop: it polls the input frontend, executes a fixed
// number of instructions per frame, decrements the timers once per frame,
// forwards the sound state and renders the display when it changed. Emulation
// speed and timer cadence are configured independently.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrogolib/log"
)

// ErrQuit is returned by Run when the frontend requested to quit.
var ErrQuit = errors.New("quit requested")

// SoundSink receives the buzzer state once per frame.
type SoundSink interface {
	SetSound(on bool) error
}

// Frontend presents the machine to the user.
type Frontend interface {
	SoundSink

	// PollInput updates the keypad latch and returns whether the user
	// requested to quit.
	PollInput(keys *machine.Keypad) (bool, error)
	// Render presents the display.
	Render(display *machine.Display) error
	// Close releases all resources of the frontend.
	Close() error
}

// Options controls the frame loop.
type Options struct {
	FPS                  int    // frames per second, 0 runs unthrottled
	InstructionsPerFrame int    // instructions executed per frame
	MaxFrames            uint64 // stop after this number of frames, 0 runs until quit
}

// Driver executes the CPU frame by frame.
type Driver struct {
	logger   *log.Logger
	cpu      *cpu.CPU
	frontend Frontend
	sinks    []SoundSink
	opts     Options

	frames uint64
}

// New returns a new driver for the given CPU and frontend. The sound state is
// additionally forwarded to all given sinks.
func New(logger *log.Logger, c *cpu.CPU, frontend Frontend, opts Options, sinks ...SoundSink) *Driver {
	return &Driver{
		logger:   logger,
		cpu:      c,
		frontend: frontend,
		sinks:    sinks,
		opts:     opts,
	}
}

// Frames returns the number of completed frames.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Run executes frames until the context is cancelled, the frame limit is
// reached, the frontend requests to quit or the CPU fails. A quit request
// returns ErrQuit, reaching the frame limit returns nil.
func (d *Driver) Run(ctx context.Context) error {
	var frameDuration time.Duration
	if d.opts.FPS > 0 {
		frameDuration = time.Second / time.Duration(d.opts.FPS)
	}

	d.logger.Debug("Starting frame loop",
		log.Int("fps", d.opts.FPS),
		log.Int("instructions_per_frame", d.opts.InstructionsPerFrame))

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("running frame loop: %w", err)
		}

		start := time.Now()
		quit, err := d.Frame()
		if err != nil {
			return err
		}
		if quit {
			d.logger.Debug("Quit requested", log.Uint64("frames", d.frames))
			return ErrQuit
		}
		if d.opts.MaxFrames > 0 && d.frames >= d.opts.MaxFrames {
			d.logger.Debug("Frame limit reached", log.Uint64("frames", d.frames))
			return nil
		}

		remaining := frameDuration - time.Since(start)
		if remaining <= 0 {
			continue
		}
		timer.Reset(remaining)
		select {
		case <-ctx.Done():
			return fmt.Errorf("running frame loop: %w", ctx.Err())
		case <-timer.C:
		}
	}
}

// Frame executes a single frame and returns whether the frontend requested
// to quit.
func (d *Driver) Frame() (bool, error) {
	state := d.cpu.State()

	quit, err := d.frontend.PollInput(&state.Keys)
	if err != nil {
		return false, fmt.Errorf("polling input: %w", err)
	}
	if quit {
		return true, nil
	}

	if err := d.executeInstructions(state.Quirks()); err != nil {
		return false, fmt.Errorf("executing frame %d: %w", d.frames, err)
	}

	sound := state.SoundActive()
	state.DecrementTimers()
	if err := d.setSound(sound); err != nil {
		return false, err
	}

	if state.Display.Dirty() {
		if err := d.frontend.Render(&state.Display); err != nil {
			return false, fmt.Errorf("rendering display: %w", err)
		}
		state.Display.ClearDirty()
	}

	d.frames++
	return false, nil
}

func (d *Driver) executeInstructions(quirks machine.Quirks) error {
	for range d.opts.InstructionsPerFrame {
		ins, err := d.cpu.Step()
		if err != nil {
			return err
		}

		// with the display wait quirk only one sprite is drawn per frame
		if _, ok := ins.(opcode.Draw); ok && quirks.DisplayWait {
			return nil
		}
	}
	return nil
}

func (d *Driver) setSound(on bool) error {
	if err := d.frontend.SetSound(on); err != nil {
		return fmt.Errorf("setting sound: %w", err)
	}
	for _, sink := range d.sinks {
		if err := sink.SetSound(on); err != nil {
			return fmt.Errorf("setting sound: %w", err)
		}
	}
	return nil
}
