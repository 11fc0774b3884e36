// Package runner orchestrates a run of the emulator: it loads the ROM,
// builds the machine and the CPU, opens the frontend and drives the frame
// loop, or writes a disassembly listing of the ROM instead.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/random"
	"github.com/retroenv/retrochip8/internal/wavwriter"
	"github.com/retroenv/retrogolib/log"
)

const defaultRecordingFPS = 60

// FrontendConstructor creates a frontend for the given options.
type FrontendConstructor func(opts options.Program) (driver.Frontend, error)

// Runner executes the emulator workflow.
type Runner struct {
	logger    *log.Logger
	loader    *loader.Loader
	stdout    io.Writer
	frontends map[string]FrontendConstructor
}

// New creates a new runner. The frontends map the frontend option names to
// their constructors, the disassembly listing is written to stdout if no
// output file is given.
func New(logger *log.Logger, stdout io.Writer, frontends map[string]FrontendConstructor) *Runner {
	return &Runner{
		logger:    logger,
		loader:    loader.New(),
		stdout:    stdout,
		frontends: frontends,
	}
}

// Execute loads the ROM and either disassembles or runs it.
func (r *Runner) Execute(ctx context.Context, opts options.Program) error {
	program, err := r.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	if opts.Disasm {
		return r.disassemble(program, opts)
	}
	return r.run(ctx, program, opts)
}

func (r *Runner) disassemble(program []byte, opts options.Program) (err error) {
	writer, closeWriter, err := r.createWriter(opts.Output)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeWriter(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", closeErr)
		}
	}()

	dis, err := disasm.New(r.logger, program, writer)
	if err != nil {
		return fmt.Errorf("creating disassembler: %w", err)
	}
	if err := dis.Process(); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	return nil
}

func (r *Runner) createWriter(path string) (io.Writer, func() error, error) {
	if path == "" {
		return r.stdout, func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", path, err)
	}
	return file, file.Close, nil
}

func (r *Runner) run(ctx context.Context, program []byte, opts options.Program) (err error) {
	quirks, err := config.Quirks(opts.Machine)
	if err != nil {
		return fmt.Errorf("resolving quirks: %w", err)
	}

	state, err := machine.New(program, quirks)
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	rng := random.New(opts.Seed)
	r.logger.Debug("Random number generator initialized",
		log.String("seed", strconv.FormatUint(rng.Seed(), 10)))

	c := cpu.New(r.logger, state, rng, cpu.WithTrace(opts.Trace))

	newFrontend, ok := r.frontends[opts.Frontend]
	if !ok {
		return fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
	frontend, err := newFrontend(opts)
	if err != nil {
		return fmt.Errorf("creating %s frontend: %w", opts.Frontend, err)
	}
	defer func() {
		if closeErr := frontend.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing frontend: %w", closeErr))
		}
	}()

	var sinks []driver.SoundSink
	if opts.Wav != "" {
		fps := opts.FPS
		if fps == 0 {
			fps = defaultRecordingFPS
		}
		recorder := wavwriter.New(opts.Wav, fps, opts.Pitch)
		defer func() {
			if closeErr := recorder.Close(); closeErr != nil {
				err = errors.Join(err, fmt.Errorf("writing sound recording: %w", closeErr))
			}
		}()
		sinks = append(sinks, recorder)
	}

	r.logger.Info("Running ROM",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String("quirks", opts.Quirks),
		log.String("frontend", opts.Frontend),
	)

	d := driver.New(r.logger, c, frontend, config.DriverOptions(opts.Machine), sinks...)
	err = d.Run(ctx)

	r.logger.Info("Emulation stopped",
		log.Uint64("frames", d.Frames()),
		log.Uint64("instructions", c.Steps()),
	)
	return err
}
