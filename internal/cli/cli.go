// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
)

// Default option values.
const (
	DefaultFPS                  = 60
	DefaultInstructionsPerFrame = 20
	DefaultScale                = 10
	DefaultForeground           = 0xff33ff00
	DefaultBackground           = 0xff111111
	DefaultPitch                = 220
)

var frontends = []string{options.FrontendSDL, options.FrontendTerminal, options.FrontendHeadless}

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := defaultOptions()
	quirks := readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	applyQuirkOverrides(flags, quirks, &opts)
	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

func defaultOptions() options.Program {
	return options.Program{
		Machine: options.Machine{
			Quirks:               machine.PresetChip8,
			FPS:                  DefaultFPS,
			InstructionsPerFrame: DefaultInstructionsPerFrame,
		},
		Display: options.Display{
			Frontend:   options.FrontendSDL,
			Scale:      DefaultScale,
			Foreground: DefaultForeground,
			Background: DefaultBackground,
			Pitch:      DefaultPitch,
		},
	}
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Only one ROM file can be passed, got %d arguments", len(args)),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if !slices.Contains(frontends, opts.Frontend) {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(frontends, ", "))
	}

	opts.Quirks = strings.ToLower(opts.Quirks)
	if _, err := machine.Preset(opts.Quirks); err != nil {
		return err
	}

	switch {
	case opts.FPS < 0:
		return fmt.Errorf("invalid frame rate %d, must not be negative", opts.FPS)
	case opts.InstructionsPerFrame <= 0:
		return fmt.Errorf("invalid instructions per frame %d, must be positive", opts.InstructionsPerFrame)
	case opts.Scale <= 0:
		return fmt.Errorf("invalid scale %d, must be positive", opts.Scale)
	case opts.Pitch <= 0:
		return fmt.Errorf("invalid pitch %d, must be positive", opts.Pitch)
	}
	return nil
}

// quirkFlags holds the values of the individual quirk flags.
type quirkFlags struct {
	vfReset, memory, displayWait, clipping, shifting, jumping bool
}

// applyQuirkOverrides copies only the explicitly passed quirk flags into the
// options, all other quirks keep the value of the preset.
func applyQuirkOverrides(flags *flag.FlagSet, quirks *quirkFlags, opts *options.Program) {
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vfreset":
			opts.VFReset = &quirks.vfReset
		case "memory":
			opts.Memory = &quirks.memory
		case "displaywait":
			opts.DisplayWait = &quirks.displayWait
		case "clipping":
			opts.Clipping = &quirks.clipping
		case "shifting":
			opts.Shifting = &quirks.shifting
		case "jumping":
			opts.Jumping = &quirks.jumping
		}
	})
}

// parseColor parses an ARGB8888 color given in hexadecimal with 0x prefix or
// in decimal.
func parseColor(s string) (uint32, error) {
	value, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color '%s': %w", s, err)
	}
	return uint32(value), nil
}

func colorFlag(flags *flag.FlagSet, target *uint32, name, usage string) {
	flags.Func(name, fmt.Sprintf("%s (default 0x%08x)", usage, *target), func(s string) error {
		value, err := parseColor(s)
		if err != nil {
			return err
		}
		*target = value
		return nil
	})
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) *quirkFlags {
	flags.StringVar(&opts.Output, "o", "", "name of the disassembly output file, printed on console if no name given")
	flags.StringVar(&opts.Wav, "wav", "", "record the buzzer into the given .wav file")
	flags.BoolVar(&opts.Disasm, "disasm", false, "write a disassembly listing of the ROM instead of running it")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.StringVar(&opts.Quirks, "quirks", opts.Quirks,
		fmt.Sprintf("quirks preset (%s)", strings.Join(machine.PresetNames(), "/")))
	flags.IntVar(&opts.FPS, "fps", opts.FPS, "frames per second, 0 runs unthrottled")
	flags.IntVar(&opts.InstructionsPerFrame, "ipf", opts.InstructionsPerFrame, "instructions executed per frame")
	flags.Uint64Var(&opts.Frames, "frames", 0, "stop after the given number of frames, 0 runs until quit")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses a time based seed")

	flags.StringVar(&opts.Frontend, "frontend", opts.Frontend,
		fmt.Sprintf("frontend to use (%s)", strings.Join(frontends, "/")))
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "size of a display pixel in screen pixels")
	flags.BoolVar(&opts.Grid, "grid", false, "draw a grid between the display pixels")
	flags.IntVar(&opts.Pitch, "pitch", opts.Pitch, "buzzer frequency in Hz")
	colorFlag(flags, &opts.Foreground, "color", "ARGB color of lit pixels")
	colorFlag(flags, &opts.Background, "background", "ARGB color of unlit pixels")

	quirks := &quirkFlags{}
	flags.BoolVar(&quirks.vfReset, "vfreset", false, "override quirk: reset VF after or, and, xor")
	flags.BoolVar(&quirks.memory, "memory", false, "override quirk: advance I after register store and load")
	flags.BoolVar(&quirks.displayWait, "displaywait", false, "override quirk: execute at most one draw per frame")
	flags.BoolVar(&quirks.clipping, "clipping", false, "override quirk: clip sprites at the display border")
	flags.BoolVar(&quirks.shifting, "shifting", false, "override quirk: shift VY instead of VX")
	flags.BoolVar(&quirks.jumping, "jumping", false, "override quirk: indexed jump uses VX instead of V0")
	return quirks
}
