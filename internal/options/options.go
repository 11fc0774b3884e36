// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // ROM file
	Output string // disassembly listing file, stdout if empty
	Wav    string // file to record the buzzer into
}

// Flags contains behavior options.
type Flags struct {
	Disasm bool // write a listing instead of running the program
	Trace  bool // log every executed instruction
	Debug  bool
	Quiet  bool
}

// Machine contains the emulation options.
type Machine struct {
	Quirks string // quirks preset name

	// Individual quirk overrides, nil keeps the value of the preset.
	VFReset     *bool
	Memory      *bool
	DisplayWait *bool
	Clipping    *bool
	Shifting    *bool
	Jumping     *bool

	FPS                  int
	InstructionsPerFrame int
	Frames               uint64 // stop after this number of frames, 0 runs until quit
	Seed                 uint64 // random seed, 0 uses a time based seed
}

// Display contains the presentation options.
type Display struct {
	Frontend   string
	Scale      int
	Foreground uint32 // ARGB8888
	Background uint32 // ARGB8888
	Grid       bool
	Pitch      int // buzzer frequency in Hz
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Machine
	Display
}
