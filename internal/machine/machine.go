package machine

import (
	"errors"
	"fmt"
)

// Memory layout and hardware dimension constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the address where programs are loaded and execution starts.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general-purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the index of VF, the implicit flag output of arithmetic,
	// shift and draw instructions.
	FlagRegister = 0xF

	// StackSize is the maximum call depth.
	StackSize = 16
)

// ErrProgramTooLarge is returned when a program image does not fit into memory.
var ErrProgramTooLarge = errors.New("program too large")

// State is the complete state of a CHIP-8 machine.
type State struct {
	Memory [MemorySize]byte
	V      [RegisterCount]byte // general-purpose registers
	I      uint16              // index register
	PC     uint16              // program counter

	Stack [StackSize]uint16
	SP    uint8 // stack pointer, index of the next free stack slot

	DelayTimer byte
	SoundTimer byte

	Display Display
	Keys    Keypad

	quirks Quirks
}

// New returns a new machine state with the font and the given program image
// loaded into memory. All other fields are zeroed and the program counter
// points to the program start address.
func New(program []byte, quirks Quirks) (*State, error) {
	if len(program) > MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes exceed the maximum of %d bytes",
			ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	s := &State{
		PC:     ProgramStart,
		quirks: quirks,
	}
	copy(s.Memory[FontAddress:], font[:])
	copy(s.Memory[ProgramStart:], program)
	return s, nil
}

// Quirks returns the quirks configuration the state was created with.
func (s *State) Quirks() Quirks {
	return s.quirks
}

// DecrementTimers decrements the delay and sound timers if they are non-zero.
// It is called by the driver at its own fixed cadence.
func (s *State) DecrementTimers() {
	if s.DelayTimer > 0 {
		s.DelayTimer--
	}
	if s.SoundTimer > 0 {
		s.SoundTimer--
	}
}

// SoundActive returns whether the buzzer should currently sound.
func (s *State) SoundActive() bool {
	return s.SoundTimer > 0
}
