package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownInstruction is returned for instruction words that do not
	// decode to a known instruction.
	ErrUnknownInstruction = errors.New("unknown instruction")

	// ErrStackOverflow is returned for a call with a full stack.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned for a return with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrProgramCounterOverflow is returned when the program counter points
	// past the end of memory.
	ErrProgramCounterOverflow = errors.New("program counter overflow")
)

// ExecutionError is a fatal error that halted the CPU. It records the program
// counter and the instruction word at the time of the failure. Word is only
// valid if Fetched is set.
type ExecutionError struct {
	PC      uint16
	Word    uint16
	Fetched bool
	Err     error
}

func (e *ExecutionError) Error() string {
	if !e.Fetched {
		return fmt.Sprintf("fetching instruction at address $%03X: %v", e.PC, e.Err)
	}
	return fmt.Sprintf("executing instruction $%04X at address $%03X: %v", e.Word, e.PC, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
