// Package cpu implements the CHIP-8 fetch-decode-execute engine.
//
// The CPU is driven externally, one instruction per Step call. It never
// decrements the timers and never blocks, waiting for a key press is realized
// by re-executing the wait instruction on the next step.
package cpu

import (
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrogolib/log"
)

// RandomSource provides the random bytes of the RND instruction.
type RandomSource interface {
	Byte() byte
}

// Option configures a CPU.
type Option func(*CPU)

// WithTrace enables debug logging of every executed instruction.
func WithTrace(trace bool) Option {
	return func(c *CPU) {
		c.trace = trace
	}
}

// CPU executes instructions against a machine state.
type CPU struct {
	logger *log.Logger
	state  *machine.State
	random RandomSource
	trace  bool

	steps uint64
	err   error // set once the CPU halted on a fatal error
}

// New returns a new CPU operating on the given machine state.
func New(logger *log.Logger, state *machine.State, random RandomSource, options ...Option) *CPU {
	c := &CPU{
		logger: logger,
		state:  state,
		random: random,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// State returns the machine state the CPU operates on.
func (c *CPU) State() *machine.State {
	return c.state
}

// Steps returns the number of successfully executed instructions.
func (c *CPU) Steps() uint64 {
	return c.steps
}

// Err returns the fatal error that halted the CPU, or nil.
func (c *CPU) Err() error {
	return c.err
}

// Step fetches, decodes and executes one instruction and returns the executed
// instruction. Errors are fatal, once an error is returned the CPU is halted
// and every further call returns the same error.
func (c *CPU) Step() (opcode.Instruction, error) {
	if c.err != nil {
		return nil, c.err
	}

	pc := c.state.PC
	word, err := c.fetch()
	if err != nil {
		return nil, c.halt(&ExecutionError{PC: pc, Err: err})
	}

	ins := opcode.Decode(word)
	if c.trace {
		c.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", word),
			log.String("instruction", ins.String()))
	}

	// the default advance is the baseline, control flow instructions
	// overwrite the program counter afterwards
	c.state.PC += opcode.Size

	if err := c.execute(ins); err != nil {
		return ins, c.halt(&ExecutionError{PC: pc, Word: word, Fetched: true, Err: err})
	}

	c.steps++
	return ins, nil
}

func (c *CPU) fetch() (uint16, error) {
	pc := int(c.state.PC)
	if pc+1 >= machine.MemorySize {
		return 0, ErrProgramCounterOverflow
	}
	return opcode.Word(c.state.Memory[pc], c.state.Memory[pc+1]), nil
}

func (c *CPU) halt(err *ExecutionError) error {
	c.err = err
	return c.err
}
