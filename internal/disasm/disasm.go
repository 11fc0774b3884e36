// Package disasm implements a static CHIP-8 disassembler. It traces the
// control flow from the program start and writes an assembly listing, all
// bytes that were not reached as code are output as data.
package disasm

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Disasm implements a disassembler.
type Disasm struct {
	logger *log.Logger
	writer io.Writer

	program []byte
	offsets []Offset

	branchDestinations set.Set[uint16] // set of all addresses that are branched to

	offsetsToParse      []uint16
	offsetsToParseAdded set.Set[uint16]
}

// New creates a new disassembler for the given program image.
func New(logger *log.Logger, program []byte, writer io.Writer) (*Disasm, error) {
	if len(program) > machine.MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes exceed the maximum of %d bytes",
			machine.ErrProgramTooLarge, len(program), machine.MaxProgramSize)
	}

	dis := &Disasm{
		logger:              logger,
		writer:              writer,
		program:             program,
		offsets:             make([]Offset, len(program)),
		branchDestinations:  set.New[uint16](),
		offsetsToParseAdded: set.New[uint16](),
	}
	for i := range dis.offsets {
		dis.offsets[i].Address = machine.ProgramStart + uint16(i)
	}
	return dis, nil
}

// Process disassembles the program and writes the listing.
func (dis *Disasm) Process() error {
	if len(dis.program) > 0 {
		dis.offsets[0].Label = "Start"
		dis.addAddressToParse(machine.ProgramStart, 0, false)
	}

	dis.followExecutionFlow()
	dis.processJumpDestinations()

	if err := dis.writeHeader(); err != nil {
		return err
	}
	return dis.writeOffsets()
}

// Offsets returns the processed program offsets.
func (dis *Disasm) Offsets() []Offset {
	return dis.offsets
}

// offsetInfo returns the offset of the given address or nil if the address
// is outside of the program.
func (dis *Disasm) offsetInfo(address uint16) *Offset {
	if address < machine.ProgramStart {
		return nil
	}
	index := int(address - machine.ProgramStart)
	if index >= len(dis.offsets) {
		return nil
	}
	return &dis.offsets[index]
}

// readWord reads the instruction word at the given address.
func (dis *Disasm) readWord(address uint16) (uint16, bool) {
	index := int(address - machine.ProgramStart)
	if index+1 >= len(dis.program) {
		return 0, false
	}
	return opcode.Word(dis.program[index], dis.program[index+1]), true
}

func (dis *Disasm) writeHeader() error {
	checksum := crc32.ChecksumIEEE(dis.program)
	if _, err := fmt.Fprintf(dis.writer, "; CRC32 checksum: %08x\n", checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(dis.writer, "; Code base address: $%04x\n\n", machine.ProgramStart); err != nil {
		return fmt.Errorf("writing code base address: %w", err)
	}
	return nil
}
