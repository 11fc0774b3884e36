package disasm

import "github.com/retroenv/retrochip8/internal/opcode"

// OffsetType defines the type of a program offset.
type OffsetType uint8

// offset types.
const (
	UnknownOffset   OffsetType = 0
	CodeOffset      OffsetType = 1 << iota
	DataOffset                 // referenced by a load index instruction
	CallDestination            // destination of a call, indicating a subroutine
	JumpDestination            // destination of a jump
)

// Offset is a single byte of the program.
type Offset struct {
	Address     uint16
	Data        []byte             // instruction bytes, empty for the second byte of an instruction
	Instruction opcode.Instruction // decoded instruction of a code offset
	Type        OffsetType

	Label       string
	BranchingTo string // label of the address the instruction references
}

// IsType returns whether the offset is of given type.
func (o *Offset) IsType(typ OffsetType) bool {
	return o.Type&typ != 0
}

// SetType sets the type of the offset.
func (o *Offset) SetType(typ OffsetType) {
	o.Type |= typ
}

// ClearType unsets the type of the offset.
func (o *Offset) ClearType(typ OffsetType) {
	o.Type &^= typ
}
