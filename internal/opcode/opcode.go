// Package opcode decodes 16-bit CHIP-8 instruction words into typed instructions.
//
// Decoding is a pure function of the instruction word. Words that do not match
// any known instruction decode to Unknown, which the CPU treats as fatal.
package opcode

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Size is the size of an instruction in bytes.
const Size = 2

// Register is the index of a general-purpose register V0-VF.
type Register uint8

func (r Register) String() string {
	return fmt.Sprintf("V%X", uint8(r))
}

// Instruction is a decoded instruction. The set of implementations is closed,
// consumers switch over the concrete types.
type Instruction interface {
	fmt.Stringer

	// Name returns the instruction mnemonic.
	Name() string

	instruction()
}

// ClearScreen is 00E0: clear the display.
type ClearScreen struct{}

// Return is 00EE: return from a subroutine.
type Return struct{}

// Jump is 1NNN: jump to an address.
type Jump struct{ Address uint16 }

// Call is 2NNN: call a subroutine.
type Call struct{ Address uint16 }

// SkipEqualImmediate is 3XNN: skip the next instruction if VX == NN.
type SkipEqualImmediate struct {
	X     Register
	Value byte
}

// SkipNotEqualImmediate is 4XNN: skip the next instruction if VX != NN.
type SkipNotEqualImmediate struct {
	X     Register
	Value byte
}

// SkipEqualRegister is 5XY0: skip the next instruction if VX == VY.
type SkipEqualRegister struct{ X, Y Register }

// LoadImmediate is 6XNN: VX = NN.
type LoadImmediate struct {
	X     Register
	Value byte
}

// AddImmediate is 7XNN: VX += NN without touching VF.
type AddImmediate struct {
	X     Register
	Value byte
}

// Move is 8XY0: VX = VY.
type Move struct{ X, Y Register }

// Or is 8XY1: VX |= VY.
type Or struct{ X, Y Register }

// And is 8XY2: VX &= VY.
type And struct{ X, Y Register }

// Xor is 8XY3: VX ^= VY.
type Xor struct{ X, Y Register }

// Add is 8XY4: VX += VY, VF = carry.
type Add struct{ X, Y Register }

// Sub is 8XY5: VX -= VY, VF = not borrow.
type Sub struct{ X, Y Register }

// ShiftRight is 8XY6: VX >>= 1, VF = shifted out bit.
type ShiftRight struct{ X, Y Register }

// SubReverse is 8XY7: VX = VY - VX, VF = not borrow.
type SubReverse struct{ X, Y Register }

// ShiftLeft is 8XYE: VX <<= 1, VF = shifted out bit.
type ShiftLeft struct{ X, Y Register }

// SkipNotEqualRegister is 9XY0: skip the next instruction if VX != VY.
type SkipNotEqualRegister struct{ X, Y Register }

// LoadIndex is ANNN: I = NNN.
type LoadIndex struct{ Address uint16 }

// JumpIndexed is BNNN: jump to NNN plus V0, or plus VX with X being the high
// nibble of NNN when the jumping quirk is enabled.
type JumpIndexed struct{ Address uint16 }

// Random is CXNN: VX = random byte & NN.
type Random struct {
	X    Register
	Mask byte
}

// Draw is DXYN: draw an N rows high sprite from memory at I to (VX, VY).
type Draw struct {
	X, Y   Register
	Height byte
}

// SkipKeyPressed is EX9E: skip the next instruction if the key VX is pressed.
type SkipKeyPressed struct{ X Register }

// SkipKeyNotPressed is EXA1: skip the next instruction if the key VX is not pressed.
type SkipKeyNotPressed struct{ X Register }

// LoadDelay is FX07: VX = delay timer.
type LoadDelay struct{ X Register }

// WaitKey is FX0A: wait for a key press and store the key in VX.
type WaitKey struct{ X Register }

// SetDelay is FX15: delay timer = VX.
type SetDelay struct{ X Register }

// SetSound is FX18: sound timer = VX.
type SetSound struct{ X Register }

// AddIndex is FX1E: I += VX.
type AddIndex struct{ X Register }

// LoadGlyph is FX29: I = address of the font glyph for the low nibble of VX.
type LoadGlyph struct{ X Register }

// StoreBCD is FX33: store the decimal digits of VX at I, I+1 and I+2.
type StoreBCD struct{ X Register }

// StoreRegisters is FX55: store V0..VX in memory starting at I.
type StoreRegisters struct{ X Register }

// LoadRegisters is FX65: load V0..VX from memory starting at I.
type LoadRegisters struct{ X Register }

// Unknown is a word that does not match any instruction.
type Unknown struct{ Word uint16 }

func (ClearScreen) instruction()           {}
func (Return) instruction()                {}
func (Jump) instruction()                  {}
func (Call) instruction()                  {}
func (SkipEqualImmediate) instruction()    {}
func (SkipNotEqualImmediate) instruction() {}
func (SkipEqualRegister) instruction()     {}
func (LoadImmediate) instruction()         {}
func (AddImmediate) instruction()          {}
func (Move) instruction()                  {}
func (Or) instruction()                    {}
func (And) instruction()                   {}
func (Xor) instruction()                   {}
func (Add) instruction()                   {}
func (Sub) instruction()                   {}
func (ShiftRight) instruction()            {}
func (SubReverse) instruction()            {}
func (ShiftLeft) instruction()             {}
func (SkipNotEqualRegister) instruction()  {}
func (LoadIndex) instruction()             {}
func (JumpIndexed) instruction()           {}
func (Random) instruction()                {}
func (Draw) instruction()                  {}
func (SkipKeyPressed) instruction()        {}
func (SkipKeyNotPressed) instruction()     {}
func (LoadDelay) instruction()             {}
func (WaitKey) instruction()               {}
func (SetDelay) instruction()              {}
func (SetSound) instruction()              {}
func (AddIndex) instruction()              {}
func (LoadGlyph) instruction()             {}
func (StoreBCD) instruction()              {}
func (StoreRegisters) instruction()        {}
func (LoadRegisters) instruction()         {}
func (Unknown) instruction()               {}

func (ClearScreen) Name() string           { return chip8.ClsInst.Name }
func (Return) Name() string                { return chip8.RetInst.Name }
func (Jump) Name() string                  { return chip8.JpInst.Name }
func (Call) Name() string                  { return chip8.CallInst.Name }
func (SkipEqualImmediate) Name() string    { return chip8.SeInst.Name }
func (SkipNotEqualImmediate) Name() string { return chip8.SneInst.Name }
func (SkipEqualRegister) Name() string     { return chip8.SeInst.Name }
func (LoadImmediate) Name() string         { return chip8.LdInst.Name }
func (AddImmediate) Name() string          { return chip8.AddInst.Name }
func (Move) Name() string                  { return chip8.LdInst.Name }
func (Or) Name() string                    { return chip8.OrInst.Name }
func (And) Name() string                   { return chip8.AndInst.Name }
func (Xor) Name() string                   { return chip8.XorInst.Name }
func (Add) Name() string                   { return chip8.AddInst.Name }
func (Sub) Name() string                   { return chip8.SubInst.Name }
func (ShiftRight) Name() string            { return chip8.ShrInst.Name }
func (SubReverse) Name() string            { return chip8.SubnInst.Name }
func (ShiftLeft) Name() string             { return chip8.ShlInst.Name }
func (SkipNotEqualRegister) Name() string  { return chip8.SneInst.Name }
func (LoadIndex) Name() string             { return chip8.LdInst.Name }
func (JumpIndexed) Name() string           { return chip8.JpInst.Name }
func (Random) Name() string                { return chip8.RndInst.Name }
func (Draw) Name() string                  { return chip8.DrwInst.Name }
func (SkipKeyPressed) Name() string        { return chip8.SkpInst.Name }
func (SkipKeyNotPressed) Name() string     { return chip8.SknpInst.Name }
func (LoadDelay) Name() string             { return chip8.LdInst.Name }
func (WaitKey) Name() string               { return chip8.LdInst.Name }
func (SetDelay) Name() string              { return chip8.LdInst.Name }
func (SetSound) Name() string              { return chip8.LdInst.Name }
func (AddIndex) Name() string              { return chip8.AddInst.Name }
func (LoadGlyph) Name() string             { return chip8.LdInst.Name }
func (StoreBCD) Name() string              { return chip8.LdInst.Name }
func (StoreRegisters) Name() string        { return chip8.LdInst.Name }
func (LoadRegisters) Name() string         { return chip8.LdInst.Name }

// Name returns an empty string as unknown words have no mnemonic.
func (Unknown) Name() string { return "" }
