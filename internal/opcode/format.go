package opcode

import "fmt"

// The operand syntax follows the common CHIP-8 assembler conventions:
// registers as VX, immediates as $NN and addresses as $NNN.

func (i ClearScreen) String() string { return i.Name() }
func (i Return) String() string      { return i.Name() }

func (i Jump) String() string { return fmt.Sprintf("%s $%03X", i.Name(), i.Address) }
func (i Call) String() string { return fmt.Sprintf("%s $%03X", i.Name(), i.Address) }

func (i SkipEqualImmediate) String() string    { return formatImmediate(i.Name(), i.X, i.Value) }
func (i SkipNotEqualImmediate) String() string { return formatImmediate(i.Name(), i.X, i.Value) }
func (i LoadImmediate) String() string         { return formatImmediate(i.Name(), i.X, i.Value) }
func (i AddImmediate) String() string          { return formatImmediate(i.Name(), i.X, i.Value) }
func (i Random) String() string                { return formatImmediate(i.Name(), i.X, i.Mask) }

func (i SkipEqualRegister) String() string    { return formatRegisters(i.Name(), i.X, i.Y) }
func (i SkipNotEqualRegister) String() string { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Move) String() string                 { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Or) String() string                   { return formatRegisters(i.Name(), i.X, i.Y) }
func (i And) String() string                  { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Xor) String() string                  { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Add) String() string                  { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Sub) String() string                  { return formatRegisters(i.Name(), i.X, i.Y) }
func (i SubReverse) String() string           { return formatRegisters(i.Name(), i.X, i.Y) }

// Shifts are printed with both operands as the shifting quirk may read VY.
func (i ShiftRight) String() string { return formatRegisters(i.Name(), i.X, i.Y) }
func (i ShiftLeft) String() string  { return formatRegisters(i.Name(), i.X, i.Y) }

func (i LoadIndex) String() string   { return fmt.Sprintf("%s I, $%03X", i.Name(), i.Address) }
func (i JumpIndexed) String() string { return fmt.Sprintf("%s V0, $%03X", i.Name(), i.Address) }

func (i Draw) String() string {
	return fmt.Sprintf("%s %s, %s, $%X", i.Name(), i.X, i.Y, i.Height)
}

func (i SkipKeyPressed) String() string    { return fmt.Sprintf("%s %s", i.Name(), i.X) }
func (i SkipKeyNotPressed) String() string { return fmt.Sprintf("%s %s", i.Name(), i.X) }

func (i LoadDelay) String() string      { return fmt.Sprintf("%s %s, DT", i.Name(), i.X) }
func (i WaitKey) String() string        { return fmt.Sprintf("%s %s, K", i.Name(), i.X) }
func (i SetDelay) String() string       { return fmt.Sprintf("%s DT, %s", i.Name(), i.X) }
func (i SetSound) String() string       { return fmt.Sprintf("%s ST, %s", i.Name(), i.X) }
func (i AddIndex) String() string       { return fmt.Sprintf("%s I, %s", i.Name(), i.X) }
func (i LoadGlyph) String() string      { return fmt.Sprintf("%s F, %s", i.Name(), i.X) }
func (i StoreBCD) String() string       { return fmt.Sprintf("%s B, %s", i.Name(), i.X) }
func (i StoreRegisters) String() string { return fmt.Sprintf("%s [I], %s", i.Name(), i.X) }
func (i LoadRegisters) String() string  { return fmt.Sprintf("%s %s, [I]", i.Name(), i.X) }

func (i Unknown) String() string { return fmt.Sprintf(".word $%04X", i.Word) }

func formatImmediate(name string, x Register, value byte) string {
	return fmt.Sprintf("%s %s, $%02X", name, x, value)
}

func formatRegisters(name string, x, y Register) string {
	return fmt.Sprintf("%s %s, %s", name, x, y)
}
