package cpu

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/opcode"
)

const flag = machine.FlagRegister

// execute applies the state transition of a decoded instruction. The program
// counter already points to the following instruction.
//
//nolint:cyclop,funlen // one case per instruction
func (c *CPU) execute(ins opcode.Instruction) error {
	s := c.state
	quirks := s.Quirks()

	switch ins := ins.(type) {
	case opcode.ClearScreen:
		s.Display.Clear()

	case opcode.Return:
		if s.SP == 0 {
			return ErrStackUnderflow
		}
		s.SP--
		s.PC = s.Stack[s.SP]

	case opcode.Jump:
		s.PC = ins.Address

	case opcode.Call:
		if int(s.SP) >= machine.StackSize {
			return ErrStackOverflow
		}
		s.Stack[s.SP] = s.PC
		s.SP++
		s.PC = ins.Address

	case opcode.SkipEqualImmediate:
		c.skipIf(s.V[ins.X] == ins.Value)
	case opcode.SkipNotEqualImmediate:
		c.skipIf(s.V[ins.X] != ins.Value)
	case opcode.SkipEqualRegister:
		c.skipIf(s.V[ins.X] == s.V[ins.Y])
	case opcode.SkipNotEqualRegister:
		c.skipIf(s.V[ins.X] != s.V[ins.Y])

	case opcode.LoadImmediate:
		s.V[ins.X] = ins.Value
	case opcode.AddImmediate:
		s.V[ins.X] += ins.Value

	case opcode.Move:
		s.V[ins.X] = s.V[ins.Y]
	case opcode.Or:
		s.V[ins.X] |= s.V[ins.Y]
		c.resetFlag(quirks)
	case opcode.And:
		s.V[ins.X] &= s.V[ins.Y]
		c.resetFlag(quirks)
	case opcode.Xor:
		s.V[ins.X] ^= s.V[ins.Y]
		c.resetFlag(quirks)

	case opcode.Add:
		x, y := s.V[ins.X], s.V[ins.Y]
		s.V[ins.X] = x + y
		s.V[flag] = boolToFlag(uint16(x)+uint16(y) > 0xFF)
	case opcode.Sub:
		x, y := s.V[ins.X], s.V[ins.Y]
		s.V[ins.X] = x - y
		s.V[flag] = boolToFlag(x >= y)
	case opcode.SubReverse:
		x, y := s.V[ins.X], s.V[ins.Y]
		s.V[ins.X] = y - x
		s.V[flag] = boolToFlag(y >= x)
	case opcode.ShiftRight:
		value := c.shiftSource(quirks, ins.X, ins.Y)
		s.V[ins.X] = value >> 1
		s.V[flag] = value & 0x01
	case opcode.ShiftLeft:
		value := c.shiftSource(quirks, ins.X, ins.Y)
		s.V[ins.X] = value << 1
		s.V[flag] = value >> 7

	case opcode.LoadIndex:
		s.I = ins.Address
	case opcode.JumpIndexed:
		register := opcode.Register(0)
		if quirks.Jumping {
			register = opcode.Register(ins.Address >> 8)
		}
		s.PC = ins.Address + uint16(s.V[register])

	case opcode.Random:
		s.V[ins.X] = c.random.Byte() & ins.Mask

	case opcode.Draw:
		c.draw(ins, quirks)

	case opcode.SkipKeyPressed:
		c.skipIf(s.Keys.Pressed(s.V[ins.X]))
	case opcode.SkipKeyNotPressed:
		c.skipIf(!s.Keys.Pressed(s.V[ins.X]))
	case opcode.WaitKey:
		key, ok := s.Keys.FirstPressed()
		if !ok {
			s.PC -= opcode.Size // execute the same instruction again on the next step
			return nil
		}
		s.V[ins.X] = key
		s.Keys.Release(key)

	case opcode.LoadDelay:
		s.V[ins.X] = s.DelayTimer
	case opcode.SetDelay:
		s.DelayTimer = s.V[ins.X]
	case opcode.SetSound:
		s.SoundTimer = s.V[ins.X]

	case opcode.AddIndex:
		s.I += uint16(s.V[ins.X])
	case opcode.LoadGlyph:
		s.I = machine.GlyphAddress(s.V[ins.X])
	case opcode.StoreBCD:
		value := s.V[ins.X]
		c.writeMemory(s.I, value/100)
		c.writeMemory(s.I+1, value/10%10)
		c.writeMemory(s.I+2, value%10)

	case opcode.StoreRegisters:
		for r := range uint16(ins.X) + 1 {
			c.writeMemory(s.I+r, s.V[r])
		}
		c.advanceIndex(quirks, ins.X)
	case opcode.LoadRegisters:
		for r := range uint16(ins.X) + 1 {
			s.V[r] = c.readMemory(s.I + r)
		}
		c.advanceIndex(quirks, ins.X)

	case opcode.Unknown:
		return ErrUnknownInstruction

	default:
		return fmt.Errorf("%w: unsupported instruction type %T", ErrUnknownInstruction, ins)
	}

	return nil
}

// draw XORs a sprite of ins.Height rows from memory at I onto the display.
// VF is set if any lit pixel was turned off.
func (c *CPU) draw(ins opcode.Draw, quirks machine.Quirks) {
	s := c.state
	// the coordinates have to be read before VF is cleared, as VX or VY can be VF
	originX := int(s.V[ins.X]) % machine.DisplayWidth
	originY := int(s.V[ins.Y]) % machine.DisplayHeight
	s.V[flag] = 0

	for row := range int(ins.Height) {
		y := originY + row
		if y >= machine.DisplayHeight {
			if quirks.Clipping {
				break
			}
			y %= machine.DisplayHeight
		}

		sprite := c.readMemory(s.I + uint16(row))
		for col := range 8 {
			if sprite&(0x80>>col) == 0 {
				continue
			}

			x := originX + col
			if x >= machine.DisplayWidth {
				if quirks.Clipping {
					break
				}
				x %= machine.DisplayWidth
			}

			if s.Display.Flip(x, y) {
				s.V[flag] = 1
			}
		}
	}
}

func (c *CPU) skipIf(condition bool) {
	if condition {
		c.state.PC += opcode.Size
	}
}

// resetFlag zeroes VF after a logic instruction if the quirk is enabled.
func (c *CPU) resetFlag(quirks machine.Quirks) {
	if quirks.VFReset {
		c.state.V[flag] = 0
	}
}

// shiftSource returns the value to shift, VY with the shifting quirk and VX otherwise.
func (c *CPU) shiftSource(quirks machine.Quirks, x, y opcode.Register) byte {
	if quirks.Shifting {
		return c.state.V[y]
	}
	return c.state.V[x]
}

// advanceIndex moves I past the transferred registers if the quirk is enabled.
func (c *CPU) advanceIndex(quirks machine.Quirks, x opcode.Register) {
	if quirks.Memory {
		c.state.I += uint16(x) + 1
	}
}

// Memory accesses through I wrap around at the end of the address space.
func (c *CPU) readMemory(address uint16) byte {
	return c.state.Memory[address%machine.MemorySize]
}

func (c *CPU) writeMemory(address uint16, value byte) {
	c.state.Memory[address%machine.MemorySize] = value
}

func boolToFlag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
