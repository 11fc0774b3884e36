package opcode

// fields contains the nibble aligned parts of an instruction word.
type fields struct {
	family uint8    // highest nibble, the opcode family
	x      Register // second nibble
	y      Register // third nibble
	n      byte     // lowest nibble
	nn     byte     // low byte
	nnn    uint16   // low 12 bits
}

func split(word uint16) fields {
	return fields{
		family: uint8(word >> 12),
		x:      Register((word & 0x0F00) >> 8),
		y:      Register((word & 0x00F0) >> 4),
		n:      byte(word & 0x000F),
		nn:     byte(word & 0x00FF),
		nnn:    word & 0x0FFF,
	}
}

// Word combines the two bytes of an instruction in big endian order.
func Word(high, low byte) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Decode decodes an instruction word. It never fails, words that do not
// match a known instruction decode to Unknown.
func Decode(word uint16) Instruction {
	f := split(word)

	switch f.family {
	case 0x0:
		switch word {
		case 0x00E0:
			return ClearScreen{}
		case 0x00EE:
			return Return{}
		}
	case 0x1:
		return Jump{Address: f.nnn}
	case 0x2:
		return Call{Address: f.nnn}
	case 0x3:
		return SkipEqualImmediate{X: f.x, Value: f.nn}
	case 0x4:
		return SkipNotEqualImmediate{X: f.x, Value: f.nn}
	case 0x5:
		if f.n == 0 {
			return SkipEqualRegister{X: f.x, Y: f.y}
		}
	case 0x6:
		return LoadImmediate{X: f.x, Value: f.nn}
	case 0x7:
		return AddImmediate{X: f.x, Value: f.nn}
	case 0x8:
		if ins := decodeArithmetic(f); ins != nil {
			return ins
		}
	case 0x9:
		if f.n == 0 {
			return SkipNotEqualRegister{X: f.x, Y: f.y}
		}
	case 0xA:
		return LoadIndex{Address: f.nnn}
	case 0xB:
		return JumpIndexed{Address: f.nnn}
	case 0xC:
		return Random{X: f.x, Mask: f.nn}
	case 0xD:
		return Draw{X: f.x, Y: f.y, Height: f.n}
	case 0xE:
		switch f.nn {
		case 0x9E:
			return SkipKeyPressed{X: f.x}
		case 0xA1:
			return SkipKeyNotPressed{X: f.x}
		}
	case 0xF:
		if ins := decodeMisc(f); ins != nil {
			return ins
		}
	}

	return Unknown{Word: word}
}

// decodeArithmetic decodes the 8XYN family by its lowest nibble.
func decodeArithmetic(f fields) Instruction {
	switch f.n {
	case 0x0:
		return Move{X: f.x, Y: f.y}
	case 0x1:
		return Or{X: f.x, Y: f.y}
	case 0x2:
		return And{X: f.x, Y: f.y}
	case 0x3:
		return Xor{X: f.x, Y: f.y}
	case 0x4:
		return Add{X: f.x, Y: f.y}
	case 0x5:
		return Sub{X: f.x, Y: f.y}
	case 0x6:
		return ShiftRight{X: f.x, Y: f.y}
	case 0x7:
		return SubReverse{X: f.x, Y: f.y}
	case 0xE:
		return ShiftLeft{X: f.x, Y: f.y}
	}
	return nil
}

// decodeMisc decodes the FXNN family by its low byte.
func decodeMisc(f fields) Instruction {
	switch f.nn {
	case 0x07:
		return LoadDelay{X: f.x}
	case 0x0A:
		return WaitKey{X: f.x}
	case 0x15:
		return SetDelay{X: f.x}
	case 0x18:
		return SetSound{X: f.x}
	case 0x1E:
		return AddIndex{X: f.x}
	case 0x29:
		return LoadGlyph{X: f.x}
	case 0x33:
		return StoreBCD{X: f.x}
	case 0x55:
		return StoreRegisters{X: f.x}
	case 0x65:
		return LoadRegisters{X: f.x}
	}
	return nil
}
