package machine

const (
	// FontAddress is the memory address of the first font glyph.
	FontAddress = 0x000

	// FontGlyphSize is the size of a single font glyph in bytes.
	FontGlyphSize = 5
)

// font contains the sprites for the hexadecimal digits 0-F.
var font = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// GlyphAddress returns the memory address of the font glyph for the low
// nibble of the given value.
func GlyphAddress(value byte) uint16 {
	return FontAddress + uint16(value&0x0F)*FontGlyphSize
}

// Glyph returns a copy of the font sprite for the low nibble of the given value.
func Glyph(value byte) [FontGlyphSize]byte {
	var g [FontGlyphSize]byte
	offset := int(value&0x0F) * FontGlyphSize
	copy(g[:], font[offset:offset+FontGlyphSize])
	return g
}
