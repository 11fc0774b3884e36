// Package machine contains the CHIP-8 machine state.
//
// # Memory Layout
//
// The machine has 4KB of byte addressable memory (0x000-0xFFF):
//   - 0x000-0x04F: built-in hexadecimal font, 16 glyphs of 5 bytes each
//   - 0x050-0x1FF: reserved interpreter area
//   - ProgramStart-0xFFF: program image and its data
//
// # Registers
//
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as the flag register
//   - I, the 12-bit index register used to address memory
//   - PC, the program counter, starting at ProgramStart
//   - a 16 level call stack with its stack pointer
//   - the delay and sound timers, decremented by the driver and not by the CPU
//
// # Display and Input
//
// The display is a 64x32 monochrome grid with a dirty flag that records whether
// it changed since the renderer last consumed it. The keypad latch holds the
// state of the 16 logical keys 0x0-0xF as set by the input frontend.
//
// The state is plain data. It is mutated by the cpu package and the driver and
// must not be accessed concurrently.
package machine
