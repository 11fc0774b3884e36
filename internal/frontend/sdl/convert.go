package sdl

import (
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/veandco/go-sdl2/sdl"
)

// keymap maps the left keyboard block to the hexadecimal keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var keymap = map[sdl.Keycode]byte{
	sdl.K_1: 0x1, sdl.K_2: 0x2, sdl.K_3: 0x3, sdl.K_4: 0xC,
	sdl.K_q: 0x4, sdl.K_w: 0x5, sdl.K_e: 0x6, sdl.K_r: 0xD,
	sdl.K_a: 0x7, sdl.K_s: 0x8, sdl.K_d: 0x9, sdl.K_f: 0xE,
	sdl.K_z: 0xA, sdl.K_x: 0x0, sdl.K_c: 0xB, sdl.K_v: 0xF,
}

// splitColor returns the red, green, blue and alpha components of an
// ARGB8888 color.
func splitColor(argb uint32) (r, g, b, a uint8) {
	return uint8(argb >> 16), uint8(argb >> 8), uint8(argb), uint8(argb >> 24)
}

// litRects appends one scaled rectangle per lit pixel to rects.
func litRects(display *machine.Display, scale int32, rects []sdl.Rect) []sdl.Rect {
	for y := range machine.DisplayHeight {
		for x := range machine.DisplayWidth {
			if !display.Pixel(x, y) {
				continue
			}
			rects = append(rects, sdl.Rect{
				X: int32(x) * scale,
				Y: int32(y) * scale,
				W: scale,
				H: scale,
			})
		}
	}
	return rects
}

// encodeU8 converts samples in the range [-1, 1] to unsigned 8 bit audio
// centered on the silence value of the device.
func encodeU8(samples []float64, silence uint8, out []byte) {
	for i, sample := range samples {
		out[i] = uint8(int(silence) + int(sample*127))
	}
}
