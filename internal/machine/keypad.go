package machine

// KeyCount is the number of logical keys 0x0-0xF.
const KeyCount = 16

// Keypad is the latch of the 16 logical keys. It is written by the input
// frontend and read by the key instructions.
type Keypad [KeyCount]bool

// Pressed returns whether the given key is latched as pressed. Only the low
// nibble of the key is used.
func (k *Keypad) Pressed(key byte) bool {
	return k[key&0x0F]
}

// Set latches the state of the given key.
func (k *Keypad) Set(key byte, pressed bool) {
	k[key&0x0F] = pressed
}

// Release clears the latch of the given key.
func (k *Keypad) Release(key byte) {
	k[key&0x0F] = false
}

// FirstPressed returns the lowest pressed key and true, or false if no key
// is pressed.
func (k *Keypad) FirstPressed() (byte, bool) {
	for i, pressed := range k {
		if pressed {
			return byte(i), true
		}
	}
	return 0, false
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	*k = Keypad{}
}
