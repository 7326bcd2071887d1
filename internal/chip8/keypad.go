package chip8

import "fmt"

// Keypad provides the state of the 16 key hex keypad.
type Keypad interface {
	// Pressed returns whether the key is currently held down.
	Pressed(key uint8) bool
	// AnyPressed returns the lowest numbered key that is held down.
	AnyPressed() (uint8, bool)
}

var _ Keypad = (*Keys)(nil)

// Keys is a keypad that keeps the key state in memory. A host maps its input
// events to Press and Release calls.
type Keys struct {
	down [KeyCount]bool
}

// Press marks the key as held down.
func (k *Keys) Press(key uint8) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}
	k.down[key] = true
	return nil
}

// Release marks the key as released.
func (k *Keys) Release(key uint8) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}
	k.down[key] = false
	return nil
}

// Pressed returns whether the key is held down. Only the low nibble of key is used.
func (k *Keys) Pressed(key uint8) bool {
	return k.down[key&0x0F]
}

// AnyPressed returns the lowest numbered key that is held down.
func (k *Keys) AnyPressed() (uint8, bool) {
	for key, down := range k.down {
		if down {
			return uint8(key), true
		}
	}
	return 0, false
}
