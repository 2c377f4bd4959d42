package keyboard

import (
	"strings"

	"github.com/Alia5/scankey/keys"
)

// LockKeys is the set of active lock keys.
type LockKeys uint8

const (
	CapsLock LockKeys = 1 << iota
	NumLock
	ScrollLock
)

// HID LED output report bits.
const (
	LEDNumLock    = 0x01
	LEDCapsLock   = 0x02
	LEDScrollLock = 0x04
)

// CapsLock reports whether Caps Lock is in the set.
func (l LockKeys) CapsLock() bool { return l&CapsLock != 0 }

// NumLock reports whether Num Lock is in the set.
func (l LockKeys) NumLock() bool { return l&NumLock != 0 }

// ScrollLock reports whether Scroll Lock is in the set.
func (l LockKeys) ScrollLock() bool { return l&ScrollLock != 0 }

// Toggle flips the given lock keys.
func (l LockKeys) Toggle(other LockKeys) LockKeys { return l ^ other }

// LEDs returns the HID keyboard LED bitmask for l, suitable for an output
// report sent back to the device.
func (l LockKeys) LEDs() uint8 {
	var b uint8
	if l.NumLock() {
		b |= LEDNumLock
	}
	if l.CapsLock() {
		b |= LEDCapsLock
	}
	if l.ScrollLock() {
		b |= LEDScrollLock
	}
	return b
}

// LockKeysFromLEDs decodes a HID LED bitmask. Bits other than the three lock
// LEDs are ignored.
func LockKeysFromLEDs(b uint8) LockKeys {
	var l LockKeys
	if b&LEDNumLock != 0 {
		l |= NumLock
	}
	if b&LEDCapsLock != 0 {
		l |= CapsLock
	}
	if b&LEDScrollLock != 0 {
		l |= ScrollLock
	}
	return l
}

func (l LockKeys) String() string {
	if l == 0 {
		return "None"
	}
	var parts []string
	if l.CapsLock() {
		parts = append(parts, "CapsLock")
	}
	if l.NumLock() {
		parts = append(parts, "NumLock")
	}
	if l.ScrollLock() {
		parts = append(parts, "ScrollLock")
	}
	return strings.Join(parts, "+")
}

func lockFor(k keys.Key) (LockKeys, bool) {
	switch k {
	case keys.KeyCapsLock:
		return CapsLock, true
	case keys.KeyNumLock:
		return NumLock, true
	case keys.KeyScrollLock:
		return ScrollLock, true
	default:
		return 0, false
	}
}
