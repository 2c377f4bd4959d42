// Package scancode decodes PC scancode set 1 byte streams into key transitions.
package scancode

import (
	"github.com/Alia5/scankey/keys"
)

const (
	// Extended is the prefix byte announcing that the next code belongs to the
	// extended table.
	Extended = 0xE0
	// Prefix1 starts a three-byte sequence (E1 1D 45 for Pause make,
	// E1 9D C5 for Pause break).
	Prefix1 = 0xE1
	// ReleaseBit is set on the break code of a key.
	ReleaseBit = 0x80
)

// Codes without the extended prefix. Index is the 7-bit make code; zero
// entries have no mapping.
var plain = [128]keys.Key{
	0x01: keys.KeyEscape,
	0x02: keys.Key1,
	0x03: keys.Key2,
	0x04: keys.Key3,
	0x05: keys.Key4,
	0x06: keys.Key5,
	0x07: keys.Key6,
	0x08: keys.Key7,
	0x09: keys.Key8,
	0x0A: keys.Key9,
	0x0B: keys.Key0,
	0x0C: keys.KeyMinus,
	0x0D: keys.KeyEqual,
	0x0E: keys.KeyBackspace,
	0x0F: keys.KeyTab,
	0x10: keys.KeyQ,
	0x11: keys.KeyW,
	0x12: keys.KeyE,
	0x13: keys.KeyR,
	0x14: keys.KeyT,
	0x15: keys.KeyY,
	0x16: keys.KeyU,
	0x17: keys.KeyI,
	0x18: keys.KeyO,
	0x19: keys.KeyP,
	0x1A: keys.KeyLeftBrace,
	0x1B: keys.KeyRightBrace,
	0x1C: keys.KeyEnter,
	0x1D: keys.KeyLeftCtrl,
	0x1E: keys.KeyA,
	0x1F: keys.KeyS,
	0x20: keys.KeyD,
	0x21: keys.KeyF,
	0x22: keys.KeyG,
	0x23: keys.KeyH,
	0x24: keys.KeyJ,
	0x25: keys.KeyK,
	0x26: keys.KeyL,
	0x27: keys.KeySemicolon,
	0x28: keys.KeyApostrophe,
	0x29: keys.KeyGrave,
	0x2A: keys.KeyLeftShift,
	0x2B: keys.KeyHash,
	0x2C: keys.KeyZ,
	0x2D: keys.KeyX,
	0x2E: keys.KeyC,
	0x2F: keys.KeyV,
	0x30: keys.KeyB,
	0x31: keys.KeyN,
	0x32: keys.KeyM,
	0x33: keys.KeyComma,
	0x34: keys.KeyPeriod,
	0x35: keys.KeySlash,
	0x36: keys.KeyRightShift,
	0x37: keys.KeyKpAsterisk,
	0x38: keys.KeyAlt,
	0x39: keys.KeySpace,
	0x3A: keys.KeyCapsLock,
	0x3B: keys.KeyF1,
	0x3C: keys.KeyF2,
	0x3D: keys.KeyF3,
	0x3E: keys.KeyF4,
	0x3F: keys.KeyF5,
	0x40: keys.KeyF6,
	0x41: keys.KeyF7,
	0x42: keys.KeyF8,
	0x43: keys.KeyF9,
	0x44: keys.KeyF10,
	0x45: keys.KeyNumLock,
	0x46: keys.KeyScrollLock,
	0x47: keys.KeyKp7,
	0x48: keys.KeyKp8,
	0x49: keys.KeyKp9,
	0x4A: keys.KeyKpMinus,
	0x4B: keys.KeyKp4,
	0x4C: keys.KeyKp5,
	0x4D: keys.KeyKp6,
	0x4E: keys.KeyKpPlus,
	0x4F: keys.KeyKp1,
	0x50: keys.KeyKp2,
	0x51: keys.KeyKp3,
	0x52: keys.KeyKp0,
	0x53: keys.KeyKpDot,
	0x56: keys.KeyNonUSBackslash,
	0x57: keys.KeyF11,
	0x58: keys.KeyF12,
}

// Codes following the extended prefix.
var extended = [128]keys.Key{
	0x1C: keys.KeyKpEnter,
	0x1D: keys.KeyRightCtrl,
	0x35: keys.KeyKpSlash,
	0x37: keys.KeyPrintScreen,
	0x38: keys.KeyAltGr,
	0x47: keys.KeyHome,
	0x48: keys.KeyUp,
	0x49: keys.KeyPageUp,
	0x4B: keys.KeyLeft,
	0x4D: keys.KeyRight,
	0x4F: keys.KeyEnd,
	0x50: keys.KeyDown,
	0x51: keys.KeyPageDown,
	0x52: keys.KeyInsert,
	0x53: keys.KeyDelete,
	0x5B: keys.KeyLeftSuper,
	0x5C: keys.KeyRightSuper,
	0x5D: keys.KeyMenu,
}

// Decode maps a 7-bit make code to a key. escaped selects the extended table.
// ok is false when the combination has no mapping.
func Decode(escaped bool, code uint8) (k keys.Key, ok bool) {
	if code >= 0x80 {
		return 0, false
	}
	if escaped {
		k = extended[code]
	} else {
		k = plain[code]
	}
	return k, k != 0
}

type wireCode struct {
	escaped bool
	code    uint8
}

var reverse = func() map[keys.Key]wireCode {
	m := make(map[keys.Key]wireCode)
	for code, k := range plain {
		if k != 0 {
			m[k] = wireCode{code: uint8(code)}
		}
	}
	for code, k := range extended {
		if k != 0 {
			m[k] = wireCode{escaped: true, code: uint8(code)}
		}
	}
	return m
}()

// Encode returns the bytes a keyboard sends for a transition of k: the
// optional extended prefix followed by the make or break code.
// ok is false for keys that have no scancode (e.g. Pause).
func Encode(k keys.Key, released bool) (b []byte, ok bool) {
	wc, ok := reverse[k]
	if !ok {
		return nil, false
	}
	code := wc.code
	if released {
		code |= ReleaseBit
	}
	if wc.escaped {
		return []byte{Extended, code}, true
	}
	return []byte{code}, true
}
