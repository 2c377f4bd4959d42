package keys

import (
	"fmt"
	"strings"
)

// KeyName maps keys to human-readable identifiers.
var KeyName = map[Key]string{
	// Letters
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	// Numbers
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	// Punctuation
	KeyMinus:          "Minus",
	KeyEqual:          "Equal",
	KeyLeftBrace:      "LeftBrace",
	KeyRightBrace:     "RightBrace",
	KeySemicolon:      "Semicolon",
	KeyApostrophe:     "Apostrophe",
	KeyGrave:          "Grave",
	KeyHash:           "Hash",
	KeyComma:          "Comma",
	KeyPeriod:         "Period",
	KeySlash:          "Slash",
	KeyNonUSBackslash: "NonUSBackslash",

	// Special keys
	KeyEscape:    "Escape",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyEnter:     "Enter",
	KeySpace:     "Space",
	KeyMenu:      "Menu",

	// Modifiers and locks
	KeyLeftCtrl:   "LeftCtrl",
	KeyRightCtrl:  "RightCtrl",
	KeyLeftShift:  "LeftShift",
	KeyRightShift: "RightShift",
	KeyAlt:        "Alt",
	KeyAltGr:      "AltGr",
	KeyLeftSuper:  "LeftSuper",
	KeyRightSuper: "RightSuper",
	KeyCapsLock:   "CapsLock",
	KeyNumLock:    "NumLock",
	KeyScrollLock: "ScrollLock",

	// Function keys
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",

	// Control keys
	KeyPrintScreen: "PrintScreen",
	KeyPause:       "Pause",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyPageUp:      "PageUp",
	KeyDelete:      "Delete",
	KeyEnd:         "End",
	KeyPageDown:    "PageDown",

	// Arrow keys
	KeyRight: "Right",
	KeyLeft:  "Left",
	KeyDown:  "Down",
	KeyUp:    "Up",

	// Numpad
	KeyKpSlash:    "Kp/",
	KeyKpAsterisk: "Kp*",
	KeyKpMinus:    "Kp-",
	KeyKpPlus:     "Kp+",
	KeyKpEnter:    "KpEnter",
	KeyKp1:        "Kp1",
	KeyKp2:        "Kp2",
	KeyKp3:        "Kp3",
	KeyKp4:        "Kp4",
	KeyKp5:        "Kp5",
	KeyKp6:        "Kp6",
	KeyKp7:        "Kp7",
	KeyKp8:        "Kp8",
	KeyKp9:        "Kp9",
	KeyKp0:        "Kp0",
	KeyKpDot:      "Kp.",
}

var byName = func() map[string]Key {
	m := make(map[string]Key, len(KeyName))
	for k, name := range KeyName {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// Name returns the identifier of k. It is meant for debugging and
// configuration files; it does not take the layout into account.
func (k Key) Name() string {
	if name, ok := KeyName[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02x)", uint8(k))
}

func (k Key) String() string { return k.Name() }

// Known reports whether k is part of the enumeration.
func (k Key) Known() bool {
	_, ok := KeyName[k]
	return ok
}

// Parse resolves a key identifier as returned by Name. Matching is case-insensitive.
func Parse(name string) (Key, bool) {
	k, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// All returns every known key in ascending code order.
func All() []Key {
	out := make([]Key, 0, len(KeyName))
	for k := 0; k < 256; k++ {
		if Key(k).Known() {
			out = append(out, Key(k))
		}
	}
	return out
}
