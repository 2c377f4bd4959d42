package keys

// KeyType groups keys by which modifiers can change their level.
type KeyType uint8

const (
	// Alphabetic keys are shifted by Shift or Caps Lock; the two cancel out.
	Alphabetic KeyType = iota + 1
	// NumeralsAndPunctuation keys are shifted by Shift only.
	NumeralsAndPunctuation
	// Numpad covers the digit and '.' keys of the keypad. Num Lock selects
	// between digit entry and navigation.
	Numpad
	// Control keys never produce symbols: Enter, Escape, function keys,
	// modifiers, lock keys and navigation.
	Control
)

func (t KeyType) String() string {
	switch t {
	case Alphabetic:
		return "Alphabetic"
	case NumeralsAndPunctuation:
		return "NumeralsAndPunctuation"
	case Numpad:
		return "Numpad"
	case Control:
		return "Control"
	default:
		return "Unclassified"
	}
}

type class uint8

const (
	classNone class = iota
	classAlphabetic
	classNumeric
	classPunctuation
	classNumpad
	classControl
)

var classes = func() [256]class {
	var c [256]class
	set := func(cl class, lo, hi Key) {
		for k := int(lo); k <= int(hi); k++ {
			c[k] = cl
		}
	}

	set(classAlphabetic, KeyQ, KeyP)
	set(classAlphabetic, KeyA, KeyL)
	set(classAlphabetic, KeyZ, KeyM)

	set(classNumeric, Key1, Key0)

	for _, k := range []Key{
		KeyMinus, KeyEqual, KeyLeftBrace, KeyRightBrace, KeySemicolon, KeyApostrophe,
		KeyGrave, KeyHash, KeyComma, KeyPeriod, KeySlash, KeyKpAsterisk,
		KeyNonUSBackslash, KeyKpSlash,
	} {
		c[k] = classPunctuation
	}

	set(classNumpad, KeyKp7, KeyKp9)
	set(classNumpad, KeyKp4, KeyKp6)
	set(classNumpad, KeyKp1, KeyKpDot)

	for _, k := range []Key{
		KeyEscape, KeyBackspace, KeyTab, KeyEnter, KeyLeftCtrl, KeyLeftShift,
		KeyRightShift, KeyKpMinus, KeyKpPlus, KeyF11, KeyF12, KeyKpEnter,
		KeyRightCtrl, KeyPrintScreen, KeyAltGr, KeyPause, KeyLeftSuper,
		KeyRightSuper, KeyMenu,
	} {
		c[k] = classControl
	}
	set(classControl, KeyAlt, KeyScrollLock)
	set(classControl, KeyHome, KeyDelete)

	return c
}()

// Type returns the classification of k. ok is false for keys outside the
// classification table.
func (k Key) Type() (t KeyType, ok bool) {
	switch classes[k] {
	case classAlphabetic:
		return Alphabetic, true
	case classNumeric, classPunctuation:
		return NumeralsAndPunctuation, true
	case classNumpad:
		return Numpad, true
	case classControl:
		return Control, true
	default:
		return 0, false
	}
}

// IsAlphabetic reports whether k represents a letter.
func (k Key) IsAlphabetic() bool { return classes[k] == classAlphabetic }

// IsNumeric reports whether k is one of the top-row digits.
// Keypad digits are not included.
func (k Key) IsNumeric() bool { return classes[k] == classNumeric }

// IsPunctuation reports whether k represents a punctuation character.
func (k Key) IsPunctuation() bool { return classes[k] == classPunctuation }

// IsNumpad reports whether k is a keypad digit or the keypad '.' key.
func (k Key) IsNumpad() bool { return classes[k] == classNumpad }

// IsControl reports whether k is a control key such as Enter, Caps Lock or Page Up.
func (k Key) IsControl() bool { return classes[k] == classControl }
