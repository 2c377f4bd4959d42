// Package keys enumerates the physical key positions understood by scankey.
//
// A Key identifies a position on the keyboard, not a symbol. For keys that
// are reachable without the 0xE0 prefix the code equals their scancode set 1
// make code; extended keys occupy 96..127.
package keys

// Key is an opaque physical key identifier.
type Key uint8

// Keys reachable without the extended prefix.
const (
	KeyEscape         Key = 1
	Key1              Key = 2
	Key2              Key = 3
	Key3              Key = 4
	Key4              Key = 5
	Key5              Key = 6
	Key6              Key = 7
	Key7              Key = 8
	Key8              Key = 9
	Key9              Key = 10
	Key0              Key = 11
	KeyMinus          Key = 12 // - and _
	KeyEqual          Key = 13 // = and +
	KeyBackspace      Key = 14
	KeyTab            Key = 15
	KeyQ              Key = 16
	KeyW              Key = 17
	KeyE              Key = 18
	KeyR              Key = 19
	KeyT              Key = 20
	KeyY              Key = 21
	KeyU              Key = 22
	KeyI              Key = 23
	KeyO              Key = 24
	KeyP              Key = 25
	KeyLeftBrace      Key = 26 // [ and {
	KeyRightBrace     Key = 27 // ] and }
	KeyEnter          Key = 28
	KeyLeftCtrl       Key = 29
	KeyA              Key = 30
	KeyS              Key = 31
	KeyD              Key = 32
	KeyF              Key = 33
	KeyG              Key = 34
	KeyH              Key = 35
	KeyJ              Key = 36
	KeyK              Key = 37
	KeyL              Key = 38
	KeySemicolon      Key = 39 // ; and :
	KeyApostrophe     Key = 40 // ' and "
	KeyGrave          Key = 41 // ` and ~
	KeyLeftShift      Key = 42
	KeyHash           Key = 43 // \ on ANSI boards, # on ISO boards
	KeyZ              Key = 44
	KeyX              Key = 45
	KeyC              Key = 46
	KeyV              Key = 47
	KeyB              Key = 48
	KeyN              Key = 49
	KeyM              Key = 50
	KeyComma          Key = 51 // , and <
	KeyPeriod         Key = 52 // . and >
	KeySlash          Key = 53 // / and ?
	KeyRightShift     Key = 54
	KeyKpAsterisk     Key = 55
	KeyAlt            Key = 56
	KeySpace          Key = 57
	KeyCapsLock       Key = 58
	KeyF1             Key = 59
	KeyF2             Key = 60
	KeyF3             Key = 61
	KeyF4             Key = 62
	KeyF5             Key = 63
	KeyF6             Key = 64
	KeyF7             Key = 65
	KeyF8             Key = 66
	KeyF9             Key = 67
	KeyF10            Key = 68
	KeyNumLock        Key = 69
	KeyScrollLock     Key = 70
	KeyKp7            Key = 71 // Keypad 7 and Home
	KeyKp8            Key = 72 // Keypad 8 and Up
	KeyKp9            Key = 73 // Keypad 9 and PageUp
	KeyKpMinus        Key = 74
	KeyKp4            Key = 75 // Keypad 4 and Left
	KeyKp5            Key = 76
	KeyKp6            Key = 77 // Keypad 6 and Right
	KeyKpPlus         Key = 78
	KeyKp1            Key = 79 // Keypad 1 and End
	KeyKp2            Key = 80 // Keypad 2 and Down
	KeyKp3            Key = 81 // Keypad 3 and PageDown
	KeyKp0            Key = 82 // Keypad 0 and Insert
	KeyKpDot          Key = 83 // Keypad . and Delete
	KeyNonUSBackslash Key = 86 // ISO extra key left of Z
	KeyF11            Key = 87
	KeyF12            Key = 88
)

// Extended keys (0xE0 prefixed on the wire).
const (
	KeyKpEnter     Key = 96
	KeyRightCtrl   Key = 97
	KeyKpSlash     Key = 98
	KeyPrintScreen Key = 99
	KeyAltGr       Key = 100 // right Alt
	KeyHome        Key = 102
	KeyUp          Key = 103
	KeyPageUp      Key = 104
	KeyLeft        Key = 105
	KeyRight       Key = 106
	KeyEnd         Key = 107
	KeyDown        Key = 108
	KeyPageDown    Key = 109
	KeyInsert      Key = 110
	KeyDelete      Key = 111
	KeyPause       Key = 119
	KeyLeftSuper   Key = 125 // Windows/Command key
	KeyRightSuper  Key = 126
	KeyMenu        Key = 127
)
