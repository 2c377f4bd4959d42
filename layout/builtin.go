package layout

import (
	"maps"

	"github.com/Alia5/scankey/keys"
)

// Symbols shared by the built-in QWERTY layouts.
var qwertyBase = map[keys.Key][2]rune{
	// Letters
	keys.KeyA: {'a', 'A'}, keys.KeyB: {'b', 'B'}, keys.KeyC: {'c', 'C'}, keys.KeyD: {'d', 'D'},
	keys.KeyE: {'e', 'E'}, keys.KeyF: {'f', 'F'}, keys.KeyG: {'g', 'G'}, keys.KeyH: {'h', 'H'},
	keys.KeyI: {'i', 'I'}, keys.KeyJ: {'j', 'J'}, keys.KeyK: {'k', 'K'}, keys.KeyL: {'l', 'L'},
	keys.KeyM: {'m', 'M'}, keys.KeyN: {'n', 'N'}, keys.KeyO: {'o', 'O'}, keys.KeyP: {'p', 'P'},
	keys.KeyQ: {'q', 'Q'}, keys.KeyR: {'r', 'R'}, keys.KeyS: {'s', 'S'}, keys.KeyT: {'t', 'T'},
	keys.KeyU: {'u', 'U'}, keys.KeyV: {'v', 'V'}, keys.KeyW: {'w', 'W'}, keys.KeyX: {'x', 'X'},
	keys.KeyY: {'y', 'Y'}, keys.KeyZ: {'z', 'Z'},

	// Number row
	keys.Key1: {'1', '!'}, keys.Key4: {'4', '$'}, keys.Key5: {'5', '%'},
	keys.Key6: {'6', '^'}, keys.Key7: {'7', '&'}, keys.Key8: {'8', '*'},
	keys.Key9: {'9', '('}, keys.Key0: {'0', ')'},

	// Punctuation
	keys.KeyMinus:      {'-', '_'},
	keys.KeyEqual:      {'=', '+'},
	keys.KeyLeftBrace:  {'[', '{'},
	keys.KeyRightBrace: {']', '}'},
	keys.KeySemicolon:  {';', ':'},
	keys.KeyComma:      {',', '<'},
	keys.KeyPeriod:     {'.', '>'},
	keys.KeySlash:      {'/', '?'},
	keys.KeyKpAsterisk: {'*', '*'},
	keys.KeyKpSlash:    {'/', '/'},

	// Keypad digits are only reachable on level 1 (Num Lock on).
	keys.KeyKp0: {0, '0'}, keys.KeyKp1: {0, '1'}, keys.KeyKp2: {0, '2'},
	keys.KeyKp3: {0, '3'}, keys.KeyKp4: {0, '4'}, keys.KeyKp5: {0, '5'},
	keys.KeyKp6: {0, '6'}, keys.KeyKp7: {0, '7'}, keys.KeyKp8: {0, '8'},
	keys.KeyKp9: {0, '9'}, keys.KeyKpDot: {0, '.'},
}

func with(base, overrides map[keys.Key][2]rune) map[keys.Key][2]rune {
	out := maps.Clone(base)
	maps.Copy(out, overrides)
	return out
}

// US is the ANSI United States layout. It has no AltGr key.
var US = NewBuilder("us", false).
	Group(0, with(qwertyBase, map[keys.Key][2]rune{
		keys.Key2:              {'2', '@'},
		keys.Key3:              {'3', '#'},
		keys.KeyApostrophe:     {'\'', '"'},
		keys.KeyGrave:          {'`', '~'},
		keys.KeyHash:           {'\\', '|'},
		keys.KeyNonUSBackslash: {'\\', '|'},
	})).
	Build()

// GB is the ISO United Kingdom layout with an AltGr key.
var GB = NewBuilder("gb", true).
	Group(0, with(qwertyBase, map[keys.Key][2]rune{
		keys.Key2:              {'2', '"'},
		keys.Key3:              {'3', '£'},
		keys.KeyApostrophe:     {'\'', '@'},
		keys.KeyGrave:          {'`', '¬'},
		keys.KeyHash:           {'#', '~'},
		keys.KeyNonUSBackslash: {'\\', '|'},
	})).
	Group(1, map[keys.Key][2]rune{
		keys.KeyGrave: {'|', '|'},
		keys.Key4:     {'€', 0},
		keys.KeyA:     {'á', 'Á'},
		keys.KeyE:     {'é', 'É'},
		keys.KeyI:     {'í', 'Í'},
		keys.KeyO:     {'ó', 'Ó'},
		keys.KeyU:     {'ú', 'Ú'},
	}).
	Build()

func init() {
	MustRegister(US)
	MustRegister(GB)
}
