package keyboard

import "strings"

// Modifiers is a set of logical modifier flags.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModAltGr
	ModSuper

	// ModNone is the empty set.
	ModNone Modifiers = 0
)

// Shift reports whether Shift is in the set.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// Ctrl reports whether Ctrl is in the set.
func (m Modifiers) Ctrl() bool { return m&ModCtrl != 0 }

// Alt reports whether Alt is in the set.
func (m Modifiers) Alt() bool { return m&ModAlt != 0 }

// AltGr reports whether AltGr is in the set.
func (m Modifiers) AltGr() bool { return m&ModAltGr != 0 }

// Super reports whether Super is in the set.
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Has reports whether all modifiers in other are set.
func (m Modifiers) Has(other Modifiers) bool { return m&other == other }

// String renders the set as "Ctrl+Alt", or "None" when empty.
func (m Modifiers) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	if m.Shift() {
		parts = append(parts, "Shift")
	}
	if m.Ctrl() {
		parts = append(parts, "Ctrl")
	}
	if m.Alt() {
		parts = append(parts, "Alt")
	}
	if m.AltGr() {
		parts = append(parts, "AltGr")
	}
	if m.Super() {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}
