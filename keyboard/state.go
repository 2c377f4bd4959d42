// Package keyboard implements the keyboard state machine: it tracks which
// physical keys are held and which lock keys are active, and turns every key
// transition into an Event carrying the resolved Symbol or Command.
//
// A State is not safe for concurrent use. Each physical keyboard needs its own
// State, and a host delivering transitions from several goroutines must
// serialize calls itself.
package keyboard

import (
	"github.com/Alia5/scankey/keys"
)

// Layout supplies symbols for key positions. *layout.Layout implements it.
type Layout interface {
	HasAltGrKey() bool
	Lookup(group, level uint8, k keys.Key) (rune, bool)
}

// State is the mutable keyboard state of one device.
type State struct {
	pressed         [32]uint8 // 256 bits indexed by key code
	lockKeys        LockKeys
	layout          Layout
	lockKeysEnabled bool
}

// Option configures a State.
type Option func(*State)

// WithLockKeysDisabled stops lock keys from toggling. They still produce
// Command actions, so they can be bound to something else (e.g. in a game).
func WithLockKeysDisabled() Option {
	return func(s *State) { s.lockKeysEnabled = false }
}

// WithLockKeys sets the initial lock key state.
func WithLockKeys(l LockKeys) Option {
	return func(s *State) { s.lockKeys = l }
}

// New returns a State using layout l with no keys held and lock keys enabled.
// l must not be nil.
func New(l Layout, opts ...Option) *State {
	s := &State{
		layout:          l,
		lockKeysEnabled: true,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Layout returns the active layout.
func (s *State) Layout() Layout { return s.layout }

// SetLayout replaces the active layout. Held keys and lock state are kept.
func (s *State) SetLayout(l Layout) { s.layout = l }

// LockKeysEnabled reports whether lock keys toggle when pressed.
func (s *State) LockKeysEnabled() bool { return s.lockKeysEnabled }

// SetLockKeysEnabled enables or disables lock key toggling.
func (s *State) SetLockKeysEnabled(enabled bool) { s.lockKeysEnabled = enabled }

// KeyPressed reports whether k is physically held.
func (s *State) KeyPressed(k keys.Key) bool {
	return s.pressed[k/8]&(1<<(k%8)) != 0
}

func (s *State) setPressed(k keys.Key, down bool) {
	if down {
		s.pressed[k/8] |= 1 << (k % 8)
	} else {
		s.pressed[k/8] &^= 1 << (k % 8)
	}
}

// PressedKeys returns the held keys in ascending code order.
func (s *State) PressedKeys() []keys.Key {
	var out []keys.Key
	for i := 0; i < 256; i++ {
		if s.KeyPressed(keys.Key(i)) {
			out = append(out, keys.Key(i))
		}
	}
	return out
}

// Reset releases every key without producing events. Lock state is kept.
func (s *State) Reset() { s.pressed = [32]uint8{} }

// Shift reports whether either Shift key is held.
func (s *State) Shift() bool {
	return s.KeyPressed(keys.KeyLeftShift) || s.KeyPressed(keys.KeyRightShift)
}

// Ctrl reports whether either Ctrl key is held.
func (s *State) Ctrl() bool {
	return s.KeyPressed(keys.KeyLeftCtrl) || s.KeyPressed(keys.KeyRightCtrl)
}

// Alt reports whether Alt is held. On layouts without an AltGr key the right
// Alt key counts as Alt as well.
func (s *State) Alt() bool {
	return s.KeyPressed(keys.KeyAlt) || (!s.layout.HasAltGrKey() && s.KeyPressed(keys.KeyAltGr))
}

// AltGr reports whether AltGr is held on a layout that has one.
func (s *State) AltGr() bool {
	return s.layout.HasAltGrKey() && s.KeyPressed(keys.KeyAltGr)
}

// Super reports whether either Super (Windows/Command) key is held.
func (s *State) Super() bool {
	return s.KeyPressed(keys.KeyLeftSuper) || s.KeyPressed(keys.KeyRightSuper)
}

// Modifiers returns the logical modifiers derived from the held keys.
func (s *State) Modifiers() Modifiers {
	var m Modifiers
	if s.Shift() {
		m |= ModShift
	}
	if s.Ctrl() {
		m |= ModCtrl
	}
	if s.Alt() {
		m |= ModAlt
	}
	if s.AltGr() {
		m |= ModAltGr
	}
	if s.Super() {
		m |= ModSuper
	}
	return m
}

// LockKeys returns the active lock keys.
func (s *State) LockKeys() LockKeys { return s.lockKeys }

// SetLockKeys overrides the lock state, e.g. to match LEDs set by the host.
func (s *State) SetLockKeys(l LockKeys) { s.lockKeys = l }

// CapsLock reports whether Caps Lock is active.
func (s *State) CapsLock() bool { return s.lockKeys.CapsLock() }

// NumLock reports whether Num Lock is active.
func (s *State) NumLock() bool { return s.lockKeys.NumLock() }

// ScrollLock reports whether Scroll Lock is active.
func (s *State) ScrollLock() bool { return s.lockKeys.ScrollLock() }

// Group returns the selected symbol group. Only AltGr switches groups.
func (s *State) Group() uint8 {
	if s.AltGr() {
		return 1
	}
	return 0
}

// Level returns the level selected for keys of type t:
//   - Alphabetic keys are shifted by Shift or Caps Lock; both together cancel out.
//   - NumeralsAndPunctuation keys ignore Caps Lock.
//   - Numpad keys are on level 1 only while Num Lock is on.
//   - Control keys are always on level 0.
func (s *State) Level(t keys.KeyType) uint8 {
	var shifted bool
	switch t {
	case keys.Alphabetic:
		shifted = s.Shift() != s.CapsLock()
	case keys.NumeralsAndPunctuation:
		shifted = s.Shift()
	case keys.Numpad:
		shifted = !s.NumLock()
	}
	if shifted {
		return 1
	}
	return 0
}

// numpadNavigation is what keypad keys do while Num Lock is off.
// KeyKp5 has no navigation function.
var numpadNavigation = map[keys.Key]keys.Key{
	keys.KeyKp7:   keys.KeyHome,
	keys.KeyKp8:   keys.KeyUp,
	keys.KeyKp9:   keys.KeyPageUp,
	keys.KeyKp4:   keys.KeyLeft,
	keys.KeyKp6:   keys.KeyRight,
	keys.KeyKp1:   keys.KeyEnd,
	keys.KeyKp2:   keys.KeyDown,
	keys.KeyKp3:   keys.KeyPageDown,
	keys.KeyKp0:   keys.KeyInsert,
	keys.KeyKpDot: keys.KeyDelete,
}

// Actuate records a press or release of k and returns the resulting event.
// It must be called once per physical transition, in order.
func (s *State) Actuate(k keys.Key, pressed bool) Event {
	ev := Event{Key: k, Pressed: pressed}

	if s.KeyPressed(k) == pressed {
		ev.Repeat = true
	} else {
		s.setPressed(k, pressed)
	}

	if !pressed {
		return ev
	}

	t, ok := k.Type()
	if !ok {
		return ev
	}

	switch t {
	case keys.Alphabetic, keys.NumeralsAndPunctuation:
		if s.Ctrl() || s.Alt() || s.Super() {
			ev.Action = Command{Modifiers: s.Modifiers(), Key: k}
		} else if r, ok := s.layout.Lookup(s.Group(), s.Level(t), k); ok {
			ev.Action = Symbol(r)
		}

	case keys.Control:
		if lock, ok := lockFor(k); ok && s.lockKeysEnabled {
			s.lockKeys = s.lockKeys.Toggle(lock)
		}
		ev.Action = Command{Modifiers: s.Modifiers(), Key: k}

	case keys.Numpad:
		if s.NumLock() {
			if r, ok := s.layout.Lookup(s.Group(), 1, k); ok {
				ev.Action = Symbol(r)
			}
		} else if nav, ok := numpadNavigation[k]; ok {
			ev.Action = Command{Modifiers: s.Modifiers(), Key: nav}
		}
	}

	return ev
}
