package keyboard_test

import (
	"testing"

	"github.com/Alia5/scankey/keyboard"
	"github.com/Alia5/scankey/keys"
	"github.com/Alia5/scankey/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tap presses and releases k and returns the press event.
func tap(s *keyboard.State, k keys.Key) keyboard.Event {
	ev := s.Actuate(k, true)
	s.Actuate(k, false)
	return ev
}

func TestSimple(t *testing.T) {
	s := keyboard.New(layout.GB)

	ev := s.Actuate(keys.KeyA, true)
	assert.Equal(t, keyboard.Event{Key: keys.KeyA, Pressed: true, Action: keyboard.Symbol('a')}, ev)

	ev = s.Actuate(keys.KeyA, false)
	assert.Equal(t, keyboard.Event{Key: keys.KeyA}, ev)

	assert.Equal(t, keyboard.Symbol('1'), tap(s, keys.Key1).Action)
}

func TestShiftModifier(t *testing.T) {
	s := keyboard.New(layout.GB)

	s.Actuate(keys.KeyLeftShift, true)
	assert.Equal(t, keyboard.Symbol('A'), tap(s, keys.KeyA).Action)
	assert.Equal(t, keyboard.Symbol('!'), tap(s, keys.Key1).Action)
	assert.Equal(t, keyboard.Symbol('£'), tap(s, keys.Key3).Action)
	s.Actuate(keys.KeyLeftShift, false)

	assert.Equal(t, keyboard.Symbol('a'), tap(s, keys.KeyA).Action)

	s.Actuate(keys.KeyRightShift, true)
	assert.Equal(t, keyboard.Symbol('Z'), tap(s, keys.KeyZ).Action)
}

func TestAltGrModifier(t *testing.T) {
	s := keyboard.New(layout.GB)

	s.Actuate(keys.KeyAltGr, true)
	assert.True(t, s.AltGr())
	assert.False(t, s.Alt())
	assert.Equal(t, uint8(1), s.Group())

	assert.Equal(t, keyboard.Symbol('|'), tap(s, keys.KeyGrave).Action)
	assert.Equal(t, keyboard.Symbol('€'), tap(s, keys.Key4).Action)
	assert.Equal(t, keyboard.Symbol('é'), tap(s, keys.KeyE).Action)

	// No symbol in group 1 for this position.
	assert.Nil(t, tap(s, keys.KeyZ).Action)
}

func TestAltGrWithoutAltGrKey(t *testing.T) {
	s := keyboard.New(layout.US)

	s.Actuate(keys.KeyAltGr, true)
	assert.False(t, s.AltGr())
	assert.True(t, s.Alt())
	assert.Equal(t, uint8(0), s.Group())
	assert.Equal(t, keyboard.ModAlt, s.Modifiers())

	assert.Equal(t, keyboard.Command{Modifiers: keyboard.ModAlt, Key: keys.KeyTab}, tap(s, keys.KeyTab).Action)
	assert.Equal(t, keyboard.Command{Modifiers: keyboard.ModAlt, Key: keys.KeyGrave}, tap(s, keys.KeyGrave).Action)
}

func TestCapsLock(t *testing.T) {
	s := keyboard.New(layout.GB)
	assert.False(t, s.CapsLock())

	ev := tap(s, keys.KeyCapsLock)
	assert.Equal(t, keyboard.Command{Modifiers: keyboard.ModNone, Key: keys.KeyCapsLock}, ev.Action)
	assert.True(t, s.CapsLock())

	assert.Equal(t, keyboard.Symbol('A'), tap(s, keys.KeyA).Action)
	// Numerals and punctuation are unaffected by caps lock
	assert.Equal(t, keyboard.Symbol('1'), tap(s, keys.Key1).Action)

	// Shift negates caps lock
	s.Actuate(keys.KeyLeftShift, true)
	assert.Equal(t, keyboard.Symbol('a'), tap(s, keys.KeyA).Action)
	assert.Equal(t, keyboard.Symbol('!'), tap(s, keys.Key1).Action)
	s.Actuate(keys.KeyLeftShift, false)

	tap(s, keys.KeyCapsLock)
	assert.False(t, s.CapsLock())
	assert.Equal(t, keyboard.Symbol('a'), tap(s, keys.KeyA).Action)
}

func TestNumLock(t *testing.T) {
	s := keyboard.New(layout.GB)
	assert.False(t, s.NumLock())

	assert.Equal(t, keyboard.Command{Modifiers: keyboard.ModNone, Key: keys.KeyHome}, tap(s, keys.KeyKp7).Action)

	tap(s, keys.KeyNumLock)
	assert.True(t, s.NumLock())
	assert.Equal(t, keyboard.Symbol('7'), tap(s, keys.KeyKp7).Action)
	assert.Equal(t, keyboard.Symbol('.'), tap(s, keys.KeyKpDot).Action)

	// Shift does not affect keypad digits.
	s.Actuate(keys.KeyRightShift, true)
	assert.Equal(t, keyboard.Symbol('5'), tap(s, keys.KeyKp5).Action)
	s.Actuate(keys.KeyRightShift, false)

	tap(s, keys.KeyNumLock)
	assert.False(t, s.NumLock())
}

func TestNumpadNavigation(t *testing.T) {
	tests := []struct {
		key  keys.Key
		want keys.Key
	}{
		{keys.KeyKp7, keys.KeyHome},
		{keys.KeyKp8, keys.KeyUp},
		{keys.KeyKp9, keys.KeyPageUp},
		{keys.KeyKp4, keys.KeyLeft},
		{keys.KeyKp6, keys.KeyRight},
		{keys.KeyKp1, keys.KeyEnd},
		{keys.KeyKp2, keys.KeyDown},
		{keys.KeyKp3, keys.KeyPageDown},
		{keys.KeyKp0, keys.KeyInsert},
		{keys.KeyKpDot, keys.KeyDelete},
	}

	s := keyboard.New(layout.US)
	for _, tt := range tests {
		t.Run(tt.key.Name(), func(t *testing.T) {
			assert.Equal(t, keyboard.Command{Modifiers: keyboard.ModNone, Key: tt.want}, tap(s, tt.key).Action)
		})
	}

	ev := tap(s, keys.KeyKp5)
	assert.Nil(t, ev.Action)

	s.Actuate(keys.KeyLeftShift, true)
	assert.Equal(t, keyboard.Command{Modifiers: keyboard.ModShift, Key: keys.KeyEnd}, tap(s, keys.KeyKp1).Action)
}

func TestScrollLock(t *testing.T) {
	s := keyboard.New(layout.GB)

	tap(s, keys.KeyScrollLock)
	assert.True(t, s.ScrollLock())
	tap(s, keys.KeyScrollLock)
	assert.False(t, s.ScrollLock())
}

func TestDisableLockKeys(t *testing.T) {
	s := keyboard.New(layout.GB, keyboard.WithLockKeysDisabled())
	assert.False(t, s.LockKeysEnabled())

	for _, k := range []keys.Key{keys.KeyCapsLock, keys.KeyNumLock, keys.KeyScrollLock} {
		for i := 0; i < 3; i++ {
			ev := tap(s, k)
			assert.Equal(t, keyboard.Command{Modifiers: keyboard.ModNone, Key: k}, ev.Action)
		}
	}
	assert.False(t, s.CapsLock())
	assert.False(t, s.NumLock())
	assert.False(t, s.ScrollLock())

	s.SetLockKeysEnabled(true)
	tap(s, keys.KeyCapsLock)
	assert.True(t, s.CapsLock())
}

func TestLockTogglesOnPressOnly(t *testing.T) {
	s := keyboard.New(layout.GB)

	s.Actuate(keys.KeyCapsLock, true)
	assert.True(t, s.CapsLock())
	s.Actuate(keys.KeyCapsLock, false)
	assert.True(t, s.CapsLock())

	for i := 0; i < 4; i++ {
		tap(s, keys.KeyNumLock)
	}
	assert.False(t, s.NumLock())
	assert.Equal(t, keyboard.CapsLock, s.LockKeys())
}

func TestRepeat(t *testing.T) {
	s := keyboard.New(layout.GB)

	ev := s.Actuate(keys.KeyA, true)
	assert.False(t, ev.Repeat)

	ev = s.Actuate(keys.KeyA, true)
	assert.True(t, ev.Repeat)
	assert.Equal(t, keyboard.Symbol('a'), ev.Action)
	assert.Equal(t, []keys.Key{keys.KeyA}, s.PressedKeys())

	ev = s.Actuate(keys.KeyA, false)
	assert.False(t, ev.Repeat)
	assert.False(t, s.KeyPressed(keys.KeyA))

	ev = s.Actuate(keys.KeyA, false)
	assert.True(t, ev.Repeat)
	assert.Nil(t, ev.Action)
	assert.Empty(t, s.PressedKeys())
}

func TestCommandChords(t *testing.T) {
	tests := []struct {
		name string
		mods []keys.Key
		key  keys.Key
		want keyboard.Action
	}{
		{
			name: "ctrl+c",
			mods: []keys.Key{keys.KeyLeftCtrl},
			key:  keys.KeyC,
			want: keyboard.Command{Modifiers: keyboard.ModCtrl, Key: keys.KeyC},
		},
		{
			name: "ctrl+shift+p",
			mods: []keys.Key{keys.KeyRightCtrl, keys.KeyLeftShift},
			key:  keys.KeyP,
			want: keyboard.Command{Modifiers: keyboard.ModCtrl | keyboard.ModShift, Key: keys.KeyP},
		},
		{
			name: "alt+1",
			mods: []keys.Key{keys.KeyAlt},
			key:  keys.Key1,
			want: keyboard.Command{Modifiers: keyboard.ModAlt, Key: keys.Key1},
		},
		{
			name: "super+l",
			mods: []keys.Key{keys.KeyLeftSuper},
			key:  keys.KeyL,
			want: keyboard.Command{Modifiers: keyboard.ModSuper, Key: keys.KeyL},
		},
		{
			name: "ctrl+altgr+delete",
			mods: []keys.Key{keys.KeyLeftCtrl, keys.KeyAltGr},
			key:  keys.KeyDelete,
			want: keyboard.Command{Modifiers: keyboard.ModCtrl | keyboard.ModAltGr, Key: keys.KeyDelete},
		},
		{
			name: "ctrl+altgr+e",
			mods: []keys.Key{keys.KeyLeftCtrl, keys.KeyAltGr},
			key:  keys.KeyE,
			want: keyboard.Command{Modifiers: keyboard.ModCtrl | keyboard.ModAltGr, Key: keys.KeyE},
		},
		{
			name: "enter",
			key:  keys.KeyEnter,
			want: keyboard.Command{Modifiers: keyboard.ModNone, Key: keys.KeyEnter},
		},
		{
			name: "space",
			key:  keys.KeySpace,
			want: keyboard.Command{Modifiers: keyboard.ModNone, Key: keys.KeySpace},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := keyboard.New(layout.GB)
			for _, m := range tt.mods {
				s.Actuate(m, true)
			}
			assert.Equal(t, tt.want, s.Actuate(tt.key, true).Action)
		})
	}
}

func TestModifierPressProducesCommand(t *testing.T) {
	s := keyboard.New(layout.GB)

	ev := s.Actuate(keys.KeyLeftShift, true)
	assert.Equal(t, keyboard.Command{Modifiers: keyboard.ModShift, Key: keys.KeyLeftShift}, ev.Action)

	ev = s.Actuate(keys.KeyLeftShift, false)
	assert.Nil(t, ev.Action)
}

func TestUnclassifiedKey(t *testing.T) {
	s := keyboard.New(layout.GB)
	k := keys.Key(0x65)

	ev := s.Actuate(k, true)
	assert.Nil(t, ev.Action)
	assert.False(t, ev.Repeat)
	assert.True(t, s.KeyPressed(k))

	ev = s.Actuate(k, true)
	assert.True(t, ev.Repeat)
}

func TestLevelCancellationLaw(t *testing.T) {
	for _, caps := range []bool{false, true} {
		for _, shift := range []bool{false, true} {
			var locks keyboard.LockKeys
			if caps {
				locks = keyboard.CapsLock
			}
			s := keyboard.New(layout.US, keyboard.WithLockKeys(locks))
			if shift {
				s.Actuate(keys.KeyLeftShift, true)
			}

			wantLevel := uint8(0)
			if shift != caps {
				wantLevel = 1
			}
			require.Equal(t, wantLevel, s.Level(keys.Alphabetic))

			for _, k := range keys.All() {
				if !k.IsAlphabetic() {
					continue
				}
				want, _ := layout.US.Lookup(0, wantLevel, k)
				assert.Equal(t, keyboard.Symbol(want), tap(s, k).Action, "%s shift=%v caps=%v", k, shift, caps)
			}
		}
	}
}

func TestCapsLockIgnoredByNumeralsAndPunctuation(t *testing.T) {
	plain := keyboard.New(layout.GB)
	capsOn := keyboard.New(layout.GB, keyboard.WithLockKeys(keyboard.CapsLock))

	for _, k := range keys.All() {
		if tt, ok := k.Type(); !ok || tt != keys.NumeralsAndPunctuation {
			continue
		}
		assert.Equal(t, tap(plain, k).Action, tap(capsOn, k).Action, k.Name())
	}
}

func TestSetLayout(t *testing.T) {
	s := keyboard.New(layout.US)
	s.Actuate(keys.KeyLeftShift, true)
	assert.Equal(t, keyboard.Symbol('@'), tap(s, keys.Key2).Action)

	s.SetLayout(layout.GB)
	assert.Same(t, layout.GB, s.Layout())
	assert.True(t, s.Shift())
	assert.Equal(t, keyboard.Symbol('"'), tap(s, keys.Key2).Action)
}

func TestModifiersDerivedFromPhysicalState(t *testing.T) {
	s := keyboard.New(layout.GB)

	s.Actuate(keys.KeyLeftShift, true)
	s.Actuate(keys.KeyRightShift, true)
	s.Actuate(keys.KeyLeftShift, false)
	assert.True(t, s.Shift())

	s.Actuate(keys.KeyRightShift, false)
	assert.False(t, s.Shift())
	assert.Equal(t, keyboard.ModNone, s.Modifiers())

	s.Actuate(keys.KeyLeftCtrl, true)
	s.Actuate(keys.KeyRightSuper, true)
	assert.Equal(t, keyboard.ModCtrl|keyboard.ModSuper, s.Modifiers())

	s.Reset()
	assert.Equal(t, keyboard.ModNone, s.Modifiers())
	assert.Empty(t, s.PressedKeys())
}

func TestSetLockKeys(t *testing.T) {
	s := keyboard.New(layout.GB)
	s.SetLockKeys(keyboard.LockKeysFromLEDs(keyboard.LEDNumLock | keyboard.LEDCapsLock))
	assert.True(t, s.NumLock())
	assert.True(t, s.CapsLock())
	assert.False(t, s.ScrollLock())
	assert.Equal(t, keyboard.Symbol('8'), tap(s, keys.KeyKp8).Action)
}
