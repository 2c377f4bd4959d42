package input_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Alia5/scankey/input"
	"github.com/Alia5/scankey/keyboard"
	"github.com/Alia5/scankey/keys"
	"github.com/Alia5/scankey/layout"
	"github.com/Alia5/scankey/scancode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, s *input.Session, data []byte) []keyboard.Event {
	t.Helper()
	var out []keyboard.Event
	err := s.Run(context.Background(), bytes.NewReader(data), func(ev keyboard.Event) error {
		out = append(out, ev)
		return nil
	})
	require.NoError(t, err)
	return out
}

func actions(events []keyboard.Event) []keyboard.Action {
	var out []keyboard.Action
	for _, ev := range events {
		if ev.Action != nil {
			out = append(out, ev.Action)
		}
	}
	return out
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []keyboard.Action
	}{
		{
			name:  "plain letter",
			input: scancode.Tap(keys.KeyA),
			want:  []keyboard.Action{keyboard.Symbol('a')},
		},
		{
			name: "shifted letter and digit",
			input: concat(
				scancode.Press(keys.KeyLeftShift),
				scancode.Tap(keys.KeyA, keys.Key1),
				scancode.Release(keys.KeyLeftShift),
			),
			want: []keyboard.Action{
				keyboard.Command{Modifiers: keyboard.ModShift, Key: keys.KeyLeftShift},
				keyboard.Symbol('A'),
				keyboard.Symbol('!'),
			},
		},
		{
			name:  "altgr grave",
			input: scancode.Chord(keys.KeyGrave, keys.KeyAltGr),
			want: []keyboard.Action{
				keyboard.Command{Modifiers: keyboard.ModAltGr, Key: keys.KeyAltGr},
				keyboard.Symbol('|'),
			},
		},
		{
			name: "caps lock",
			input: concat(
				scancode.Tap(keys.KeyCapsLock, keys.KeyA, keys.Key1),
				scancode.Chord(keys.KeyA, keys.KeyLeftShift),
			),
			want: []keyboard.Action{
				keyboard.Command{Modifiers: keyboard.ModNone, Key: keys.KeyCapsLock},
				keyboard.Symbol('A'),
				keyboard.Symbol('1'),
				keyboard.Command{Modifiers: keyboard.ModShift, Key: keys.KeyLeftShift},
				keyboard.Symbol('a'),
			},
		},
		{
			name: "numpad 7 with and without num lock",
			input: concat(
				scancode.Tap(keys.KeyKp7),
				scancode.Tap(keys.KeyNumLock),
				scancode.Tap(keys.KeyKp7),
			),
			want: []keyboard.Action{
				keyboard.Command{Modifiers: keyboard.ModNone, Key: keys.KeyHome},
				keyboard.Command{Modifiers: keyboard.ModNone, Key: keys.KeyNumLock},
				keyboard.Symbol('7'),
			},
		},
		{
			name:  "ctrl+c",
			input: scancode.Chord(keys.KeyC, keys.KeyRightCtrl),
			want: []keyboard.Action{
				keyboard.Command{Modifiers: keyboard.ModCtrl, Key: keys.KeyRightCtrl},
				keyboard.Command{Modifiers: keyboard.ModCtrl, Key: keys.KeyC},
			},
		},
		{
			name:  "unknown codes are skipped",
			input: []byte{0x54, 0xE0, 0x2A, 0x1E, 0x9E},
			want:  []keyboard.Action{keyboard.Symbol('a')},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := input.NewSession(layout.GB, nil)
			assert.Equal(t, tt.want, actions(collect(t, s, tt.input)))
			assert.Empty(t, s.PressedKeys())
		})
	}
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestRunReportsRepeats(t *testing.T) {
	s := input.NewSession(layout.US, nil)
	// Typematic repeat: make code sent three times before the break code.
	events := collect(t, s, []byte{0x1E, 0x1E, 0x1E, 0x9E})
	require.Len(t, events, 4)
	assert.False(t, events[0].Repeat)
	assert.True(t, events[1].Repeat)
	assert.True(t, events[2].Repeat)
	assert.False(t, events[3].Repeat)
	assert.False(t, events[3].Pressed)
}

func TestRunIgnoresPauseSequence(t *testing.T) {
	s := input.NewSession(layout.US, nil)
	events := collect(t, s, []byte{0xE1, 0x1D, 0x45, 0xE1, 0x9D, 0xC5})
	assert.Empty(t, events)
	assert.Equal(t, keyboard.LockKeys(0), s.LockKeys())
	assert.Empty(t, s.PressedKeys())
}

func TestRunStopsOnHandlerError(t *testing.T) {
	s := input.NewSession(layout.US, nil)
	stop := errors.New("stop")
	calls := 0
	err := s.Run(context.Background(), bytes.NewReader(scancode.Tap(keys.KeyA, keys.KeyB)), func(keyboard.Event) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestRunHonoursContext(t *testing.T) {
	s := input.NewSession(layout.US, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Run(ctx, bytes.NewReader(scancode.Tap(keys.KeyA)), func(keyboard.Event) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFeedAndActuate(t *testing.T) {
	s := input.NewSession(layout.US, nil, keyboard.WithLockKeysDisabled())

	_, ok := s.Feed(scancode.Extended)
	assert.False(t, ok)
	ev, ok := s.Feed(0x38)
	require.True(t, ok)
	assert.Equal(t, keys.KeyAltGr, ev.Key)
	assert.Equal(t, keyboard.ModAlt, s.Modifiers())

	ev = s.Actuate(keys.KeyCapsLock, true)
	assert.Equal(t, keyboard.Command{Modifiers: keyboard.ModAlt, Key: keys.KeyCapsLock}, ev.Action)
	assert.Equal(t, keyboard.LockKeys(0), s.LockKeys())
}

func TestSetLayoutConcurrently(t *testing.T) {
	s := input.NewSession(layout.US, nil)
	data := bytes.Repeat(scancode.Tap(keys.KeyA), 500)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			if i%2 == 0 {
				s.SetLayout(layout.GB)
			} else {
				s.SetLayout(layout.US)
			}
		}
	}()

	events := collect(t, s, data)
	wg.Wait()
	assert.Len(t, events, 1000)
	for _, a := range actions(events) {
		assert.Equal(t, keyboard.Symbol('a'), a)
	}
	assert.NotNil(t, s.Layout())
}
