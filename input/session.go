// Package input ties the scancode decoder and the keyboard state machine
// together into a per-device session.
package input

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/Alia5/scankey/keyboard"
	"github.com/Alia5/scankey/keys"
	"github.com/Alia5/scankey/scancode"
)

// Session processes the input of one keyboard. It is safe for concurrent
// use: calls are serialized, so a layout can be swapped from another
// goroutine while bytes are being fed.
type Session struct {
	mu     sync.Mutex
	reader *scancode.Reader
	state  *keyboard.State
	logger *slog.Logger
}

// NewSession returns a session using layout l. opts are passed to keyboard.New.
func NewSession(l keyboard.Layout, logger *slog.Logger, opts ...keyboard.Option) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		reader: scancode.NewReader(logger),
		state:  keyboard.New(l, opts...),
		logger: logger,
	}
}

// Feed processes one scancode byte. ok is false when the byte did not
// complete a key transition.
func (s *Session) Feed(b byte) (ev keyboard.Event, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k, released, ok := s.reader.Feed(b)
	if !ok {
		return keyboard.Event{}, false
	}
	return s.state.Actuate(k, !released), true
}

// Actuate processes an already decoded key transition.
func (s *Session) Actuate(k keys.Key, pressed bool) keyboard.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Actuate(k, pressed)
}

// SetLayout replaces the active layout.
func (s *Session) SetLayout(l keyboard.Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetLayout(l)
}

// Layout returns the active layout.
func (s *Session) Layout() keyboard.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Layout()
}

// LockKeys returns the active lock keys.
func (s *Session) LockKeys() keyboard.LockKeys {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LockKeys()
}

// Modifiers returns the logical modifiers currently held.
func (s *Session) Modifiers() keyboard.Modifiers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Modifiers()
}

// PressedKeys returns the keys currently held.
func (s *Session) PressedKeys() []keys.Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.PressedKeys()
}

// Run reads scancodes from r until EOF and calls fn for every event.
// It returns nil at EOF, ctx.Err() once ctx is done, and the first error
// returned by fn or r otherwise. ctx is checked between reads; a blocked read
// is not interrupted.
func (s *Session) Run(ctx context.Context, r io.Reader, fn func(keyboard.Event) error) error {
	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			ev, ok := s.Feed(b)
			if !ok {
				continue
			}
			if ferr := fn(ev); ferr != nil {
				return ferr
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("input stream closed")
				return nil
			}
			return err
		}
	}
}
