package scancode

import (
	"log/slog"

	"github.com/Alia5/scankey/keys"
)

// Reader turns a byte stream into key transitions. It tracks whether the
// previous byte was the extended prefix.
//
// Sequences starting with 0xE1 (only sent by Pause) are not decoded: the
// prefix and the two bytes after it are dropped, so they never show up as
// LeftCtrl and NumLock.
type Reader struct {
	escaped bool
	skip    int
	logger  *slog.Logger
}

// NewReader returns a Reader that reports unrecognized codes to logger.
// A nil logger discards them.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{logger: logger}
}

// Feed processes one byte. ok is false when the byte did not complete a
// transition: it was the extended prefix or an unrecognized code.
func (r *Reader) Feed(b byte) (k keys.Key, released bool, ok bool) {
	if r.skip > 0 {
		r.skip--
		return 0, false, false
	}
	if b == Prefix1 {
		r.escaped = false
		r.skip = 2
		r.logger.Debug("skipping E1 sequence")
		return 0, false, false
	}
	if b == Extended {
		r.escaped = true
		return 0, false, false
	}

	escaped := r.escaped
	r.escaped = false

	code := b
	if code >= ReleaseBit {
		code &^= ReleaseBit
		released = true
	}

	k, ok = Decode(escaped, code)
	if !ok {
		r.logger.Warn("unrecognized scancode", "escaped", escaped, "code", code, "released", released)
		return 0, false, false
	}
	return k, released, true
}

// Escaped reports whether the next byte will be looked up in the extended table.
func (r *Reader) Escaped() bool { return r.escaped }

// Reset drops a pending extended prefix or E1 sequence.
func (r *Reader) Reset() {
	r.escaped = false
	r.skip = 0
}
