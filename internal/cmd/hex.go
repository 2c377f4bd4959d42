package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// hexReader turns a text dump of scancodes ("1e 9e", "0xE0 0x48", "e048")
// into raw bytes. Text after '#' on a line is ignored.
type hexReader struct {
	sc      *bufio.Scanner
	pending []byte
	line    int
}

func newHexReader(r io.Reader) *hexReader {
	return &hexReader{sc: bufio.NewScanner(r)}
}

func (h *hexReader) Read(p []byte) (int, error) {
	for len(h.pending) == 0 {
		if !h.sc.Scan() {
			if err := h.sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		h.line++
		b, err := parseHexLine(h.sc.Text())
		if err != nil {
			return 0, fmt.Errorf("hex input line %d: %w", h.line, err)
		}
		h.pending = b
	}
	n := copy(p, h.pending)
	h.pending = h.pending[n:]
	return n, nil
}

func parseHexLine(line string) ([]byte, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	var out []byte
	for _, tok := range strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '\r'
	}) {
		tok = strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
		b, err := hex.DecodeString(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid token %q: %w", tok, err)
		}
		out = append(out, b...)
	}
	return out, nil
}
