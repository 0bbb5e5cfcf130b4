// ABOUTME: Cursor position probe: sends DSR 6 and parses the ESC [ row ; col R reply.
// ABOUTME: Reads the reply byte by byte from the same stream as key input, before the main loop.

package terminal

import (
	"bytes"
	"errors"
	"fmt"
)

// probeBufSize caps how many reply bytes are collected.
const probeBufSize = 32

// QueryCursorPosition asks the terminal where the cursor is and returns
// the reported 1-based row and column unchanged. It must not run while
// anything else is consuming input.
func QueryCursorPosition(t Terminal) (row, col int, err error) {
	if _, err := t.Write([]byte(SeqQueryCursor)); err != nil {
		return 0, 0, fmt.Errorf("sending cursor query: %w", err)
	}

	var buf [probeBufSize]byte
	n := 0
	for n < len(buf) {
		b, err := t.ReadByte()
		if errors.Is(err, ErrNoInput) {
			break
		}
		if err != nil {
			return 0, 0, err
		}
		if b == 'R' {
			break
		}
		buf[n] = b
		n++
	}
	return ParseCursorReport(buf[:n])
}

// ParseCursorReport parses "ESC [ row ; col", with or without the final R.
func ParseCursorReport(reply []byte) (row, col int, err error) {
	reply = bytes.TrimSuffix(reply, []byte{'R'})
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return 0, 0, fmt.Errorf("%w: missing ESC [ prefix in %q", ErrProbeParse, reply)
	}

	rowPart, colPart, ok := bytes.Cut(reply[2:], []byte{';'})
	if !ok {
		return 0, 0, fmt.Errorf("%w: missing ';' in %q", ErrProbeParse, reply)
	}
	if row, ok = parseDecimal(rowPart); !ok {
		return 0, 0, fmt.Errorf("%w: bad row %q", ErrProbeParse, rowPart)
	}
	if col, ok = parseDecimal(colPart); !ok {
		return 0, 0, fmt.Errorf("%w: bad column %q", ErrProbeParse, colPart)
	}
	return row, col, nil
}

// parseDecimal accepts one or more ASCII digits and nothing else.
func parseDecimal(b []byte) (int, bool) {
	if len(b) == 0 || len(b) > 5 {
		return 0, false
	}
	v := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
