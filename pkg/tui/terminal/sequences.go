// ABOUTME: VT100 escape sequences written to the terminal by the probe, renderer, and cleanup paths.
// ABOUTME: CursorTo builds the absolute positioning sequence from 1-based coordinates.

package terminal

import (
	"fmt"
	"io"
	"strconv"
)

const (
	SeqClearScreen  = "\x1b[2J"
	SeqCursorHome   = "\x1b[H"
	SeqHideCursor   = "\x1b[?25l"
	SeqShowCursor   = "\x1b[?25h"
	SeqClearLine    = "\x1b[K"
	SeqQueryCursor  = "\x1b[6n"
	SeqCursorCorner = "\x1b[999C\x1b[999B" // clamped by the terminal to the bottom-right cell
)

// AppendCursorTo appends ESC [ row ; col H to dst. row and col are 1-based.
func AppendCursorTo(dst []byte, row, col int) []byte {
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}

// ClearScreen erases the display and homes the cursor.
func ClearScreen(w io.Writer) error {
	if _, err := io.WriteString(w, SeqClearScreen+SeqCursorHome); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputStream, err)
	}
	return nil
}
