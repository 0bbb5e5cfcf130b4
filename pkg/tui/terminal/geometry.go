// ABOUTME: Resolves terminal rows and columns: direct size query first, cursor probe as fallback.
// ABOUTME: The fallback parks the cursor in the bottom-right corner and reads its position back.

package terminal

import "fmt"

// Geometry is the visible terminal size in character cells.
type Geometry struct {
	Rows int
	Cols int
}

// ResolveGeometry determines the terminal size. A size query that fails
// or reports zero columns falls back to the cursor probe; the position
// it reports after moving to the far corner is the terminal extent.
func ResolveGeometry(t Terminal) (Geometry, error) {
	w, h, sizeErr := t.Size()
	if sizeErr == nil && w > 0 && h > 0 {
		return Geometry{Rows: h, Cols: w}, nil
	}
	if sizeErr == nil {
		sizeErr = fmt.Errorf("size query reported %dx%d", w, h)
	}

	if _, err := t.Write([]byte(SeqCursorCorner)); err != nil {
		return Geometry{}, fmt.Errorf("%w: %v; moving cursor: %w", ErrGeometry, sizeErr, err)
	}
	rows, cols, err := QueryCursorPosition(t)
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: %v; cursor probe: %w", ErrGeometry, sizeErr, err)
	}
	if rows < 1 || cols < 1 {
		return Geometry{}, fmt.Errorf("%w: cursor probe reported %dx%d", ErrGeometry, cols, rows)
	}
	return Geometry{Rows: rows, Cols: cols}, nil
}
