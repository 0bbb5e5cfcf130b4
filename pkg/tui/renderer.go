// ABOUTME: Renderer composes a full screen frame off-screen and flushes it with one write.
// ABOUTME: Rows are truncated to the terminal width; empty screens show placeholders and a welcome line.

package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
	"github.com/mauromedda/kilo-go/pkg/tui/width"
)

const (
	DefaultWelcome     = "Kilo editor -- version 0.0.1"
	DefaultPlaceholder = "~"
)

// Content is the row source a frame is drawn from.
type Content interface {
	RowCount() int
	Line(i int) []byte
}

// View is everything a frame depends on. Cursor coordinates are 0-based.
type View struct {
	Rows      int
	Cols      int
	CursorRow int
	CursorCol int
	Content   Content
}

// Renderer draws Views to a terminal writer.
type Renderer struct {
	w           io.Writer
	welcome     string
	placeholder string
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithWelcome sets the line centred on an empty screen.
func WithWelcome(s string) RendererOption {
	return func(r *Renderer) { r.welcome = s }
}

// WithPlaceholder sets the marker drawn on screen rows past the document end.
func WithPlaceholder(s string) RendererOption {
	return func(r *Renderer) { r.placeholder = s }
}

// NewRenderer creates a Renderer writing frames to w.
func NewRenderer(w io.Writer, opts ...RendererOption) *Renderer {
	r := &Renderer{
		w:           w,
		welcome:     DefaultWelcome,
		placeholder: DefaultPlaceholder,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render composes v and writes it in a single call. A failed or short
// write is reported as terminal.ErrOutputStream.
func (r *Renderer) Render(v View) error {
	frame := r.Compose(v)

	n, err := r.w.Write(frame)
	if err != nil {
		if errors.Is(err, terminal.ErrOutputStream) {
			return err
		}
		return fmt.Errorf("%w: %w", terminal.ErrOutputStream, err)
	}
	if n < len(frame) {
		return fmt.Errorf("%w: short write (%d of %d bytes)", terminal.ErrOutputStream, n, len(frame))
	}
	return nil
}

// Compose builds the frame for v: hide cursor, home, every screen row
// followed by an erase-to-end-of-line, cursor placement, show cursor.
// The same View always yields the same bytes.
func (r *Renderer) Compose(v View) []byte {
	rowCount := 0
	if v.Content != nil {
		rowCount = v.Content.RowCount()
	}

	f := newFrame(v.Rows*(v.Cols+len(terminal.SeqClearLine)+2) + 32)
	f.WriteString(terminal.SeqHideCursor)
	f.WriteString(terminal.SeqCursorHome)

	for y := range v.Rows {
		switch {
		case y < rowCount:
			f.write(width.Truncate(v.Content.Line(y), v.Cols))
		case rowCount == 0 && y == v.Rows/3:
			r.writeWelcome(f, v.Cols)
		default:
			f.write(width.Truncate([]byte(r.placeholder), v.Cols))
		}

		f.WriteString(terminal.SeqClearLine)
		if y < v.Rows-1 {
			f.WriteString("\r\n")
		}
	}

	f.buf = terminal.AppendCursorTo(f.buf, v.CursorRow+1, v.CursorCol+1)
	f.WriteString(terminal.SeqShowCursor)
	return f.Bytes()
}

// writeWelcome centres the welcome line, keeping the placeholder in the
// first column when there is room for it.
func (r *Renderer) writeWelcome(f *Frame, cols int) {
	msg := width.Truncate([]byte(r.welcome), cols)
	padding := (cols - width.Cells(msg)) / 2
	if padding > 0 && r.placeholder != "" {
		f.WriteString(r.placeholder)
		padding -= width.StringCells(r.placeholder)
	}
	f.writeSpaces(padding)
	f.write(msg)
}
