// ABOUTME: Read-only document model: an ordered list of immutable rows in display order.
// ABOUTME: Read splits a byte stream into rows for the loader collaborator.

package document

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrRowOutOfRange is returned by RowAt for an index outside the document.
var ErrRowOutOfRange = errors.New("row index out of range")

// Row is one line of text. Its bytes are never modified after construction.
type Row struct {
	chars []byte
}

// NewRow copies b into a new Row.
func NewRow(b []byte) Row {
	return Row{chars: bytes.Clone(b)}
}

// Bytes returns the row content. Callers must not modify it.
func (r Row) Bytes() []byte { return r.chars }

// Len returns the row length in bytes.
func (r Row) Len() int { return len(r.chars) }

// String returns the row content as a string.
func (r Row) String() string { return string(r.chars) }

// Document is an ordered sequence of rows.
type Document struct {
	rows []Row
}

// New builds a document whose rows are lines, in order.
func New(lines []string) *Document {
	d := &Document{rows: make([]Row, 0, len(lines))}
	for _, l := range lines {
		d.rows = append(d.rows, Row{chars: []byte(l)})
	}
	return d
}

// Read builds a document from r, one row per line. Line terminators
// (\n or \r\n) are stripped; a trailing newline does not add an empty row.
// A leading byte order mark is dropped, and UTF-16 input that starts with
// one is decoded to UTF-8. Anything else is kept byte for byte.
func Read(r io.Reader) (*Document, error) {
	d := &Document{}
	sc := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		d.rows = append(d.rows, NewRow(bytes.TrimSuffix(sc.Bytes(), []byte{'\r'})))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return d, nil
}

// RowCount returns the number of rows.
func (d *Document) RowCount() int {
	return len(d.rows)
}

// RowAt returns row i.
func (d *Document) RowAt(i int) (Row, error) {
	if i < 0 || i >= len(d.rows) {
		return Row{}, fmt.Errorf("%w: %d not in [0, %d)", ErrRowOutOfRange, i, len(d.rows))
	}
	return d.rows[i], nil
}

// Line returns the content of row i, or nil when i is out of range.
func (d *Document) Line(i int) []byte {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i].chars
}
