// ABOUTME: Defines the Key type produced by the input decoder: one literal byte or a navigation key.
// ABOUTME: Includes ParseKey for decoding a complete in-memory sequence and Ctrl for control codes.

package key

import (
	"errors"
	"fmt"

	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// Key represents a decoded keyboard input event.
type Key struct {
	Type KeyType
	Char byte // For KeyChar
}

// KeyType enumerates the kinds of key events the editor can receive.
type KeyType int

const (
	KeyChar     KeyType = iota // Literal byte, printable or control
	KeyUp                      // Arrow up
	KeyDown                    // Arrow down
	KeyLeft                    // Arrow left
	KeyRight                   // Arrow right
	KeyHome                    // Home
	KeyEnd                     // End
	KeyPageUp                  // Page Up
	KeyPageDown                // Page Down
	KeyDelete                  // Delete key
	KeyEscape                  // Escape with no recognised sequence after it
)

// Ctrl returns the control code produced by holding Ctrl with c.
func Ctrl(c byte) byte {
	return c & 0x1f
}

// Char returns a KeyChar event for b.
func Char(b byte) Key {
	return Key{Type: KeyChar, Char: b}
}

// ParseKey decodes the first key in data, treating the end of data as
// a read timeout. It reports an error only when data is empty.
func ParseKey(data string) (Key, error) {
	if data == "" {
		return Key{}, errors.New("parse key: empty input")
	}
	return NewDecoder(&sequenceSource{data: data}).Next()
}

// sequenceSource serves bytes from memory and then times out forever.
type sequenceSource struct {
	data string
	pos  int
}

func (s *sequenceSource) ReadByte() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, terminal.ErrNoInput
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyDelete:   "Delete",
	KeyEscape:   "Escape",
}

// String returns a human-readable representation of the Key for debug logging.
func (k Key) String() string {
	if k.Type == KeyChar {
		return formatChar(k.Char)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

// formatChar renders control bytes as Ctrl+X and the rest quoted.
func formatChar(b byte) string {
	switch {
	case b == 0x7f:
		return "Backspace"
	case b < 0x20:
		return fmt.Sprintf("Ctrl+%c", b|0x40)
	case b < 0x7f:
		return string(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
