// ABOUTME: Decoder turns a timed byte stream into Key events with an explicit escape-sequence state machine.
// ABOUTME: A lone ESC, a timeout mid-sequence, or an unknown sequence all decode as KeyEscape.

package key

import (
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

const escByte = 0x1b

// symbol is the decoder's input alphabet.
type symbol int

const (
	symOther symbol = iota
	symEsc
	symBracket
	symO
	symDigit
	symLetter
	symTilde
)

func classify(b byte) symbol {
	switch {
	case b == escByte:
		return symEsc
	case b == '[':
		return symBracket
	case b == 'O':
		return symO
	case b == '~':
		return symTilde
	case b >= '0' && b <= '9':
		return symDigit
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z':
		return symLetter
	}
	return symOther
}

// state is the decoder position inside an escape sequence.
type state int

const (
	stateEscape   state = iota // ESC
	stateCSI                   // ESC [
	stateSS3                   // ESC O
	stateCSIParam              // ESC [ digit
	stateDiscard               // ESC <other>: one more byte is consumed
)

// step is the outcome of feeding one byte in a given state: either a
// finished key or the next state.
type step struct {
	done bool
	key  Key
	next state
}

var escapeKey = Key{Type: KeyEscape}

// transition feeds b to the machine. param is the digit held in stateCSIParam.
func transition(st state, b byte, param byte) step {
	sym := classify(b)
	switch st {
	case stateEscape:
		switch sym {
		case symBracket:
			return step{next: stateCSI}
		case symO:
			return step{next: stateSS3}
		}
		return step{next: stateDiscard}
	case stateCSI:
		switch sym {
		case symDigit:
			return step{next: stateCSIParam}
		case symLetter:
			return finish(csiFinal, b)
		}
	case stateSS3:
		if sym == symLetter {
			return finish(ss3Final, b)
		}
	case stateCSIParam:
		if sym == symTilde {
			return finish(tildeParam, param)
		}
	}
	return step{done: true, key: escapeKey}
}

func finish(table map[byte]KeyType, b byte) step {
	if t, ok := table[b]; ok {
		return step{done: true, key: Key{Type: t}}
	}
	return step{done: true, key: escapeKey}
}

// Decoder reads Key events from a byte source. The source reports
// terminal.ErrNoInput when its read timeout expires without data.
type Decoder struct {
	src io.ByteReader
}

// NewDecoder returns a Decoder reading from src.
func NewDecoder(src io.ByteReader) *Decoder {
	return &Decoder{src: src}
}

// Next blocks until a key is available and decodes it. Bytes are
// consumed only as far as the current sequence needs; nothing is
// pushed back for the next call.
func (d *Decoder) Next() (Key, error) {
	first, err := d.waitByte()
	if err != nil {
		return Key{}, err
	}
	if first != escByte {
		return Char(first), nil
	}

	st := stateEscape
	var param byte
	for {
		b, err := d.src.ReadByte()
		if errors.Is(err, terminal.ErrNoInput) {
			return escapeKey, nil
		}
		if err != nil {
			return Key{}, inputError(err)
		}

		s := transition(st, b, param)
		if s.done {
			return s.key, nil
		}
		if s.next == stateCSIParam {
			param = b
		}
		st = s.next
	}
}

// waitByte polls the source through read timeouts until a byte arrives.
func (d *Decoder) waitByte() (byte, error) {
	for {
		b, err := d.src.ReadByte()
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, terminal.ErrNoInput) {
			return 0, inputError(err)
		}
	}
}

func inputError(err error) error {
	if errors.Is(err, terminal.ErrInputStream) {
		return err
	}
	return fmt.Errorf("%w: %w", terminal.ErrInputStream, err)
}
