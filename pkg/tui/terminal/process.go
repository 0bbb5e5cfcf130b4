// ABOUTME: ProcessTerminal implements Terminal over the process tty using x/sys termios and x/term.
// ABOUTME: Owns the single saved-settings snapshot and reads one byte at a time with a VTIME timeout.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DefaultReadTimeout is how long a read waits before reporting ErrNoInput.
const DefaultReadTimeout = 100 * time.Millisecond

// ProcessTerminal is a real terminal backed by an input and output tty.
type ProcessTerminal struct {
	in  *os.File
	out *os.File

	mu       sync.Mutex
	vtime    uint8
	oldState *unix.Termios

	rbuf [1]byte
}

// Option configures a ProcessTerminal.
type Option func(*ProcessTerminal)

// WithReadTimeout sets the raw-mode read timeout. The terminal driver
// counts in tenths of a second, so d is rounded down and clamped to
// the range 100ms..25.5s.
func WithReadTimeout(d time.Duration) Option {
	return func(t *ProcessTerminal) {
		ds := d / (100 * time.Millisecond)
		switch {
		case ds < 1:
			ds = 1
		case ds > 255:
			ds = 255
		}
		t.vtime = uint8(ds)
	}
}

// NewProcessTerminal returns a ProcessTerminal reading from in and writing to out.
func NewProcessTerminal(in, out *os.File, opts ...Option) *ProcessTerminal {
	t := &ProcessTerminal{in: in, out: out, vtime: 1}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// EnterRawMode saves the current settings and switches the input tty to
// raw mode: no line buffering, echo, signal keys, extended input
// processing, output post-processing, or flow control. Reads return
// after the configured timeout even when no byte is available.
// Calling it again while raw is a no-op so the first snapshot is kept.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}

	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%w: %s is not a terminal", ErrOSConfiguration, t.in.Name())
	}

	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("%w: reading settings: %w", ErrOSConfiguration, err)
	}

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = t.vtime

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermiosFlush, &raw); err != nil {
		return fmt.Errorf("%w: applying raw mode: %w", ErrOSConfiguration, err)
	}
	t.oldState = orig
	return nil
}

// ExitRawMode reapplies the saved settings. It does nothing when raw
// mode is not active, so the snapshot is restored at most once.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermiosFlush, t.oldState); err != nil {
		return fmt.Errorf("%w: restoring settings: %w", ErrOSConfiguration, err)
	}
	t.oldState = nil
	return nil
}

// Size queries the window size of the output tty.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output tty.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrOutputStream, err)
	}
	return n, nil
}

// ReadByte reads a single byte, waiting at most the read timeout.
func (t *ProcessTerminal) ReadByte() (byte, error) {
	n, err := unix.Read(int(t.in.Fd()), t.rbuf[:])
	if n == 1 {
		return t.rbuf[0], nil
	}
	if err == nil || errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
		return 0, ErrNoInput
	}
	return 0, fmt.Errorf("%w: %w", ErrInputStream, err)
}
