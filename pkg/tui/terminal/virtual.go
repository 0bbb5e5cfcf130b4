// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Serves scripted input bytes, captures output, and can inject size, raw-mode, and write failures.

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
// It records written output, tracks raw-mode transitions, and hands
// out queued input one byte per ReadByte call.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	input      []byte
	width      int
	height     int
	rawMode    bool
	enterCount int
	exitCount  int

	sizeErr   error
	enterErr  error
	readErr   error
	writeCap  int // <0 means unlimited
	responder func(written []byte) []byte
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:    width,
		height:   height,
		writeCap: -1,
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enterErr != nil {
		return fmt.Errorf("%w: %w", ErrOSConfiguration, v.enterErr)
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions or the injected error.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// Write appends data to the internal buffer. When a responder is set,
// its reply is queued as input.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeCap >= 0 && len(p) > v.writeCap {
		v.buf.Write(p[:v.writeCap])
		return v.writeCap, nil
	}
	n, _ := v.buf.Write(p)
	if v.responder != nil {
		v.input = append(v.input, v.responder(p)...)
	}
	return n, nil
}

// ReadByte pops the next queued input byte, or reports ErrNoInput.
func (v *VirtualTerminal) ReadByte() (byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		if v.readErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrInputStream, v.readErr)
		}
		return 0, ErrNoInput
	}
	b := v.input[0]
	v.input = v.input[1:]
	return b, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues bytes to be returned by ReadByte.
func (v *VirtualTerminal) Feed(p []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, p...)
}

// FeedString queues a string to be returned by ReadByte.
func (v *VirtualTerminal) FeedString(s string) {
	v.Feed([]byte(s))
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}

// FailSize makes Size return err.
func (v *VirtualTerminal) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// FailEnterRawMode makes EnterRawMode fail with err.
func (v *VirtualTerminal) FailEnterRawMode(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = err
}

// FailReads makes ReadByte fail with err once queued input is exhausted.
func (v *VirtualTerminal) FailReads(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.readErr = err
}

// LimitWrites makes every Write accept at most n bytes.
func (v *VirtualTerminal) LimitWrites(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeCap = n
}

// RespondWith installs fn to produce input in reaction to written output.
func (v *VirtualTerminal) RespondWith(fn func(written []byte) []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.responder = fn
}
