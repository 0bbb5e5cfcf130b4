// ABOUTME: Frame is the growable byte buffer one render composes into before its single write.
// ABOUTME: Each render allocates its own Frame; nothing is pooled or shared between renders.

package tui

// Frame accumulates the bytes of one screen update.
type Frame struct {
	buf []byte
}

// newFrame returns an empty Frame with room for sizeHint bytes.
func newFrame(sizeHint int) *Frame {
	return &Frame{buf: make([]byte, 0, sizeHint)}
}

// write appends p.
func (f *Frame) write(p []byte) {
	f.buf = append(f.buf, p...)
}

// WriteString appends s.
func (f *Frame) WriteString(s string) {
	f.buf = append(f.buf, s...)
}

// writeSpaces appends n spaces.
func (f *Frame) writeSpaces(n int) {
	for range n {
		f.buf = append(f.buf, ' ')
	}
}

// Bytes returns the composed frame.
func (f *Frame) Bytes() []byte {
	return f.buf
}
