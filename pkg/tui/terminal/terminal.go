// ABOUTME: Defines the Terminal interface for raw mode, size queries, and byte-level I/O.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

// Terminal abstracts low-level terminal operations: raw mode, size
// queries, output writing, and single-byte reads bounded by the raw-mode
// read timeout.
//
// ReadByte returns ErrNoInput when no byte arrived within the timeout.
// That is normal polling, not a failure; any other error is fatal.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	ReadByte() (byte, error)
}
