// ABOUTME: Sentinel errors for terminal configuration, geometry, and stream failures.
// ABOUTME: Callers wrap them with %w and match with errors.Is; all but ErrNoInput are fatal.

package terminal

import "errors"

var (
	// ErrNoInput reports that a read timed out with zero bytes available.
	ErrNoInput = errors.New("no input within read timeout")

	// ErrOSConfiguration reports a failure to capture or apply terminal settings.
	ErrOSConfiguration = errors.New("terminal configuration failed")

	// ErrGeometry reports that neither the size query nor the cursor probe
	// produced usable dimensions.
	ErrGeometry = errors.New("unable to determine terminal size")

	// ErrProbeParse reports a malformed cursor position reply.
	ErrProbeParse = errors.New("malformed cursor position report")

	// ErrInputStream reports a read failure other than a timeout.
	ErrInputStream = errors.New("reading terminal input")

	// ErrOutputStream reports a failed or short write to the terminal.
	ErrOutputStream = errors.New("writing terminal output")
)
