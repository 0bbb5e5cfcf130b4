// ABOUTME: Scoped raw-mode acquisition and panic recovery that always hands the tty back.
// ABOUTME: RestoreOnPanic clears the screen, restores settings, prints the stack, and exits 1.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Acquire enters raw mode and returns the function that leaves it.
// The release function restores the saved settings exactly once no
// matter how many times it is called; defer it right after Acquire.
func Acquire(t Terminal) (release func() error, err error) {
	if err := t.EnterRawMode(); err != nil {
		return nil, err
	}

	var (
		once       sync.Once
		releaseErr error
	)
	return func() error {
		once.Do(func() { releaseErr = t.ExitRawMode() })
		return releaseErr
	}, nil
}

// RestoreOnPanic should be deferred at the top of main, after Acquire.
// On panic it clears the screen, shows the cursor, exits raw mode via
// the provided Terminal, prints the panic value and stack trace, then
// exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	restoreAfterPanic(t, r, os.Stderr)
	os.Exit(1)
}

// restoreAfterPanic performs the best-effort cleanup for RestoreOnPanic.
func restoreAfterPanic(t Terminal, r any, stderr io.Writer) {
	_ = ClearScreen(t)
	_, _ = t.Write([]byte(SeqShowCursor))
	_ = t.ExitRawMode()

	fmt.Fprintf(stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
}
