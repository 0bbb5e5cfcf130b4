// ABOUTME: Termination-signal handling that hands the tty back before the process dies.
// ABOUTME: SIGTERM and SIGHUP clear the screen, run the raw-mode release, and exit 1.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// RestoreOnSignal watches for SIGTERM and SIGHUP while raw mode is held.
// On either it clears the screen, calls release, reports the signal on
// stderr and exits with status 1. The returned stop function removes
// the handler; defer it right after Acquire so it runs before release.
func RestoreOnSignal(t Terminal, release func() error) (stop func()) {
	return restoreOnSignal(t, release, os.Stderr, func() { os.Exit(1) }, syscall.SIGTERM, syscall.SIGHUP)
}

func restoreOnSignal(t Terminal, release func() error, stderr io.Writer, exit func(), sigs ...os.Signal) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sigs...)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigCh:
			_ = ClearScreen(t)
			_, _ = t.Write([]byte(SeqShowCursor))
			_ = release()
			fmt.Fprintf(stderr, "kilo: %v\n", sig)
			exit()
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
		})
	}
}
