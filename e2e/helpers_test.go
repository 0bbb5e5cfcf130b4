// ABOUTME: Harness that builds the kilo binary and drives it through a real pty
// ABOUTME: Output is fed into a headless VT emulator so tests can assert on the visible screen

//go:build linux

package e2e

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/creack/pty"
	headlessterm "github.com/danielgatis/go-headless-term"
)

const (
	screenRows = 24
	screenCols = 80
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// kiloBinary compiles cmd/kilo once per test run.
func kiloBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "kilo-e2e-")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "kilo")
		out, err := exec.Command("go", "build", "-o", binPath, "github.com/mauromedda/kilo-go/cmd/kilo").CombinedOutput()
		if err != nil {
			buildErr = errors.New(string(out))
		}
	})
	if buildErr != nil {
		t.Fatalf("building kilo: %v", buildErr)
	}
	return binPath
}

type kiloSession struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	tty    *os.File
	screen *headlessterm.Terminal
	done   chan struct{}
	exit   error
}

// startKilo runs the binary on a fresh 24x80 pty with an isolated HOME.
func startKilo(t *testing.T, args ...string) *kiloSession {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}
	bin := kiloBinary(t)

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: screenRows, Cols: screenCols}); err != nil {
		t.Fatalf("setting pty size: %v", err)
	}

	cmd := exec.Command(bin, args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "TERM=xterm")
	cmd.Stdin, cmd.Stdout, cmd.Stderr = tty, tty, tty
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}
	if err := cmd.Start(); err != nil {
		ptmx.Close()
		tty.Close()
		t.Fatalf("starting kilo: %v", err)
	}

	s := &kiloSession{
		cmd:    cmd,
		ptmx:   ptmx,
		tty:    tty,
		screen: headlessterm.New(headlessterm.WithSize(screenRows, screenCols)),
		done:   make(chan struct{}),
	}
	go func() {
		_, _ = io.Copy(s.screen, ptmx)
	}()
	go func() {
		s.exit = cmd.Wait()
		close(s.done)
	}()
	t.Cleanup(s.close)
	return s
}

func (s *kiloSession) close() {
	select {
	case <-s.done:
	default:
		_ = s.cmd.Process.Kill()
		<-s.done
	}
	s.ptmx.Close()
	s.tty.Close()
}

func (s *kiloSession) send(t *testing.T, input string) {
	t.Helper()
	if _, err := s.ptmx.WriteString(input); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

// eventually polls cond until it holds or the timeout elapses.
func eventually(t *testing.T, timeout time.Duration, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func (s *kiloSession) expectLine(t *testing.T, row int, want string) {
	t.Helper()
	eventually(t, 5*time.Second, "row "+want, func() bool {
		return strings.Contains(s.screen.LineContent(row), want)
	})
}

func (s *kiloSession) expectCursor(t *testing.T, row, col int) {
	t.Helper()
	eventually(t, 5*time.Second, "cursor position", func() bool {
		r, c := s.screen.CursorPos()
		return r == row && c == col
	})
}

// waitExit waits for the process and returns its exit code.
func (s *kiloSession) waitExit(t *testing.T, timeout time.Duration) int {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(timeout):
		t.Fatal("kilo did not exit")
	}
	var exitErr *exec.ExitError
	if errors.As(s.exit, &exitErr) {
		return exitErr.ExitCode()
	}
	if s.exit != nil {
		t.Fatalf("waiting for kilo: %v", s.exit)
	}
	return 0
}
