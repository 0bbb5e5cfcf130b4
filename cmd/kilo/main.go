// ABOUTME: CLI entry point for kilo: loads settings and the document, then runs the editor in raw mode
// ABOUTME: The terminal is always restored before exit; fatal errors clear the screen and exit 1

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/kilo-go/internal/config"
	"github.com/mauromedda/kilo-go/internal/document"
	"github.com/mauromedda/kilo-go/internal/editor"
	kilolog "github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// seedLine fills the document when no file is given.
const seedLine = "Hello, world!"

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("kilo %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	os.Exit(run(args))
}

// run returns the process exit code so deferred cleanup runs before os.Exit.
func run(args cliArgs) int {
	// An empty cwd makes Load skip the project file.
	cwd, cwdErr := os.Getwd()
	settings, err := config.Load(cwd, args.config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	closeLog, err := setupLogging(args, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer closeLog()

	if cwdErr != nil {
		kilolog.Warn("working directory unavailable, project config skipped: %v", cwdErr)
	}

	doc, err := loadDocument(args.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	kilolog.Info("kilo %s: %d rows from %s", version, doc.RowCount(), documentName(args.file))

	// Load already validated these.
	timeout, _ := settings.Timeout()
	quit, _ := settings.QuitByte()

	tty := terminal.NewProcessTerminal(os.Stdin, os.Stdout, terminal.WithReadTimeout(timeout))
	cfg := editor.Config{
		QuitKey:     quit,
		Welcome:     settings.Welcome,
		Placeholder: settings.Placeholder,
	}
	if err := session(tty, doc, cfg); err != nil {
		kilolog.Error("%v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// session owns raw mode for the lifetime of one editor run. Raw mode is
// left before session returns on every path; a panic or a SIGTERM/SIGHUP
// is handled by RestoreOnPanic or RestoreOnSignal, which exit the
// process themselves.
func session(t terminal.Terminal, doc *document.Document, cfg editor.Config) (err error) {
	release, err := terminal.Acquire(t)
	if err != nil {
		_ = terminal.ClearScreen(t)
		return err
	}
	defer func() {
		if rerr := release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	defer terminal.RestoreOnSignal(t, release)()
	defer terminal.RestoreOnPanic(t)

	ed, err := editor.New(t, doc, cfg)
	if err != nil {
		_ = terminal.ClearScreen(t)
		return err
	}
	if err := ed.Run(); err != nil {
		_ = terminal.ClearScreen(t)
		return err
	}
	kilolog.Debug("session ended cleanly")
	return nil
}

// setupLogging applies the level and destination. While the terminal
// is raw, stderr shares the screen, so logs go to a file or nowhere.
func setupLogging(args cliArgs, settings *config.Settings) (func(), error) {
	level, _ := settings.Level()
	if args.verbose {
		level = kilolog.LevelDebug
	}
	kilolog.SetLevel(level)

	path := args.logFile
	if path == "" {
		path = settings.LogFile
	}
	if path == "" {
		prev := kilolog.SetOutput(io.Discard)
		return func() { kilolog.SetOutput(prev) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := kilolog.SetOutput(f)
	return func() {
		kilolog.SetOutput(prev)
		_ = f.Close()
	}, nil
}

// loadDocument reads path into a Document, or seeds one line when path is empty.
func loadDocument(path string) (*document.Document, error) {
	if path == "" {
		return document.New([]string{seedLine}), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := document.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}

func documentName(path string) string {
	if path == "" {
		return "built-in seed"
	}
	return path
}
