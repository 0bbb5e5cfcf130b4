// ABOUTME: Editor drives the render, decode, dispatch loop over a raw-mode terminal and a document.
// ABOUTME: Cursor movement is clamped to the screen; the quit key clears the screen and ends the session.

package editor

import (
	"fmt"

	"github.com/mauromedda/kilo-go/internal/document"
	"github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui"
	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// DefaultQuitKey is Ctrl-Q.
var DefaultQuitKey = key.Ctrl('q')

// Status is the editor's lifecycle state.
type Status int

const (
	Running Status = iota
	Terminated
)

func (s Status) String() string {
	if s == Terminated {
		return "Terminated"
	}
	return "Running"
}

// Config customises an Editor. Zero fields take defaults.
type Config struct {
	QuitKey     byte
	Welcome     string
	Placeholder string
}

// State is the mutable session: screen geometry, cursor, and document.
type State struct {
	Rows, Cols int
	CY, CX     int
	Doc        *document.Document
}

// Editor owns the session state and the single control loop.
type Editor struct {
	term     terminal.Terminal
	decoder  *key.Decoder
	renderer *tui.Renderer
	quitKey  byte
	status   Status
	state    State
}

// New resolves the terminal geometry and prepares an editor over doc.
// A nil doc is treated as empty. Geometry failure is returned as is;
// there is nothing to draw without it.
func New(t terminal.Terminal, doc *document.Document, cfg Config) (*Editor, error) {
	geo, err := terminal.ResolveGeometry(t)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = document.New(nil)
	}

	var opts []tui.RendererOption
	if cfg.Welcome != "" {
		opts = append(opts, tui.WithWelcome(cfg.Welcome))
	}
	if cfg.Placeholder != "" {
		opts = append(opts, tui.WithPlaceholder(cfg.Placeholder))
	}
	quit := cfg.QuitKey
	if quit == 0 {
		quit = DefaultQuitKey
	}

	log.Debug("editor: geometry %dx%d, %d rows loaded", geo.Rows, geo.Cols, doc.RowCount())

	return &Editor{
		term:     t,
		decoder:  key.NewDecoder(t),
		renderer: tui.NewRenderer(t, opts...),
		quitKey:  quit,
		state:    State{Rows: geo.Rows, Cols: geo.Cols, Doc: doc},
	}, nil
}

// Run loops until the quit key arrives or an I/O error occurs. It
// returns nil only after the quit key, with the screen cleared as the
// final output.
func (e *Editor) Run() error {
	for e.status == Running {
		if err := e.Refresh(); err != nil {
			return err
		}
		k, err := e.decoder.Next()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		if err := e.Process(k); err != nil {
			return err
		}
	}
	return nil
}

// Refresh draws the current state as one frame.
func (e *Editor) Refresh() error {
	return e.renderer.Render(e.view())
}

// Process dispatches one key. Keys arriving after termination are ignored.
func (e *Editor) Process(k key.Key) error {
	if e.status == Terminated {
		return nil
	}
	log.Debug("editor: key %s at %d,%d", k, e.state.CY, e.state.CX)

	switch k.Type {
	case key.KeyChar:
		if k.Char == e.quitKey {
			return e.quit()
		}
	case key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight:
		e.move(k.Type)
	case key.KeyHome:
		e.state.CX = 0
	case key.KeyEnd:
		e.state.CX = e.state.Cols - 1
	case key.KeyPageUp:
		for range e.state.Rows {
			e.move(key.KeyUp)
		}
	case key.KeyPageDown:
		for range e.state.Rows {
			e.move(key.KeyDown)
		}
	}
	return nil
}

// Status reports whether the loop is still running.
func (e *Editor) Status() Status {
	return e.status
}

// State returns a copy of the session state.
func (e *Editor) State() State {
	return e.state
}

func (e *Editor) quit() error {
	e.status = Terminated
	log.Debug("editor: quit")
	return terminal.ClearScreen(e.term)
}

func (e *Editor) move(dir key.KeyType) {
	s := &e.state
	switch dir {
	case key.KeyUp:
		if s.CY > 0 {
			s.CY--
		}
	case key.KeyDown:
		if s.CY < s.Rows-1 {
			s.CY++
		}
	case key.KeyLeft:
		if s.CX > 0 {
			s.CX--
		}
	case key.KeyRight:
		if s.CX < s.Cols-1 {
			s.CX++
		}
	}
}

func (e *Editor) view() tui.View {
	return tui.View{
		Rows:      e.state.Rows,
		Cols:      e.state.Cols,
		CursorRow: e.state.CY,
		CursorCol: e.state.CX,
		Content:   e.state.Doc,
	}
}
