package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// SessionOptions selects which process-wide terminal state a Session acquires
type SessionOptions struct {
	Input     *os.File  // raw mode target, defaults to stdin
	Output    io.Writer // escape destination, defaults to stdout
	Raw       bool      // disable echo and line buffering
	AltScreen bool      // draw on the alternate screen buffer
	ParkRow   int       // 1-indexed row the cursor is left on at Close, 0 keeps it in place
}

// Session owns raw mode and cursor visibility for the lifetime of a render loop
// Close restores everything Open changed and is safe to call multiple times
type Session struct {
	opts     SessionOptions
	oldState *term.State
	fd       int

	mu     sync.Mutex
	closed bool
}

// Open enters the requested modes, hides the cursor and clears the screen
func Open(opts SessionOptions) (*Session, error) {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	s := &Session{
		opts: opts,
		fd:   int(opts.Input.Fd()),
	}

	if opts.Raw {
		if !term.IsTerminal(s.fd) {
			return nil, errors.New("stdin is not a terminal")
		}
		old, err := term.MakeRaw(s.fd)
		if err != nil {
			return nil, errors.Wrap(err, "enter raw mode")
		}
		s.oldState = old
	}

	if opts.AltScreen {
		io.WriteString(opts.Output, ansi.SetModeAltScreenSaveCursor)
	}
	io.WriteString(opts.Output, ansi.HideCursor)
	io.WriteString(opts.Output, ansi.EraseEntireScreen)
	io.WriteString(opts.Output, ansi.CursorHomePosition)

	return s, nil
}

// Close shows the cursor, leaves the alternate screen and restores the saved terminal state
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	out := s.opts.Output
	out.Write(csiSGR0)
	if s.opts.AltScreen {
		io.WriteString(out, ansi.ResetModeAltScreenSaveCursor)
	} else if s.opts.ParkRow > 0 {
		io.WriteString(out, ansi.CursorPosition(1, s.opts.ParkRow))
		io.WriteString(out, "\r\n")
	}
	io.WriteString(out, ansi.ShowCursor)

	if s.oldState != nil {
		term.Restore(s.fd, s.oldState)
		s.oldState = nil
	}
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Close cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	io.WriteString(w, ansi.ShowCursor)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
