/*
Package tui renders maze sessions on an interactive terminal.

It owns the terminal lifecycle: discovering a tty, switching it to raw mode,
hiding the cursor while the game is on screen, and restoring everything on
close. Frames are built as whole strings and written in a single print, and
key presses are decoded into game events byte by byte.
*/
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Mtar786/maze-runner/game"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when no interactive terminal can be found.
var ErrNoTerminal = errors.New("no interactive terminal found")

// ANSI escape sequences used by the package.
const (
	ansiClear  = "\033[2J\033[H"
	ansiHide   = "\033[?25l"
	ansiShow   = "\033[?25h"
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// fallbackWidth is assumed when the terminal size cannot be determined.
const fallbackWidth = 80

// Screen owns the interactive terminal while a session is on display.
type Screen struct {
	tty      *os.File
	fd       int
	oldState *term.State
	buf      []byte
	logger   *logrus.Entry
}

// NewScreen locates an interactive terminal, switches it to raw mode, and
// hides the cursor. Close must be called to restore the terminal.
func NewScreen(logger *logrus.Entry) (*Screen, error) {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = logrus.NewEntry(discard)
	}

	tty, err := openTerminal()
	if err != nil {
		return nil, err
	}

	fd := int(tty.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		_ = tty.Close()
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}

	fmt.Print(ansiHide)
	logger.Info("terminal switched to raw mode")
	return &Screen{
		tty:      tty,
		fd:       fd,
		oldState: oldState,
		buf:      make([]byte, 16),
		logger:   logger,
	}, nil
}

// Run drives the session until the player quits or the terminal read fails.
// After a win only a fresh maze or quitting leaves the win screen.
func (s *Screen) Run(sess *game.Session) error {
	for {
		s.draw(sess)

		ev, err := s.readEvent()
		if err != nil {
			return err
		}
		if ev == EventNone {
			continue
		}
		s.logger.WithField("event", ev).Debug("key press")

		if sess.Status() == game.Won {
			switch ev {
			case EventNewMaze:
				sess.NewMaze()
			case EventQuit:
				return nil
			}
			continue
		}

		switch ev {
		case EventMoveUp:
			sess.AttemptMove(game.Up)
		case EventMoveDown:
			sess.AttemptMove(game.Down)
		case EventMoveLeft:
			sess.AttemptMove(game.Left)
		case EventMoveRight:
			sess.AttemptMove(game.Right)
		case EventToggleSolution:
			sess.ToggleSolution()
		case EventNewMaze:
			sess.NewMaze()
		case EventQuit:
			return nil
		}
	}
}

// Close restores the cursor and the terminal state. It is safe to call more
// than once.
func (s *Screen) Close() {
	if s.tty == nil {
		return
	}
	fmt.Print(ansiShow + ansiReset)
	_ = term.Restore(s.fd, s.oldState)
	_ = s.tty.Close()
	s.tty = nil
	s.logger.Info("terminal restored")
}

// draw replaces the whole screen with the frame for the session state.
func (s *Screen) draw(sess *game.Session) {
	fmt.Print(renderSession(sess, s.width()))
}

// readEvent blocks until the next key press and decodes it.
func (s *Screen) readEvent() (Event, error) {
	n, err := s.tty.Read(s.buf)
	if err != nil {
		return EventNone, fmt.Errorf("reading key press: %w", err)
	}
	return decodeKey(s.buf[:n]), nil
}

// width returns the terminal column count.
func (s *Screen) width() int {
	w, _, err := term.GetSize(s.fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// openTerminal finds an interactive terminal, preferring the controlling
// tty so the game still works when stdin or stdout is redirected.
func openTerminal() (*os.File, error) {
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		return tty, nil
	}
	for fd := 0; fd <= 2; fd++ {
		f, err := os.OpenFile(fmt.Sprintf("/proc/self/fd/%d", fd), os.O_RDWR, 0)
		if err != nil {
			continue
		}
		if term.IsTerminal(int(f.Fd())) {
			return f, nil
		}
		_ = f.Close()
	}
	return nil, ErrNoTerminal
}
