package termbox

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/termbox/native"
)

// Process abort hooks, swapped in tests
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// Session binds one native library instance
type Session struct {
	lib native.Library
}

// New creates a session over the given library
func New(lib native.Library) *Session {
	return &Session{lib: lib}
}

// Library returns the bound native library
func (s *Session) Library() native.Library {
	return s.lib
}

// Init enters the terminal session
func (s *Session) Init() error {
	if code := s.lib.Init(); code != native.CodeOK {
		return &InitError{Code: code}
	}
	return nil
}

// Shutdown restores the terminal
func (s *Session) Shutdown() {
	s.lib.Shutdown()
}

// Width returns the back buffer width
func (s *Session) Width() int {
	return int(s.lib.Width())
}

// Height returns the back buffer height
func (s *Session) Height() int {
	return int(s.lib.Height())
}

// Clear clears the back buffer
func (s *Session) Clear() {
	s.lib.Clear()
}

// Present writes the back buffer to the terminal
func (s *Session) Present() {
	s.lib.Present()
}

// SetCursor moves the cursor; pass HideCursor for both to hide it
func (s *Session) SetCursor(cx, cy int) {
	s.lib.SetCursor(cx, cy)
}

// HideCursor hides the cursor
func (s *Session) HideCursor() {
	s.lib.SetCursor(HideCursor, HideCursor)
}

// ChangeCell is the low-level cell write taking raw attribute words
func (s *Session) ChangeCell(x, y int, ch rune, fg, bg uint16) {
	s.lib.ChangeCell(uint(x), uint(y), uint32(ch), fg, bg)
}

// Print writes s to the back buffer, leftmost character at (x, y)
func (s *Session) Print(x, y int, sty Style, fg, bg Color, str string) {
	fgw := ConvertColor(fg) | ConvertStyle(sty)
	bgw := ConvertColor(bg)
	i := 0
	for _, ch := range str {
		s.lib.ChangeCell(uint(x+i), uint(y), uint32(ch), fgw, bgw)
		i++
	}
}

// PrintCh writes a single character to the back buffer
func (s *Session) PrintCh(x, y int, sty Style, fg, bg Color, ch rune) {
	fgw := ConvertColor(fg) | ConvertStyle(sty)
	bgw := ConvertColor(bg)
	s.lib.ChangeCell(uint(x), uint(y), uint32(ch), fgw, bgw)
}

// SelectInputMode sets the input mode and returns the effective mode
func (s *Session) SelectInputMode(mode InputMode) InputMode {
	return InputMode(s.lib.SelectInputMode(int(mode)))
}

// SetClearAttributes sets the attribute words used by Clear
func (s *Session) SetClearAttributes(fg, bg uint16) {
	s.lib.SetClearAttributes(fg, bg)
}

// PollEvent blocks until the next event
func (s *Session) PollEvent() Event {
	ev := NilRawEvent()
	rc := s.lib.PollEvent(&ev)
	return UnpackEvent(rc, &ev)
}

// PeekEvent returns the next event if one arrives within timeout, otherwise NoEvent
// Timeout resolution is one millisecond
func (s *Session) PeekEvent(timeout time.Duration) Event {
	ms := timeout.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	ev := NilRawEvent()
	rc := s.lib.PeekEvent(&ev, uint(ms))
	return UnpackEvent(rc, &ev)
}

// WithTerm runs f between Init and Shutdown
// The process exits with status 1 if Init fails or f returns an error or panics;
// the terminal is restored before the error is reported
func (s *Session) WithTerm(f func() error) {
	if err := s.Init(); err != nil {
		fmt.Fprintf(stderr, "with_term: %v\n", err)
		exit(1)
		return
	}

	err := runGuarded(f)
	s.Shutdown()

	if err != nil {
		fmt.Fprintf(stderr, "with_term: an error occurred: %v\n", err)
		exit(1)
	}
}

// runGuarded converts a panic in f into an error carrying the stack
func runGuarded(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\nStack Trace:\n%s", r, debug.Stack())
		}
	}()
	return f()
}
