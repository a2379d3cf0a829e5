package termbox

import (
	"sync"
	"time"

	"github.com/lixenwraith/termbox/native"
)

var (
	defaultMu      sync.Mutex
	defaultSession *Session
)

// Default returns the package session, bound to the controlling terminal
// unless replaced with SetDefault
func Default() *Session {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSession == nil {
		defaultSession = New(native.NewTerminal())
	}
	return defaultSession
}

// SetDefault replaces the package session; nil restores the terminal default
func SetDefault(s *Session) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSession = s
}

// Init enters the default terminal session
func Init() error { return Default().Init() }

// Shutdown restores the terminal
func Shutdown() { Default().Shutdown() }

// Width returns the back buffer width
func Width() int { return Default().Width() }

// Height returns the back buffer height
func Height() int { return Default().Height() }

// Clear clears the back buffer
func Clear() { Default().Clear() }

// Present writes the back buffer to the terminal
func Present() { Default().Present() }

// SetCursor moves the cursor
func SetCursor(cx, cy int) { Default().SetCursor(cx, cy) }

// ChangeCell writes one cell with raw attribute words
func ChangeCell(x, y int, ch rune, fg, bg uint16) { Default().ChangeCell(x, y, ch, fg, bg) }

// Print writes a string starting at (x, y)
func Print(x, y int, sty Style, fg, bg Color, s string) { Default().Print(x, y, sty, fg, bg, s) }

// PrintCh writes a single character at (x, y)
func PrintCh(x, y int, sty Style, fg, bg Color, ch rune) { Default().PrintCh(x, y, sty, fg, bg, ch) }

// SelectInputMode sets the input mode
func SelectInputMode(mode InputMode) InputMode { return Default().SelectInputMode(mode) }

// SetClearAttributes sets the attributes used by Clear
func SetClearAttributes(fg, bg uint16) { Default().SetClearAttributes(fg, bg) }

// PollEvent blocks until the next event
func PollEvent() Event { return Default().PollEvent() }

// PeekEvent waits up to timeout for the next event
func PeekEvent(timeout time.Duration) Event { return Default().PeekEvent(timeout) }

// WithTerm runs f inside the default terminal session
func WithTerm(f func() error) { Default().WithTerm(f) }
