package termbox

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/termbox/native"
)

// Init failure sentinels, matched with errors.Is against *InitError
var (
	ErrUnsupportedTerminal = errors.New("termbox: unsupported terminal")
	ErrFailedToOpenTTY     = errors.New("termbox: failed to open tty")
	ErrPipeTrapError       = errors.New("termbox: pipe trap error")
)

// InitError carries the native error code returned by Init
type InitError struct {
	Code int
}

func (e *InitError) sentinel() error {
	switch e.Code {
	case native.CodeUnsupportedTerminal:
		return ErrUnsupportedTerminal
	case native.CodeFailedToOpenTTY:
		return ErrFailedToOpenTTY
	case native.CodePipeTrapError:
		return ErrPipeTrapError
	}
	return nil
}

func (e *InitError) Error() string {
	if s := e.sentinel(); s != nil {
		return fmt.Sprintf("%v (code %d)", s, e.Code)
	}
	return fmt.Sprintf("termbox: init failed (code %d)", e.Code)
}

// Is matches the sentinel for the carried code
func (e *InitError) Is(target error) bool {
	s := e.sentinel()
	return s != nil && s == target
}
