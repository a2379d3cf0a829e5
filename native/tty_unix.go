//go:build unix

package native

import (
	"github.com/gdamore/tcell/v2"
)

// NewTTY creates a Library bound to a specific tty device path
func NewTTY(dev string) *Screen {
	return &Screen{
		newScreen: func() (tcell.Screen, error) {
			tty, err := tcell.NewDevTtyFromDev(dev)
			if err != nil {
				return nil, err
			}
			return tcell.NewTerminfoScreenFromTty(tty)
		},
	}
}
