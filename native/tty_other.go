//go:build !unix

package native

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// NewTTY is unsupported off unix; Init reports CodeFailedToOpenTTY
func NewTTY(dev string) *Screen {
	return &Screen{
		newScreen: func() (tcell.Screen, error) {
			return nil, fmt.Errorf("tty device %q not supported on this platform", dev)
		},
	}
}
