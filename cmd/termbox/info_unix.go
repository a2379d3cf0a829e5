//go:build unix

package main

import (
	"golang.org/x/sys/unix"
)

// pixelSize returns the window size in pixels, zero when the terminal does not report it
func pixelSize(fd uintptr) (int, int) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Xpixel), int(ws.Ypixel)
}
