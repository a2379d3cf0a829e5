package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termbox/termbox"
)

func main() {
	// Restore the terminal before reporting a crash outside WithTerm
	defer func() {
		if r := recover(); r != nil {
			termbox.Shutdown()
			fmt.Fprintf(os.Stderr, "\ntermbox crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		closeLog()
		os.Exit(1)
	}
	closeLog()
}
