package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termbox/termbox"
)

var helloDelay = time.Second

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Print a greeting for one second",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInTerm(func(*termbox.Session) error {
			hello()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
}

// hello draws through the package-level default session
func hello() {
	termbox.Print(1, 1, termbox.Bold, termbox.White, termbox.Black, "Hello, world!")
	termbox.Present()
	time.Sleep(helloDelay)
}
