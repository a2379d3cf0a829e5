package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termbox/sound"
	"github.com/lixenwraith/termbox/termbox"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Echo keys until 'q' is pressed",
	Long:  "Echo each key until 'q' is pressed. With sound enabled, characters click and special keys ring a bell.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		player := sound.NewPlayer(cfg.Sound)
		defer player.Close()
		return runInTerm(func(s *termbox.Session) error {
			return demo(s, player)
		})
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

const demoEchoRow = 5

func demo(s *termbox.Session, player *sound.Player) error {
	say := func(x, y int, str string) {
		s.Print(x, y, termbox.Bold, termbox.White, termbox.Black, str)
	}

	say(1, 1, "Hello, world!")
	say(1, 3, "Press 'q' to quit.")
	s.Present()

	for {
		ev, ok := s.PollEvent().(termbox.KeyEvent)
		if !ok {
			continue
		}
		if ev.Ch == 'q' {
			return nil
		}
		if ev.Ch != 0 {
			player.Click()
		} else {
			player.Bell()
		}

		line := fmt.Sprintf("%-*s", s.Width()-2, ev.String())
		s.Print(1, demoEchoRow, termbox.Normal, termbox.Cyan, termbox.Black, line)
		s.Present()
	}
}
