package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termbox/termbox"
)

const (
	keysHistory = 16
	keysRefresh = 250 * time.Millisecond
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Inspect decoded input events",
	Long:  "Show each decoded event as it arrives. Quit with Ctrl+C or the --quit key (default Ctrl+Q).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("quit")
		quit, err := quitKey(name)
		if err != nil {
			return err
		}
		return runInTerm(func(s *termbox.Session) error {
			return newInspector(s, time.Now, quit).run()
		})
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().String("quit", "ctrl_q", "Key name that quits, e.g. ctrl_q, escape, f10")
}

// quitKey resolves a key name for the inspector; Ctrl+C always quits as well
func quitKey(name string) (uint16, error) {
	k, ok := termbox.KeyByName(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return 0, fmt.Errorf("unknown quit key %q", name)
	}
	return k, nil
}

// inspector renders a rolling log of decoded events
type inspector struct {
	s       *termbox.Session
	now     func() time.Time
	quit    uint16
	history []string
	count   int
}

func newInspector(s *termbox.Session, now func() time.Time, quit uint16) *inspector {
	return &inspector{s: s, now: now, quit: quit}
}

func (in *inspector) run() error {
	in.draw()
	for {
		ev := in.s.PeekEvent(keysRefresh)
		if in.handle(ev) {
			return nil
		}
		in.draw()
	}
}

// handle records ev and reports whether the inspector should quit
func (in *inspector) handle(ev termbox.Event) bool {
	switch e := ev.(type) {
	case termbox.NoEvent:
		return false
	case termbox.KeyEvent:
		if e.Ch == 0 && (e.Key == termbox.KeyCtrlC || e.Key == in.quit) {
			return true
		}
	case termbox.ResizeEvent:
		in.s.Clear()
	}

	in.count++
	in.history = append(in.history, fmt.Sprintf("%4d  %s", in.count, ev))
	if len(in.history) > keysHistory {
		in.history = in.history[len(in.history)-keysHistory:]
	}
	return false
}

func (in *inspector) draw() {
	s := in.s
	w, h := s.Width(), s.Height()

	line := func(y int, sty termbox.Style, fg termbox.Color, text string) {
		if y >= h {
			return
		}
		if pad := w - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		s.Print(0, y, sty, fg, termbox.Black, text)
	}

	mode := "esc"
	if s.SelectInputMode(termbox.InputCurrent) == termbox.InputAlt {
		mode = "alt"
	}

	line(0, termbox.Bold, termbox.White,
		fmt.Sprintf("termbox keys  (ctrl_c or %s to quit)", termbox.KeyName(in.quit)))
	line(1, termbox.Normal, termbox.Green, fmt.Sprintf("time %s  size %dx%d  input %s",
		in.now().Format("15:04:05"), w, h, mode))

	for i := 0; i < keysHistory; i++ {
		text := ""
		if i < len(in.history) {
			text = in.history[len(in.history)-1-i]
		}
		sty := termbox.Normal
		if i == 0 {
			sty = termbox.Bold
		}
		line(3+i, sty, termbox.Yellow, text)
	}
	s.Present()
}
