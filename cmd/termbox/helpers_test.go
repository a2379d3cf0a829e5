package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/termbox/native"
	"github.com/lixenwraith/termbox/termbox"
)

// simSession returns an initialized session over a simulation screen
func simSession(t *testing.T, w, h int) (*termbox.Session, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := termbox.New(native.NewScreen(sim))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(s.Shutdown)
	return s, sim
}

// rowText reads one back buffer row as a trimmed string
func rowText(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

// resetFlags restores root flags between Execute calls
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			f.Value.Set(f.DefValue)
			f.Changed = false
		})
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	}
	reset()
	t.Cleanup(reset)
}
