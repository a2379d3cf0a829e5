package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termbox/config"
	"github.com/lixenwraith/termbox/termbox"
)

// cfg is resolved by the root pre-run: defaults, then file, then env, then flags
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:          "termbox",
	Short:        "Cell-buffer terminal demos",
	Long:         "Demos and diagnostics for the termbox cell-buffer terminal binding.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to the log directory")
	rootCmd.PersistentFlags().String("backend", "", "Terminal backend: terminal, tty, simulation")
	rootCmd.PersistentPreRunE = resolveConfig
}

func resolveConfig(cmd *cobra.Command, args []string) error {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	loaded.ApplyEnv()

	flags := rootCmd.PersistentFlags()
	if flags.Changed("debug") {
		loaded.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("backend") {
		loaded.Backend, _ = flags.GetString("backend")
	}

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cfg = loaded
	logFile = setupLogging(cfg.Debug, cfg.LogDir)
	log.Printf("termbox: backend=%s input=%s sound=%v", cfg.Backend, cfg.InputMode, cfg.Sound)
	return nil
}

// openSession binds the default session to the configured backend
func openSession(c *config.Config) (*termbox.Session, error) {
	lib, err := c.Library()
	if err != nil {
		return nil, err
	}
	s := termbox.New(lib)
	termbox.SetDefault(s)
	return s, nil
}

// prepare applies the configured input mode and clear attributes to a live session
func prepare(s *termbox.Session, c *config.Config) {
	if mode, err := c.Input(); err == nil {
		s.SelectInputMode(mode)
	}
	s.SetClearAttributes(c.ClearAttributes())
	s.Clear()
}

// runInTerm runs body inside the configured terminal session
// WithTerm exits the process if body fails
func runInTerm(body func(s *termbox.Session) error) error {
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	s.WithTerm(func() error {
		prepare(s, cfg)
		return body(s)
	})
	return nil
}
