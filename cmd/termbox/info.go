package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/termbox/config"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Report terminal capabilities and the resolved config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeInfo(cmd.OutOrStdout(), os.Stdout.Fd(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// terminalInfo describes the terminal attached to one file descriptor
type terminalInfo struct {
	TTY     bool   `yaml:"tty"`
	Cygwin  bool   `yaml:"cygwin,omitempty"`
	Term    string `yaml:"term,omitempty"`
	Columns int    `yaml:"columns,omitempty"`
	Rows    int    `yaml:"rows,omitempty"`
	XPixels int    `yaml:"x_pixels,omitempty"`
	YPixels int    `yaml:"y_pixels,omitempty"`
}

type infoReport struct {
	Terminal terminalInfo   `yaml:"terminal"`
	Config   *config.Config `yaml:"config"`
}

func probeTerminal(fd uintptr) terminalInfo {
	info := terminalInfo{
		TTY:    isatty.IsTerminal(fd),
		Cygwin: isatty.IsCygwinTerminal(fd),
		Term:   os.Getenv("TERM"),
	}
	if !info.TTY {
		return info
	}
	if w, h, err := term.GetSize(int(fd)); err == nil {
		info.Columns, info.Rows = w, h
	}
	info.XPixels, info.YPixels = pixelSize(fd)
	return info
}

func writeInfo(w io.Writer, fd uintptr, c *config.Config) error {
	out, err := yaml.Marshal(infoReport{Terminal: probeTerminal(fd), Config: c})
	if err != nil {
		return fmt.Errorf("encode info: %w", err)
	}
	_, err = w.Write(out)
	return err
}
