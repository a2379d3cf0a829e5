// Package config loads runtime settings for the termbox CLI
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/termbox/native"
	"github.com/lixenwraith/termbox/termbox"
)

// Backend names
const (
	BackendTerminal   = "terminal"
	BackendTTY        = "tty"
	BackendSimulation = "simulation"
)

// Config is the resolved CLI configuration
type Config struct {
	Backend   string `yaml:"backend"`
	Device    string `yaml:"device"`
	SimWidth  int    `yaml:"sim_width"`
	SimHeight int    `yaml:"sim_height"`
	InputMode string `yaml:"input_mode"`
	ClearFg   string `yaml:"clear_fg"`
	ClearBg   string `yaml:"clear_bg"`
	Debug     bool   `yaml:"debug"`
	LogDir    string `yaml:"log_dir"`
	Sound     bool   `yaml:"sound"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Backend:   BackendTerminal,
		Device:    "/dev/tty",
		SimWidth:  80,
		SimHeight: 24,
		InputMode: "esc",
		ClearFg:   "white",
		ClearBg:   "black",
		LogDir:    "logs",
	}
}

// Load reads a YAML file over the defaults; an empty path yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from TERMBOX_* environment variables
// Unparseable boolean values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("TERMBOX_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("TERMBOX_INPUT_MODE"); v != "" {
		c.InputMode = v
	}
	if v := os.Getenv("TERMBOX_CLEAR_FG"); v != "" {
		c.ClearFg = v
	}
	if v := os.Getenv("TERMBOX_CLEAR_BG"); v != "" {
		c.ClearBg = v
	}
	if v := os.Getenv("TERMBOX_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	if v := os.Getenv("TERMBOX_SOUND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Sound = b
		}
	}
}

// Validate checks enumerated fields
func (c *Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendTerminal:
	case BackendTTY:
		if c.Device == "" {
			errs = append(errs, errors.New("tty backend requires a device"))
		}
	case BackendSimulation:
		if c.SimWidth <= 0 || c.SimHeight <= 0 {
			errs = append(errs, fmt.Errorf("invalid simulation size %dx%d", c.SimWidth, c.SimHeight))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}

	if _, err := c.Input(); err != nil {
		errs = append(errs, err)
	}
	if _, err := termbox.ParseColor(c.ClearFg); err != nil {
		errs = append(errs, fmt.Errorf("clear_fg: %w", err))
	}
	if _, err := termbox.ParseColor(c.ClearBg); err != nil {
		errs = append(errs, fmt.Errorf("clear_bg: %w", err))
	}

	return errors.Join(errs...)
}

// Input returns the configured input mode
func (c *Config) Input() (termbox.InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(c.InputMode)) {
	case "esc", "":
		return termbox.InputEsc, nil
	case "alt":
		return termbox.InputAlt, nil
	}
	return termbox.InputCurrent, fmt.Errorf("unknown input mode %q", c.InputMode)
}

// ClearAttributes returns the attribute words for Clear
// Unknown colors fall back to white on black
func (c *Config) ClearAttributes() (fg, bg uint16) {
	fgc, err := termbox.ParseColor(c.ClearFg)
	if err != nil {
		fgc = termbox.White
	}
	bgc, err := termbox.ParseColor(c.ClearBg)
	if err != nil {
		bgc = termbox.Black
	}
	return termbox.ConvertColor(fgc), termbox.ConvertColor(bgc)
}

// Library builds the native library for the configured backend
func (c *Config) Library() (native.Library, error) {
	switch c.Backend {
	case BackendTerminal:
		return native.NewTerminal(), nil
	case BackendTTY:
		return native.NewTTY(c.Device), nil
	case BackendSimulation:
		return native.NewSimulation(c.SimWidth, c.SimHeight), nil
	}
	return nil, fmt.Errorf("unknown backend %q", c.Backend)
}
