// Package app holds the configuration surface of the golife command.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// headerFields are the keywords accepted by the -header flag.
var headerFields = map[string]bool{
	"mode":     true,
	"size":     true,
	"interval": true,
	"game":     true,
	"gen":      true,
	"alive":    true,
	"density":  true,
	"fps":      true,
}

// Stagnation windows below this produce false positives on short blips.
const minStagnationWindow = 5

// Config represents the command-line parameters for the application.
type Config struct {
	Rows      int
	Cols      int
	Density   float64
	Interval  time.Duration
	Seed      int64
	LiveCell  string
	DeadCell  string
	Torus     bool
	Endless   bool
	KeepAlive bool
	Max       bool
	Stagnate  int
	Header    string
	Patterns  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:     20,
		Cols:     40,
		Density:  0.2,
		Interval: 200 * time.Millisecond,
		LiveCell: "■",
		DeadCell: " ",
		Stagnate: 10,
		Header:   "mode,game,gen,alive",
		Patterns: defaultPatternPath(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of columns")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live-cell density (0-1)")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "board seed (0 picks one from the clock)")
	fs.StringVar(&c.LiveCell, "live", c.LiveCell, "glyph for a live cell")
	fs.StringVar(&c.DeadCell, "dead", c.DeadCell, "glyph for a dead cell")
	fs.BoolVar(&c.Torus, "torus", c.Torus, "wrap the board edges")
	fs.BoolVar(&c.Endless, "endless", c.Endless, "restart automatically when a dead condition is met")
	fs.BoolVar(&c.KeepAlive, "keep-alive", c.KeepAlive, "do not treat an empty board as dead")
	fs.BoolVar(&c.Max, "max", c.Max, "fit the board to the terminal (overrides rows and cols)")
	fs.IntVar(&c.Stagnate, "stagnate", c.Stagnate, "stagnation window in generations (0 disables)")
	fs.StringVar(&c.Header, "header", c.Header, "comma-separated header fields (mode,size,interval,game,gen,alive,density,fps)")
	fs.StringVar(&c.Patterns, "patterns", c.Patterns, "pattern library file")
}

// fileConfig mirrors Config for the YAML overlay; absent keys leave the
// default in place.
type fileConfig struct {
	Rows      *int           `yaml:"rows"`
	Cols      *int           `yaml:"cols"`
	Density   *float64       `yaml:"density"`
	Interval  *time.Duration `yaml:"interval"`
	Seed      *int64         `yaml:"seed"`
	LiveCell  *string        `yaml:"live"`
	DeadCell  *string        `yaml:"dead"`
	Torus     *bool          `yaml:"torus"`
	Endless   *bool          `yaml:"endless"`
	KeepAlive *bool          `yaml:"keep_alive"`
	Max       *bool          `yaml:"max"`
	Stagnate  *int           `yaml:"stagnate"`
	Header    *string        `yaml:"header"`
	Patterns  *string        `yaml:"patterns"`
}

// LoadFile overlays values from a YAML config file. A missing file is fine;
// flags bound after the overlay still win.
func (c *Config) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	overlay(&c.Rows, fc.Rows)
	overlay(&c.Cols, fc.Cols)
	overlay(&c.Density, fc.Density)
	overlay(&c.Interval, fc.Interval)
	overlay(&c.Seed, fc.Seed)
	overlay(&c.LiveCell, fc.LiveCell)
	overlay(&c.DeadCell, fc.DeadCell)
	overlay(&c.Torus, fc.Torus)
	overlay(&c.Endless, fc.Endless)
	overlay(&c.KeepAlive, fc.KeepAlive)
	overlay(&c.Max, fc.Max)
	overlay(&c.Stagnate, fc.Stagnate)
	overlay(&c.Header, fc.Header)
	overlay(&c.Patterns, fc.Patterns)
	return nil
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate rejects unusable settings before a session starts and clamps the
// stagnation window to its practical minimum.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("board size %dx%d: dimensions must be positive", c.Cols, c.Rows)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v: must be between 0 and 1", c.Density)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval %v: must be positive", c.Interval)
	}
	if utf8.RuneCountInString(c.LiveCell) != 1 {
		return fmt.Errorf("live glyph %q: must be a single character", c.LiveCell)
	}
	if utf8.RuneCountInString(c.DeadCell) != 1 {
		return fmt.Errorf("dead glyph %q: must be a single character", c.DeadCell)
	}
	if c.Stagnate < 0 {
		return fmt.Errorf("stagnate %d: must not be negative", c.Stagnate)
	}
	if c.Stagnate > 0 && c.Stagnate < minStagnationWindow {
		c.Stagnate = minStagnationWindow
	}
	for _, item := range c.HeaderItems() {
		if !headerFields[item] {
			return fmt.Errorf("unknown header field %q", item)
		}
	}
	return nil
}

// HeaderItems returns the cleaned header field list.
func (c *Config) HeaderItems() []string {
	var items []string
	for _, item := range strings.Split(c.Header, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ShowHeader reports whether the given field was requested.
func (c *Config) ShowHeader(field string) bool {
	for _, item := range c.HeaderItems() {
		if item == field {
			return true
		}
	}
	return false
}

// FitToTerminal sizes the board from the terminal dimensions, reserving
// lines for the header. Only applies when -max is set.
func (c *Config) FitToTerminal(cols, lines int) {
	if !c.Max {
		return
	}
	if lines-4 > 0 {
		c.Rows = lines - 4
	} else {
		c.Rows = 1
	}
	if cols > 0 {
		c.Cols = cols
	} else {
		c.Cols = 1
	}
}

// ConfigPath returns the YAML config location: $GOLIFE_CONFIG if set, else
// the per-user config directory.
func ConfigPath() string {
	if p := os.Getenv("GOLIFE_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "golife", "config.yaml")
}

func defaultPatternPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "patterns.json"
	}
	return filepath.Join(dir, "golife", "patterns.json")
}
