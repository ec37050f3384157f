// Package config loads astroshower runner settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds runner settings. The simulator itself has no settings.
type Config struct {
	LogLevel string `yaml:"log_level"`
	// Seed for the random source; 0 means seed from the clock.
	Seed uint64 `yaml:"seed"`

	Window WindowConfig `yaml:"window"`
	Term   TermConfig   `yaml:"term"`
	Bench  BenchConfig  `yaml:"bench"`
}

// WindowConfig configures the Ebitengine window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Hero   bool   `yaml:"hero"`
	Debug  bool   `yaml:"debug"`
}

// TermConfig configures the terminal runner.
type TermConfig struct {
	FPS int `yaml:"fps"`
}

// BenchConfig configures the headless benchmark.
type BenchConfig struct {
	Duration time.Duration `yaml:"duration"`
	Viewport string        `yaml:"viewport"`
	DPR      float64       `yaml:"dpr"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Title:  "astroshower",
			Width:  1280,
			Height: 720,
			TPS:    60,
		},
		Term: TermConfig{
			FPS: 30,
		},
		Bench: BenchConfig{
			Duration: 5 * time.Second,
			Viewport: "1280x800",
			DPR:      2,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults, as
// does a file holding no document. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out of range setting.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: window.tps must be positive, got %d", ErrInvalid, c.Window.TPS)
	case c.Term.FPS <= 0:
		return fmt.Errorf("%w: term.fps must be positive, got %d", ErrInvalid, c.Term.FPS)
	case c.Bench.Duration <= 0:
		return fmt.Errorf("%w: bench.duration must be positive, got %s", ErrInvalid, c.Bench.Duration)
	case c.Bench.DPR <= 0:
		return fmt.Errorf("%w: bench.dpr must be positive, got %g", ErrInvalid, c.Bench.DPR)
	}
	if _, _, err := ParseViewport(c.Bench.Viewport); err != nil {
		return err
	}
	return nil
}

// ParseViewport parses a "WIDTHxHEIGHT" size in logical pixels.
func ParseViewport(s string) (width, height float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: viewport %q is not WIDTHxHEIGHT", ErrInvalid, s)
	}
	width, err = strconv.ParseFloat(ws, 64)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("%w: viewport width %q", ErrInvalid, ws)
	}
	height, err = strconv.ParseFloat(hs, 64)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("%w: viewport height %q", ErrInvalid, hs)
	}
	return width, height, nil
}
