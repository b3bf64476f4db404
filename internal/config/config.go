package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hexfield/internal/geom"
)

const (
	DefaultHexSize    = 10.0
	DefaultDotRatio   = 0.3
	DefaultDotRadius  = 1.0
	DefaultIntervalMs = 180
	DefaultCellScale  = 2.5
	DefaultTheme      = "classic"
	DefaultBackground = "#14307a"
	DefaultDotColor   = "#1876a8"

	// FitOutput as a width or height sizes that dimension from the output:
	// the terminal, the window or the default render frame.
	FitOutput = -1.0
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Width      float64        `yaml:"width"`
	Height     float64        `yaml:"height"`
	HexSize    float64        `yaml:"hex_size"`
	DotRatio   float64        `yaml:"dot_ratio"`
	DotRadius  float64        `yaml:"dot_radius"`
	IntervalMs int            `yaml:"interval_ms"`
	Seed       int64          `yaml:"seed"`
	Theme      string         `yaml:"theme"`
	Colors     ColorConfig    `yaml:"colors"`
	Terminal   TerminalConfig `yaml:"terminal"`
}

type ColorConfig struct {
	Background string  `yaml:"background"`
	Dot        string  `yaml:"dot"`
	DotAlpha   float64 `yaml:"dot_alpha"`
}

type TerminalConfig struct {
	// CellScale is viewport units per Braille sub-pixel.
	CellScale float64 `yaml:"cell_scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      FitOutput,
		Height:     FitOutput,
		HexSize:    DefaultHexSize,
		DotRatio:   DefaultDotRatio,
		DotRadius:  DefaultDotRadius,
		IntervalMs: DefaultIntervalMs,
		Theme:      DefaultTheme,
		Colors: ColorConfig{
			Background: DefaultBackground,
			Dot:        DefaultDotColor,
			DotAlpha:   1,
		},
		Terminal: TerminalConfig{
			CellScale: DefaultCellScale,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads path over a copy of base, so keys missing from the file
// keep base's values.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the knobs that would otherwise hang or garble a run.
// Viewport size is not checked: zero renders empty frames and a negative
// size fits the output.
func (c *Config) Validate() error {
	if c.HexSize <= 0 {
		return fmt.Errorf("%w: hex_size must be positive, got %v", ErrInvalidConfig, c.HexSize)
	}
	if c.DotRatio < 0 || c.DotRatio > 1 {
		return fmt.Errorf("%w: dot_ratio must be in [0, 1], got %v", ErrInvalidConfig, c.DotRatio)
	}
	if c.DotRadius < 0 {
		return fmt.Errorf("%w: dot_radius must not be negative, got %v", ErrInvalidConfig, c.DotRadius)
	}
	if c.IntervalMs <= 0 {
		return fmt.Errorf("%w: interval_ms must be positive, got %d", ErrInvalidConfig, c.IntervalMs)
	}
	if c.Colors.DotAlpha < 0 || c.Colors.DotAlpha > 1 {
		return fmt.Errorf("%w: dot_alpha must be in [0, 1], got %v", ErrInvalidConfig, c.Colors.DotAlpha)
	}
	if c.Terminal.CellScale <= 0 {
		return fmt.Errorf("%w: cell_scale must be positive, got %v", ErrInvalidConfig, c.Terminal.CellScale)
	}
	if _, _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// Palette parses the background and dot colours.
func (c *Config) Palette() (background, dot geom.Color, err error) {
	background, err = geom.ParseHex(c.Colors.Background)
	if err != nil {
		return geom.Color{}, geom.Color{}, err
	}
	dot, err = geom.ParseHex(c.Colors.Dot)
	if err != nil {
		return geom.Color{}, geom.Color{}, err
	}
	return background, dot.WithAlpha(c.Colors.DotAlpha), nil
}
