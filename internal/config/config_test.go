package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HexSize != 10 {
		t.Errorf("expected hex size 10, got %v", cfg.HexSize)
	}
	if cfg.DotRatio != 0.3 {
		t.Errorf("expected ratio 0.3, got %v", cfg.DotRatio)
	}
	if cfg.Interval() != 180*time.Millisecond {
		t.Errorf("expected 180ms interval, got %v", cfg.Interval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s listed but not found", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestGetPreset_Copy(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	cfg.HexSize = 99

	if again := GetPreset("dense"); again.HexSize != 6 {
		t.Errorf("preset mutated through returned copy: %v", again.HexSize)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero hex", func(c *Config) { c.HexSize = 0 }},
		{"negative ratio", func(c *Config) { c.DotRatio = -0.1 }},
		{"ratio above one", func(c *Config) { c.DotRatio = 1.5 }},
		{"negative radius", func(c *Config) { c.DotRadius = -1 }},
		{"zero interval", func(c *Config) { c.IntervalMs = 0 }},
		{"bad alpha", func(c *Config) { c.Colors.DotAlpha = 2 }},
		{"bad scale", func(c *Config) { c.Terminal.CellScale = 0 }},
		{"bad colour", func(c *Config) { c.Colors.Dot = "teal" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate_AllowsDegenerateViewport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 0, -5
	if err := cfg.Validate(); err != nil {
		t.Errorf("viewport size should not be validated: %v", err)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexfield.yaml")

	cfg := DefaultConfig()
	cfg.Width = 640
	cfg.DotRatio = 0.5
	cfg.Colors.Dot = "#ffffff"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Width != 640 || loaded.DotRatio != 0.5 || loaded.Colors.Dot != "#ffffff" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("dot_ratio: 0.6\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DotRatio != 0.6 {
		t.Errorf("expected ratio 0.6, got %v", cfg.DotRatio)
	}
	if cfg.HexSize != DefaultHexSize || cfg.IntervalMs != DefaultIntervalMs {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestPalette(t *testing.T) {
	cfg := GetPreset("ember")
	bg, dot, err := cfg.Palette()
	if err != nil {
		t.Fatalf("palette failed: %v", err)
	}
	if bg.Hex() != "#2d1b2e" {
		t.Errorf("unexpected background %s", bg.Hex())
	}
	if dot.A != 0.9 {
		t.Errorf("expected dot alpha 0.9, got %v", dot.A)
	}
}

func TestLoadOnto_KeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("interval_ms: 90\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOnto(path, GetPreset("sparse"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.IntervalMs != 90 {
		t.Errorf("expected interval 90, got %d", cfg.IntervalMs)
	}
	if cfg.HexSize != 14 || cfg.DotRatio != 0.1 {
		t.Errorf("preset values lost: %+v", cfg)
	}
}

func TestPresets_FitOutputByDefault(t *testing.T) {
	for _, name := range ListPresets() {
		p := GetPreset(name)
		if p.Width != FitOutput || p.Height != FitOutput {
			t.Errorf("preset %s: expected fit-output viewport, got %vx%v", name, p.Width, p.Height)
		}
	}
}
