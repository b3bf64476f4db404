package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"dense": {
		Width: FitOutput, Height: FitOutput,
		HexSize: 6, DotRatio: 0.45, DotRadius: 1, IntervalMs: 180, Theme: "classic",
		Colors:   ColorConfig{Background: DefaultBackground, Dot: DefaultDotColor, DotAlpha: 1},
		Terminal: TerminalConfig{CellScale: 1.5},
	},
	"sparse": {
		Width: FitOutput, Height: FitOutput,
		HexSize: 14, DotRatio: 0.1, DotRadius: 1.5, IntervalMs: 240, Theme: "classic",
		Colors:   ColorConfig{Background: DefaultBackground, Dot: DefaultDotColor, DotAlpha: 1},
		Terminal: TerminalConfig{CellScale: 3.5},
	},
	"fast": {
		Width: FitOutput, Height: FitOutput,
		HexSize: 10, DotRatio: 0.3, DotRadius: 1, IntervalMs: 60, Theme: "classic",
		Colors:   ColorConfig{Background: DefaultBackground, Dot: DefaultDotColor, DotAlpha: 1},
		Terminal: TerminalConfig{CellScale: DefaultCellScale},
	},
	"ember": {
		Width: FitOutput, Height: FitOutput,
		HexSize: 10, DotRatio: 0.25, DotRadius: 1.2, IntervalMs: 200, Theme: "ember",
		Colors:   ColorConfig{Background: "#2d1b2e", Dot: "#ff9f43", DotAlpha: 0.9},
		Terminal: TerminalConfig{CellScale: DefaultCellScale},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
