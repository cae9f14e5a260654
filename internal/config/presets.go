package config

import (
	"fmt"
	"strings"
)

// Preset is a named starting setup offered in the menu and on the CLI.
type Preset string

const (
	PresetClassic  Preset = "classic"
	PresetCompact  Preset = "compact"
	PresetPrism    Preset = "prism"
	PresetSpectrum Preset = "spectrum"
	PresetSandbox  Preset = "sandbox"
)

// PresetInfo describes a preset for display.
type PresetInfo struct {
	Preset      Preset
	Title       string
	Description string
}

var presetInfos = []PresetInfo{
	{PresetClassic, "Classic", "6x6 standard merges"},
	{PresetCompact, "Compact", "4x4 standard merges, little room"},
	{PresetPrism, "Prism", "6x6 color merges"},
	{PresetSpectrum, "Spectrum", "7x7 advanced color merges"},
	{PresetSandbox, "Sandbox", "8x8 color merges, no win condition"},
}

// Presets returns all presets in menu order.
func Presets() []PresetInfo {
	out := make([]PresetInfo, len(presetInfos))
	copy(out, presetInfos)
	return out
}

// ParsePreset converts a name to a Preset.
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	for _, info := range presetInfos {
		if info.Preset == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q", name)
}

// ApplyPreset overrides grid, mode, spawning and win condition.
// Scoring and palette are left as configured.
func ApplyPreset(cfg *ChromaConfig, p Preset) {
	switch p {
	case PresetClassic:
		cfg.Grid = GridConfig{Width: 6, Height: 6}
		cfg.Mode = "standard"
	case PresetCompact:
		cfg.Grid = GridConfig{Width: 4, Height: 4}
		cfg.Mode = "standard"
	case PresetPrism:
		cfg.Grid = GridConfig{Width: 6, Height: 6}
		cfg.Mode = "color_merge"
	case PresetSpectrum:
		cfg.Grid = GridConfig{Width: 7, Height: 7}
		cfg.Mode = "advanced_color_merge"
	case PresetSandbox:
		cfg.Grid = GridConfig{Width: 8, Height: 8}
		cfg.Mode = "color_merge"
		cfg.Win = WinConfig{}
	default:
		return
	}
	cfg.SpawnNext = true
}
