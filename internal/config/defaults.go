package config

import (
	_ "embed"
)

//go:embed defaults/chroma.yaml
var defaultChromaYAML []byte

// DefaultChromaConfig returns the built-in configuration.
// It matches defaults/chroma.yaml and is used when no file can be read.
func DefaultChromaConfig() ChromaConfig {
	return ChromaConfig{
		Grid:      GridConfig{Width: 6, Height: 6},
		Mode:      "standard",
		SpawnNext: true,
		Scoring: ScoringConfig{
			Tier1: 10,
			Tier2: 50,
			Tier3: 100,
			Tier4: 200,
		},
		AdvancedTiers: AdvancedTiersConfig{
			SmallPair:  "tier1",
			MediumPair: "tier2",
			WhiteForge: "tier3",
			WhiteClear: "tier4",
		},
		Win: WinConfig{
			TargetScore: 0,
			ClearBoard:  true,
		},
		Palette: DefaultPalette(),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultChromaYAML
}
