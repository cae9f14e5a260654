// Package config provides YAML configuration for Chroma: grid size, merge
// mode, scoring, win condition and the terminal palette.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-chroma/internal/core"
	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
)

// Grid limits accepted from configuration.
const (
	MinGridSize = engine.MinGridSize
	MaxGridSize = engine.MaxGridSize
)

var (
	ErrInvalidGrid    = errors.New("invalid grid size")
	ErrUnknownMode    = errors.New("unknown mode")
	ErrNegativePoints = errors.New("negative points")
	ErrUnknownTier    = errors.New("unknown score tier")
	ErrUnknownColor   = errors.New("unknown palette color")
)

// ChromaConfig is the full game configuration.
type ChromaConfig struct {
	Grid          GridConfig          `yaml:"grid"`
	Mode          string              `yaml:"mode"`
	SpawnNext     bool                `yaml:"spawn_next"`
	Scoring       ScoringConfig       `yaml:"scoring"`
	AdvancedTiers AdvancedTiersConfig `yaml:"advanced_tiers"`
	Win           WinConfig           `yaml:"win"`
	Palette       map[string]string   `yaml:"palette"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines points per merge tier.
type ScoringConfig struct {
	Tier1 int `yaml:"tier1"`
	Tier2 int `yaml:"tier2"`
	Tier3 int `yaml:"tier3"`
	Tier4 int `yaml:"tier4"`
}

// AdvancedTiersConfig names the tier of each advanced merge rule.
type AdvancedTiersConfig struct {
	SmallPair  string `yaml:"small_pair"`
	MediumPair string `yaml:"medium_pair"`
	WhiteForge string `yaml:"white_forge"`
	WhiteClear string `yaml:"white_clear"`
}

// WinConfig defines when a level is complete.
type WinConfig struct {
	TargetScore int  `yaml:"target_score"`
	ClearBoard  bool `yaml:"clear_board"`
}

// Validate reports every invalid field, joined into one error.
func (c ChromaConfig) Validate() error {
	var errs []error

	if !validSize(c.Grid.Width) || !validSize(c.Grid.Height) {
		errs = append(errs, fmt.Errorf("config: %w: %dx%d (allowed %d..%d)",
			ErrInvalidGrid, c.Grid.Width, c.Grid.Height, MinGridSize, MaxGridSize))
	}
	if _, ok := engine.ParseMode(c.Mode); !ok {
		errs = append(errs, fmt.Errorf("config: %w: %q", ErrUnknownMode, c.Mode))
	}
	for name, v := range c.Scoring.byName() {
		if v < 0 {
			errs = append(errs, fmt.Errorf("config: %w: scoring.%s = %d", ErrNegativePoints, name, v))
		}
	}
	for name, v := range c.AdvancedTiers.byName() {
		if _, ok := engine.ParseTier(v); !ok {
			errs = append(errs, fmt.Errorf("config: %w: advanced_tiers.%s = %q", ErrUnknownTier, name, v))
		}
	}
	if c.Win.TargetScore < 0 {
		errs = append(errs, fmt.Errorf("config: %w: win.target_score = %d", ErrNegativePoints, c.Win.TargetScore))
	}
	for key, v := range c.Palette {
		if _, ok := core.ParseColor(v); !ok {
			errs = append(errs, fmt.Errorf("config: %w: palette.%s = %q", ErrUnknownColor, key, v))
		}
	}

	return errors.Join(errs...)
}

// Sanitize replaces invalid values with defaults and returns one warning
// per repaired field.
func (c *ChromaConfig) Sanitize() []string {
	def := DefaultChromaConfig()
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if !validSize(c.Grid.Width) || !validSize(c.Grid.Height) {
		warn("grid %dx%d out of range, using %dx%d", c.Grid.Width, c.Grid.Height, def.Grid.Width, def.Grid.Height)
		c.Grid = def.Grid
	}
	if _, ok := engine.ParseMode(c.Mode); !ok {
		warn("unknown mode %q, using %s", c.Mode, def.Mode)
		c.Mode = def.Mode
	}

	fixPoints := func(name string, v *int, fallback int) {
		if *v < 0 {
			warn("scoring.%s is negative, using %d", name, fallback)
			*v = fallback
		}
	}
	fixPoints("tier1", &c.Scoring.Tier1, def.Scoring.Tier1)
	fixPoints("tier2", &c.Scoring.Tier2, def.Scoring.Tier2)
	fixPoints("tier3", &c.Scoring.Tier3, def.Scoring.Tier3)
	fixPoints("tier4", &c.Scoring.Tier4, def.Scoring.Tier4)

	fixTier := func(name string, v *string, fallback string) {
		if _, ok := engine.ParseTier(*v); !ok {
			warn("advanced_tiers.%s %q unknown, using %s", name, *v, fallback)
			*v = fallback
		}
	}
	fixTier("small_pair", &c.AdvancedTiers.SmallPair, def.AdvancedTiers.SmallPair)
	fixTier("medium_pair", &c.AdvancedTiers.MediumPair, def.AdvancedTiers.MediumPair)
	fixTier("white_forge", &c.AdvancedTiers.WhiteForge, def.AdvancedTiers.WhiteForge)
	fixTier("white_clear", &c.AdvancedTiers.WhiteClear, def.AdvancedTiers.WhiteClear)

	if c.Win.TargetScore < 0 {
		warn("win.target_score is negative, disabling it")
		c.Win.TargetScore = 0
	}

	for key, v := range c.Palette {
		if _, ok := core.ParseColor(v); !ok {
			warn("palette.%s %q unknown, using %s", key, v, def.Palette[key])
			if d, ok := def.Palette[key]; ok {
				c.Palette[key] = d
			} else {
				delete(c.Palette, key)
			}
		}
	}

	return warnings
}

// ModeValue returns the parsed mode, Standard when unknown.
func (c ChromaConfig) ModeValue() engine.Mode {
	m, _ := engine.ParseMode(c.Mode)
	return m
}

// Settings converts the configuration into engine settings.
func (c ChromaConfig) Settings() engine.Settings {
	tier := func(s string, fallback engine.ScoreTier) engine.ScoreTier {
		if t, ok := engine.ParseTier(s); ok {
			return t
		}
		return fallback
	}
	def := engine.DefaultAdvancedTiers()

	return engine.Settings{
		Width:  c.Grid.Width,
		Height: c.Grid.Height,
		Mode:   c.ModeValue(),
		Points: engine.PointTable{
			Tier1: c.Scoring.Tier1,
			Tier2: c.Scoring.Tier2,
			Tier3: c.Scoring.Tier3,
			Tier4: c.Scoring.Tier4,
		},
		Tiers: engine.AdvancedTiers{
			SmallPair:  tier(c.AdvancedTiers.SmallPair, def.SmallPair),
			MediumPair: tier(c.AdvancedTiers.MediumPair, def.MediumPair),
			WhiteForge: tier(c.AdvancedTiers.WhiteForge, def.WhiteForge),
			WhiteClear: tier(c.AdvancedTiers.WhiteClear, def.WhiteClear),
		},
		SpawnNext: c.SpawnNext,
		Win: engine.WinCondition{
			TargetScore: c.Win.TargetScore,
			ClearBoard:  c.Win.ClearBoard,
		},
	}
}

// Clone returns a deep copy.
func (c ChromaConfig) Clone() ChromaConfig {
	out := c
	out.Palette = make(map[string]string, len(c.Palette))
	for k, v := range c.Palette {
		out.Palette[k] = v
	}
	return out
}

func validSize(n int) bool {
	return n >= MinGridSize && n <= MaxGridSize
}

func (s ScoringConfig) byName() map[string]int {
	return map[string]int{"tier1": s.Tier1, "tier2": s.Tier2, "tier3": s.Tier3, "tier4": s.Tier4}
}

func (a AdvancedTiersConfig) byName() map[string]string {
	return map[string]string{
		"small_pair":  a.SmallPair,
		"medium_pair": a.MediumPair,
		"white_forge": a.WhiteForge,
		"white_clear": a.WhiteClear,
	}
}
