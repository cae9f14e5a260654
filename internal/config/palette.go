package config

import (
	"github.com/vovakirdan/tui-chroma/internal/core"
	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
)

// Palette keys besides the seven block colors.
const (
	PaletteIndicator = "indicator"
	PaletteGrid      = "grid"
)

// DefaultPalette maps block colors to bright terminal colors.
func DefaultPalette() map[string]string {
	return map[string]string{
		"red":            "bright_red",
		"green":          "bright_green",
		"blue":           "bright_blue",
		"yellow":         "bright_yellow",
		"magenta":        "bright_magenta",
		"cyan":           "bright_cyan",
		"white":          "bright_white",
		PaletteIndicator: "gray",
		PaletteGrid:      "gray",
	}
}

// Palette resolves block colors to terminal colors.
type Palette struct {
	blocks    map[engine.Color]core.Color
	indicator core.Color
	grid      core.Color
}

// NewPalette builds a palette from configuration entries. Missing or
// unknown entries fall back to the default palette.
func NewPalette(entries map[string]string) Palette {
	def := DefaultPalette()
	resolve := func(key string) core.Color {
		if c, ok := core.ParseColor(entries[key]); ok && entries[key] != "" {
			return c
		}
		c, _ := core.ParseColor(def[key])
		return c
	}

	p := Palette{
		blocks:    make(map[engine.Color]core.Color),
		indicator: resolve(PaletteIndicator),
		grid:      resolve(PaletteGrid),
	}
	for _, bc := range engine.AllColors() {
		if bc == engine.ColorNone {
			continue
		}
		p.blocks[bc] = resolve(bc.String())
	}
	return p
}

// PaletteValue returns the resolved palette of the configuration.
func (c ChromaConfig) PaletteValue() Palette {
	return NewPalette(c.Palette)
}

// Block returns the terminal color of a block color.
func (p Palette) Block(c engine.Color) core.Color {
	if tc, ok := p.blocks[c]; ok {
		return tc
	}
	return core.ColorDefault
}

// Indicator returns the color of next-piece indicators.
func (p Palette) Indicator() core.Color {
	return p.indicator
}

// Grid returns the color of the board frame.
func (p Palette) Grid() core.Color {
	return p.grid
}
