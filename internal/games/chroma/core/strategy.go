package core

import (
	"fmt"
	"strings"
)

// ScoreTier is a scoring bucket for a merge.
type ScoreTier uint8

const (
	TierNone ScoreTier = iota
	Tier1
	Tier2
	Tier3
	Tier4
)

// String returns the tier name.
func (t ScoreTier) String() string {
	switch t {
	case Tier1:
		return "tier1"
	case Tier2:
		return "tier2"
	case Tier3:
		return "tier3"
	case Tier4:
		return "tier4"
	default:
		return "none"
	}
}

// ParseTier converts "tier1".."tier4" (or "1".."4") to a ScoreTier.
func ParseTier(s string) (ScoreTier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tier1", "1":
		return Tier1, true
	case "tier2", "2":
		return Tier2, true
	case "tier3", "3":
		return Tier3, true
	case "tier4", "4":
		return Tier4, true
	case "none", "0":
		return TierNone, true
	default:
		return TierNone, false
	}
}

// Mode selects the active rule set.
type Mode uint8

const (
	ModeStandard Mode = iota
	ModeColorMerge
	ModeAdvanced
)

// AllModes returns the modes in menu order.
func AllModes() []Mode {
	return []Mode{ModeStandard, ModeColorMerge, ModeAdvanced}
}

// String returns the configuration key for the mode.
func (m Mode) String() string {
	switch m {
	case ModeColorMerge:
		return "color_merge"
	case ModeAdvanced:
		return "advanced_color_merge"
	default:
		return "standard"
	}
}

// Title returns the display name.
func (m Mode) Title() string {
	switch m {
	case ModeColorMerge:
		return "Color Merge"
	case ModeAdvanced:
		return "Advanced Color Merge"
	default:
		return "Standard"
	}
}

// Description is the short blurb shown in the mode selector.
func (m Mode) Description() string {
	switch m {
	case ModeColorMerge:
		return "Combine primary colors to make secondary.\nSecondary + Primary = White (clears)"
	case ModeAdvanced:
		return "Merge by size and color.\nBuild up to White blocks, then clear"
	default:
		return "Match color and size to merge.\nSmall -> Medium -> Large -> Clear"
	}
}

// Instructions returns the in-game rule lines.
func (m Mode) Instructions() []string {
	switch m {
	case ModeColorMerge:
		return []string{
			"Combine primary colors:",
			"R+G=Yellow  R+B=Magenta  G+B=Cyan",
			"Secondary + missing primary = White (clears)",
		}
	case ModeAdvanced:
		return []string{
			"Small same color -> Medium",
			"Medium primary colors -> Large secondary",
			"Large secondary + missing Medium primary -> White",
			"White + White -> Clear",
		}
	default:
		return []string{
			"Merge matching tiles",
			"Small -> Medium -> Large -> Clear",
		}
	}
}

// ParseMode converts a configuration key to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "classic":
		return ModeStandard, true
	case "color", "color_merge", "colormerge":
		return ModeColorMerge, true
	case "advanced", "advanced_color_merge", "advancedcolormerge":
		return ModeAdvanced, true
	default:
		return ModeStandard, false
	}
}

// Outcome is the result of resolving a merge between two blocks.
type Outcome struct {
	Color      Color
	Size       Size
	Tier       ScoreTier
	Annihilate bool // Both blocks are removed; Color is the combined color
}

// Strategy is a merge rule set.
//
// CanMerge is symmetric and false whenever either block is an indicator or
// colorless. Resolve may only be called for pairs CanMerge accepts; a is the
// moving block and b the block it runs into (the absorbing block).
// Resolving a non-mergeable pair panics.
type Strategy interface {
	Mode() Mode
	CanMerge(a, b Block) bool
	Resolve(a, b Block) Outcome
}

// AdvancedTiers assigns a score tier to each advanced merge rule.
type AdvancedTiers struct {
	SmallPair  ScoreTier // Small + Small same primary -> Medium
	MediumPair ScoreTier // Medium primaries -> Large secondary
	WhiteForge ScoreTier // Large secondary + Medium missing primary -> Large White
	WhiteClear ScoreTier // Large White + Large White -> clear
}

// DefaultAdvancedTiers escalates the reward with each rule.
func DefaultAdvancedTiers() AdvancedTiers {
	return AdvancedTiers{
		SmallPair:  Tier1,
		MediumPair: Tier2,
		WhiteForge: Tier3,
		WhiteClear: Tier4,
	}
}

// StrategyOptions tunes strategy construction.
type StrategyOptions struct {
	AdvancedTiers AdvancedTiers
}

// DefaultStrategyOptions returns options with the default tiers.
func DefaultStrategyOptions() StrategyOptions {
	return StrategyOptions{AdvancedTiers: DefaultAdvancedTiers()}
}

// NewStrategy builds the strategy for a mode. Unknown modes get Standard.
// Zero advanced tiers are replaced by the defaults.
func NewStrategy(mode Mode, opts StrategyOptions) Strategy {
	switch mode {
	case ModeColorMerge:
		return ColorMerge{}
	case ModeAdvanced:
		tiers := opts.AdvancedTiers
		if tiers == (AdvancedTiers{}) {
			tiers = DefaultAdvancedTiers()
		}
		return AdvancedColorMerge{Tiers: tiers}
	default:
		return Standard{}
	}
}

// mergeCandidate is the precondition shared by all strategies.
func mergeCandidate(a, b Block) bool {
	return !a.Indicator && !b.Indicator && a.Color != ColorNone && b.Color != ColorNone
}

func invalidMerge(s Strategy, a, b Block) string {
	return fmt.Sprintf("core: %s cannot resolve %s %s with %s %s",
		s.Mode(), a.Size, a.Color, b.Size, b.Color)
}
