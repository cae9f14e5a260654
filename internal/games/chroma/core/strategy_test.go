package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
)

func blk(c core.Color, s core.Size) core.Block {
	return core.Block{Color: c, Size: s}
}

func allStrategies() []core.Strategy {
	opts := core.DefaultStrategyOptions()
	var out []core.Strategy
	for _, m := range core.AllModes() {
		out = append(out, core.NewStrategy(m, opts))
	}
	return out
}

// allBlocks enumerates every color/size pair plus an indicator.
func allBlocks() []core.Block {
	var out []core.Block
	for _, c := range core.AllColors() {
		for _, s := range []core.Size{core.SizeNone, core.SizeSmall, core.SizeMedium, core.SizeLarge} {
			out = append(out, blk(c, s))
		}
	}
	out = append(out, core.Block{Color: core.ColorWhite, Size: core.SizeSmall, Indicator: true})
	return out
}

func TestCanMergeSymmetric(t *testing.T) {
	for _, s := range allStrategies() {
		t.Run(s.Mode().String(), func(t *testing.T) {
			for _, a := range allBlocks() {
				for _, b := range allBlocks() {
					if s.CanMerge(a, b) != s.CanMerge(b, a) {
						t.Errorf("CanMerge not symmetric for %+v / %+v", a, b)
					}
				}
			}
		})
	}
}

func TestCanMergeRejectsIndicatorAndNone(t *testing.T) {
	ind := core.Block{Color: core.ColorRed, Size: core.SizeSmall, Indicator: true}
	none := blk(core.ColorNone, core.SizeSmall)
	for _, s := range allStrategies() {
		for _, b := range allBlocks() {
			if s.CanMerge(ind, b) {
				t.Errorf("%v: indicator merged with %+v", s.Mode(), b)
			}
			if s.CanMerge(none, b) {
				t.Errorf("%v: colorless block merged with %+v", s.Mode(), b)
			}
		}
	}
}

func TestStandardRules(t *testing.T) {
	s := core.Standard{}
	testCases := []struct {
		name     string
		a, b     core.Block
		canMerge bool
		outcome  core.Outcome
	}{
		{
			name:     "small pair",
			a:        blk(core.ColorRed, core.SizeSmall),
			b:        blk(core.ColorRed, core.SizeSmall),
			canMerge: true,
			outcome:  core.Outcome{Color: core.ColorRed, Size: core.SizeMedium, Tier: core.Tier1},
		},
		{
			name:     "medium pair",
			a:        blk(core.ColorCyan, core.SizeMedium),
			b:        blk(core.ColorCyan, core.SizeMedium),
			canMerge: true,
			outcome:  core.Outcome{Color: core.ColorCyan, Size: core.SizeLarge, Tier: core.Tier2},
		},
		{
			name:     "large pair clears",
			a:        blk(core.ColorBlue, core.SizeLarge),
			b:        blk(core.ColorBlue, core.SizeLarge),
			canMerge: true,
			outcome:  core.Outcome{Color: core.ColorBlue, Size: core.SizeLarge, Tier: core.Tier3, Annihilate: true},
		},
		{
			name: "different color",
			a:    blk(core.ColorRed, core.SizeSmall),
			b:    blk(core.ColorGreen, core.SizeSmall),
		},
		{
			name: "different size",
			a:    blk(core.ColorRed, core.SizeSmall),
			b:    blk(core.ColorRed, core.SizeMedium),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.CanMerge(tc.a, tc.b); got != tc.canMerge {
				t.Fatalf("CanMerge = %v, want %v", got, tc.canMerge)
			}
			if !tc.canMerge {
				return
			}
			if got := s.Resolve(tc.a, tc.b); got != tc.outcome {
				t.Errorf("Resolve = %+v, want %+v", got, tc.outcome)
			}
		})
	}
}

func TestColorMergeRules(t *testing.T) {
	s := core.ColorMerge{}
	testCases := []struct {
		name     string
		a, b     core.Block
		canMerge bool
		outcome  core.Outcome
	}{
		{
			name:     "two primaries",
			a:        blk(core.ColorRed, core.SizeSmall),
			b:        blk(core.ColorGreen, core.SizeMedium),
			canMerge: true,
			outcome:  core.Outcome{Color: core.ColorYellow, Size: core.SizeMedium, Tier: core.Tier1},
		},
		{
			name:     "secondary and missing primary",
			a:        blk(core.ColorBlue, core.SizeSmall),
			b:        blk(core.ColorYellow, core.SizeLarge),
			canMerge: true,
			outcome:  core.Outcome{Color: core.ColorWhite, Size: core.SizeLarge, Tier: core.Tier3, Annihilate: true},
		},
		{
			name: "secondary and contained primary",
			a:    blk(core.ColorRed, core.SizeSmall),
			b:    blk(core.ColorYellow, core.SizeSmall),
		},
		{
			name: "two secondaries",
			a:    blk(core.ColorYellow, core.SizeSmall),
			b:    blk(core.ColorCyan, core.SizeSmall),
		},
		{
			name: "same primary",
			a:    blk(core.ColorRed, core.SizeSmall),
			b:    blk(core.ColorRed, core.SizeSmall),
		},
		{
			name: "white never merges",
			a:    blk(core.ColorWhite, core.SizeSmall),
			b:    blk(core.ColorRed, core.SizeSmall),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.CanMerge(tc.a, tc.b); got != tc.canMerge {
				t.Fatalf("CanMerge = %v, want %v", got, tc.canMerge)
			}
			if !tc.canMerge {
				return
			}
			if got := s.Resolve(tc.a, tc.b); got != tc.outcome {
				t.Errorf("Resolve = %+v, want %+v", got, tc.outcome)
			}
		})
	}
}

func TestAdvancedColorMergeRules(t *testing.T) {
	s := core.AdvancedColorMerge{Tiers: core.DefaultAdvancedTiers()}
	testCases := []struct {
		name     string
		a, b     core.Block
		canMerge bool
		outcome  core.Outcome
	}{
		{
			name:     "small same primary",
			a:        blk(core.ColorGreen, core.SizeSmall),
			b:        blk(core.ColorGreen, core.SizeSmall),
			canMerge: true,
			outcome:  core.Outcome{Color: core.ColorGreen, Size: core.SizeMedium, Tier: core.Tier1},
		},
		{
			name:     "medium different primaries",
			a:        blk(core.ColorRed, core.SizeMedium),
			b:        blk(core.ColorBlue, core.SizeMedium),
			canMerge: true,
			outcome:  core.Outcome{Color: core.ColorMagenta, Size: core.SizeLarge, Tier: core.Tier2},
		},
		{
			name:     "large secondary with missing medium primary",
			a:        blk(core.ColorMagenta, core.SizeLarge),
			b:        blk(core.ColorGreen, core.SizeMedium),
			canMerge: true,
			outcome:  core.Outcome{Color: core.ColorWhite, Size: core.SizeLarge, Tier: core.Tier3},
		},
		{
			name:     "medium primary into large secondary",
			a:        blk(core.ColorGreen, core.SizeMedium),
			b:        blk(core.ColorMagenta, core.SizeLarge),
			canMerge: true,
			outcome:  core.Outcome{Color: core.ColorWhite, Size: core.SizeLarge, Tier: core.Tier3},
		},
		{
			name:     "large white pair clears",
			a:        blk(core.ColorWhite, core.SizeLarge),
			b:        blk(core.ColorWhite, core.SizeLarge),
			canMerge: true,
			outcome:  core.Outcome{Color: core.ColorWhite, Size: core.SizeLarge, Tier: core.Tier4, Annihilate: true},
		},
		{
			name: "small secondary pair",
			a:    blk(core.ColorYellow, core.SizeSmall),
			b:    blk(core.ColorYellow, core.SizeSmall),
		},
		{
			name: "medium same primary",
			a:    blk(core.ColorRed, core.SizeMedium),
			b:    blk(core.ColorRed, core.SizeMedium),
		},
		{
			name: "large secondary with wrong primary",
			a:    blk(core.ColorMagenta, core.SizeLarge),
			b:    blk(core.ColorRed, core.SizeMedium),
		},
		{
			name: "large secondary with small missing primary",
			a:    blk(core.ColorMagenta, core.SizeLarge),
			b:    blk(core.ColorGreen, core.SizeSmall),
		},
		{
			name: "small white pair",
			a:    blk(core.ColorWhite, core.SizeSmall),
			b:    blk(core.ColorWhite, core.SizeSmall),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.CanMerge(tc.a, tc.b); got != tc.canMerge {
				t.Fatalf("CanMerge = %v, want %v", got, tc.canMerge)
			}
			if !tc.canMerge {
				return
			}
			if got := s.Resolve(tc.a, tc.b); got != tc.outcome {
				t.Errorf("Resolve = %+v, want %+v", got, tc.outcome)
			}
		})
	}
}

func TestAdvancedTiersConfigurable(t *testing.T) {
	tiers := core.AdvancedTiers{
		SmallPair:  core.Tier1,
		MediumPair: core.Tier1,
		WhiteForge: core.Tier1,
		WhiteClear: core.Tier1,
	}
	s := core.NewStrategy(core.ModeAdvanced, core.StrategyOptions{AdvancedTiers: tiers})
	out := s.Resolve(blk(core.ColorWhite, core.SizeLarge), blk(core.ColorWhite, core.SizeLarge))
	if out.Tier != core.Tier1 {
		t.Errorf("expected configured Tier1, got %v", out.Tier)
	}

	// Zero tiers fall back to the defaults.
	s = core.NewStrategy(core.ModeAdvanced, core.StrategyOptions{})
	out = s.Resolve(blk(core.ColorWhite, core.SizeLarge), blk(core.ColorWhite, core.SizeLarge))
	if out.Tier != core.Tier4 {
		t.Errorf("expected default Tier4, got %v", out.Tier)
	}
}

func TestResolvePanicsOnIllegalPair(t *testing.T) {
	for _, s := range allStrategies() {
		t.Run(s.Mode().String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			s.Resolve(blk(core.ColorRed, core.SizeSmall), blk(core.ColorNone, core.SizeNone))
		})
	}
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		input string
		mode  core.Mode
		ok    bool
	}{
		{"standard", core.ModeStandard, true},
		{"color", core.ModeColorMerge, true},
		{"color_merge", core.ModeColorMerge, true},
		{"advanced", core.ModeAdvanced, true},
		{"Advanced_Color_Merge", core.ModeAdvanced, true},
		{"chess", core.ModeStandard, false},
	}

	for _, tc := range testCases {
		mode, ok := core.ParseMode(tc.input)
		if mode != tc.mode || ok != tc.ok {
			t.Errorf("ParseMode(%q) = (%v, %v), want (%v, %v)", tc.input, mode, ok, tc.mode, tc.ok)
		}
	}

	for _, m := range core.AllModes() {
		if back, ok := core.ParseMode(m.String()); !ok || back != m {
			t.Errorf("ParseMode(%q) did not round-trip", m.String())
		}
		if core.NewStrategy(m, core.DefaultStrategyOptions()).Mode() != m {
			t.Errorf("NewStrategy(%v) built the wrong strategy", m)
		}
	}
}
