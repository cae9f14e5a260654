package core

// advancedRule identifies which advanced merge applies to a pair.
type advancedRule uint8

const (
	ruleNone advancedRule = iota
	ruleSmallPair
	ruleMediumPair
	ruleWhiteForge
	ruleWhiteClear
)

// AdvancedColorMerge merges by size and color:
//
//	Small X + Small X (X primary)           -> Medium X
//	Medium P + Medium Q (P != Q, primaries) -> Large P|Q
//	Large S + Medium P (P missing from S)   -> Large White
//	Large White + Large White               -> clear
type AdvancedColorMerge struct {
	Tiers AdvancedTiers
}

// Mode implements Strategy.
func (AdvancedColorMerge) Mode() Mode { return ModeAdvanced }

// rule classifies a pair, checking rules in priority order.
func (AdvancedColorMerge) rule(a, b Block) advancedRule {
	if !mergeCandidate(a, b) {
		return ruleNone
	}
	switch {
	case a.Size == SizeSmall && b.Size == SizeSmall &&
		a.Color == b.Color && IsPrimary(a.Color):
		return ruleSmallPair
	case a.Size == SizeMedium && b.Size == SizeMedium &&
		IsPrimary(a.Color) && IsPrimary(b.Color) && a.Color != b.Color:
		return ruleMediumPair
	case a.Size == SizeLarge && b.Size == SizeMedium &&
		IsSecondary(a.Color) && MissingPrimary(a.Color, b.Color):
		return ruleWhiteForge
	case a.Size == SizeMedium && b.Size == SizeLarge &&
		IsSecondary(b.Color) && MissingPrimary(b.Color, a.Color):
		return ruleWhiteForge
	case a.Size == SizeLarge && b.Size == SizeLarge &&
		a.Color == ColorWhite && b.Color == ColorWhite:
		return ruleWhiteClear
	default:
		return ruleNone
	}
}

// CanMerge implements Strategy.
func (s AdvancedColorMerge) CanMerge(a, b Block) bool {
	return s.rule(a, b) != ruleNone
}

// Resolve implements Strategy.
func (s AdvancedColorMerge) Resolve(a, b Block) Outcome {
	switch s.rule(a, b) {
	case ruleSmallPair:
		return Outcome{Color: a.Color, Size: SizeMedium, Tier: s.Tiers.SmallPair}
	case ruleMediumPair:
		return Outcome{Color: Combine(a.Color, b.Color), Size: SizeLarge, Tier: s.Tiers.MediumPair}
	case ruleWhiteForge:
		return Outcome{Color: ColorWhite, Size: SizeLarge, Tier: s.Tiers.WhiteForge}
	case ruleWhiteClear:
		return Outcome{Color: ColorWhite, Size: SizeLarge, Tier: s.Tiers.WhiteClear, Annihilate: true}
	default:
		panic(invalidMerge(s, a, b))
	}
}
