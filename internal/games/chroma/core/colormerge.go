package core

// ColorMerge combines colors regardless of size.
// Two primaries make a secondary; a secondary and its missing primary make
// white, which clears both blocks. Two secondaries never merge.
type ColorMerge struct{}

// Mode implements Strategy.
func (ColorMerge) Mode() Mode { return ModeColorMerge }

// CanMerge implements Strategy.
func (ColorMerge) CanMerge(a, b Block) bool {
	if !mergeCandidate(a, b) || a.Color == b.Color {
		return false
	}
	if a.Color == ColorWhite || b.Color == ColorWhite {
		return false
	}
	switch {
	case IsPrimary(a.Color) && IsPrimary(b.Color):
		return true
	case IsSecondary(a.Color) && IsPrimary(b.Color):
		return MissingPrimary(a.Color, b.Color)
	case IsPrimary(a.Color) && IsSecondary(b.Color):
		return MissingPrimary(b.Color, a.Color)
	default:
		return false
	}
}

// Resolve implements Strategy. The absorbing block keeps its size.
func (s ColorMerge) Resolve(a, b Block) Outcome {
	if !s.CanMerge(a, b) {
		panic(invalidMerge(s, a, b))
	}
	result := Combine(a.Color, b.Color)
	if result == ColorWhite {
		return Outcome{Color: ColorWhite, Size: b.Size, Tier: Tier3, Annihilate: true}
	}
	return Outcome{Color: result, Size: b.Size, Tier: Tier1}
}
