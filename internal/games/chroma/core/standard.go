package core

// Standard merges blocks of the same color and size.
// Small -> Medium -> Large, and two Large blocks clear each other.
type Standard struct{}

// Mode implements Strategy.
func (Standard) Mode() Mode { return ModeStandard }

// CanMerge implements Strategy.
func (Standard) CanMerge(a, b Block) bool {
	return mergeCandidate(a, b) &&
		a.Color == b.Color &&
		a.Size == b.Size &&
		a.Size != SizeNone
}

// Resolve implements Strategy.
func (s Standard) Resolve(a, b Block) Outcome {
	if !s.CanMerge(a, b) {
		panic(invalidMerge(s, a, b))
	}
	switch a.Size {
	case SizeSmall:
		return Outcome{Color: b.Color, Size: SizeMedium, Tier: Tier1}
	case SizeMedium:
		return Outcome{Color: b.Color, Size: SizeLarge, Tier: Tier2}
	default:
		return Outcome{Color: b.Color, Size: SizeLarge, Tier: Tier3, Annihilate: true}
	}
}
