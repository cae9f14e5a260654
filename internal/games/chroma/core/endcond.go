package core

// HasAdjacentMerge reports whether any two orthogonally adjacent blocks can
// merge under s. Returns on the first hit.
func HasAdjacentMerge(b *Board, s Strategy) bool {
	for _, blk := range b.Blocks() {
		for _, d := range AllDirs() {
			n, ok := b.At(blk.Pos.Step(d))
			if ok && s.CanMerge(blk, n) {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether the board is full and no merge remains.
func IsGameOver(b *Board, s Strategy) bool {
	return !b.HasEmptyCell() && !HasAdjacentMerge(b, s)
}

// WinCondition defines when a level counts as complete.
// The zero value never completes.
type WinCondition struct {
	TargetScore int  // Complete once the total reaches this; 0 disables
	ClearBoard  bool // Complete once every colored block has been cleared
}

// Reached evaluates the condition. A cleared board only counts after at least
// one annihilation, so a fresh board holding just the indicator never wins.
func (w WinCondition) Reached(b *Board, total, annihilations int) bool {
	if w.TargetScore > 0 && total >= w.TargetScore {
		return true
	}
	return w.ClearBoard && annihilations > 0 && b.ColoredCount() == 0
}
