package core

import (
	"fmt"
	"sort"
)

// MergeEvent records one merge resolved during a move.
type MergeEvent struct {
	Pos         Coord // Cell of the absorbing block
	Tier        ScoreTier
	Color       Color // Resulting color (White for color annihilations)
	Size        Size  // Resulting size
	Annihilated bool
	MoverSize   Size
	Mover       BlockID
	Target      BlockID
}

// BlockMove records a one-cell slide.
type BlockMove struct {
	ID   BlockID
	From Coord
	To   Coord
}

// MoveResult is the outcome of resolving one move.
type MoveResult struct {
	Board         *Board
	Events        []MergeEvent
	Moved         []BlockMove
	Removed       []BlockID
	Annihilations int
	Absorptions   int
}

// Changed reports whether the move altered the board.
func (r MoveResult) Changed() bool {
	return len(r.Moved) > 0 || len(r.Removed) > 0
}

// Resolve applies one move in direction d to a copy of b using strategy s.
//
// Blocks are processed leading edge first (descending projection onto d,
// ties by ascending id) in a single pass. Each block advances at most one
// cell: into an empty cell, into a merge with the block ahead, or not at all.
// A block that has absorbed another cannot take part in a second merge in the
// same pass. Indicator blocks never move and act as obstacles.
//
// The input board is never modified. A non-cardinal direction panics.
func Resolve(b *Board, d Dir, s Strategy) MoveResult {
	if !d.Valid() {
		panic(fmt.Sprintf("core: resolve with non-cardinal direction %d", d))
	}

	next := b.Clone()
	res := MoveResult{Board: next}

	order := make([]Block, 0, next.Count())
	for _, blk := range next.Blocks() {
		if !blk.Indicator {
			order = append(order, blk)
		}
	}
	// Blocks() is id-ordered, so a stable sort keeps the id tie-break.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Pos.Project(d) > order[j].Pos.Project(d)
	})

	mergedInto := make(map[BlockID]bool)

	for _, queued := range order {
		mover, alive := next.Get(queued.ID)
		if !alive {
			continue
		}

		target := mover.Pos.Step(d)
		if !next.grid.InBounds(target) {
			continue
		}

		other, occupied := next.At(target)
		if !occupied {
			next.Move(mover.ID, target)
			res.Moved = append(res.Moved, BlockMove{ID: mover.ID, From: mover.Pos, To: target})
			continue
		}

		if mergedInto[mover.ID] || mergedInto[other.ID] || !s.CanMerge(mover, other) {
			continue
		}

		out := s.Resolve(mover, other)
		ev := MergeEvent{
			Pos:         target,
			Tier:        out.Tier,
			Color:       out.Color,
			Size:        out.Size,
			Annihilated: out.Annihilate,
			MoverSize:   mover.Size,
			Mover:       mover.ID,
			Target:      other.ID,
		}
		if out.Annihilate {
			next.Remove(mover.ID)
			next.Remove(other.ID)
			res.Removed = append(res.Removed, mover.ID, other.ID)
			res.Annihilations++
		} else {
			next.set(other.ID, out.Color, out.Size, false)
			next.Remove(mover.ID)
			mergedInto[other.ID] = true
			res.Removed = append(res.Removed, mover.ID)
			res.Absorptions++
		}
		res.Events = append(res.Events, ev)
	}

	return res
}
