package core

import (
	"fmt"
	"sort"
)

// Grid sizes accepted from configuration and puzzle files.
const (
	MinGridSize = 2
	MaxGridSize = 12
)

// ValidGridSize reports whether w x h is within the accepted grid sizes.
func ValidGridSize(w, h int) bool {
	return w >= MinGridSize && w <= MaxGridSize && h >= MinGridSize && h <= MaxGridSize
}

// Grid holds the immutable board dimensions.
type Grid struct {
	W int // Width of the grid
	H int // Height of the grid
}

// NewGrid creates a grid. Non-positive dimensions are a programming error.
func NewGrid(w, h int) Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	return Grid{W: w, H: h}
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Area returns the number of cells.
func (g Grid) Area() int {
	return g.W * g.H
}

// Cells returns every coordinate of the grid in row-major order.
func (g Grid) Cells() []Coord {
	cells := make([]Coord, 0, g.Area())
	for y := range g.H {
		for x := range g.W {
			cells = append(cells, C(x, y))
		}
	}
	return cells
}

// BlockID identifies a block. IDs are assigned in creation order and never reused
// within a board's lineage.
type BlockID uint64

// Block is a single occupied cell.
type Block struct {
	ID        BlockID
	Pos       Coord
	Color     Color
	Size      Size
	Indicator bool // Next-piece placeholder; becomes a random Small primary
}

// Board is the grid plus its block set and a position index.
// No two blocks ever share a cell.
type Board struct {
	grid   Grid
	blocks map[BlockID]*Block
	index  map[Coord]BlockID
	nextID BlockID
}

// NewBoard creates an empty board over the grid.
func NewBoard(g Grid) *Board {
	return &Board{
		grid:   g,
		blocks: make(map[BlockID]*Block),
		index:  make(map[Coord]BlockID),
		nextID: 1,
	}
}

// Grid returns the board dimensions.
func (b *Board) Grid() Grid {
	return b.grid
}

// Place creates a new block at pos and returns its id.
// Placing outside the grid or onto an occupied cell panics.
func (b *Board) Place(pos Coord, color Color, size Size, indicator bool) BlockID {
	if !b.grid.InBounds(pos) {
		panic(fmt.Sprintf("core: place out of bounds at %v", pos))
	}
	if other, ok := b.index[pos]; ok {
		panic(fmt.Sprintf("core: place at %v overlaps block %d", pos, other))
	}
	id := b.nextID
	b.nextID++
	b.blocks[id] = &Block{ID: id, Pos: pos, Color: color, Size: size, Indicator: indicator}
	b.index[pos] = id
	return id
}

// PlaceIndicator places a next-piece indicator block.
func (b *Board) PlaceIndicator(pos Coord) BlockID {
	return b.Place(pos, ColorWhite, SizeSmall, true)
}

// At returns the block occupying pos.
func (b *Board) At(pos Coord) (Block, bool) {
	id, ok := b.index[pos]
	if !ok {
		return Block{}, false
	}
	return *b.blocks[id], true
}

// Occupied reports whether a block sits at pos.
func (b *Board) Occupied(pos Coord) bool {
	_, ok := b.index[pos]
	return ok
}

// Get returns the block with the given id.
func (b *Board) Get(id BlockID) (Block, bool) {
	blk, ok := b.blocks[id]
	if !ok {
		return Block{}, false
	}
	return *blk, true
}

// Remove deletes a block. Unknown ids are ignored.
func (b *Board) Remove(id BlockID) {
	blk, ok := b.blocks[id]
	if !ok {
		return
	}
	delete(b.index, blk.Pos)
	delete(b.blocks, id)
}

// Move relocates a block to an empty in-bounds cell.
// Unknown ids, out-of-bounds targets and occupied targets panic.
func (b *Board) Move(id BlockID, to Coord) {
	blk, ok := b.blocks[id]
	if !ok {
		panic(fmt.Sprintf("core: move of unknown block %d", id))
	}
	if !b.grid.InBounds(to) {
		panic(fmt.Sprintf("core: move of block %d out of bounds to %v", id, to))
	}
	if other, ok := b.index[to]; ok {
		panic(fmt.Sprintf("core: move of block %d onto occupied %v (block %d)", id, to, other))
	}
	delete(b.index, blk.Pos)
	blk.Pos = to
	b.index[to] = id
}

// set overwrites color and size of a block in place.
func (b *Board) set(id BlockID, color Color, size Size, indicator bool) {
	blk := b.blocks[id]
	blk.Color = color
	blk.Size = size
	blk.Indicator = indicator
}

// Blocks returns copies of all blocks sorted by id.
func (b *Board) Blocks() []Block {
	out := make([]Block, 0, len(b.blocks))
	for _, blk := range b.blocks {
		out = append(out, *blk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the number of blocks on the board.
func (b *Board) Count() int {
	return len(b.blocks)
}

// ColoredCount returns the number of non-indicator blocks.
func (b *Board) ColoredCount() int {
	n := 0
	for _, blk := range b.blocks {
		if !blk.Indicator {
			n++
		}
	}
	return n
}

// IndicatorCount returns the number of indicator blocks.
func (b *Board) IndicatorCount() int {
	return len(b.blocks) - b.ColoredCount()
}

// HasEmptyCell returns true if at least one cell is free.
func (b *Board) HasEmptyCell() bool {
	return len(b.index) < b.grid.Area()
}

// EmptyCells returns all free coordinates in row-major order.
func (b *Board) EmptyCells() []Coord {
	cells := make([]Coord, 0, b.grid.Area()-len(b.index))
	for _, c := range b.grid.Cells() {
		if !b.Occupied(c) {
			cells = append(cells, c)
		}
	}
	return cells
}

// Clone returns a deep copy of the board, including the id counter.
func (b *Board) Clone() *Board {
	out := &Board{
		grid:   b.grid,
		blocks: make(map[BlockID]*Block, len(b.blocks)),
		index:  make(map[Coord]BlockID, len(b.index)),
		nextID: b.nextID,
	}
	for id, blk := range b.blocks {
		cp := *blk
		out.blocks[id] = &cp
	}
	for pos, id := range b.index {
		out.index[pos] = id
	}
	return out
}

// Equal returns true if two boards have the same dimensions and blocks.
func (b *Board) Equal(other *Board) bool {
	if b.grid != other.grid || len(b.blocks) != len(other.blocks) {
		return false
	}
	for id, blk := range b.blocks {
		o, ok := other.blocks[id]
		if !ok || *o != *blk {
			return false
		}
	}
	return true
}

// CheckInvariants verifies that the index and the block set agree and that no
// two blocks overlap.
func (b *Board) CheckInvariants() error {
	if len(b.index) != len(b.blocks) {
		return fmt.Errorf("core: index has %d cells for %d blocks", len(b.index), len(b.blocks))
	}
	for id, blk := range b.blocks {
		if !b.grid.InBounds(blk.Pos) {
			return fmt.Errorf("core: block %d out of bounds at %v", id, blk.Pos)
		}
		if got, ok := b.index[blk.Pos]; !ok || got != id {
			return fmt.Errorf("core: block %d at %v not indexed (index has %d)", id, blk.Pos, got)
		}
	}
	return nil
}
