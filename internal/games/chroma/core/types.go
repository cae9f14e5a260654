// Package core provides the move-resolution and merge-rule engine for the
// Chroma puzzle game. This package is UI-agnostic, single-threaded and
// deterministic: identical boards, directions, strategies and seeds always
// produce identical results.
package core

import "fmt"

// Dir represents a cardinal move direction.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "None"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Dir) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// DirFromDelta converts a unit vector to a direction.
// Returns false unless |dx|+|dy| == 1.
func DirFromDelta(dx, dy int) (Dir, bool) {
	switch {
	case dx == 0 && dy == -1:
		return DirUp, true
	case dx == 1 && dy == 0:
		return DirRight, true
	case dx == 0 && dy == 1:
		return DirDown, true
	case dx == -1 && dy == 0:
		return DirLeft, true
	default:
		return DirNone, false
	}
}

// ParseDir converts a move letter (u, d, l, r in either case) to a Dir.
func ParseDir(r rune) (Dir, bool) {
	switch r {
	case 'u', 'U':
		return DirUp, true
	case 'd', 'D':
		return DirDown, true
	case 'l', 'L':
		return DirLeft, true
	case 'r', 'R':
		return DirRight, true
	default:
		return DirNone, false
	}
}

// ParseMoves converts a move string such as "l u r d" or "LURD" into
// directions. Whitespace and commas are ignored.
func ParseMoves(s string) ([]Dir, error) {
	var moves []Dir
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', ',':
			continue
		}
		d, ok := ParseDir(r)
		if !ok {
			return nil, fmt.Errorf("core: unknown move %q", r)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// AllDirs returns the four cardinal directions.
func AllDirs() []Dir {
	return []Dir{DirUp, DirRight, DirDown, DirLeft}
}

// Coord represents a 2D cell coordinate on the grid.
// X increases to the right, Y increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Project returns the projection of c onto the direction vector.
// Larger values are nearer the leading edge when travelling in d.
func (c Coord) Project(d Dir) int {
	dx, dy := d.Delta()
	return c.X*dx + c.Y*dy
}
