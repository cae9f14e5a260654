package core

import (
	"fmt"
	"strings"
)

// RenderASCII draws the board one row per line, cells separated by spaces.
// Used for debugging, golden test output and the headless simulator.
//
// Cell tokens:
//   - ".." empty
//   - "**" indicator
//   - color letter + size letter otherwise, e.g. "Rs" (small red), "Wl" (large white)
func RenderASCII(b *Board) string {
	var sb strings.Builder
	g := b.Grid()
	for y := range g.H {
		for x := range g.W {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cellToken(b, C(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellToken(b *Board, pos Coord) string {
	blk, ok := b.At(pos)
	switch {
	case !ok:
		return ".."
	case blk.Indicator:
		return "**"
	default:
		return string([]rune{blk.Color.Char(), blk.Size.Char()})
	}
}

// RenderStatus formats a one-line status summary.
func RenderStatus(s Status) string {
	state := "Your turn..."
	switch {
	case s.GameOver:
		state = "Grid Full!"
	case s.LevelComplete:
		state = "Level Complete!"
	case !s.WaitingForInput:
		state = "Processing..."
	}
	return fmt.Sprintf("Mode: %s | Moves: %d | Score: %d (+%d) | %s",
		s.Mode.Title(), s.MoveCount, s.TotalScore, s.RoundScore, state)
}

// ParseBoard builds a board from the RenderASCII format. Blocks are created
// in row-major order, so ids follow reading order. All rows must have the
// same number of cells.
func ParseBoard(text string) (*Board, error) {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("core: parse board: no rows")
	}

	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("core: parse board: row %d has %d cells, want %d", y, len(row), w)
		}
	}

	b := NewBoard(NewGrid(w, len(rows)))
	for y, row := range rows {
		for x, tok := range row {
			if err := placeToken(b, C(x, y), tok); err != nil {
				return nil, fmt.Errorf("core: parse board: %w", err)
			}
		}
	}
	return b, nil
}

func placeToken(b *Board, pos Coord, tok string) error {
	switch tok {
	case ".", "..":
		return nil
	case "*", "**":
		b.PlaceIndicator(pos)
		return nil
	}
	if len(tok) != 2 {
		return fmt.Errorf("bad cell %q at %v", tok, pos)
	}
	color, ok := ParseColor(tok[:1])
	if !ok || color == ColorNone {
		return fmt.Errorf("bad color in %q at %v", tok, pos)
	}
	size, ok := ParseSize(tok[1:])
	if !ok || size == SizeNone {
		return fmt.Errorf("bad size in %q at %v", tok, pos)
	}
	b.Place(pos, color, size, false)
	return nil
}
