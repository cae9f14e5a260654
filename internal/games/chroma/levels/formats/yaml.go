// Package formats provides pluggable puzzle file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
	"gopkg.in/yaml.v3"
)

// YAMLPuzzle represents the YAML structure for a puzzle file.
// The starting board is given either as ASCII rows in Board or as a
// Size plus a Blocks list.
type YAMLPuzzle struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Mode      string            `yaml:"mode"`
	SpawnNext bool              `yaml:"spawn_next"`
	Win       YAMLWin           `yaml:"win"`
	Board     string            `yaml:"board,omitempty"`
	Size      YAMLSize          `yaml:"size,omitempty"`
	Blocks    []YAMLBlock       `yaml:"blocks,omitempty"`
	Solution  string            `yaml:"solution,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLWin mirrors core.WinCondition.
type YAMLWin struct {
	TargetScore int  `yaml:"target_score"`
	ClearBoard  bool `yaml:"clear_board"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLBlock represents a single block in YAML format.
type YAMLBlock struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	C         string `yaml:"c"`
	S         string `yaml:"s"`
	Indicator bool   `yaml:"indicator,omitempty"`
}

// Puzzle is a parsed puzzle ready for use.
type Puzzle struct {
	ID        string
	Name      string
	Mode      core.Mode
	SpawnNext bool
	Win       core.WinCondition
	Board     *core.Board
	Solution  []core.Dir
	Metadata  map[string]string
}

// ParseYAML parses a YAML puzzle file.
func ParseYAML(data []byte) (Puzzle, error) {
	var yp YAMLPuzzle
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Puzzle{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if strings.TrimSpace(yp.ID) == "" {
		return Puzzle{}, errors.New("missing id")
	}

	mode := core.ModeStandard
	if yp.Mode != "" {
		m, ok := core.ParseMode(yp.Mode)
		if !ok {
			return Puzzle{}, fmt.Errorf("unknown mode %q", yp.Mode)
		}
		mode = m
	}
	if yp.Win.TargetScore < 0 {
		return Puzzle{}, fmt.Errorf("negative target score %d", yp.Win.TargetScore)
	}

	board, err := parseBoard(yp)
	if err != nil {
		return Puzzle{}, err
	}

	solution, err := core.ParseMoves(yp.Solution)
	if err != nil {
		return Puzzle{}, fmt.Errorf("solution: %w", err)
	}

	name := yp.Name
	if name == "" {
		name = yp.ID
	}

	return Puzzle{
		ID:        yp.ID,
		Name:      name,
		Mode:      mode,
		SpawnNext: yp.SpawnNext,
		Win:       core.WinCondition{TargetScore: yp.Win.TargetScore, ClearBoard: yp.Win.ClearBoard},
		Board:     board,
		Solution:  solution,
		Metadata:  yp.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func parseBoard(yp YAMLPuzzle) (*core.Board, error) {
	if strings.TrimSpace(yp.Board) != "" {
		if len(yp.Blocks) > 0 {
			return nil, errors.New("board and blocks are mutually exclusive")
		}
		b, err := core.ParseBoard(yp.Board)
		if err != nil {
			return nil, err
		}
		if g := b.Grid(); !core.ValidGridSize(g.W, g.H) {
			return nil, sizeError(g.W, g.H)
		}
		return b, nil
	}

	if !core.ValidGridSize(yp.Size.W, yp.Size.H) {
		return nil, sizeError(yp.Size.W, yp.Size.H)
	}
	b := core.NewBoard(core.NewGrid(yp.Size.W, yp.Size.H))

	for i, blk := range yp.Blocks {
		pos := core.C(blk.X, blk.Y)
		if !b.Grid().InBounds(pos) {
			return nil, fmt.Errorf("block %d: %v out of bounds", i, pos)
		}
		if b.Occupied(pos) {
			return nil, fmt.Errorf("block %d: %v already occupied", i, pos)
		}
		if blk.Indicator {
			b.PlaceIndicator(pos)
			continue
		}

		color, ok := core.ParseColor(blk.C)
		if !ok || color == core.ColorNone {
			return nil, fmt.Errorf("block %d: invalid color %q", i, blk.C)
		}
		size, ok := core.ParseSize(blk.S)
		if !ok || size == core.SizeNone {
			return nil, fmt.Errorf("block %d: invalid size %q", i, blk.S)
		}
		b.Place(pos, color, size, false)
	}
	return b, nil
}

func sizeError(w, h int) error {
	return fmt.Errorf("invalid size %dx%d, want %d..%d per side", w, h, core.MinGridSize, core.MaxGridSize)
}
