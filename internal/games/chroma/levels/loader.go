// Package levels loads hand-made Chroma puzzles.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma/levels/formats"
)

//go:embed puzzles/*.yaml
var builtinFS embed.FS

// Level is a complete puzzle definition.
type Level struct {
	ID        string
	Name      string
	Mode      core.Mode
	SpawnNext bool
	Win       core.WinCondition
	Board     *core.Board
	Solution  []core.Dir
	Metadata  map[string]string
	FilePath  string
}

// Settings overlays the puzzle's rules on base. Points and advanced
// tiers come from base; the grid comes from the board.
func (l *Level) Settings(base core.Settings) core.Settings {
	s := base
	g := l.Board.Grid()
	s.Width, s.Height = g.W, g.H
	s.Mode = l.Mode
	s.SpawnNext = l.SpawnNext
	s.Win = l.Win
	return s
}

// NewController starts a round controller on the puzzle board.
func (l *Level) NewController(base core.Settings, seed int64) *core.Controller {
	return core.NewControllerWithBoard(l.Settings(base), l.Board, seed)
}

// Loader handles loading puzzles from a file tree.
type Loader struct {
	fsys fs.FS
	Root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), Root: root}
}

// Builtin returns a loader for the puzzles shipped with the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "puzzles")
	if err != nil {
		panic(err)
	}
	return &Loader{fsys: sub, Root: "builtin"}
}

// LoadAll recursively scans and loads all puzzle files.
// Invalid files are skipped with a warning. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return err
		}
		level, err := parse(data, p)
		if err != nil {
			log.Warn("levels: skipping puzzle", "root", l.Root, "file", p, "err", err)
			return nil
		}
		level.FilePath = filepath.Join(l.Root, filepath.FromSlash(p))
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadByID loads a specific puzzle by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("puzzle not found: %s", id)
}

// ListIDs returns all puzzle IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadFile loads a single puzzle file from disk.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	level, err := parse(data, p)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

// Resolve finds a puzzle by file path or, failing that, by built-in ID.
func Resolve(ref string) (Level, error) {
	if isSupportedExtension(strings.ToLower(filepath.Ext(ref))) {
		if _, err := os.Stat(ref); err == nil {
			return LoadFile(ref)
		}
	}
	return Builtin().LoadByID(ref)
}

func parse(data []byte, p string) (Level, error) {
	ext := strings.ToLower(path.Ext(filepath.ToSlash(p)))
	switch ext {
	case ".yaml", ".yml":
		pz, err := formats.ParseYAML(data)
		if err != nil {
			return Level{}, err
		}
		return Level{
			ID:        pz.ID,
			Name:      pz.Name,
			Mode:      pz.Mode,
			SpawnNext: pz.SpawnNext,
			Win:       pz.Win,
			Board:     pz.Board,
			Solution:  pz.Solution,
			Metadata:  pz.Metadata,
		}, nil
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
