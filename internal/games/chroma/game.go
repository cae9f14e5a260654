// Package chroma adapts the Chroma merge engine to the arcade platform.
package chroma

import (
	"fmt"

	"github.com/vovakirdan/tui-chroma/internal/config"
	"github.com/vovakirdan/tui-chroma/internal/core"
	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma/levels"
	"github.com/vovakirdan/tui-chroma/internal/registry"
)

// Game IDs, one per merge mode.
const (
	IDStandard = "chroma"
	IDColor    = "chroma_color"
	IDAdvanced = "chroma_advanced"
)

const (
	popupTicks = 45 // ~0.75s at 60fps
	feedSize   = 4
)

// Package-level settings shared by every new game.
// Set them before a game is Reset.
var (
	activeConfig = config.DefaultChromaConfig()
	activePuzzle *levels.Level
)

// SetConfig sets the configuration used by subsequent Resets.
func SetConfig(cfg config.ChromaConfig) {
	activeConfig = cfg.Clone()
}

// ActiveConfig returns a copy of the current configuration.
func ActiveConfig() config.ChromaConfig {
	return activeConfig.Clone()
}

// SetPuzzle makes subsequent Resets start from a puzzle. nil restores
// free play.
func SetPuzzle(l *levels.Level) {
	activePuzzle = l
}

// ActivePuzzle returns the current puzzle, or nil in free play.
func ActivePuzzle() *levels.Level {
	return activePuzzle
}

// popup is a "+points" label shown over a merge for a few ticks.
type popup struct {
	pos   engine.Coord
	text  string
	color engine.Color
	ticks int
}

// Game implements registry.Game for one merge mode.
type Game struct {
	id   string
	mode engine.Mode

	pinned       *config.ChromaConfig
	pinnedPuzzle *levels.Level

	cfg     config.ChromaConfig
	palette config.Palette
	puzzle  *levels.Level
	ctrl    *engine.Controller
	seed    int64
	tick    uint64

	last     engine.RoundReport
	played   bool
	popups   []popup
	feed     []string
	paused   bool
	showHelp bool
}

// New creates a game for the given mode.
func New(mode engine.Mode) *Game {
	return &Game{id: IDForMode(mode), mode: mode}
}

func init() {
	for _, m := range engine.AllModes() {
		registry.Register(IDForMode(m), func() registry.Game {
			return New(m)
		})
	}
}

// IDForMode returns the registry ID of a merge mode.
func IDForMode(m engine.Mode) string {
	switch m {
	case engine.ModeColorMerge:
		return IDColor
	case engine.ModeAdvanced:
		return IDAdvanced
	default:
		return IDStandard
	}
}

// ModeForID maps a game ID back to its merge mode.
func ModeForID(id string) (engine.Mode, bool) {
	for _, m := range engine.AllModes() {
		if IDForMode(m) == id {
			return m, true
		}
	}
	return engine.ModeStandard, false
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chroma: " + g.mode.Title()
}

// Description returns the mode blurb for menus.
func (g *Game) Description() string {
	return g.mode.Description()
}

// Reset starts a new game from the active configuration and puzzle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.pinned != nil {
		g.cfg = g.pinned.Clone()
		g.puzzle = g.pinnedPuzzle
	} else {
		g.cfg = ActiveConfig()
		g.puzzle = activePuzzle
	}
	g.palette = g.cfg.PaletteValue()
	g.seed = cfg.Seed
	g.tick = 0
	g.paused = false
	g.showHelp = false

	settings := g.cfg.Settings()
	settings.Mode = g.mode
	if g.puzzle != nil {
		g.ctrl = g.puzzle.NewController(settings, g.seed)
	} else {
		g.ctrl = engine.NewController(settings, g.seed)
	}
	g.clearRound()
}

// Configure pins the configuration and puzzle of this instance. Later
// Resets ignore the package-level settings. A nil puzzle means free play.
func (g *Game) Configure(cfg config.ChromaConfig, puzzle *levels.Level) {
	c := cfg.Clone()
	g.pinned = &c
	g.pinnedPuzzle = puzzle
}

// restart replays the same game from its starting board.
func (g *Game) restart() {
	g.ctrl.Restart(g.seed)
	g.clearRound()
}

func (g *Game) clearRound() {
	g.last = engine.RoundReport{}
	g.played = false
	g.popups = nil
	g.feed = nil
}

// Step advances the game by one tick. At most one round is played.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.agePopups()

	if in.Has(core.ActionHelp) {
		g.showHelp = !g.showHelp
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.showHelp {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State(), Changed: true}
	}

	report, ok := g.ctrl.Tick(directionOf(in))
	if !ok {
		return core.StepResult{State: g.State()}
	}
	g.record(report)
	return core.StepResult{State: g.State(), Changed: true}
}

// directionOf returns the first move direction in the frame, or nil.
func directionOf(in core.InputFrame) *engine.Dir {
	var d engine.Dir
	switch {
	case in.Has(core.ActionUp):
		d = engine.DirUp
	case in.Has(core.ActionDown):
		d = engine.DirDown
	case in.Has(core.ActionLeft):
		d = engine.DirLeft
	case in.Has(core.ActionRight):
		d = engine.DirRight
	default:
		return nil
	}
	return &d
}

func (g *Game) record(report engine.RoundReport) {
	g.last = report
	g.played = true

	for _, a := range report.Awards {
		g.popups = append(g.popups, popup{
			pos:   a.Pos,
			text:  fmt.Sprintf("+%d", a.Points),
			color: a.Color,
			ticks: popupTicks,
		})
	}

	for _, ev := range report.Events {
		if line := describeEvent(ev); line != "" {
			g.feed = append(g.feed, fmt.Sprintf("#%d %s", report.Status.MoveCount, line))
		}
	}
	if len(g.feed) > feedSize {
		g.feed = g.feed[len(g.feed)-feedSize:]
	}
}

func describeEvent(ev engine.Event) string {
	switch ev.Kind {
	case engine.EventMergeSmall, engine.EventMergeMedium, engine.EventMergeLarge:
		return fmt.Sprintf("%s merge at %v", ev.Color, ev.Pos)
	case engine.EventIndicatorSpawned:
		return fmt.Sprintf("next piece at %v", ev.Pos)
	case engine.EventGameOver:
		return "grid full"
	case engine.EventLevelComplete:
		return "level complete"
	default:
		return ""
	}
}

func (g *Game) agePopups() {
	kept := g.popups[:0]
	for _, p := range g.popups {
		p.ticks--
		if p.ticks > 0 {
			kept = append(kept, p)
		}
	}
	g.popups = kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	st := g.ctrl.Status()
	return core.GameState{
		Score:         st.TotalScore,
		Moves:         st.MoveCount,
		GameOver:      st.GameOver,
		LevelComplete: st.LevelComplete,
		Paused:        g.paused || g.showHelp,
	}
}

// LastRound returns the report of the most recent round and whether any
// round has been played since the last reset.
func (g *Game) LastRound() (engine.RoundReport, bool) {
	return g.last, g.played
}

// Mode returns the merge mode in play. A puzzle may override the mode
// the game was registered with.
func (g *Game) Mode() engine.Mode {
	if g.ctrl == nil {
		return g.mode
	}
	return g.ctrl.Settings().Mode
}

// Controller exposes the underlying round controller.
func (g *Game) Controller() *engine.Controller {
	return g.ctrl
}

// PuzzleID returns the ID of the puzzle in play, or "" in free play.
func (g *Game) PuzzleID() string {
	if g.puzzle == nil {
		return ""
	}
	return g.puzzle.ID
}

// GridSize returns the board dimensions in play.
func (g *Game) GridSize() (int, int) {
	if g.ctrl == nil {
		return g.cfg.Grid.Width, g.cfg.Grid.Height
	}
	s := g.ctrl.Settings()
	return s.Width, s.Height
}
