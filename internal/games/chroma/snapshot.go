package chroma

import (
	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StatePaused        GameStateType = "paused"
	StateGameOver      GameStateType = "game_over"
	StateLevelComplete GameStateType = "level_complete"
)

// Snapshot captures the game for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Puzzle string // Puzzle ID, empty in free play
	Seed   int64
	Board  string // engine ASCII rendering
	Status engine.Status
	State  GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.ctrl == nil {
		return Snapshot{Mode: g.mode.String(), State: StatePlaying}
	}

	st := g.ctrl.Status()
	state := StatePlaying
	switch {
	case st.LevelComplete:
		state = StateLevelComplete
	case st.GameOver:
		state = StateGameOver
	case g.paused || g.showHelp:
		state = StatePaused
	}

	var puzzle string
	if g.puzzle != nil {
		puzzle = g.puzzle.ID
	}

	return Snapshot{
		Tick:   g.tick,
		Mode:   g.Mode().String(),
		Puzzle: puzzle,
		Seed:   g.seed,
		Board:  engine.RenderASCII(g.ctrl.Board()),
		Status: st,
		State:  state,
	}
}
