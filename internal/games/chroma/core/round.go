package core

import (
	"math/rand"
)

// Phase is the round controller state.
type Phase uint8

const (
	PhaseAwaitingInput Phase = iota
	PhaseResolving
	PhaseSpawning
	PhaseScoring
	PhaseGameOver
	PhaseLevelComplete
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "AwaitingInput"
	case PhaseResolving:
		return "Resolving"
	case PhaseSpawning:
		return "Spawning"
	case PhaseScoring:
		return "Scoring"
	case PhaseGameOver:
		return "GameOver"
	case PhaseLevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

// Settings is the configuration a game is started with.
type Settings struct {
	Width     int
	Height    int
	Mode      Mode
	Points    PointTable
	Tiers     AdvancedTiers
	SpawnNext bool // Spawn a new indicator after every round
	Win       WinCondition
}

// DefaultSettings returns a 6x6 Standard game with spawning enabled.
func DefaultSettings() Settings {
	return Settings{
		Width:     6,
		Height:    6,
		Mode:      ModeStandard,
		Points:    DefaultPointTable(),
		Tiers:     DefaultAdvancedTiers(),
		SpawnNext: true,
		Win:       WinCondition{ClearBoard: true},
	}
}

// GameState is the round bookkeeping exposed to collaborators.
type GameState struct {
	WaitingForInput bool
	GameOver        bool
	LevelComplete   bool
	MoveCount       int
}

// Status is the per-round UI summary.
type Status struct {
	MoveCount       int
	TotalScore      int
	RoundScore      int
	WaitingForInput bool
	GameOver        bool
	LevelComplete   bool
	Mode            Mode
}

// BlockView is the read-only rendering view of a block.
type BlockView struct {
	Pos       Coord
	Color     Color
	Size      Size
	Indicator bool
}

// Snapshot maps block ids to their committed state.
type Snapshot map[BlockID]BlockView

// RoundReport is everything collaborators need after a completed round.
type RoundReport struct {
	Dir      Dir
	Snapshot Snapshot
	Removed  []BlockID
	Moved    []BlockMove
	Promoted []BlockID
	Merges   []MergeEvent
	Events   []Event
	Awards   []Award
	Status   Status
}

// intnSource is the part of *rand.Rand the controller draws from.
type intnSource interface {
	Intn(n int) int
}

// Controller owns the board, game state and score of one game and runs rounds.
// It is not safe for concurrent use.
type Controller struct {
	settings Settings
	strategy Strategy
	initial  *Board
	board    *Board
	rng      intnSource
	seed     int64

	phase         Phase
	state         GameState
	score         Score
	annihilations int
}

// NewController starts a game with a single indicator in the grid center.
// Non-positive grid dimensions panic.
func NewController(settings Settings, seed int64) *Controller {
	board := NewBoard(NewGrid(settings.Width, settings.Height))
	board.PlaceIndicator(C(settings.Width/2, settings.Height/2))
	return newController(settings, board, seed)
}

// NewControllerWithBoard starts a game from a prepared board.
// The board is copied; its grid overrides the settings dimensions.
func NewControllerWithBoard(settings Settings, board *Board, seed int64) *Controller {
	settings.Width = board.Grid().W
	settings.Height = board.Grid().H
	return newController(settings, board.Clone(), seed)
}

func newController(settings Settings, board *Board, seed int64) *Controller {
	return &Controller{
		settings: settings,
		strategy: NewStrategy(settings.Mode, StrategyOptions{AdvancedTiers: settings.Tiers}),
		initial:  board.Clone(),
		board:    board,
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		phase:    PhaseAwaitingInput,
		state:    GameState{WaitingForInput: true},
	}
}

// Restart re-initialises the game from the same settings and starting board
// with a new seed.
func (c *Controller) Restart(seed int64) {
	*c = *newController(c.settings, c.initial.Clone(), seed)
}

// Tick is the frame-loop entry point. A nil direction is a no-op.
func (c *Controller) Tick(in *Dir) (RoundReport, bool) {
	if in == nil {
		return RoundReport{}, false
	}
	return c.Submit(*in)
}

// Submit plays one round in direction d. It returns false without touching
// any state unless the controller is awaiting input and d is cardinal.
func (c *Controller) Submit(d Dir) (RoundReport, bool) {
	if c.phase != PhaseAwaitingInput || !d.Valid() {
		return RoundReport{}, false
	}

	c.state.MoveCount++
	c.state.WaitingForInput = false
	report := RoundReport{Dir: d}

	c.phase = PhaseResolving
	res := Resolve(c.board, d, c.strategy)
	c.board = res.Board
	c.annihilations += res.Annihilations
	report.Moved = res.Moved
	report.Removed = res.Removed
	report.Merges = res.Events
	if len(res.Moved) > 0 {
		report.Events = append(report.Events, Event{Kind: EventBlockMoved})
	}
	for _, ev := range res.Events {
		report.Events = append(report.Events, Event{Kind: ev.SoundClass(), Pos: ev.Pos, Color: ev.Color})
	}
	report.Promoted = c.promoteIndicators()

	c.phase = PhaseSpawning
	c.state.GameOver = IsGameOver(c.board, c.strategy)
	if c.state.GameOver {
		report.Events = append(report.Events, Event{Kind: EventGameOver})
	} else if c.settings.SpawnNext {
		if pos, ok := c.pickEmptyCell(); ok {
			c.board.PlaceIndicator(pos)
			report.Events = append(report.Events, Event{Kind: EventIndicatorSpawned, Pos: pos, Color: ColorWhite})
		}
	}

	c.phase = PhaseScoring
	report.Awards = c.score.Apply(res.Events, c.settings.Points)
	if !c.state.GameOver && c.settings.Win.Reached(c.board, c.score.Total, c.annihilations) {
		c.state.LevelComplete = true
		report.Events = append(report.Events, Event{Kind: EventLevelComplete})
	}

	switch {
	case c.state.GameOver:
		c.phase = PhaseGameOver
	case c.state.LevelComplete:
		c.phase = PhaseLevelComplete
	default:
		c.phase = PhaseAwaitingInput
		c.state.WaitingForInput = true
	}

	report.Snapshot = c.Snapshot()
	report.Status = c.Status()
	return report, true
}

// promoteIndicators turns every indicator into a random Small primary.
func (c *Controller) promoteIndicators() []BlockID {
	var promoted []BlockID
	primaries := Primaries()
	for _, blk := range c.board.Blocks() {
		if !blk.Indicator {
			continue
		}
		color := primaries[c.rng.Intn(len(primaries))]
		c.board.set(blk.ID, color, SizeSmall, false)
		promoted = append(promoted, blk.ID)
	}
	return promoted
}

// pickEmptyCell samples random cells, giving up after W*H*2 attempts.
func (c *Controller) pickEmptyCell() (Coord, bool) {
	g := c.board.Grid()
	if !c.board.HasEmptyCell() {
		return Coord{}, false
	}
	for range g.Area() * 2 {
		pos := C(c.rng.Intn(g.W), c.rng.Intn(g.H))
		if !c.board.Occupied(pos) {
			return pos, true
		}
	}
	return Coord{}, false
}

// Phase returns the current controller phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// State returns the game state.
func (c *Controller) State() GameState {
	return c.state
}

// Score returns the score state.
func (c *Controller) Score() Score {
	return c.score
}

// Settings returns the settings the game was started with.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Strategy returns the active merge strategy.
func (c *Controller) Strategy() Strategy {
	return c.strategy
}

// Seed returns the seed the current game was started with.
func (c *Controller) Seed() int64 {
	return c.seed
}

// Board returns a copy of the committed board.
func (c *Controller) Board() *Board {
	return c.board.Clone()
}

// Snapshot returns the committed block views keyed by id.
func (c *Controller) Snapshot() Snapshot {
	snap := make(Snapshot, c.board.Count())
	for _, blk := range c.board.Blocks() {
		snap[blk.ID] = BlockView{Pos: blk.Pos, Color: blk.Color, Size: blk.Size, Indicator: blk.Indicator}
	}
	return snap
}

// Status returns the UI summary.
func (c *Controller) Status() Status {
	return Status{
		MoveCount:       c.state.MoveCount,
		TotalScore:      c.score.Total,
		RoundScore:      c.score.CurrentRound,
		WaitingForInput: c.state.WaitingForInput,
		GameOver:        c.state.GameOver,
		LevelComplete:   c.state.LevelComplete,
		Mode:            c.settings.Mode,
	}
}
