package core

// RuntimeConfig is passed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score         int
	Moves         int
	GameOver      bool // Terminal: no further moves possible
	LevelComplete bool // Terminal: the win condition was reached
	Paused        bool
}

// Finished reports whether the game reached a terminal state.
func (s GameState) Finished() bool {
	return s.GameOver || s.LevelComplete
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State   GameState
	Changed bool // A round was played this tick
}
