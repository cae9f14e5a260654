package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chroma/internal/core"
	"github.com/vovakirdan/tui-chroma/internal/registry"
	"github.com/vovakirdan/tui-chroma/internal/storage"
)

// runDetails is implemented by games that describe their board for the
// score store.
type runDetails interface {
	PuzzleID() string
	GridSize() (int, int)
}

// GameModel runs one game: it maps keys, ticks the game and saves the
// run when it finishes.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
	lastRunID  string
}

// NewGameModel creates a game model. A zero seed is replaced with one
// from the clock.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The board is laid out from the screen size on every render, so a
		// resize keeps the game running.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.inputFrame.Clear()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}

	return m, nil
}

// handleTick advances the game by one tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// A finished game restarts with a fresh seed; a running one replays
	// its own seed through the game's restart.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Finished() {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	if result.Changed && !result.State.Finished() {
		m.scoreSaved = false
	}
	m.gameState = result.State

	if m.gameState.Finished() && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished game in the score store.
func (m *GameModel) saveRun() {
	if m.store == nil || (m.gameState.Score == 0 && !m.gameState.LevelComplete) {
		return
	}

	run := storage.Run{
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		Moves:     m.gameState.Moves,
		Completed: m.gameState.LevelComplete,
	}
	if d, ok := m.game.(runDetails); ok {
		run.Puzzle = d.PuzzleID()
		run.Width, run.Height = d.GridSize()
	}

	id, err := m.store.SaveScore(run)
	if err != nil {
		log.Debug("could not save score", "game", run.GameID, "err", err)
		return
	}
	m.lastRunID = id
	log.Debug("score saved", "game", run.GameID, "run", id, "score", run.Score)
}

// saveScreenshot writes the current screen to ~/.chroma/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".chroma", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Debug("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Debug("could not save screenshot", "err", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the user asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// LastRunID returns the store ID of the last saved run, or "".
func (m GameModel) LastRunID() string {
	return m.lastRunID
}

// Run plays one game in the terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
