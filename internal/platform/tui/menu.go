package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chroma/internal/config"
	"github.com/vovakirdan/tui-chroma/internal/core"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma"
	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma/levels"
	"github.com/vovakirdan/tui-chroma/internal/registry"
)

const (
	labelPresets = "Presets..."
	labelPuzzles = "Puzzles..."

	mainFooter = "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	subFooter  = "Enter: Play  |  Esc: Back  |  Q: Quit"
)

type menuScreen int

const (
	screenMain menuScreen = iota
	screenPresets
	screenPuzzles
)

// Selection is what the user picked in the menu.
type Selection struct {
	GameID string
	Preset config.Preset // "" keeps the configured setup
	Puzzle *levels.Level // nil for free play
}

// NewGame creates the selected game and pins its configuration, derived
// from base.
func (s Selection) NewGame(base config.ChromaConfig) (registry.Game, error) {
	g, err := registry.Create(s.GameID)
	if err != nil {
		return nil, err
	}

	cfg := base.Clone()
	if s.Preset != "" {
		config.ApplyPreset(&cfg, s.Preset)
	}
	if cg, ok := g.(*chroma.Game); ok {
		cg.Configure(cfg, s.Puzzle)
	}
	return g, nil
}

// MenuModel is the Bubble Tea model of the main menu.
type MenuModel struct {
	screen    menuScreen
	main      Selector
	presets   Selector
	puzzles   Selector
	gameIDs   []string
	puzzleSet []levels.Level
	theme     Theme
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	embedded  bool

	quitting       bool
	selected       *Selection
	openScoreboard bool
}

// NewMenuModel creates the menu. puzzles are offered on the puzzle screen.
func NewMenuModel(cfg core.RuntimeConfig, puzzles []levels.Level) MenuModel {
	var gameIDs []string
	var options []Option
	for _, mode := range engine.AllModes() {
		info, ok := registry.Lookup(chroma.IDForMode(mode))
		if !ok {
			continue
		}
		gameIDs = append(gameIDs, info.ID)
		options = append(options, Option{Label: info.Title, Detail: info.Description})
	}
	options = append(options,
		Option{Label: labelPresets, Detail: "Start from a named grid and mode"},
		Option{Label: labelPuzzles, Detail: fmt.Sprintf("%d hand-made boards to clear", len(puzzles))},
	)

	var presetOpts []Option
	for _, p := range config.Presets() {
		presetOpts = append(presetOpts, Option{Label: p.Title, Detail: p.Description})
	}

	var puzzleOpts []Option
	for _, l := range puzzles {
		puzzleOpts = append(puzzleOpts, Option{
			Label:  l.Name,
			Detail: fmt.Sprintf("%s, %dx%d", l.Mode.Title(), l.Board.Grid().W, l.Board.Grid().H),
		})
	}

	return MenuModel{
		main:      NewSelector("C H R O M A", options),
		presets:   NewSelector("PRESETS", presetOpts),
		puzzles:   NewSelector("PUZZLES", puzzleOpts),
		gameIDs:   gameIDs,
		puzzleSet: puzzles,
		theme:     DefaultTheme(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// done ends a standalone menu program; an embedded menu keeps running
// and its owner polls the result.
func (m MenuModel) done() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenPresets:
		return m.handlePresets(action)
	case screenPuzzles:
		return m.handlePuzzles(action)
	}

	if action == MenuActionScoreboard {
		m.openScoreboard = true
		return m, m.done()
	}

	m.main = m.main.Handle(action)
	chosen := m.main.Chosen()
	m.main = m.main.Reset()

	switch {
	case chosen < 0:
		return m, nil
	case chosen < len(m.gameIDs):
		m.selected = &Selection{GameID: m.gameIDs[chosen]}
		return m, m.done()
	case chosen == len(m.gameIDs):
		m.screen = screenPresets
	default:
		m.screen = screenPuzzles
	}
	return m, nil
}

func (m MenuModel) handlePresets(action MenuAction) (tea.Model, tea.Cmd) {
	m.presets = m.presets.Handle(action)
	if m.presets.WantsBack() {
		m.presets = m.presets.Reset()
		m.screen = screenMain
		return m, nil
	}
	chosen := m.presets.Chosen()
	if chosen < 0 {
		return m, nil
	}
	m.presets = m.presets.Reset()

	p := config.Presets()[chosen].Preset
	cfg := config.DefaultChromaConfig()
	config.ApplyPreset(&cfg, p)
	m.selected = &Selection{GameID: chroma.IDForMode(cfg.ModeValue()), Preset: p}
	return m, m.done()
}

func (m MenuModel) handlePuzzles(action MenuAction) (tea.Model, tea.Cmd) {
	m.puzzles = m.puzzles.Handle(action)
	if m.puzzles.WantsBack() {
		m.puzzles = m.puzzles.Reset()
		m.screen = screenMain
		return m, nil
	}
	chosen := m.puzzles.Chosen()
	if chosen < 0 {
		return m, nil
	}
	m.puzzles = m.puzzles.Reset()

	level := m.puzzleSet[chosen]
	m.selected = &Selection{GameID: chroma.IDForMode(level.Mode), Puzzle: &level}
	return m, m.done()
}

// View renders the current menu screen.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPresets:
		return m.presets.View(m.theme, m.width, subFooter)
	case screenPuzzles:
		return m.puzzles.View(m.theme, m.width, subFooter)
	}
	return m.main.View(m.theme, m.width, mainFooter)
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult is the outcome of RunMenu.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu and returns the user's choice.
func RunMenu(cfg core.RuntimeConfig, puzzles []levels.Level) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, puzzles), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.Selection = m.Selected()
	}
	return result, nil
}
