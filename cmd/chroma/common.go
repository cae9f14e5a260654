package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chroma/internal/config"
	"github.com/vovakirdan/tui-chroma/internal/core"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma"
	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
	"github.com/vovakirdan/tui-chroma/internal/storage"
)

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// loadConfig loads the configuration from --config or the search paths.
func loadConfig() (config.ChromaConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	log.Debug("configuration loaded", "source", source)
	return cfg, nil
}

// parseModeArg accepts a game ID ("chroma_color") or a mode name ("color").
func parseModeArg(arg string) (engine.Mode, error) {
	if m, ok := chroma.ModeForID(arg); ok {
		return m, nil
	}
	if m, ok := engine.ParseMode(arg); ok {
		return m, nil
	}
	return engine.ModeStandard, fmt.Errorf("unknown mode %q (run 'chroma list')", arg)
}

// openStore opens the scores database. Games run without it when it
// cannot be opened.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
