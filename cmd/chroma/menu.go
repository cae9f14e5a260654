package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma/levels"
	"github.com/vovakirdan/tui-chroma/internal/platform/tui"
)

var flagPuzzleDir string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick modes, presets and puzzles interactively",
	Long: `Start chroma in interactive menu mode.

The menu lists every merge mode, the presets and the puzzles.
After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Esc/B        - Back
  Tab          - High scores
  Q            - Quit

Examples:
  chroma menu
  chroma menu --puzzles ./my-puzzles
  chroma menu --config ./chroma.yaml`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPuzzleDir, "puzzles", "", "Directory with extra puzzle files")
}

// menuPuzzles returns the built-in puzzles followed by those of dir.
func menuPuzzles(dir string) []levels.Level {
	puzzles, err := levels.Builtin().LoadAll()
	if err != nil {
		log.Warn("could not load built-in puzzles", "err", err)
	}
	if dir == "" {
		return puzzles
	}

	extra, err := levels.NewLoader(dir).LoadAll()
	if err != nil {
		log.Warn("could not load puzzles", "dir", dir, "err", err)
		return puzzles
	}
	return append(puzzles, extra...)
}

func runMenu(_ *cobra.Command, _ []string) {
	base, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	puzzles := menuPuzzles(flagPuzzleDir)

	for {
		result, err := tui.RunMenu(cfg, puzzles)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := result.Selection.NewGame(base)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
