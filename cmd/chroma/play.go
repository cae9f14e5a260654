package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chroma/internal/config"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma"
	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma/levels"
	"github.com/vovakirdan/tui-chroma/internal/platform/tui"
	"github.com/vovakirdan/tui-chroma/internal/registry"
)

var (
	flagPreset string
	flagWidth  int
	flagHeight int
	flagPuzzle string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a merge mode",
	Long: `Start playing. The mode is a game ID from 'chroma list' or one of
standard, color, advanced; it defaults to the configured mode.

Controls:
  Arrows/WASD/hjkl  - Slide every block
  R                 - Restart
  ?                 - Rules of the mode
  P                 - Pause
  Esc/B             - Leave the game
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Examples:
  chroma play
  chroma play advanced
  chroma play --preset compact
  chroma play color --width 5 --height 5
  chroma play --puzzle 04-forge
  chroma play --puzzle ./my-puzzles/spiral.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addSetupFlags(playCmd)
}

// addSetupFlags registers the flags that shape a game.
func addSetupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Preset: classic, compact, prism, spectrum, sandbox")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width (overrides config and preset)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height (overrides config and preset)")
	cmd.Flags().StringVar(&flagPuzzle, "puzzle", "", "Puzzle ID or YAML file")
}

// gameSetup is everything needed to start one game.
type gameSetup struct {
	Config config.ChromaConfig
	Mode   engine.Mode
	Puzzle *levels.Level
}

// resolveSetup combines the configuration, --preset, --width/--height,
// the mode argument and --puzzle. A puzzle decides the mode.
func resolveSetup(args []string) (gameSetup, error) {
	cfg, err := loadConfig()
	if err != nil {
		return gameSetup{}, err
	}

	if flagPreset != "" {
		p, err := config.ParsePreset(flagPreset)
		if err != nil {
			return gameSetup{}, err
		}
		config.ApplyPreset(&cfg, p)
	}
	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}
	if err := cfg.Validate(); err != nil {
		return gameSetup{}, err
	}

	gs := gameSetup{Config: cfg, Mode: cfg.ModeValue()}
	if len(args) > 0 {
		if gs.Mode, err = parseModeArg(args[0]); err != nil {
			return gameSetup{}, err
		}
		gs.Config.Mode = gs.Mode.String()
	}

	if flagPuzzle != "" {
		lvl, err := levels.Resolve(flagPuzzle)
		if err != nil {
			return gameSetup{}, err
		}
		gs.Puzzle = &lvl
		gs.Mode = lvl.Mode
	}
	return gs, nil
}

func runPlay(_ *cobra.Command, args []string) {
	gs, err := resolveSetup(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(chroma.IDForMode(gs.Mode))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if cg, ok := game.(*chroma.Game); ok {
		cg.Configure(gs.Config, gs.Puzzle)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig())
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
