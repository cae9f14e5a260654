package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
)

var (
	flagMoves string
	flagSolve bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Replay a move string and print every round",
	Long: `Play a game without a terminal UI. Each move is one of u, d, l, r;
spaces and commas are ignored. After every round the board and the
status line are printed. The same seed and moves always give the same
output.

Board legend: two characters per cell, color letter then size letter
(s, m, l), ".." for empty and "**" for the indicator.

Examples:
  chroma simulate --moves lluurd --seed 42
  chroma simulate color --preset compact --moves "l,u,r,d"
  chroma simulate --puzzle 04-forge --solve`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to play (u/d/l/r)")
	simulateCmd.Flags().BoolVar(&flagSolve, "solve", false, "Play the recorded solution of --puzzle")
	addSetupFlags(simulateCmd)
}

func runSimulate(_ *cobra.Command, args []string) error {
	gs, err := resolveSetup(args)
	if err != nil {
		return err
	}

	moves, err := engine.ParseMoves(flagMoves)
	if err != nil {
		return err
	}
	if flagSolve {
		if gs.Puzzle == nil {
			return errors.New("--solve needs --puzzle")
		}
		moves = gs.Puzzle.Solution
	}

	settings := gs.Config.Settings()
	settings.Mode = gs.Mode

	var ctrl *engine.Controller
	if gs.Puzzle != nil {
		ctrl = gs.Puzzle.NewController(settings, flagSeed)
	} else {
		ctrl = engine.NewController(settings, flagSeed)
	}

	simulate(os.Stdout, ctrl, moves)
	return nil
}

// simulate plays moves on ctrl and prints every round to w. Moves after
// the game ends are reported and skipped.
func simulate(w io.Writer, ctrl *engine.Controller, moves []engine.Dir) engine.Status {
	fmt.Fprintf(w, "%s, %dx%d, seed %d\n\n", ctrl.Settings().Mode.Title(),
		ctrl.Settings().Width, ctrl.Settings().Height, ctrl.Seed())
	fmt.Fprint(w, engine.RenderASCII(ctrl.Board()))
	fmt.Fprintln(w, engine.RenderStatus(ctrl.Status()))

	for i, d := range moves {
		report, ok := ctrl.Submit(d)
		if !ok {
			fmt.Fprintf(w, "\n%d move(s) ignored: the game is over\n", len(moves)-i)
			break
		}

		fmt.Fprintf(w, "\n#%d %s", report.Status.MoveCount, d)
		if len(report.Awards) > 0 {
			parts := make([]string, len(report.Awards))
			for j, a := range report.Awards {
				parts[j] = fmt.Sprintf("+%d %s at %s", a.Points, a.Color, a.Pos)
			}
			fmt.Fprintf(w, "  %s", strings.Join(parts, ", "))
		}
		fmt.Fprintln(w)
		fmt.Fprint(w, engine.RenderASCII(ctrl.Board()))
		fmt.Fprintln(w, engine.RenderStatus(report.Status))
	}

	return ctrl.Status()
}
