package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma/levels"
)

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles [dir]",
	Short: "List puzzles",
	Long: `List the built-in puzzles, or the puzzle files found under dir.
Invalid files are skipped with a warning.

Examples:
  chroma puzzles
  chroma puzzles ./my-puzzles
  chroma play --puzzle 03-prism`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPuzzles,
}

func runPuzzles(_ *cobra.Command, args []string) error {
	loader := levels.Builtin()
	if len(args) == 1 {
		loader = levels.NewLoader(args[0])
	}

	puzzles, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("cannot load puzzles from %s: %w", loader.Root, err)
	}

	printPuzzles(os.Stdout, puzzles)
	return nil
}

func printPuzzles(w io.Writer, puzzles []levels.Level) {
	if len(puzzles) == 0 {
		fmt.Fprintln(w, "No puzzles found.")
		return
	}

	fmt.Fprintf(w, "  %-12s  %-14s  %-22s  %-5s  %-5s  %s\n", "ID", "Name", "Mode", "Grid", "Moves", "Goal")
	fmt.Fprintf(w, "  %-12s  %-14s  %-22s  %-5s  %-5s  %s\n", "--", "----", "----", "----", "-----", "----")
	for _, p := range puzzles {
		g := p.Board.Grid()
		fmt.Fprintf(w, "  %-12s  %-14s  %-22s  %-5s  %-5d  %s\n",
			p.ID, p.Name, p.Mode.Title(), fmt.Sprintf("%dx%d", g.W, g.H), len(p.Solution), goal(p))
	}
}

func goal(p levels.Level) string {
	switch {
	case p.Win.ClearBoard && p.Win.TargetScore > 0:
		return fmt.Sprintf("clear or %d points", p.Win.TargetScore)
	case p.Win.ClearBoard:
		return "clear the board"
	case p.Win.TargetScore > 0:
		return fmt.Sprintf("%d points", p.Win.TargetScore)
	default:
		return "endless"
	}
}
