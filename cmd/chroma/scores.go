package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma"
	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
	"github.com/vovakirdan/tui-chroma/internal/registry"
	"github.com/vovakirdan/tui-chroma/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 runs of a mode, or a summary of every mode.

Examples:
  chroma scores
  chroma scores color
  chroma scores chroma_advanced`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printSummary(os.Stdout, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	mode, err := parseModeArg(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := printTopScores(os.Stdout, store, chroma.IDForMode(mode)); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-20s  %-6s  %-7s  %-6s  %s\n", "Mode", "Games", "Cleared", "Best", "Last played")
	fmt.Fprintf(w, "  %-20s  %-6s  %-7s  %-6s  %s\n", "----", "-----", "-------", "----", "-----------")
	for _, mode := range engine.AllModes() {
		id := chroma.IDForMode(mode)
		s, ok := stats[id]
		if !ok {
			fmt.Fprintf(w, "  %-20s  %-6d  %-7d  %-6s  %s\n", mode.Title(), 0, 0, "-", "-")
			continue
		}
		fmt.Fprintf(w, "  %-20s  %-6d  %-7d  %-6d  %s\n",
			mode.Title(), s.GamesCount, s.Completions, s.HighScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printTopScores(w io.Writer, store *storage.Store, gameID string) error {
	title := gameID
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'chroma play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-7s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Moves", "Grid", "Puzzle", "Date")
	fmt.Fprintf(w, "  %-4s  %-7s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")
	for i, e := range scores {
		puzzle := e.Puzzle
		if puzzle == "" {
			puzzle = "-"
		}
		if e.Completed {
			puzzle += " *"
		}
		fmt.Fprintf(w, "  %-4d  %-7d  %-5d  %-5s  %-12s  %s\n",
			i+1, e.Score, e.Moves, fmt.Sprintf("%dx%d", e.Width, e.Height), puzzle, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(gameID); err == nil {
		fmt.Fprintf(w, "\nBest: %d  (* = cleared)\n", best)
	}
	return nil
}
