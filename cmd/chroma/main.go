// chroma is a turn-based color merge puzzle for the terminal.
//
// Usage:
//
//	chroma list              - List merge modes and presets
//	chroma play [mode]       - Play a mode, preset or puzzle
//	chroma menu              - Pick modes, presets and puzzles interactively
//	chroma scores [mode]     - Show high scores
//	chroma simulate          - Replay moves headless and print every round
//	chroma puzzles [dir]     - List built-in or directory puzzles
//	chroma config show|init  - Print or write the configuration
//	chroma serve             - Start the SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Tick rate (default: 30)
//	--seed <value>       - RNG seed for reproducible games
//	--db <path>          - Scores database (default: ~/.chroma/scores.db)
//	--config <path>      - Configuration YAML
//	--log-level <level>  - debug, info, warn or error
//
// CHROMA_DB, CHROMA_CONFIG and CHROMA_LOG_LEVEL override the flag defaults,
// and are also read from a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chroma",
	Short: "Chroma - merge colored blocks in your terminal",
	Long: `Chroma is a turn-based puzzle: every move slides all blocks on the
grid one way, equal blocks merge and grow, and a new block appears
where the indicator was.

Available commands:
  list      - Show merge modes and presets
  play      - Play a mode, a preset or a puzzle
  menu      - Interactive picker
  scores    - View high scores
  simulate  - Replay a move string without a terminal UI
  puzzles   - List puzzles
  config    - Show or write the configuration
  serve     - Start the SSH server

Examples:
  chroma play
  chroma play color --preset prism
  chroma play --puzzle 02-growth
  chroma simulate --moves lluurd --seed 42
  chroma serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chroma/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(puzzlesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads .env, applies environment overrides and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	envOverride(cmd, "db", "CHROMA_DB", &flagDBPath)
	envOverride(cmd, "config", "CHROMA_CONFIG", &flagConfig)
	envOverride(cmd, "log-level", "CHROMA_LOG_LEVEL", &flagLogLevel)

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chroma",
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

// envOverride sets *dst from the environment unless the flag was given.
func envOverride(cmd *cobra.Command, flag, env string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}
