package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chroma/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chroma SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each connection gets its own session with the menu, the scoreboard and
its own copy of the configuration. All users share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, generates a key at ~/.chroma/host_key

Examples:
  chroma serve                           # Listen on :23234
  chroma serve --ssh :2222               # Listen on port 2222
  chroma serve --host-key ./my_host_key  # Use a specific host key
  chroma serve --puzzles ./my-puzzles    # Offer extra puzzles

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagPuzzleDir, "puzzles", "", "Directory with extra puzzle files")
}

func runServe(_ *cobra.Command, _ []string) {
	chromaCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Chroma = chromaCfg
	cfg.Puzzles = menuPuzzles(flagPuzzleDir)

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting chroma SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
