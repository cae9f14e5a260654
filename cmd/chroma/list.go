package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chroma/internal/config"
	"github.com/vovakirdan/tui-chroma/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List merge modes and presets",
	Long:  `Shows every registered merge mode and the named presets.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "--", "-----", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, g.ID, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Presets:")
	fmt.Println()
	for _, p := range config.Presets() {
		fmt.Printf("  %-10s  %s\n", p.Preset, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'chroma play <id>' or 'chroma play --preset <name>' to play.")
}
