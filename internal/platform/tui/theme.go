package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles of the menus and the scoreboard.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
	Footer      lipgloss.Style
	Empty       lipgloss.Style
}

// DefaultTheme returns the default menu styles.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// centerText centers text within the given width. Styled text is measured
// by its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
