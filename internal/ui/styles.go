package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple #A78BFA, configurable): highlights, paths
// - Muted (gray): secondary info
// - No colored success/error/warning - unicode symbols only

var (
	accentColor = "#A78BFA"

	// Accent style for paths and highlights.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor))

	// Muted style for secondary info and hints.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis.
	Bold = lipgloss.NewStyle().Bold(true)
)

// SetAccent overrides the accent color from configuration.
func SetAccent(color string) {
	if color == "" {
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// AccentColor returns the current accent color.
func AccentColor() string {
	return accentColor
}
