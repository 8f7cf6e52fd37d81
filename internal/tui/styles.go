package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Static styles for odds output
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	HoleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	WinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	TieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7"))

	CategoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// DisableColor renders every style as plain text
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorEnabled reports whether styles currently render colour
func ColorEnabled() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}
