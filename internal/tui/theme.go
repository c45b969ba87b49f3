package tui

import "github.com/charmbracelet/lipgloss/v2"

// Color palette — boardroom navy with a warm accent.
var (
	colorPrimary = lipgloss.Color("#3B82F6") // Blue
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorTextDim = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
	colorFill    = lipgloss.Color("#1D4ED8") // Deep Blue
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	styleBody = lipgloss.NewStyle().
			Foreground(colorText)

	styleHint = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleAccent = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)
