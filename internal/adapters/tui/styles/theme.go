package styles

import (
	"github.com/charmbracelet/lipgloss"

	"ricettario/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#D9480F") // Paprika
	Secondary = lipgloss.Color("#2F9E44") // Basil
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Difficulty colors
	DifficultyEasy         = lipgloss.Color("#40C057")
	DifficultyMedium       = lipgloss.Color("#FAB005")
	DifficultyIntermediate = lipgloss.Color("#FD7E14")
	DifficultyHard         = lipgloss.Color("#E03131")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// List styles
	ListItem = lipgloss.NewStyle()

	ListSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Checked   = "[x] "
	Unchecked = "[ ] "

	// Detail pane
	Detail = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1).
		MarginLeft(2)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// DifficultyColor returns the color for a difficulty level
func DifficultyColor(d domain.Difficulty) lipgloss.Color {
	switch d {
	case domain.DifficultyEasy:
		return DifficultyEasy
	case domain.DifficultyMedium:
		return DifficultyMedium
	case domain.DifficultyIntermediate:
		return DifficultyIntermediate
	case domain.DifficultyHard:
		return DifficultyHard
	default:
		return Muted
	}
}

// DifficultyBadge renders the difficulty name in its color
func DifficultyBadge(d domain.Difficulty) string {
	return lipgloss.NewStyle().Foreground(DifficultyColor(d)).Bold(true).Render(d.String())
}
