package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#FF6B35")
	muted   = lipgloss.Color("#888888")
)

type styles struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Title     lipgloss.Style
	Section   lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Subtitle  lipgloss.Style
	Muted     lipgloss.Style
	Button    lipgloss.Style
	Focused   lipgloss.Style
	Result    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

func newStyles() styles {
	return styles{
		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(primary).
			Padding(0, 1).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginTop(1).
			MarginBottom(1),

		Section: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1).
			Width(48),

		CardTitle: lipgloss.NewStyle().Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		Muted: lipgloss.NewStyle().Foreground(muted),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(muted).
			Padding(0, 1),

		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(primary).
			Padding(0, 1),

		Result: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4CAF50")).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F44336")),

		Help: lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1),
	}
}

func badgeStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}
