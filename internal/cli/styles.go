package cli

import "github.com/charmbracelet/lipgloss"

// Board palette.
var (
	colorAccent  = lipgloss.Color("#2CD7C7")
	colorPrimary = lipgloss.Color("#20B9B4")
	colorBorder  = lipgloss.Color("#16858E")
	colorMuted   = lipgloss.Color("#5C7A84")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
)

// Styles groups the lipgloss styles used by the presenter and notifier.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Session   lipgloss.Style
	Muted     lipgloss.Style
	Bold      lipgloss.Style
	Draft     lipgloss.Style
	Published lipgloss.Style
	Card      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
}

// DefaultStyles returns the colored theme.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Tab:       lipgloss.NewStyle().Foreground(colorMuted),
		ActiveTab: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorPrimary),
		Session:   lipgloss.NewStyle().Foreground(colorPrimary),
		Muted:     lipgloss.NewStyle().Foreground(colorMuted),
		Bold:      lipgloss.NewStyle().Bold(true),
		Draft:     lipgloss.NewStyle().Foreground(colorWarning),
		Published: lipgloss.NewStyle().Foreground(colorSuccess),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(colorError),
	}
}

// PlainStyles renders text without any decoration. Tests use it to match
// output exactly.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title: plain, Tab: plain, ActiveTab: plain, Session: plain, Muted: plain,
		Bold: plain, Draft: plain, Published: plain, Card: plain,
		Success: plain, Error: plain,
	}
}
