// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/topica/internal/charts/terminal"
)

// Theme is the TUI colour palette.
type Theme struct {
	// Accent colours headings and topic labels.
	Accent lipgloss.Color

	// Highlight colours the current parameters.
	Highlight lipgloss.Color

	// Bar fills the distribution chart.
	Bar lipgloss.Color

	// Text is the default text colour.
	Text lipgloss.Color

	// Dim is for hints and previews.
	Dim lipgloss.Color

	// Error colours failed runs.
	Error lipgloss.Color

	// StatusBackground sits behind the status bar.
	StatusBackground lipgloss.Color
}

// DefaultTheme returns the default palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:           lipgloss.Color("#2DD4BF"), // Teal
		Highlight:        lipgloss.Color("#FBBF24"), // Amber
		Bar:              lipgloss.Color("#60A5FA"), // Blue
		Text:             lipgloss.Color("#E5E7EB"),
		Dim:              lipgloss.Color("#6B7280"),
		Error:            lipgloss.Color("#F87171"),
		StatusBackground: lipgloss.Color("#1F2937"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title is the application header.
	Title lipgloss.Style

	// Subtitle heads a section of a view.
	Subtitle lipgloss.Style

	Normal lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style

	// TopicLabel renders "Topic k".
	TopicLabel lipgloss.Style

	// TopicWords renders the top words of a topic.
	TopicWords lipgloss.Style

	// Parameter renders the K, N and seed values in the header.
	Parameter lipgloss.Style

	StatusBar lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme means DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	text := lipgloss.NewStyle().Foreground(theme.Text)

	return &Styles{
		theme:      theme,
		Title:      lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Subtitle:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(theme.Text),
		Normal:     text,
		Muted:      lipgloss.NewStyle().Foreground(theme.Dim),
		Error:      lipgloss.NewStyle().Bold(true).Foreground(theme.Error),
		TopicLabel: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		TopicWords: text,
		Parameter:  lipgloss.NewStyle().Bold(true).Foreground(theme.Highlight),
		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Dim).
			Background(theme.StatusBackground).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Chart returns a bar chart renderer in the theme's colours.
// Bars are at most width cells long.
func (s *Styles) Chart(width int) *terminal.Renderer {
	return terminal.New(
		terminal.WithWidth(width),
		terminal.WithColours(s.theme.Bar, s.theme.Accent),
	)
}
