// Package styles centralizes the lipgloss styles used by the BragBoard TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#818CF8") // Indigo, the BragBoard accent
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Error   = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted   = lipgloss.NewStyle().Foreground(MutedColor)
	Text    = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Tab styles for the admin console
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	// Card wraps one feed item
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1).
		MarginBottom(1)

	CardSelected = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1).
			MarginBottom(1)

	// Badge renders a department chip
	Badge = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	// Navbar is the top bar on the dashboard and admin pages
	Navbar = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(lipgloss.Color("#312E81")).
		Padding(0, 1)

	// HelpBar shows key hints at the bottom of the screen
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	// Overlay frames the compose modal
	Overlay = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	FieldError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// Suggestion styles for the @mention dropdown
	Suggestion = lipgloss.NewStyle().
			Foreground(TextColor)

	SuggestionActive = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor)

	// Bar renders analytics bar segments
	Bar = lipgloss.NewStyle().
		Foreground(PrimaryColor)
)
