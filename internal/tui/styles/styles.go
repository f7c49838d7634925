package styles

import "github.com/charmbracelet/lipgloss"

// Colors - a pleasant color palette
var (
	// Primary colors
	Primary = lipgloss.Color("#7C3AED") // Purple
	Accent  = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red

	// Neutral colors
	Border    = lipgloss.Color("#4B5563") // Light gray
	Text      = lipgloss.Color("#F9FAFB") // White
	TextMuted = lipgloss.Color("#9CA3AF") // Gray
	TextDim   = lipgloss.Color("#6B7280") // Darker gray
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Highlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Opened = lipgloss.NewStyle().
		Foreground(Success)

	Failed = lipgloss.NewStyle().
		Foreground(Error)
)

// Panel is the bordered container around the history list.
var Panel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)

// StatusBar styles the bottom help/status line.
var StatusBar = lipgloss.NewStyle().
	Foreground(TextMuted)
