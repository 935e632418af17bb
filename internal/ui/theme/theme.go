package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Choice list
var (
	Rank = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	SchoolName = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	Tag = lipgloss.NewStyle().
		Foreground(Accent)

	Rationale = lipgloss.NewStyle().
			Foreground(Success)

	ProfileLine = lipgloss.NewStyle().
			Foreground(TextDim).
			PaddingLeft(4)
)

// Blocks
var (
	Summary = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1).
		Width(76)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)
