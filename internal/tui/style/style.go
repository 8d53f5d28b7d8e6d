// Package style defines lipgloss styles for the TUI.
package style

import "github.com/charmbracelet/lipgloss"

// Default slider colors.
var (
	// Indicator is the filled part of the track.
	Indicator lipgloss.TerminalColor = lipgloss.Color("33")

	// TrackBackground is the unfilled track. A dim gray stands in for a
	// translucent one since terminals have no alpha.
	TrackBackground lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "252", Dark: "238"}

	// KnobColor is the default knob color.
	KnobColor lipgloss.TerminalColor = lipgloss.Color("255")
)

// UI styles using lipgloss.
// Variable names omit the "Style" suffix since they're accessed via the
// style package (e.g., style.Title).
var (
	// Title is used for the track title.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Warning is used for the paused indicator.
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	// Success is used for the playing indicator.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	// Time is used for elapsed and total time labels.
	Time = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	// Knob is the default knob style.
	Knob = lipgloss.NewStyle().
		Foreground(KnobColor)
)
