package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for command output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, high levels
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
)

// Shared styles for command output
var (
	// HeaderStyle is for command headers (e.g., "J1939 WAVEFORM")
	HeaderStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// FieldNameStyle is for field names in layout tables
	FieldNameStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// LabelStyle is for detail keys (e.g., "Probe:")
	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(12)

	// ValueStyle is for detail values
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// HighLevelStyle colors the logic-high portion of a trace
	HighLevelStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// LowLevelStyle colors the logic-low portion of a trace
	LowLevelStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// MutedStyle is for secondary annotations (axis labels, hints)
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
