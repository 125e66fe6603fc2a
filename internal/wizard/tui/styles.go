package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MasonDill/waveform-visualizer/internal/ui"
)

// Styles for the wizard screens, built on the shared palette.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Bold(true).
			PaddingLeft(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor)

	doneStyle = lipgloss.NewStyle().
			Foreground(ui.SuccessColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(ui.ErrorColor)

	hintStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor)
)
