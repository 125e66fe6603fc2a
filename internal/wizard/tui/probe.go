package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MasonDill/waveform-visualizer/internal/j1939"
)

// ProbeModel is the probe selection screen: pick which bus line the
// simulated measurement is taken from and whether the frame uses the 29-bit
// identifier layout.
type ProbeModel struct {
	cursor   int
	extended bool
	probes   []j1939.ProbeConfiguration
}

// NewProbeModel creates the probe screen with the given defaults selected.
func NewProbeModel(selected j1939.ProbeConfiguration, extended bool) ProbeModel {
	probes := j1939.Probes()
	cursor := 0
	for i, p := range probes {
		if p == selected {
			cursor = i
		}
	}
	return ProbeModel{cursor: cursor, extended: extended, probes: probes}
}

// Update handles key input for the probe screen.
func (m ProbeModel) Update(msg tea.Msg) (ProbeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.probes)-1 {
			m.cursor++
		}
	case "e":
		m.extended = !m.extended
	case "enter":
		probe := m.probes[m.cursor]
		extended := m.extended
		return m, func() tea.Msg {
			return probeChosenMsg{probe: probe, extended: extended}
		}
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// View renders the probe screen.
func (m ProbeModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Probe Configuration"))
	sb.WriteString("\n\n")

	for i, p := range m.probes {
		high, low, _ := p.Voltages()
		line := fmt.Sprintf("%-13s high %.1fV  low %.1fV", p.String(), high, low)
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("› " + line))
		} else {
			sb.WriteString(normalStyle.Render("  " + line))
		}
		sb.WriteByte('\n')
	}

	idWidth := "standard (11-bit)"
	if m.extended {
		idWidth = "extended (29-bit)"
	}
	sb.WriteString("\n")
	sb.WriteString(normalStyle.Render(fmt.Sprintf("  Identifier: %s", idWidth)))
	sb.WriteString("\n\n")
	sb.WriteString(hintStyle.Render("↑/↓ select · e toggle identifier width · enter continue · q quit"))
	sb.WriteByte('\n')
	return sb.String()
}
