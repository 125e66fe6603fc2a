package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MasonDill/waveform-visualizer/internal/config"
	"github.com/MasonDill/waveform-visualizer/internal/j1939"
	"github.com/MasonDill/waveform-visualizer/internal/protocol"
	"github.com/MasonDill/waveform-visualizer/internal/render"
	"github.com/MasonDill/waveform-visualizer/internal/ui"
)

// PreviewModel is the preview screen: an ASCII trace of the assembled
// waveform with actions to save the payload or write a plot file.
type PreviewModel struct {
	cfg      *protocol.Config
	probe    j1939.ProbeConfiguration
	extended bool

	waveform *protocol.Waveform
	payload  string

	saving    bool
	nameInput textinput.Model
	status    string
}

// NewPreviewModel assembles the waveform from the frame's current field
// values. Field entry already parsed each field, so only the assembly step
// remains.
func NewPreviewModel(cfg *protocol.Config, probe j1939.ProbeConfiguration, extended bool) PreviewModel {
	ti := textinput.New()
	ti.Placeholder = "payload name"
	ti.CharLimit = 40
	ti.Width = 24

	return PreviewModel{
		cfg:       cfg,
		probe:     probe,
		extended:  extended,
		waveform:  cfg.AssembleWaveform(),
		payload:   cfg.Frame.PayloadHex(),
		nameInput: ti,
	}
}

// Update handles key input for the preview screen.
func (m PreviewModel) Update(msg tea.Msg) (PreviewModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.saving {
		switch keyMsg.String() {
		case "enter":
			m.saving = false
			m.status = m.savePayload(strings.TrimSpace(m.nameInput.Value()))
			return m, nil
		case "esc":
			m.saving = false
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "s":
		m.saving = true
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, textinput.Blink
	case "w":
		m.status = m.writePlot()
		return m, nil
	case "b", "esc":
		return m, func() tea.Msg { return goBackMsg{} }
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *PreviewModel) savePayload(name string) string {
	if name == "" {
		return errorStyle.Render("payload name must not be empty")
	}
	registry, err := config.LoadRegistry()
	if err != nil {
		return errorStyle.Render("load config: " + err.Error())
	}
	registry.SetPayload(name, m.payload, m.probe.String(), m.extended, "")
	if err := registry.Save(); err != nil {
		return errorStyle.Render("save config: " + err.Error())
	}
	return doneStyle.Render(fmt.Sprintf("saved payload %q", name))
}

func (m *PreviewModel) writePlot() string {
	path := fmt.Sprintf("waveviz-%s.png", time.Now().Format("20060102-150405"))
	opts := render.DefaultOptions()
	opts.Title = fmt.Sprintf("J1939 Waveform (%s)", m.probe)
	if err := render.Write(path, m.waveform, m.cfg.Period, opts); err != nil {
		return errorStyle.Render("write plot: " + err.Error())
	}
	return doneStyle.Render("wrote " + path)
}

// View renders the preview screen.
func (m PreviewModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Waveform Preview"))
	sb.WriteString("\n\n")
	sb.WriteString(ui.RenderASCII(m.waveform, ui.GetTerminalWidth()))
	sb.WriteString("\n")
	sb.WriteString(normalStyle.Render(fmt.Sprintf("  Payload:  0x%s", m.payload)))
	sb.WriteByte('\n')
	sb.WriteString(normalStyle.Render(fmt.Sprintf("  Probe:    %s", m.probe)))
	sb.WriteByte('\n')
	sb.WriteString(normalStyle.Render(fmt.Sprintf("  Bits:     %d · bit period %.0fµs",
		m.cfg.Frame.TotalBits(), m.cfg.Period*1e6)))
	sb.WriteByte('\n')

	if m.saving {
		sb.WriteString("\n")
		sb.WriteString(normalStyle.Render("  Save as: "))
		sb.WriteString(m.nameInput.View())
		sb.WriteByte('\n')
		sb.WriteString(hintStyle.Render("enter save · esc cancel"))
		sb.WriteByte('\n')
		return sb.String()
	}

	if m.status != "" {
		sb.WriteString("\n  ")
		sb.WriteString(m.status)
		sb.WriteByte('\n')
	}
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("s save payload · w write plot · b back · q quit"))
	sb.WriteByte('\n')
	return sb.String()
}
