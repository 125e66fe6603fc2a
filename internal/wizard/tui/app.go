package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MasonDill/waveform-visualizer/internal/config"
	"github.com/MasonDill/waveform-visualizer/internal/j1939"
	"github.com/MasonDill/waveform-visualizer/internal/protocol"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenProbe   Screen = "probe"
	ScreenFields  Screen = "fields"
	ScreenPreview Screen = "preview"
)

// Messages for screen transitions
type probeChosenMsg struct {
	probe    j1939.ProbeConfiguration
	extended bool
}

type fieldsDoneMsg struct {
	cfg *protocol.Config
}

type goBackMsg struct{}

// AppModel is the top-level coordinator model that manages screen
// transitions between probe selection, field entry and waveform preview.
type AppModel struct {
	CurrentScreen Screen

	ProbeModel   ProbeModel
	FieldsModel  FieldsModel
	PreviewModel PreviewModel

	// Shared application state
	Probe    j1939.ProbeConfiguration
	Extended bool
	Config   *protocol.Config

	// UI state
	Width  int
	Height int
}

// NewAppModel creates the wizard with defaults taken from user preferences.
func NewAppModel(prefs *config.Preferences) AppModel {
	probe := j1939.ProbeCanH
	extended := false
	if prefs != nil {
		if p, err := j1939.ParseProbe(prefs.DefaultProbe); err == nil {
			probe = p
		}
		extended = prefs.ExtendedID
	}
	return AppModel{
		CurrentScreen: ScreenProbe,
		ProbeModel:    NewProbeModel(probe, extended),
		Probe:         probe,
		Extended:      extended,
	}
}

// Init implements tea.Model
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case probeChosenMsg:
		m.Probe = msg.probe
		m.Extended = msg.extended
		cfg, err := j1939.New(msg.probe, msg.extended)
		if err != nil {
			// Probe values come from the enumerated list, so this only
			// trips if the list and the voltage table fall out of sync.
			return m, tea.Quit
		}
		m.Config = cfg
		m.FieldsModel = NewFieldsModel(cfg)
		m.CurrentScreen = ScreenFields
		return m, m.FieldsModel.Init()

	case fieldsDoneMsg:
		m.PreviewModel = NewPreviewModel(msg.cfg, m.Probe, m.Extended)
		m.CurrentScreen = ScreenPreview
		return m, nil

	case goBackMsg:
		switch m.CurrentScreen {
		case ScreenFields:
			m.CurrentScreen = ScreenProbe
		case ScreenPreview:
			m.CurrentScreen = ScreenFields
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.CurrentScreen {
	case ScreenProbe:
		m.ProbeModel, cmd = m.ProbeModel.Update(msg)
	case ScreenFields:
		m.FieldsModel, cmd = m.FieldsModel.Update(msg)
	case ScreenPreview:
		m.PreviewModel, cmd = m.PreviewModel.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenProbe:
		return m.ProbeModel.View()
	case ScreenFields:
		return m.FieldsModel.View()
	case ScreenPreview:
		return m.PreviewModel.View()
	}
	return ""
}

// Run launches the wizard and blocks until the user quits.
func Run(prefs *config.Preferences) error {
	p := tea.NewProgram(NewAppModel(prefs))
	_, err := p.Run()
	return err
}
