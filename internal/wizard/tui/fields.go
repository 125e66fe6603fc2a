package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MasonDill/waveform-visualizer/internal/protocol"
)

// InputBase is the number base used for field entry.
type InputBase int

const (
	BaseHex InputBase = iota
	BaseDecimal
)

func (b InputBase) String() string {
	if b == BaseDecimal {
		return "decimal"
	}
	return "hex"
}

// FieldsModel is the per-field entry screen: the user supplies a value for
// each field of the frame in order, in hex or decimal.
type FieldsModel struct {
	cfg    *protocol.Config
	index  int // field currently being entered
	base   InputBase
	input  textinput.Model
	errMsg string
	done   []bool
}

// NewFieldsModel creates the entry screen for a frame layout.
func NewFieldsModel(cfg *protocol.Config) FieldsModel {
	ti := textinput.New()
	ti.Placeholder = "value"
	ti.CharLimit = 16
	ti.Width = 20
	ti.Focus()

	return FieldsModel{
		cfg:   cfg,
		input: ti,
		done:  make([]bool, len(cfg.Frame.Fields)),
	}
}

// Init implements the submodel contract.
func (m FieldsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input for the entry screen.
func (m FieldsModel) Update(msg tea.Msg) (FieldsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return goBackMsg{} }
		case "tab":
			if m.base == BaseHex {
				m.base = BaseDecimal
			} else {
				m.base = BaseHex
			}
			m.errMsg = ""
			return m, nil
		case "enter":
			return m.commit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commit validates the current value against the current field. Invalid
// entry keeps the cursor on the field and surfaces the error; the last
// field's commit hands the parsed frame to the preview screen.
func (m FieldsModel) commit() (FieldsModel, tea.Cmd) {
	field := m.cfg.Frame.Fields[m.index]
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		value = "0"
	}

	var err error
	switch m.base {
	case BaseDecimal:
		err = field.ParseDecimal(value)
	default:
		hexVal := padHex(value, field.NumChars())
		if len(hexVal) > field.NumChars() {
			err = protocol.NewValidationError(fmt.Sprintf(
				"value %q does not fit in %d hex characters", value, field.NumChars()))
		} else {
			err = field.ParseHex(hexVal, 0)
		}
	}
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.done[m.index] = true
	m.errMsg = ""
	m.input.SetValue("")

	if m.index < len(m.cfg.Frame.Fields)-1 {
		m.index++
		return m, nil
	}

	cfg := m.cfg
	return m, func() tea.Msg { return fieldsDoneMsg{cfg: cfg} }
}

// padHex left-pads a hex value to the field's character span so short entry
// like "f" works for any field width. Overlong values are returned as-is
// for the caller to reject.
func padHex(value string, numChars int) string {
	value = protocol.StripHexPrefix(value)
	if len(value) >= numChars {
		return value
	}
	return strings.Repeat("0", numChars-len(value)) + value
}

// View renders the entry screen.
func (m FieldsModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Frame Fields"))
	sb.WriteString("\n\n")

	for i, f := range m.cfg.Frame.Fields {
		label := fmt.Sprintf("%-8s %2d bits", f.Name, f.Length)
		switch {
		case i == m.index:
			sb.WriteString(selectedStyle.Render("› " + label + "  "))
			sb.WriteString(m.input.View())
		case m.done[i]:
			sb.WriteString(doneStyle.Render(fmt.Sprintf("✓ %s  = 0x%x", label, f.Value())))
		default:
			sb.WriteString(normalStyle.Render("  " + label))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("\n")
	sb.WriteString(normalStyle.Render(fmt.Sprintf("  Input base: %s", m.base)))
	sb.WriteByte('\n')
	if m.errMsg != "" {
		sb.WriteString(errorStyle.Render("  " + m.errMsg))
		sb.WriteByte('\n')
	}
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("enter accept · tab switch base · esc back"))
	sb.WriteByte('\n')
	return sb.String()
}
