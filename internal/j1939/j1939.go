// Package j1939 provides the J1939/CAN frame layout and probe voltage
// table for the waveform visualizer.
//
// A layout is a fixed ordering of fields (SOF, ID, Control, Data, CRC, ACK,
// EOF) over the bit-level frame model in internal/protocol. The probe
// configuration selects which physical bus line the simulated measurement is
// taken from, which in turn fixes the logic voltages of the waveform.
package j1939

import (
	"fmt"
	"strings"

	"github.com/MasonDill/waveform-visualizer/internal/protocol"
)

// Frequency is the bus bit rate in Hz (standard CAN bit rate, giving a
// 4 microsecond bit period).
const Frequency = 250000.0

// Field lengths in bits.
const (
	SOFBits     = 1
	StdIDBits   = 11
	ExtIDBits   = 29
	ControlBits = 3
	DataBits    = 8
	CRCBits     = 15
	ACKBits     = 2
	EOFBits     = 7
)

// Logic voltages by bus line. The differential pair is the per-level
// difference between the two lines.
const (
	canHHighVoltage = 3.5
	canHLowVoltage  = 2.5
	canLHighVoltage = 2.5
	canLLowVoltage  = 1.5
)

// ProbeConfiguration selects which physical bus line(s) a simulated voltage
// measurement is taken from.
type ProbeConfiguration int

const (
	// ProbeCanH measures the CAN_H line (3.5 V high, 2.5 V low)
	ProbeCanH ProbeConfiguration = iota
	// ProbeCanL measures the CAN_L line (2.5 V high, 1.5 V low)
	ProbeCanL
	// ProbeDifferential measures CAN_H minus CAN_L
	ProbeDifferential
)

// String returns the conventional name for the probe configuration
func (p ProbeConfiguration) String() string {
	switch p {
	case ProbeCanH:
		return "CAN_H"
	case ProbeCanL:
		return "CAN_L"
	case ProbeDifferential:
		return "DIFFERENTIAL"
	default:
		return fmt.Sprintf("ProbeConfiguration(%d)", p)
	}
}

// ParseProbe maps a user-supplied string onto a ProbeConfiguration.
// Matching is case-insensitive and tolerates the underscore being omitted.
// Returns a ConfigurationError for anything outside the enumerated set.
func ParseProbe(s string) (ProbeConfiguration, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CAN_H", "CANH", "H":
		return ProbeCanH, nil
	case "CAN_L", "CANL", "L":
		return ProbeCanL, nil
	case "DIFFERENTIAL", "DIFF", "D":
		return ProbeDifferential, nil
	}
	return 0, protocol.NewConfigurationError(fmt.Sprintf("invalid probe configuration %q", s))
}

// Probes lists the valid probe configurations in display order.
func Probes() []ProbeConfiguration {
	return []ProbeConfiguration{ProbeCanH, ProbeCanL, ProbeDifferential}
}

// Voltages returns the high and low logic voltages measured by the probe.
// Returns a ConfigurationError for a probe outside the enumerated set.
func (p ProbeConfiguration) Voltages() (high, low float64, err error) {
	switch p {
	case ProbeCanH:
		return canHHighVoltage, canHLowVoltage, nil
	case ProbeCanL:
		return canLHighVoltage, canLLowVoltage, nil
	case ProbeDifferential:
		return canHHighVoltage - canLHighVoltage, canHLowVoltage - canLLowVoltage, nil
	}
	return 0, 0, protocol.NewConfigurationError(fmt.Sprintf("invalid probe configuration %d", p))
}

// NewFrame builds a fresh J1939 frame layout. Every call allocates brand-new
// fields, so frames from separate calls never share symbol storage and
// separate Configs can parse independently.
func NewFrame(extended bool) *protocol.Frame {
	idBits := StdIDBits
	if extended {
		idBits = ExtIDBits
	}
	return protocol.NewFrame(
		protocol.NewField("SOF", SOFBits),
		protocol.NewField("ID", idBits),
		protocol.NewField("Control", ControlBits),
		protocol.NewField("Data", DataBits),
		protocol.NewField("CRC", CRCBits),
		protocol.NewField("ACK", ACKBits),
		protocol.NewField("EOF", EOFBits),
	)
}

// New builds a protocol Config for the given probe configuration and
// identifier width, ready for GenerateWaveform calls.
func New(probe ProbeConfiguration, extended bool) (*protocol.Config, error) {
	high, low, err := probe.Voltages()
	if err != nil {
		return nil, err
	}
	return protocol.NewConfig(Frequency, high, low, NewFrame(extended))
}
