package j1939

import (
	"math"
	"testing"

	"github.com/MasonDill/waveform-visualizer/internal/protocol"
)

// TestProbeVoltageTable tests the probe voltage pairs
func TestProbeVoltageTable(t *testing.T) {
	tests := []struct {
		probe     ProbeConfiguration
		high, low float64
	}{
		{ProbeCanH, 3.5, 2.5},
		{ProbeCanL, 2.5, 1.5},
		{ProbeDifferential, 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.probe.String(), func(t *testing.T) {
			high, low, err := tt.probe.Voltages()
			if err != nil {
				t.Fatalf("Voltages() error = %v", err)
			}
			if high != tt.high || low != tt.low {
				t.Errorf("Voltages() = (%g, %g), want (%g, %g)", high, low, tt.high, tt.low)
			}
		})
	}
}

func TestInvalidProbe(t *testing.T) {
	if _, _, err := ProbeConfiguration(99).Voltages(); !protocol.IsConfigurationError(err) {
		t.Errorf("Voltages() error = %v, want ConfigurationError", err)
	}
	if _, err := New(ProbeConfiguration(99), false); !protocol.IsConfigurationError(err) {
		t.Errorf("New() error = %v, want ConfigurationError", err)
	}
}

func TestParseProbe(t *testing.T) {
	tests := []struct {
		in      string
		want    ProbeConfiguration
		wantErr bool
	}{
		{"CAN_H", ProbeCanH, false},
		{"can_h", ProbeCanH, false},
		{"canh", ProbeCanH, false},
		{"h", ProbeCanH, false},
		{"CAN_L", ProbeCanL, false},
		{"l", ProbeCanL, false},
		{"DIFFERENTIAL", ProbeDifferential, false},
		{"diff", ProbeDifferential, false},
		{" d ", ProbeDifferential, false},
		{"bogus", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProbe(tt.in)
			if tt.wantErr {
				if !protocol.IsConfigurationError(err) {
					t.Errorf("ParseProbe(%q) error = %v, want ConfigurationError", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProbe(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseProbe(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFrameLayout(t *testing.T) {
	std := NewFrame(false)
	if got := std.TotalBits(); got != 47 {
		t.Errorf("standard TotalBits() = %d, want 47", got)
	}
	ext := NewFrame(true)
	if got := ext.TotalBits(); got != 65 {
		t.Errorf("extended TotalBits() = %d, want 65", got)
	}

	wantNames := []string{"SOF", "ID", "Control", "Data", "CRC", "ACK", "EOF"}
	for i, f := range std.Fields {
		if f.Name != wantNames[i] {
			t.Errorf("field %d = %q, want %q", i, f.Name, wantNames[i])
		}
	}

	if std.Fields[1].Length != 11 || ext.Fields[1].Length != 29 {
		t.Errorf("ID lengths = %d/%d, want 11/29",
			std.Fields[1].Length, ext.Fields[1].Length)
	}
}

// TestFramesDoNotAlias verifies the factory returns independent frames.
func TestFramesDoNotAlias(t *testing.T) {
	a := NewFrame(false)
	b := NewFrame(false)

	if err := a.Parse("ffffffffffff"); err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	for _, s := range b.AllSymbols() {
		if s.LogicLevel != 0 {
			t.Fatal("parsing one frame changed another frame's symbols")
		}
	}
}

// TestEndToEnd covers the full transform on the standard layout with a
// CAN_H probe.
func TestEndToEnd(t *testing.T) {
	cfg, err := New(ProbeCanH, false)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	wf, err := cfg.GenerateWaveform("7ff15aa0007f")
	if err != nil {
		t.Fatalf("GenerateWaveform error = %v", err)
	}
	if wf.Len() != 47 {
		t.Fatalf("waveform length = %d, want 47", wf.Len())
	}

	for i, v := range wf.VoltagePoints {
		if v != 2.5 && v != 3.5 {
			t.Errorf("VoltagePoints[%d] = %g, want 2.5 or 3.5", i, v)
		}
	}

	const period = 4e-6
	if wf.TimePoints[0] != 0 {
		t.Errorf("TimePoints[0] = %g, want 0", wf.TimePoints[0])
	}
	for k := 0; k+1 < wf.Len(); k++ {
		diff := wf.TimePoints[k+1] - wf.TimePoints[k]
		if diff <= 0 {
			t.Fatalf("time not strictly increasing at %d", k)
		}
		if math.Abs(diff-period) > period*1e-9 {
			t.Errorf("time step %d = %g, want %g", k, diff, period)
		}
	}
}

func TestShortPayloadFails(t *testing.T) {
	cfg, err := New(ProbeCanH, false)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	// Standard layout needs ceil(47/4) = 12 hex chars
	if _, err := cfg.GenerateWaveform("7ff15aa0007"); !protocol.IsParseError(err) {
		t.Errorf("11-char payload error = %v, want ParseError", err)
	}
}

func TestBitRate(t *testing.T) {
	cfg, err := New(ProbeCanL, false)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if cfg.Frequency != 250000 {
		t.Errorf("Frequency = %g, want 250000", cfg.Frequency)
	}
	if math.Abs(cfg.Period-4e-6) > 1e-18 {
		t.Errorf("Period = %g, want 4e-6", cfg.Period)
	}
}
