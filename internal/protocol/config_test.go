package protocol

import (
	"math"
	"testing"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := NewConfig(250000, 3.5, 2.5, nibbleFrame())
	if err != nil {
		t.Fatalf("NewConfig error = %v", err)
	}
	return cfg
}

func TestNewConfigRejectsBadFrequency(t *testing.T) {
	for _, freq := range []float64{0, -1, -250000} {
		_, err := NewConfig(freq, 3.5, 2.5, nibbleFrame())
		if !IsConfigurationError(err) {
			t.Errorf("NewConfig(%g) error = %v, want ConfigurationError", freq, err)
		}
	}
}

func TestConfigPeriod(t *testing.T) {
	cfg := testConfig(t)
	if got, want := cfg.Period, 1/cfg.Frequency; got != want {
		t.Errorf("Period = %g, want %g", got, want)
	}
}

func TestLogicToVoltage(t *testing.T) {
	cfg := testConfig(t)
	if got := cfg.LogicToVoltage(1); got != 3.5 {
		t.Errorf("LogicToVoltage(1) = %g, want 3.5", got)
	}
	if got := cfg.LogicToVoltage(0); got != 2.5 {
		t.Errorf("LogicToVoltage(0) = %g, want 2.5", got)
	}
}

func TestGenerateWaveform(t *testing.T) {
	cfg := testConfig(t)
	wf, err := cfg.GenerateWaveform("abc")
	if err != nil {
		t.Fatalf("GenerateWaveform error = %v", err)
	}

	total := cfg.Frame.TotalBits()
	if len(wf.TimePoints) != total || len(wf.VoltagePoints) != total {
		t.Fatalf("waveform lengths = %d/%d, want %d",
			len(wf.TimePoints), len(wf.VoltagePoints), total)
	}

	if wf.TimePoints[0] != 0 {
		t.Errorf("TimePoints[0] = %g, want 0", wf.TimePoints[0])
	}
	for k := 0; k+1 < len(wf.TimePoints); k++ {
		diff := wf.TimePoints[k+1] - wf.TimePoints[k]
		if math.Abs(diff-cfg.Period) > cfg.Period*1e-12 {
			t.Errorf("time step %d = %g, want %g", k, diff, cfg.Period)
		}
	}

	for i, v := range wf.VoltagePoints {
		if v != 2.5 && v != 3.5 {
			t.Errorf("VoltagePoints[%d] = %g, want 2.5 or 3.5", i, v)
		}
	}
}

func TestGenerateWaveformStripsPrefix(t *testing.T) {
	cfg := testConfig(t)
	for _, payload := range []string{"0xabc", "0Xabc"} {
		wf, err := cfg.GenerateWaveform(payload)
		if err != nil {
			t.Fatalf("GenerateWaveform(%q) error = %v", payload, err)
		}
		if wf.Len() != cfg.Frame.TotalBits() {
			t.Errorf("GenerateWaveform(%q) length = %d", payload, wf.Len())
		}
	}
}

func TestGenerateWaveformNoPartialResult(t *testing.T) {
	cfg := testConfig(t)
	wf, err := cfg.GenerateWaveform("zz")
	if err == nil {
		t.Fatal("GenerateWaveform expected error")
	}
	if !IsParseError(err) {
		t.Errorf("expected ParseError, got %v", err)
	}
	if wf != nil {
		t.Errorf("failed generation returned a waveform: %v", wf)
	}
}

// TestGenerateWaveformReparses verifies repeated calls overwrite prior
// logic-level assignments.
func TestGenerateWaveformReparses(t *testing.T) {
	cfg := testConfig(t)
	if _, err := cfg.GenerateWaveform("fff"); err != nil {
		t.Fatalf("GenerateWaveform error = %v", err)
	}
	wf, err := cfg.GenerateWaveform("000")
	if err != nil {
		t.Fatalf("GenerateWaveform error = %v", err)
	}
	for i, v := range wf.VoltagePoints {
		if v != 2.5 {
			t.Errorf("VoltagePoints[%d] = %g after re-parse of all-zero payload", i, v)
		}
	}
}

func TestWaveformMaxTime(t *testing.T) {
	cfg := testConfig(t)
	wf, err := cfg.GenerateWaveform("abc")
	if err != nil {
		t.Fatalf("GenerateWaveform error = %v", err)
	}
	want := float64(cfg.Frame.TotalBits()-1) * cfg.Period
	if math.Abs(wf.MaxTime()-want) > 1e-15 {
		t.Errorf("MaxTime() = %g, want %g", wf.MaxTime(), want)
	}

	empty := &Waveform{}
	if empty.MaxTime() != 0 {
		t.Errorf("empty MaxTime() = %g, want 0", empty.MaxTime())
	}
}

func TestStripHexPrefix(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0xabc", "abc"},
		{"0XABC", "ABC"},
		{"abc", "abc"},
		{"", ""},
		{"0", "0"},
	}
	for _, tt := range tests {
		if got := StripHexPrefix(tt.in); got != tt.want {
			t.Errorf("StripHexPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
