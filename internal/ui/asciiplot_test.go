package ui

import (
	"strings"
	"testing"

	"github.com/MasonDill/waveform-visualizer/internal/j1939"
	"github.com/MasonDill/waveform-visualizer/internal/protocol"
)

func waveformFor(t *testing.T, probe j1939.ProbeConfiguration) *protocol.Waveform {
	t.Helper()
	cfg, err := j1939.New(probe, false)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	wf, err := cfg.GenerateWaveform("7ff15aa0007f")
	if err != nil {
		t.Fatalf("GenerateWaveform error = %v", err)
	}
	return wf
}

func TestRenderASCII(t *testing.T) {
	out := RenderASCII(waveformFor(t, j1939.ProbeCanH), 100)

	if !strings.Contains(out, "▔") {
		t.Error("trace missing high-level marks")
	}
	if !strings.Contains(out, "▁") {
		t.Error("trace missing low-level marks")
	}
	if !strings.Contains(out, "3.5V") || !strings.Contains(out, "2.5V") {
		t.Errorf("trace missing voltage labels:\n%s", out)
	}
	if !strings.Contains(out, "µs") {
		t.Error("axis missing time unit")
	}
}

// TestRenderASCIIDifferential verifies equal logic voltages collapse to a
// single trace row.
func TestRenderASCIIDifferential(t *testing.T) {
	out := RenderASCII(waveformFor(t, j1939.ProbeDifferential), 100)

	if strings.Contains(out, "▁") {
		t.Error("flat differential trace should not have a low row")
	}
	if got := strings.Count(strings.TrimRight(out, "\n"), "\n") + 1; got != 2 {
		t.Errorf("differential trace has %d lines, want 2:\n%s", got, out)
	}
}

func TestRenderASCIIEmpty(t *testing.T) {
	if out := RenderASCII(&protocol.Waveform{}, 100); out != "" {
		t.Errorf("empty waveform rendered %q", out)
	}
}

func TestRenderASCIINarrowTerminal(t *testing.T) {
	out := RenderASCII(waveformFor(t, j1939.ProbeCanH), 10)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		// 10 is below the supported minimum; the renderer clamps up to it
		if n := len([]rune(stripANSI(line))); n > MinTerminalWidth {
			t.Errorf("line width %d exceeds %d: %q", n, MinTerminalWidth, line)
		}
	}
}

// stripANSI removes escape sequences lipgloss may emit in color terminals.
func stripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
