package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MasonDill/waveform-visualizer/internal/protocol"
)

func TestUnitFor(t *testing.T) {
	tests := []struct {
		maxTime float64
		want    string
	}{
		{5e-7, "ns"},
		{1e-6, "µs"},
		{1.88e-4, "µs"},
		{1e-3, "ms"},
		{0.5, "ms"},
		{1, "s"},
		{42, "s"},
	}
	for _, tt := range tests {
		if got := UnitFor(tt.maxTime); got.Suffix != tt.want {
			t.Errorf("UnitFor(%g).Suffix = %q, want %q", tt.maxTime, got.Suffix, tt.want)
		}
	}
}

func TestTimeTicksLabels(t *testing.T) {
	unit := UnitFor(1.88e-4)
	ticks := TimeTicks{Unit: unit}.Ticks(0, 1.88e-4)
	if len(ticks) == 0 {
		t.Fatal("no ticks produced")
	}
	for _, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		if !strings.HasSuffix(tk.Label, unit.Suffix) {
			t.Errorf("tick label %q missing unit %q", tk.Label, unit.Suffix)
		}
	}
}

func TestStepXYs(t *testing.T) {
	wf := &protocol.Waveform{
		TimePoints:    []float64{0, 4e-6, 8e-6},
		VoltagePoints: []float64{3.5, 2.5, 3.5},
	}
	pts := StepXYs(wf, 4e-6)
	if len(pts) != 6 {
		t.Fatalf("len(StepXYs) = %d, want 6", len(pts))
	}

	// Each bit holds its level until the next edge
	if pts[0].X != 0 || pts[0].Y != 3.5 {
		t.Errorf("pts[0] = %+v", pts[0])
	}
	if pts[1].X != 4e-6 || pts[1].Y != 3.5 {
		t.Errorf("pts[1] = %+v", pts[1])
	}
	if pts[2].X != 4e-6 || pts[2].Y != 2.5 {
		t.Errorf("pts[2] = %+v", pts[2])
	}
	// The final bit is held for one full period
	if pts[5].X != 12e-6 || pts[5].Y != 3.5 {
		t.Errorf("pts[5] = %+v", pts[5])
	}
}

func TestWrite(t *testing.T) {
	wf := &protocol.Waveform{
		TimePoints:    []float64{0, 4e-6, 8e-6, 12e-6},
		VoltagePoints: []float64{2.5, 3.5, 3.5, 2.5},
	}
	path := filepath.Join(t.TempDir(), "wave.png")
	if err := Write(path, wf, 4e-6, Options{Title: "test"}); err != nil {
		t.Fatalf("Write error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat error = %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestWriteEmptyWaveform(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "wave.png"), &protocol.Waveform{}, 4e-6, Options{})
	if !protocol.IsValidationError(err) {
		t.Errorf("Write error = %v, want ValidationError", err)
	}
}
