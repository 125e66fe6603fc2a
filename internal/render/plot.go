// Package render draws waveforms as step plots. It is the plotting
// collaborator of the frame model: it consumes a finished Waveform and
// contains no protocol logic of its own.
package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/MasonDill/waveform-visualizer/internal/protocol"
)

// Options control plot output. Zero values fall back to defaults.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		Title:  "Protocol Waveform",
		Width:  12 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

// StepXYs converts a waveform into the staircase point series drawn as a
// line: each bit contributes its leading edge and its level held until the
// next edge. The final bit is held for one period so it occupies the same
// width as every other bit.
func StepXYs(w *protocol.Waveform, period float64) plotter.XYs {
	pts := make(plotter.XYs, 0, 2*w.Len())
	for i := 0; i < w.Len(); i++ {
		t := w.TimePoints[i]
		v := w.VoltagePoints[i]
		end := t + period
		if i+1 < w.Len() {
			end = w.TimePoints[i+1]
		}
		pts = append(pts, plotter.XY{X: t, Y: v}, plotter.XY{X: end, Y: v})
	}
	return pts
}

// Write renders the waveform as a step plot and saves it to path. The output
// format follows the file extension (.png, .svg, .pdf per gonum/plot).
// Returns a ValidationError for an empty waveform.
func Write(path string, w *protocol.Waveform, period float64, opts Options) error {
	if w.Len() == 0 {
		return protocol.NewValidationError("cannot render an empty waveform")
	}
	if opts.Title == "" {
		opts.Title = DefaultOptions().Title
	}
	if opts.Width == 0 {
		opts.Width = DefaultOptions().Width
	}
	if opts.Height == 0 {
		opts.Height = DefaultOptions().Height
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Voltage (V)"
	p.X.Tick.Marker = TimeTicks{Unit: UnitFor(w.MaxTime() + period)}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(StepXYs(w, period))
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	// Leave headroom so the trace does not sit on the plot border.
	lo, hi := voltageRange(w)
	pad := (hi - lo) * 0.2
	if pad == 0 {
		pad = 0.5
	}
	p.Y.Min = lo - pad
	p.Y.Max = hi + pad

	return p.Save(opts.Width, opts.Height, path)
}

func voltageRange(w *protocol.Waveform) (lo, hi float64) {
	lo, hi = w.VoltagePoints[0], w.VoltagePoints[0]
	for _, v := range w.VoltagePoints[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
