package render

import (
	"fmt"

	"gonum.org/v1/plot"
)

// TimeUnit is a display unit for the waveform time axis.
type TimeUnit struct {
	Suffix string  // unit suffix appended to tick labels
	Scale  float64 // multiplier from seconds to the unit
}

// UnitFor picks the axis unit from the maximum time value: below 1 µs the
// axis reads in ns, below 1 ms in µs, below 1 s in ms, otherwise in seconds.
func UnitFor(maxTime float64) TimeUnit {
	switch {
	case maxTime < 1e-6:
		return TimeUnit{Suffix: "ns", Scale: 1e9}
	case maxTime < 1e-3:
		return TimeUnit{Suffix: "µs", Scale: 1e6}
	case maxTime < 1:
		return TimeUnit{Suffix: "ms", Scale: 1e3}
	default:
		return TimeUnit{Suffix: "s", Scale: 1}
	}
}

// TimeTicks is a plot.Ticker that relabels the default ticks in a fixed
// time unit.
type TimeTicks struct {
	Unit TimeUnit
}

// Ticks implements plot.Ticker.
func (t TimeTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		ticks[i].Label = fmt.Sprintf("%.0f%s", tk.Value*t.Unit.Scale, t.Unit.Suffix)
	}
	return ticks
}
