package protocol

// Symbol is a single logic level held for a duration. Symbols are the atomic
// unit of a waveform: every bit in a frame expands to exactly one Symbol.
//
// A freshly constructed Field holds Symbols with level 0 and duration 0; the
// duration is stamped with the bus bit period by Config during waveform
// assembly, never by the parser.
type Symbol struct {
	LogicLevel int     // 0 or 1
	Duration   float64 // seconds
}

// Waveform is the time/voltage series produced from a parsed frame.
// TimePoints and VoltagePoints always have the same length, one entry per
// frame bit. TimePoints starts at zero and is non-decreasing.
type Waveform struct {
	TimePoints    []float64 `json:"time_points"`
	VoltagePoints []float64 `json:"voltage_points"`
}

// Len returns the number of samples in the waveform.
func (w *Waveform) Len() int {
	return len(w.TimePoints)
}

// MaxTime returns the time of the last sample, or 0 for an empty waveform.
// Renderers use this to pick a display unit for the time axis.
func (w *Waveform) MaxTime() float64 {
	if len(w.TimePoints) == 0 {
		return 0
	}
	return w.TimePoints[len(w.TimePoints)-1]
}
