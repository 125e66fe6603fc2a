package protocol

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/MasonDill/waveform-visualizer/internal/logging"
)

// Config binds a frame layout to the electrical parameters of a probe: the
// bus frequency and the voltages that logic high and logic low measure as.
// A Config is built once per protocol variant and reused across waveform
// requests; each request re-parses the frame's fields in place.
type Config struct {
	Frequency   float64 // Hz
	Period      float64 // seconds per bit, 1/Frequency
	HighVoltage float64 // volts measured for logic 1
	LowVoltage  float64 // volts measured for logic 0
	Frame       *Frame
}

// NewConfig creates a protocol configuration. Returns a ConfigurationError
// if frequency is not positive.
func NewConfig(frequency, highVoltage, lowVoltage float64, frame *Frame) (*Config, error) {
	if frequency <= 0 {
		return nil, NewConfigurationError(fmt.Sprintf("frequency must be positive, got %g", frequency))
	}
	return &Config{
		Frequency:   frequency,
		Period:      1 / frequency,
		HighVoltage: highVoltage,
		LowVoltage:  lowVoltage,
		Frame:       frame,
	}, nil
}

// LogicToVoltage converts a logic level to the probe's voltage for it.
func (c *Config) LogicToVoltage(level int) float64 {
	if level == 1 {
		return c.HighVoltage
	}
	return c.LowVoltage
}

// GenerateWaveform parses a hex payload into the frame and expands it into a
// time/voltage waveform. An optional "0x"/"0X" prefix is stripped before
// parsing. On a parse failure no waveform is returned and the frame is left
// invalid until re-parsed.
//
// Not safe for concurrent use on a shared Config: parsing rewrites the
// frame's symbol storage in place. Build one Config per goroutine when
// generating waveforms in parallel.
func (c *Config) GenerateWaveform(data string) (*Waveform, error) {
	data = StripHexPrefix(data)
	if err := c.Frame.Parse(data); err != nil {
		logging.Error("Payload parse failed",
			zap.String("payload", data),
			zap.Error(err),
		)
		return nil, err
	}
	wf := c.AssembleWaveform()
	logging.LogWaveform(wf.Len(), c.Period, c.HighVoltage, c.LowVoltage)
	return wf, nil
}

// AssembleWaveform stamps uniform bit timing onto the frame's symbols and
// expands them into a waveform. Exposed separately from GenerateWaveform so
// that interactive entry, which parses fields individually, shares the same
// assembly path.
func (c *Config) AssembleWaveform() *Waveform {
	for _, f := range c.Frame.Fields {
		for i := range f.Symbols {
			f.Symbols[i].Duration = c.Period
		}
	}

	symbols := c.Frame.AllSymbols()
	times := make([]float64, 0, len(symbols))
	volts := make([]float64, 0, len(symbols))
	t := 0.0
	for _, s := range symbols {
		times = append(times, t)
		volts = append(volts, c.LogicToVoltage(s.LogicLevel))
		t += s.Duration
	}
	return &Waveform{TimePoints: times, VoltagePoints: volts}
}

// StripHexPrefix removes a leading "0x" or "0X" from a payload string.
func StripHexPrefix(data string) string {
	if strings.HasPrefix(data, "0x") || strings.HasPrefix(data, "0X") {
		return data[2:]
	}
	return data
}
