// Package protocol implements the bit-level frame model at the heart of the
// waveform visualizer: the representation of a bus frame as an ordered
// sequence of named bit-fields, the mapping of a hex payload onto per-bit
// logic levels, and the expansion of those logic levels into a time/voltage
// waveform.
//
// # Model
//
// The types compose bottom-up:
//
//   - Symbol: one logic level held for a duration
//   - Field: a named, fixed-length run of Symbols that parses its own
//     span of the payload
//   - Frame: an ordered sequence of Fields with cumulative bit offsets
//   - Config: bus frequency plus the high/low logic voltages; turns a
//     parsed Frame into a Waveform
//
// # Parsing
//
// Payload parsing is nibble aligned: a field reads whole hex characters
// covering its span and keeps only the low bits it needs. Fields whose
// length is not a multiple of 4 therefore read more bits than they keep and
// discard the high-order excess. The most significant parsed bit always
// lands at symbol index 0, so a field's symbol order matches its on-wire
// bit order.
//
// # Usage
//
//	cfg, err := protocol.NewConfig(250000, 3.5, 2.5, frame)
//	if err != nil {
//	    return err
//	}
//	wf, err := cfg.GenerateWaveform("0x7ff15aa0007f")
//
// # Concurrency
//
// Parsing rewrites a frame's symbol storage in place, so a Config (and the
// Frame it owns) must not be shared between goroutines that generate
// waveforms concurrently. Layout factories such as j1939.New return fresh
// frames on every call precisely so that callers can build one Config per
// goroutine.
package protocol
