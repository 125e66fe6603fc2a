package config

import "time"

// Registry represents the entire user configuration file.
// This stores application preferences and a library of saved payloads.
type Registry struct {
	Version     int                 `yaml:"version"`
	Payloads    map[string]*Payload `yaml:"payloads,omitempty"` // Keyed by user-chosen name
	Preferences *Preferences        `yaml:"preferences,omitempty"`
}

// Payload is a saved hex payload together with the probe setup it was
// captured or authored under, so it can be re-rendered exactly.
type Payload struct {
	Hex      string    `yaml:"hex"`                // Nibble-padded hex payload (no 0x prefix)
	Probe    string    `yaml:"probe,omitempty"`    // Probe name (CAN_H, CAN_L, DIFFERENTIAL)
	Extended bool      `yaml:"extended,omitempty"` // 29-bit identifier layout
	Notes    string    `yaml:"notes,omitempty"`    // Free-form user notes
	SavedAt  time.Time `yaml:"saved_at,omitempty"` // When the payload was saved
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultProbe string `yaml:"default_probe,omitempty"` // Probe used when --probe is omitted
	ExtendedID   bool   `yaml:"extended_id"`             // Default to the 29-bit identifier layout
	OutputFormat string `yaml:"output_format,omitempty"` // Plot file extension: png, svg or pdf
	ServeAddr    string `yaml:"serve_addr,omitempty"`    // Default listen address for waveviz serve
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:  1,
		Payloads: make(map[string]*Payload),
		Preferences: &Preferences{
			DefaultProbe: "CAN_H",
			OutputFormat: "png",
			ServeAddr:    "localhost:8173",
		},
	}
}

// SetPayload saves or replaces a named payload.
func (r *Registry) SetPayload(name, hex, probe string, extended bool, notes string) {
	if r.Payloads == nil {
		r.Payloads = make(map[string]*Payload)
	}
	r.Payloads[name] = &Payload{
		Hex:      hex,
		Probe:    probe,
		Extended: extended,
		Notes:    notes,
		SavedAt:  time.Now(),
	}
}

// DeletePayload removes a named payload. Returns false if it did not exist.
func (r *Registry) DeletePayload(name string) bool {
	if _, ok := r.Payloads[name]; !ok {
		return false
	}
	delete(r.Payloads, name)
	return true
}
