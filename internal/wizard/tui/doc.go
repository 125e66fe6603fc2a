// Package tui implements the interactive wizard.
//
// The wizard walks three screens: probe selection (which bus line is
// measured and the identifier width), per-field value entry (hex or
// decimal, validated field by field), and a waveform preview with actions
// to save the payload to the user's library or write a plot file.
//
// Screen flow is coordinated by AppModel, which routes messages to the
// active screen's submodel and handles transitions. Each screen is its own
// bubbletea-style model with Update and View methods.
package tui
