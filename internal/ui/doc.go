// Package ui provides shared terminal presentation: the lipgloss color
// palette and styles used across commands, terminal width probing, and an
// ASCII step-trace preview of generated waveforms.
package ui
