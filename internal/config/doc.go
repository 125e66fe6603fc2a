// Package config manages the user configuration file for waveviz.
//
// The registry lives in the platform configuration directory
// (~/.config/waveviz/config.yaml on Unix) and holds two things: display
// preferences (default probe, identifier width, output format, serve
// address) and a library of named payloads saved from the wizard or the
// payloads command. File writes are atomic (temp file + rename) and the
// global instance is loaded once per process.
package config
