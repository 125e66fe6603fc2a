// Package logging provides structured logging for the waveform visualizer.
//
// It wraps zap with package-level convenience functions and a couple of
// domain helpers (field parses, waveform stats, serve-endpoint messages).
// Logging is silent unless WAVEVIZ_LOG_LEVEL is set, so CLI output and the
// interactive wizard stay clean by default:
//
//	WAVEVIZ_LOG_LEVEL=debug waveviz render 7ff15aa0007f
//
// All output goes to stderr in console format; stdout is reserved for
// command results. All logging functions are safe for concurrent use.
package logging
