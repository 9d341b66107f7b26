// Package log provides sortn's structured logging, built on the standard
// slog package.
//
// Log records go to stderr so they never mix with sorted output on stdout.
// The default level is Warn; verbose mode lowers it to Debug.
//
// Debug records may carry samples of input lines, and a single input line
// can be arbitrarily long. ClipHandler wraps any slog.Handler and shortens
// long string attribute values so every record stays readable.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("step completed", "step", "sort", "head", lines[0])
//	slog.SetDefault(logger)
package log
