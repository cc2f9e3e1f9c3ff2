// Package logging assembles structured slog loggers and formatting helpers used
// across audio2mp4.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and tags every record with the invocation's run ID so the lines
// of one conversion can be grepped out of a shared log. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging
