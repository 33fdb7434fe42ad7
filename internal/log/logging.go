// Package log provides the process-wide slog.Logger setup.
package log

import (
	"log/slog"
	"os"
)

// Setup builds a text logger on stderr and installs it as the slog default,
// keeping stdout free for command output. Verbose enables debug level, which
// includes hex dumps of every report written.
func Setup(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
