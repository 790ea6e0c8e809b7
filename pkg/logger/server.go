package logger

import (
	"log/slog"
	"os"
)

// NewServerHandler returns the JSON handler used by the server entry
// points. One line per record on stdout, so log collectors can pick it
// up without any agent configuration.
func NewServerHandler(level slog.Level) slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
}

// NewCLIHandler returns a human-readable text handler for the one-shot
// command line tools.
func NewCLIHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
}
