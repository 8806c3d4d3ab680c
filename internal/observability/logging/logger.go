// Package logging builds the process-wide structured logger. Both binaries
// log JSON lines to stdout so the scoring pipeline's reasoning chains stay
// machine-readable next to the access and worker logs.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

var levelNames = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// New builds a JSON logger tagged with the service name ("api" or
// "worker"). Debug level also records source positions, which is worth the
// overhead only when someone is tracing a scoring decision.
func New(service, level string) *slog.Logger {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With("service", service)
}
