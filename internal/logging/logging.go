// Package logging configures the process-wide structured logger for the
// stockroom CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// DefaultLevel is used when no level is configured. A shop CLI should stay
// quiet unless something is actually wrong.
const DefaultLevel = slog.LevelWarn

// New builds the stockroom logger: JSON records to stderr, optionally tee'd
// to logFile, tagged with the application name, and installed as the slog
// default so package-level slog calls work. The returned cleanup closes the
// log file if one was opened; callers must defer it.
func New(level, logFile string) (*slog.Logger, func(), error) {
	sink, cleanup, err := openSink(logFile)
	if err != nil {
		return nil, nil, err
	}

	handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: parseLevel(level)})
	logger := slog.New(handler).With(slog.String("app", "stockroom"))
	slog.SetDefault(logger)
	return logger, cleanup, nil
}

// openSink returns stderr, tee'd to logFile when one is named.
func openSink(logFile string) (io.Writer, func(), error) {
	if logFile == "" {
		return os.Stderr, func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return io.MultiWriter(os.Stderr, f), func() { _ = f.Close() }, nil
}

// parseLevel maps a configured level name to a slog level. Empty or unknown
// names fall back to DefaultLevel.
func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return DefaultLevel
	}
}
