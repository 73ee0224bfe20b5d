// Package slogger provides structured logging for the web tools. The
// Logger interface keeps callers decoupled from the backing implementation
// so hosts can plug in their own.
package slogger

import (
	"context"
	"strings"
)

// Logger accepts a message plus alternating key-value pairs, in the style
// of slog and zerolog.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warn level.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level.
	Error(msg string, keysAndValues ...any)

	// With returns a Logger that includes the given key-value pairs in
	// every entry.
	With(keysAndValues ...any) Logger
}

type contextKey string

const loggerKey contextKey = "webtools.logger"

// WithLogger attaches a logger to the context so downstream code can log
// through the host's configured logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// Ctx returns the logger attached to the context, or a default-level
// Slogger when none was attached.
func Ctx(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(Logger); ok {
			return logger
		}
	}
	return New(DefaultLogLevel)
}

// LevelFromString parses a log level name. Unknown names yield the
// default level.
func LevelFromString(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return DefaultLogLevel
	}
}
