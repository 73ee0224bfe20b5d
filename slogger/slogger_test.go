package slogger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	require.Equal(t, LevelDebug, LevelFromString("debug"))
	require.Equal(t, LevelInfo, LevelFromString("info"))
	require.Equal(t, LevelWarn, LevelFromString("warn"))
	require.Equal(t, LevelError, LevelFromString("error"))

	// Case insensitive
	require.Equal(t, LevelDebug, LevelFromString("DEBUG"))
	require.Equal(t, LevelWarn, LevelFromString("WaRn"))

	// Unknown and empty fall back to the default
	require.Equal(t, DefaultLogLevel, LevelFromString("verbose"))
	require.Equal(t, DefaultLogLevel, LevelFromString(""))
}

func TestSlogger_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug)

	logger.Info("tool call succeeded", "tool", "web_search", "results", 5)

	out := buf.String()
	require.Contains(t, out, "tool call succeeded")
	require.Contains(t, out, "tool=web_search")
	require.Contains(t, out, "results=5")
	require.Contains(t, out, "caller=")
}

func TestSlogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelWarn)

	logger.Debug("too quiet")
	logger.Info("still too quiet")
	logger.Warn("loud enough")
	logger.Error("definitely")

	out := buf.String()
	require.NotContains(t, out, "too quiet")
	require.Contains(t, out, "loud enough")
	require.Contains(t, out, "definitely")
}

func TestSlogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelInfo).With("component", "mcpserver")

	logger.Info("listening")

	require.Contains(t, buf.String(), "component=mcpserver")
}

func TestDevNullLogger(t *testing.T) {
	logger := NewDevNullLogger()
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("dropped")
	logger.Error("dropped")

	// With returns the same discarding logger
	require.Equal(t, logger, logger.With("key", "value"))
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewDevNullLogger()
	ctx := WithLogger(context.Background(), logger)
	require.Equal(t, Logger(logger), Ctx(ctx))

	// A context without a logger yields a usable default
	fallback := Ctx(context.Background())
	require.NotNil(t, fallback)
	require.IsType(t, &Slogger{}, fallback)
}

func TestShortPath(t *testing.T) {
	require.Equal(t, "slogger/slogger_slog.go:12", shortPath("/a/b/slogger/slogger_slog.go", 12))
	require.Equal(t, "b/c.go:3", shortPath("b/c.go", 3))
	require.Equal(t, "c.go:3", shortPath("c.go", 3))
}
