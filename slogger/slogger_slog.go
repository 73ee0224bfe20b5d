package slogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// DefaultLogLevel applies when no level is configured.
var DefaultLogLevel = LevelInfo

// LogLevel is the minimum level a logger emits at.
type LogLevel slog.Level

const (
	LevelDebug LogLevel = LogLevel(slog.LevelDebug)
	LevelInfo  LogLevel = LogLevel(slog.LevelInfo)
	LevelWarn  LogLevel = LogLevel(slog.LevelWarn)
	LevelError LogLevel = LogLevel(slog.LevelError)
)

// Slogger is a Logger backed by slog with a tint handler. Every entry is
// annotated with the call site as a "caller" attribute.
type Slogger struct {
	logger *slog.Logger
}

// New returns a Slogger writing colorized output to stdout. Color is
// disabled when stdout is not a terminal.
func New(level LogLevel) *Slogger {
	return newSlogger(os.Stdout, level, !isatty.IsTerminal(os.Stdout.Fd()))
}

// NewWithWriter returns a Slogger writing plain output to w.
func NewWithWriter(w io.Writer, level LogLevel) *Slogger {
	return newSlogger(w, level, true)
}

func newSlogger(w io.Writer, level LogLevel, noColor bool) *Slogger {
	handler := tint.NewHandler(w, &tint.Options{
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
		Level:      slog.Level(level),
	})
	return &Slogger{logger: slog.New(handler)}
}

func (l *Slogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, annotateCaller(keysAndValues)...)
}

func (l *Slogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, annotateCaller(keysAndValues)...)
}

func (l *Slogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, annotateCaller(keysAndValues)...)
}

func (l *Slogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, annotateCaller(keysAndValues)...)
}

func (l *Slogger) With(keysAndValues ...any) Logger {
	return &Slogger{logger: l.logger.With(keysAndValues...)}
}

// annotateCaller prepends the logging call site as a "caller" attribute.
// The skip count steps over annotateCaller and the level method.
func annotateCaller(keysAndValues []any) []any {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return keysAndValues
	}
	return append([]any{"caller", shortPath(file, line)}, keysAndValues...)
}

// shortPath trims a file path down to its last two components.
func shortPath(file string, line int) string {
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		if j := strings.LastIndexByte(file[:i], '/'); j >= 0 {
			file = file[j+1:]
		}
	}
	return fmt.Sprintf("%s:%d", file, line)
}
