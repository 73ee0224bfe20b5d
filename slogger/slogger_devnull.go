package slogger

// NewDevNullLogger returns a Logger that discards everything. It is the
// default for components whose callers did not ask for logging.
func NewDevNullLogger() *DevNullLogger {
	return &DevNullLogger{}
}

// DevNullLogger discards all log entries.
type DevNullLogger struct{}

func (l *DevNullLogger) Debug(msg string, keysAndValues ...any) {}

func (l *DevNullLogger) Info(msg string, keysAndValues ...any) {}

func (l *DevNullLogger) Warn(msg string, keysAndValues ...any) {}

func (l *DevNullLogger) Error(msg string, keysAndValues ...any) {}

func (l *DevNullLogger) With(keysAndValues ...any) Logger { return l }
