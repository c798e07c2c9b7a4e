package logging

import "github.com/vvka-141/slscmigrate/pkg/slscmigrate"

// TeeLogger forwards every message to each of its loggers in order.
type TeeLogger struct {
	loggers []slscmigrate.Logger
}

// NewTeeLogger creates a TeeLogger. Nil loggers are ignored.
func NewTeeLogger(loggers ...slscmigrate.Logger) *TeeLogger {
	t := &TeeLogger{}
	for _, l := range loggers {
		if l != nil {
			t.loggers = append(t.loggers, l)
		}
	}
	return t
}

// Verbose forwards to every logger; each applies its own verbosity.
func (t *TeeLogger) Verbose(format string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Verbose(format, args...)
	}
}

// Info forwards to every logger.
func (t *TeeLogger) Info(format string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Info(format, args...)
	}
}

// Error forwards to every logger.
func (t *TeeLogger) Error(format string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Error(format, args...)
	}
}
