package logging

import (
	"fmt"
	"io"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file.
const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 28
)

// FileLogger appends timestamped, level-tagged lines to a log file that is
// rotated once it grows past maxLogSizeMB.
// Safe for concurrent use by multiple goroutines.
type FileLogger struct {
	out     io.WriteCloser
	verbose bool
	now     func() time.Time
	mu      sync.Mutex
}

// NewFileLogger creates a FileLogger appending to path. The file and its
// directory are created on first write.
func NewFileLogger(path string, verbose bool) *FileLogger {
	return &FileLogger{
		out: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
			Compress:   true,
		},
		verbose: verbose,
		now:     time.Now,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *FileLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("VERBOSE", format, args)
}

// Info logs informational messages about normal operations.
func (l *FileLogger) Info(format string, args ...interface{}) {
	l.write("INFO", format, args)
}

// Error logs error messages.
func (l *FileLogger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args)
}

// Close closes the underlying log file.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Close()
}

func (l *FileLogger) write(level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.out, "%s %-7s %s\n", l.now().UTC().Format(time.RFC3339), level, msg)
}
