// Package logging provides concrete implementations of the slscmigrate.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr (or any writer) with thread-safe output
//   - FileLogger: Appends timestamped messages to a size-rotated log file
//   - TeeLogger: Fans every message out to several loggers
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
