// Package filesystem provides the file access the migration service needs.
//
// Documents are read and written whole. Writes are atomic: data goes to a
// temporary file in the destination directory which is then renamed over the
// target, so readers never observe a partially written document. Writers take
// an exclusive advisory lock on "<path>.lock" for the duration of a write.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem and gofrs/flock
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
