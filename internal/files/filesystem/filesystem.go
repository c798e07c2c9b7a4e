package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// Unlocker releases a lock taken with FileSystemProvider.Lock.
type Unlocker interface {
	Unlock() error
}

// FileSystemProvider reads, writes and locks whole files.
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// WriteFile atomically replaces the file at path with data.
	// An existing file keeps its permissions; a new one gets perm.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Lock takes the exclusive write lock for path without blocking.
	// Returns an error wrapping slscmigrate.ErrOutputLocked if another writer holds it.
	Lock(path string) (Unlocker, error)
}
