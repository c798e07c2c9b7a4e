package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return false }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu    sync.Mutex
	files map[string]*memoryFile
	locks map[string]bool

	// WriteErr, when set, makes every WriteFile call fail with it.
	WriteErr error
}

// NewMemoryFileSystem creates a new, empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		locks: make(map[string]bool),
	}
}

func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// AddFile adds a file to the in-memory filesystem
func (m *MemoryFileSystem) AddFile(filePath, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[normalize(filePath)] = &memoryFile{content: []byte(content), mode: 0644, modTime: time.Now()}
}

// Files returns the paths of all files in sorted order.
func (m *MemoryFileSystem) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Locked reports whether the write lock for filePath is currently held.
func (m *MemoryFileSystem) Locked(filePath string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locks[normalize(filePath)]
}

func (m *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[normalize(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(f.content))
	copy(out, f.content)
	return out, nil
}

func (m *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := normalize(filePath)
	f, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
	}
	return &memoryFileInfo{name: path.Base(p), size: int64(len(f.content)), mode: f.mode, modTime: f.modTime}, nil
}

func (m *MemoryFileSystem) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return fmt.Errorf("write %s: %w", filePath, m.WriteErr)
	}
	p := normalize(filePath)
	if existing, ok := m.files[p]; ok {
		perm = existing.mode
	}
	content := make([]byte, len(data))
	copy(content, data)
	m.files[p] = &memoryFile{content: content, mode: perm, modTime: time.Now()}
	return nil
}

func (m *MemoryFileSystem) Lock(filePath string) (Unlocker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := normalize(filePath)
	if m.locks[p] {
		return nil, fmt.Errorf("%s: %w", filePath, slscmigrate.ErrOutputLocked)
	}
	m.locks[p] = true
	return &memoryLock{fs: m, path: p}, nil
}

type memoryLock struct {
	fs   *MemoryFileSystem
	path string
}

func (l *memoryLock) Unlock() error {
	l.fs.mu.Lock()
	defer l.fs.mu.Unlock()
	delete(l.fs.locks, l.path)
	return nil
}
