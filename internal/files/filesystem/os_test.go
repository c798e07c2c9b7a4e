package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

func TestOSFileSystem_ReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "system.nivssdf")
	require.NoError(t, os.WriteFile(path, []byte("<A/>"), 0644))

	provider := NewOSFileSystem()
	content, err := provider.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<A/>", string(content))

	_, err = provider.ReadFile(filepath.Join(tmpDir, "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOSFileSystem_WriteFile_New(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.nivssdf")

	provider := NewOSFileSystem()
	require.NoError(t, provider.WriteFile(path, []byte("<B/>"), 0640))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<B/>", string(content))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
	}
}

func TestOSFileSystem_WriteFile_ReplacesAndLeavesNoTemp(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.nivssdf")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

	provider := NewOSFileSystem()
	require.NoError(t, provider.WriteFile(path, []byte("new"), 0644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must be renamed away")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "existing permissions are kept")
	}
}

func TestOSFileSystem_WriteFile_MissingDirectory(t *testing.T) {
	provider := NewOSFileSystem()
	err := provider.WriteFile(filepath.Join(t.TempDir(), "nope", "out.nivssdf"), []byte("x"), 0644)
	assert.Error(t, err)
}

func TestOSFileSystem_Lock(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.nivssdf")
	provider := NewOSFileSystem()

	lock, err := provider.Lock(path)
	require.NoError(t, err)
	_, err = os.Stat(path + slscmigrate.LockSuffix)
	require.NoError(t, err, "lock file should exist while held")

	_, err = provider.Lock(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, slscmigrate.ErrOutputLocked), "got: %v", err)

	require.NoError(t, lock.Unlock())
	_, err = os.Stat(path + slscmigrate.LockSuffix)
	assert.True(t, errors.Is(err, os.ErrNotExist), "lock file should be removed")

	again, err := provider.Lock(path)
	require.NoError(t, err)
	require.NoError(t, again.Unlock())
}
