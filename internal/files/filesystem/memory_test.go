package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem()

	expectedContent := "<SystemDefinitionFile />"
	mfs.AddFile("/test/project/system.nivssdf", expectedContent)

	content, err := mfs.ReadFile("/test/project/system.nivssdf")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	_, err = mfs.ReadFile("/test/project/missing.nivssdf")
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("/test/project/system.nivssdf", "abc")

	info, err := mfs.Stat("/test/project/system.nivssdf")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "system.nivssdf", info.Name())
	require.Equal(t, int64(3), info.Size())

	_, err = mfs.Stat("/nope")
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_WriteFile(t *testing.T) {
	mfs := NewMemoryFileSystem()

	require.NoError(t, mfs.WriteFile("/out/a.nivssdf", []byte("one"), 0600))
	info, err := mfs.Stat("/out/a.nivssdf")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0600), info.Mode())

	require.NoError(t, mfs.WriteFile("/out/a.nivssdf", []byte("two"), 0644))
	content, err := mfs.ReadFile("/out/a.nivssdf")
	require.NoError(t, err)
	assert.Equal(t, "two", string(content))

	info, err = mfs.Stat("/out/a.nivssdf")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0600), info.Mode(), "overwrite keeps existing permissions")
}

func TestMemoryFileSystem_WriteErr(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.WriteErr = errors.New("disk full")

	err := mfs.WriteFile("/out/a.nivssdf", []byte("x"), 0644)
	require.Error(t, err)
	assert.Empty(t, mfs.Files())
}

func TestMemoryFileSystem_Lock(t *testing.T) {
	mfs := NewMemoryFileSystem()

	lock, err := mfs.Lock("/out/a.nivssdf")
	require.NoError(t, err)
	assert.True(t, mfs.Locked("/out/a.nivssdf"))

	_, err = mfs.Lock("/out/a.nivssdf")
	assert.True(t, errors.Is(err, slscmigrate.ErrOutputLocked))

	require.NoError(t, lock.Unlock())
	assert.False(t, mfs.Locked("/out/a.nivssdf"))

	again, err := mfs.Lock("/out/a.nivssdf")
	require.NoError(t, err)
	require.NoError(t, again.Unlock())
}

func TestMemoryFileSystem_PathsAreNormalized(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("/a/b/../c.xml", "x")

	_, err := mfs.ReadFile("/a/c.xml")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/c.xml"}, mfs.Files())
}
