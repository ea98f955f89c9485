package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "state")

	require.NoError(t, WriteFileAtomic(target, []byte("first"), 0o600))
	require.NoError(t, WriteFileAtomic(target, []byte("second blob"), 0o600))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second blob", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "state", entries[0].Name())
}

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "sessions", "abc", "state")
	require.NoError(t, WriteFileAtomic(target, []byte{0x80}, 0o644))

	data, ok, err := ReadFileIfExists(target)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x80}, data)
}

func TestWriteFileAtomicFailure(t *testing.T) {
	t.Parallel()

	// A regular file where a directory is expected.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := WriteFileAtomic(filepath.Join(blocker, "state"), []byte("x"), 0o644)
	assert.Error(t, err)
}

func TestReadFileIfExists(t *testing.T) {
	t.Parallel()

	data, ok, err := ReadFileIfExists(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)

	_, _, err = ReadFileIfExists(t.TempDir())
	assert.Error(t, err, "reading a directory should fail")
}
