package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists_DanglingSymlink(t *testing.T) {
	tempDir := t.TempDir()
	link := filepath.Join(tempDir, "link")

	require.NoError(t, os.Symlink(filepath.Join(tempDir, "missing"), link))

	assert.True(t, Exists(link))
	assert.True(t, IsSymlink(link))
	assert.False(t, Exists(filepath.Join(tempDir, "missing")))
}

func TestIsSymlinkTo(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "dark.conf")
	other := filepath.Join(tempDir, "light.conf")
	link := filepath.Join(tempDir, "theme.conf")

	require.NoError(t, os.WriteFile(src, []byte("dark"), 0o644))
	require.NoError(t, os.Symlink(src, link))

	assert.True(t, IsSymlinkTo(link, src))
	assert.False(t, IsSymlinkTo(link, other))
	assert.False(t, IsSymlinkTo(src, src))
}

func TestWriteFileAtomic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "hyprtheme.toml")

	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
	require.NoError(t, WriteFileAtomic(path, []byte("new"), FileModeDefault))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(FileModeDefault), info.Mode().Perm())

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "file"), []byte("x"), FileModeDefault)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create temporary file")
}

func TestRemoveIfSymlink(t *testing.T) {
	tempDir := t.TempDir()
	regular := filepath.Join(tempDir, "regular")
	link := filepath.Join(tempDir, "link")

	require.NoError(t, os.WriteFile(regular, []byte("keep"), 0o644))
	require.NoError(t, os.Symlink(regular, link))

	err := RemoveIfSymlink(regular)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotSymlink))
	assert.FileExists(t, regular)

	require.NoError(t, RemoveIfSymlink(link))
	assert.False(t, Exists(link))

	assert.Error(t, RemoveIfSymlink(filepath.Join(tempDir, "missing")))
}
