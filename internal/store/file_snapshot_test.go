package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-drip-watch/internal/logger"
)

func TestSnapshotFile_LoadMissing(t *testing.T) {
	s := NewSnapshotFile(filepath.Join(t.TempDir(), "info.json"), logger.Nop())

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSnapshotFile_LoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	_, err := NewSnapshotFile(path, logger.Nop()).Load()
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSnapshotFile_SaveLoadOverwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	path := filepath.Join(dir, "info.json")
	s := NewSnapshotFile(path, logger.Nop())

	require.NoError(t, s.Save(`{"bg":{"val":"5.6"}}`))
	raw, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"bg":{"val":"5.6"}}`, raw)

	require.NoError(t, s.Save(`{"bg":{"val":"7.1"}}`))
	raw, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"bg":{"val":"7.1"}}`, raw)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "info.json", entries[0].Name())
}

func TestSnapshotFile_LoadUnreadable(t *testing.T) {
	// a directory in place of the file
	path := t.TempDir()

	_, err := NewSnapshotFile(path, logger.Nop()).Load()
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestSnapshotFile_SaveIntoMissingParentFails(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o600))

	err := NewSnapshotFile(filepath.Join(parent, "info.json"), logger.Nop()).Save("{}")
	assert.ErrorIs(t, err, ErrPersistence)
}
