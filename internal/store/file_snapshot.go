package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-drip-watch/internal/logger"
)

type snapshotFile struct {
	path   string
	logger *logger.Logger
}

// NewSnapshotFile returns a [SnapshotStore] kept in one file at path.
func NewSnapshotFile(path string, logger *logger.Logger) SnapshotStore {
	return &snapshotFile{
		path:   path,
		logger: logger,
	}
}

func (s *snapshotFile) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrSnapshotNotFound
		}
		return "", fmt.Errorf("%w: read snapshot file: %w", ErrPersistence, err)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return "", ErrSnapshotNotFound
	}

	return raw, nil
}

// Save replaces the file content so a reader never sees a partial payload:
// the data goes to a temp file in the same directory, is synced, then
// renamed over the old one.
func (s *snapshotFile) Save(raw string) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create snapshot dir: %w", ErrPersistence, err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: create temp snapshot: %w", ErrPersistence, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.WriteString(raw); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		s.logger.Err(err).Str("func", "snapshotFile.Save").Str("path", s.path).Msg("failed to write snapshot")
		return fmt.Errorf("%w: write snapshot: %w", ErrPersistence, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		s.logger.Err(err).Str("func", "snapshotFile.Save").Str("path", s.path).Msg("failed to replace snapshot")
		return fmt.Errorf("%w: replace snapshot: %w", ErrPersistence, err)
	}

	return nil
}
