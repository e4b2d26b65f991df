package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/models"
)

var (
	t0           = time.UnixMilli(1_760_000_000_000)
	testDefaults = models.AlarmSettings{FetchInterval: 5 * time.Minute, FetchParams: "full"}
)

// openTestDB opens a migrated SQLite database at path.
func openTestDB(t *testing.T, path string) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })
	return db
}

func newTempDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	return openTestDB(t, path), path
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return newDBFromSQL(db), mock
}

// newDBFromSQL wraps an existing *sql.DB for tests.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func fakeClock() *clock.Fake {
	return clock.NewFake(t0)
}

func watchStorageConfig(dir string) config.WatchStorage {
	return config.WatchStorage{
		DSN:          filepath.Join(dir, "state.db"),
		SnapshotPath: filepath.Join(dir, "info.json"),
	}
}
