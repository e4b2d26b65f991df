package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/migrations"
)

const (
	retryAttempts = 3
	retryBackoff  = 50 * time.Millisecond
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs fn again when the classifier reports a transient failure,
// such as the other process holding the write lock.
func (db *DB) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if attempt == retryAttempts || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).
			Str("func", "DB.withRetry").
			Str("op", op).
			Int("attempt", attempt).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}

	return err
}
