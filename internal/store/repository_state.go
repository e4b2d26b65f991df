package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/models"
)

type stateRepository struct {
	*DB
	defaults models.AlarmSettings
	clock    clock.Clock
	logger   *logger.Logger
}

// NewStateRepository returns a [StateRepository] over the kv table. defaults
// fill the alarm settings of a fresh store.
func NewStateRepository(db *DB, defaults models.AlarmSettings, clk clock.Clock, logger *logger.Logger) StateRepository {
	return &stateRepository{
		DB:       db,
		defaults: defaults,
		clock:    clk,
		logger:   logger,
	}
}

func (r *stateRepository) baseState() models.SyncState {
	return models.SyncState{
		Settings: models.DefaultSettings(),
		Alarm:    r.defaults,
	}
}

func (r *stateRepository) LoadState(ctx context.Context) (models.SyncState, error) {
	var values map[string]string
	err := r.withRetry(ctx, "LoadState", func() error {
		var err error
		values, err = selectKV(ctx, r.DB.DB, allStateKeys...)
		return err
	})
	if err != nil {
		r.logger.Err(err).Str("func", "stateRepository.LoadState").Msg("failed to load sync state")
		return models.SyncState{}, fmt.Errorf("%w: load state: %w", ErrPersistence, err)
	}

	state, bad := decodeState(values, r.baseState())
	if len(bad) > 0 {
		r.logger.Warn().Str("func", "stateRepository.LoadState").Strs("keys", bad).Msg("unreadable state values replaced by defaults")
	}

	return state, nil
}

func (r *stateRepository) SaveState(ctx context.Context, state models.SyncState) error {
	if err := r.upsert(ctx, "SaveState", encodeState(state)); err != nil {
		r.logger.Err(err).Str("func", "stateRepository.SaveState").Msg("failed to save sync state")
		return fmt.Errorf("%w: save state: %w", ErrPersistence, err)
	}

	return nil
}

func (r *stateRepository) SetAlarmID(ctx context.Context, id string) error {
	if err := r.upsert(ctx, "SetAlarmID", []kvEntry{{KeyAlarmID, id}}); err != nil {
		r.logger.Err(err).Str("func", "stateRepository.SetAlarmID").Str("alarm_id", id).Msg("failed to save alarm id")
		return fmt.Errorf("%w: save alarm id: %w", ErrPersistence, err)
	}

	return nil
}

func (r *stateRepository) MarkAttempt(ctx context.Context, at time.Time) (time.Time, error) {
	var marked time.Time
	err := r.withRetry(ctx, "MarkAttempt", func() error {
		return r.inTx(ctx, func(tx *sql.Tx) error {
			values, err := selectKV(ctx, tx, KeyLastAttempt)
			if err != nil {
				return err
			}

			marked = at
			if v, ok := values[KeyLastAttempt]; ok {
				if stored, err := decodeTime(v); err == nil && stored.After(at) {
					marked = stored
				}
			}

			return execUpsert(ctx, tx, []kvEntry{
				{KeyLastAttempt, encodeTime(marked)},
				{KeyLastSuccess, "false"},
			}, r.clock.Now())
		})
	})
	if err != nil {
		r.logger.Err(err).Str("func", "stateRepository.MarkAttempt").Msg("failed to mark fetch attempt")
		return time.Time{}, fmt.Errorf("%w: mark attempt: %w", ErrPersistence, err)
	}

	return marked, nil
}

func (r *stateRepository) upsert(ctx context.Context, op string, entries []kvEntry) error {
	return r.withRetry(ctx, op, func() error {
		return r.inTx(ctx, func(tx *sql.Tx) error {
			return execUpsert(ctx, tx, entries, r.clock.Now())
		})
	})
}

func (r *stateRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func selectKV(ctx context.Context, q queryer, keys ...string) (map[string]string, error) {
	query, args, err := buildSelectKVQuery(keys...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, len(keys))
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return values, nil
}

func execUpsert(ctx context.Context, e execer, entries []kvEntry, at time.Time) error {
	query, args, err := buildUpsertKVQuery(entries, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := e.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
