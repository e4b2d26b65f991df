package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-drip-watch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StateRepository persists [models.SyncState] as individual keys. Every
// method commits before it returns.
type StateRepository interface {
	// LoadState reads all keys, substituting defaults for missing ones.
	LoadState(ctx context.Context) (models.SyncState, error)
	// SaveState upserts every key of state in one transaction.
	SaveState(ctx context.Context, state models.SyncState) error
	// MarkAttempt stores max(at, stored attempt) with the success flag
	// cleared and returns the stored attempt time.
	MarkAttempt(ctx context.Context, at time.Time) (time.Time, error)
	// SetAlarmID stores the id of the registered alarm; empty clears it.
	SetAlarmID(ctx context.Context, id string) error
}

// AlarmRepository is the durable alarm scheduler table.
type AlarmRepository interface {
	Register(ctx context.Context, dueAt time.Time, page models.Page, params string) (models.Alarm, error)
	// Cancel returns ErrAlarmNotFound when id is unknown or already fired.
	Cancel(ctx context.Context, id string) error
	// Due lists active alarms with due time at or before now, oldest first.
	Due(ctx context.Context, now time.Time) ([]models.Alarm, error)
	// MarkFired returns ErrAlarmNotFound when id is not active.
	MarkFired(ctx context.Context, id string) error
	// Active lists every active alarm, oldest first.
	Active(ctx context.Context) ([]models.Alarm, error)
}

// SnapshotStore is the one-slot file holding the last fetched raw payload.
type SnapshotStore interface {
	// Load returns ErrSnapshotNotFound when nothing was written yet.
	Load() (string, error)
	Save(raw string) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
