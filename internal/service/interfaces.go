// Package service holds the synchronisation core of the watch app: the
// reading repository, trigger evaluation, the fetch session protocol, the
// alarm lifecycle and the settings toggles.
//
// The engine owns a single event loop. Poll ticks, timer callbacks and
// channel completions are posted to it and run one at a time, so the
// in-flight session state needs no locking.
package service

import (
	"context"

	"github.com/MKhiriev/go-drip-watch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Display is the view collaborator the engine drives.
type Display interface {
	// ShowMessage replaces the reading with a status text.
	ShowMessage(text string)
	// ShowReading hides any message and renders view.
	ShowReading(view models.ReadingView)
	// SetLoading toggles the loading indicator.
	SetLoading(loading bool)
	// UpdateTimes refreshes the age label and stale marker only.
	UpdateTimes(view models.ReadingView)
}

// ReadingRepository holds the most recent reading and status. It is safe for
// concurrent use.
type ReadingRepository interface {
	// SetData parses a freshly fetched payload. On error the previous
	// snapshot is kept.
	SetData(raw string) error
	// RestoreData parses a payload read back from the snapshot file.
	RestoreData(raw string) error

	Reading() models.GlucoseReading
	Status() models.DeviceStatus
	Snapshot() models.Snapshot

	// IsStale reports whether the reading or the status is older than its
	// freshness threshold. An empty repository is never stale.
	IsStale() bool
	// View renders the current snapshot for the display.
	View() models.ReadingView
}

// SyncEngine drives fetch sessions from poll ticks and explicit requests.
type SyncEngine interface {
	// Start runs the event loop until ctx is cancelled or Close is called.
	Start(ctx context.Context)
	// Seed loads the persisted state and restores the snapshot file into the
	// repository before any network activity.
	Seed(ctx context.Context) error
	// Fetch opens a session in the given mode unless one is already open.
	// It reports whether a session was started.
	Fetch(mode models.FetchMode, params string) bool
	// Tick runs one trigger evaluation and returns its decision.
	Tick() models.Decision
	StartPolling()
	StopPolling()
	// Exited is closed once the exit action of a session has run.
	Exited() <-chan struct{}
	// Close stops the loop and waits for it to finish.
	Close()
}

// AlarmService schedules the next background wake.
type AlarmService interface {
	// PrepareNextAlarm cancels the registered alarm and, when updates are
	// enabled, registers the next one. It returns the new alarm id, empty
	// when nothing was scheduled.
	PrepareNextAlarm(ctx context.Context) (string, error)
}

// SettingsService flips the persisted feature toggles.
type SettingsService interface {
	Toggle(ctx context.Context, name string) (models.Settings, error)
	Settings(ctx context.Context) (models.Settings, error)
}
