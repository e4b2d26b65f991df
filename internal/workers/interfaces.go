// Package workers provides the background workers of the wake daemon.
// It defines the Worker interface and a Workers aggregate that runs
// several workers under one context.
package workers

import (
	"context"

	"github.com/MKhiriev/go-drip-watch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. A cancelled
// context is a normal stop and is reported as a nil error.
type Worker interface {
	Run(ctx context.Context) error
}

// Launcher starts the process entry described by a fired alarm.
type Launcher interface {
	Launch(ctx context.Context, alarm models.Alarm) error
}
