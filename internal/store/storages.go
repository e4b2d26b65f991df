// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/utils"
	"github.com/MKhiriev/go-drip-watch/models"
)

// Storages groups the durable state store of one process into a single value
// that can be passed around the service layer.
type Storages struct {
	// State is the kv-backed sync state and settings.
	State StateRepository
	// Alarms is the durable alarm scheduler.
	Alarms AlarmRepository
	// Snapshot is the one-slot last payload file.
	Snapshot SnapshotStore

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DSN, creating the database file if it
//     does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories and the snapshot file store.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.WatchStorage, defaults models.AlarmSettings, clk clock.Clock, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		State:    NewStateRepository(db, defaults, clk, logger),
		Alarms:   NewAlarmRepository(db, utils.NewUUIDGenerator(), clk, logger),
		Snapshot: NewSnapshotFile(cfg.SnapshotPath, logger),
		db:       db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
