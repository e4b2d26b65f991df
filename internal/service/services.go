package service

import (
	"github.com/MKhiriev/go-drip-watch/internal/adapter"
	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/store"
)

type Services struct {
	Readings ReadingRepository
	Alarms   AlarmService
	Settings SettingsService
	Messages *Messages

	storages *store.Storages
	cfg      *config.WatchConfig
	clock    clock.Clock
	logger   *logger.Logger
}

func NewServices(storages *store.Storages, cfg *config.WatchConfig, clk clock.Clock, logger *logger.Logger) *Services {
	return &Services{
		Readings: NewReadingRepository(clk, cfg.Sync),
		Alarms:   NewAlarmService(storages.State, storages.Alarms, clk, logger),
		Settings: NewSettingsService(storages.State, clk, logger),
		Messages: NewMessages(cfg.App.Language),
		storages: storages,
		cfg:      cfg,
		clock:    clk,
		logger:   logger,
	}
}

// NewSyncEngine builds the engine of this process run. exitAction may be nil.
func (s *Services) NewSyncEngine(companion adapter.CompanionAdapter, display Display, exitAction func()) SyncEngine {
	return NewSyncEngine(
		s.storages.State,
		s.storages.Snapshot,
		companion,
		s.Readings,
		display,
		EngineConfig{
			Timings:       s.cfg.Sync,
			DefaultParams: s.cfg.App.DefaultFetchParams,
			Messages:      s.Messages,
			Clock:         s.clock,
			ExitAction:    exitAction,
		},
		s.logger,
	)
}
