// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged [StructuredConfig] is usable before it is
// mapped into a typed view. Only cross-source rules live here.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN != "" && strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *WatchConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") || cfg.Storage.SnapshotPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.App.Language {
	case "en", "ru":
	default:
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidAppConfigs, cfg.App.Language)
	}

	s := cfg.Sync
	for _, d := range []struct {
		name  string
		value any
		ok    bool
	}{
		{"poll_interval", s.PollInterval, s.PollInterval > 0},
		{"update_interval", s.UpdateInterval, s.UpdateInterval > 0},
		{"stale_attempt_threshold", s.StaleAttemptThreshold, s.StaleAttemptThreshold > 0},
		{"reading_freshness", s.ReadingFreshness, s.ReadingFreshness > 0},
		{"status_freshness", s.StatusFreshness, s.StatusFreshness > 0},
		{"display_watchdog", s.DisplayWatchdog, s.DisplayWatchdog > 0},
		{"silent_watchdog", s.SilentWatchdog, s.SilentWatchdog > 0},
		{"silent_exit_delay", s.SilentExitDelay, s.SilentExitDelay >= 0},
		{"fetch_interval", s.FetchInterval, s.FetchInterval > 0},
	} {
		if !d.ok {
			return fmt.Errorf("%w: %s=%v", ErrInvalidSyncConfigs, d.name, d.value)
		}
	}

	if cfg.Workers.AlarmPollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *CompanionConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
