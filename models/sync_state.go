// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Settings holds the user feature toggles.
type Settings struct {
	// DisableUpdates stops all data fetching, foreground and background.
	DisableUpdates bool
	// UseAppFetch enables the alarm-driven background fetch.
	UseAppFetch bool
	// ShowLog raises the log level to debug.
	ShowLog bool
}

// DefaultSettings returns the toggles a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{UseAppFetch: true}
}

// UpdatesEnabled reports whether background updates may be scheduled.
func (s Settings) UpdatesEnabled() bool {
	return !s.DisableUpdates && s.UseAppFetch
}

// AlarmSettings configures the background wake cycle.
type AlarmSettings struct {
	// FetchInterval is the delay between background wakes.
	FetchInterval time.Duration
	// FetchParams is passed to get_info by background fetches.
	FetchParams string
}

// SyncState is the persisted synchronisation state shared by every process
// instance through the durable store.
type SyncState struct {
	LastFetchAttempt time.Time
	LastFetchSuccess bool
	// LastSuccessfulUpdate is zero when no fetch has ever succeeded.
	LastSuccessfulUpdate time.Time
	// AlarmID is empty when no alarm is registered.
	AlarmID           string
	Settings          Settings
	SettingsUpdatedAt time.Time
	Alarm             AlarmSettings
}

// HasEverSucceeded reports whether a successful update was ever recorded.
func (s SyncState) HasEverSucceeded() bool {
	return !s.LastSuccessfulUpdate.IsZero()
}
