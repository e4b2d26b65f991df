// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line flags
// and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as language and log file.
	App App `envPrefix:"APP_"`

	// Launch holds the entry mode selected by the caller.
	Launch Launch `envPrefix:"LAUNCH_"`

	// Storage holds the durable state database and snapshot file locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the companion channel settings used by the watch.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the synchronisation engine thresholds and timeouts.
	Sync Sync `envPrefix:"SYNC_"`

	// Server holds the listen addresses of the companion simulator.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the wake daemon.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or TOML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Language selects the message catalog ("en", "ru").
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`

	// LogPath is the log file of the watch app.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// DefaultFetchParams is sent with get_info when the caller supplies none.
	// Env: APP_DEFAULT_FETCH_PARAMS
	DefaultFetchParams string `env:"DEFAULT_FETCH_PARAMS"`

	// Headless disables the terminal display.
	// Env: APP_HEADLESS ("true"/"false")
	Headless string `env:"HEADLESS"`
}

// Launch holds the launch parameters of one process entry.
type Launch struct {
	// Page is the entry mode (main, update, update_local, config, hide, alarmd).
	// Env: LAUNCH_PAGE
	Page string `env:"PAGE"`

	// Params overrides the alarm fetch params for update pages.
	// Env: LAUNCH_PARAMS
	Params string `env:"PARAMS"`

	// Toggle names the setting flipped by the config page.
	// Env: LAUNCH_TOGGLE
	Toggle string `env:"TOGGLE"`
}

// Storage groups the durable storage locations.
type Storage struct {
	// DB holds the state database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the snapshot file settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds the SQLite database location.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds the snapshot file location.
type Files struct {
	// SnapshotPath is the one-slot file holding the last fetched payload.
	// Env: STORAGE_FILES_SNAPSHOT_PATH
	SnapshotPath string `env:"SNAPSHOT_PATH"`
}

// Adapter holds the companion channel settings.
type Adapter struct {
	// HTTPAddress is the companion request endpoint in "host:port" or URL form.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the optional companion gRPC health endpoint. When set the
	// connectivity probe uses gRPC health checks instead of HTTP ping.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout caps any single channel request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HashKey signs request bodies with HMAC-SHA256 when non-empty.
	// Env: ADAPTER_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Sync holds the synchronisation engine thresholds.
type Sync struct {
	// PollInterval is the foreground trigger evaluation cadence.
	// Env: SYNC_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// UpdateInterval is the age after which a successful update is refreshed.
	// Env: SYNC_UPDATE_INTERVAL
	UpdateInterval time.Duration `env:"UPDATE_INTERVAL"`

	// StaleAttemptThreshold is the age after which an attempt is presumed dead.
	// Env: SYNC_STALE_ATTEMPT_THRESHOLD
	StaleAttemptThreshold time.Duration `env:"STALE_ATTEMPT_THRESHOLD"`

	// ReadingFreshness is the maximum age of a reading before it is stale.
	// Env: SYNC_READING_FRESHNESS
	ReadingFreshness time.Duration `env:"READING_FRESHNESS"`

	// StatusFreshness is the maximum age of the companion status.
	// Env: SYNC_STATUS_FRESHNESS
	StatusFreshness time.Duration `env:"STATUS_FRESHNESS"`

	// DisplayWatchdog bounds a display-mode fetch session.
	// Env: SYNC_DISPLAY_WATCHDOG
	DisplayWatchdog time.Duration `env:"DISPLAY_WATCHDOG"`

	// SilentWatchdog bounds a silent-mode fetch session.
	// Env: SYNC_SILENT_WATCHDOG
	SilentWatchdog time.Duration `env:"SILENT_WATCHDOG"`

	// SilentExitDelay keeps a refreshed value visible before a silent exit.
	// Env: SYNC_SILENT_EXIT_DELAY
	SilentExitDelay time.Duration `env:"SILENT_EXIT_DELAY"`

	// FetchInterval is the default delay between background wakes.
	// Env: SYNC_FETCH_INTERVAL
	FetchInterval time.Duration `env:"FETCH_INTERVAL"`
}

// Server holds the companion simulator listen addresses.
type Server struct {
	// HTTPAddress is the TCP address of the request endpoint.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health service.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// HashKey verifies request body signatures when non-empty.
	// Env: SERVER_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// AssetsDir is served by get_img.
	// Env: SERVER_ASSETS_DIR
	AssetsDir string `env:"ASSETS_DIR"`
}

// Workers holds configuration for the wake daemon.
type Workers struct {
	// AlarmPollInterval is how often the daemon looks for due alarms.
	// Env: WORKERS_ALARM_POLL_INTERVAL
	AlarmPollInterval time.Duration `env:"ALARM_POLL_INTERVAL"`

	// Executable is the binary relaunched for a due alarm. Empty means the
	// running executable.
	// Env: WORKERS_EXECUTABLE
	Executable string `env:"EXECUTABLE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources (env, then args parsed as flags, then the config file resolved from
// both). Later sources win for non-zero fields.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
