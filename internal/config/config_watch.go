package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MKhiriev/go-drip-watch/models"
)

// WatchApp holds process-level settings of the watch app.
type WatchApp struct {
	// Language selects the message catalog.
	Language string
	// LogPath is the log file path.
	LogPath string
	// DefaultFetchParams is sent with get_info when no params are supplied.
	DefaultFetchParams string
	// Headless disables the terminal display.
	Headless bool
}

// WatchLaunch holds the parsed launch parameters.
type WatchLaunch struct {
	// Page is the entry mode of this process.
	Page models.Page
	// Params overrides the stored alarm fetch params for update pages.
	Params string
	// Toggle names the setting flipped by the config page.
	Toggle string
}

// WatchStorage groups the durable state locations.
type WatchStorage struct {
	// DSN is the SQLite database file.
	DSN string
	// SnapshotPath is the one-slot snapshot file.
	SnapshotPath string
}

// WatchAdapter holds the companion channel settings.
type WatchAdapter struct {
	HTTPAddress    string
	GRPCAddress    string
	RequestTimeout time.Duration
	HashKey        string
}

// SyncTimings holds every threshold and timeout used by the sync engine.
type SyncTimings struct {
	PollInterval          time.Duration
	UpdateInterval        time.Duration
	StaleAttemptThreshold time.Duration
	ReadingFreshness      time.Duration
	StatusFreshness       time.Duration
	DisplayWatchdog       time.Duration
	SilentWatchdog        time.Duration
	SilentExitDelay       time.Duration
	FetchInterval         time.Duration
}

// WatchWorkers holds the wake daemon settings.
type WatchWorkers struct {
	AlarmPollInterval time.Duration
	Executable        string
}

// WatchConfig is the typed configuration of the watch process assembled
// from [StructuredConfig] with defaults applied.
type WatchConfig struct {
	App     WatchApp
	Launch  WatchLaunch
	Storage WatchStorage
	Adapter WatchAdapter
	Sync    SyncTimings
	Workers WatchWorkers
}

// GetWatchConfig builds and validates the watch config from env, args and
// the optional config file.
func GetWatchConfig(args []string) (*WatchConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewWatchConfig(cfg)
}

// NewWatchConfig maps cfg into a [WatchConfig], filling defaults for unset
// fields, and validates the result.
func NewWatchConfig(cfg *StructuredConfig) (*WatchConfig, error) {
	page, ok := models.ParsePage(cfg.Launch.Page)
	if !ok {
		return nil, fmt.Errorf("%w: unknown page %q", ErrInvalidAppConfigs, cfg.Launch.Page)
	}

	headless := false
	if cfg.App.Headless != "" {
		v, err := strconv.ParseBool(cfg.App.Headless)
		if err != nil {
			return nil, fmt.Errorf("%w: headless: %w", ErrInvalidAppConfigs, err)
		}
		headless = v
	}

	dir := dataDir()
	watchCfg := &WatchConfig{
		App: WatchApp{
			Language:           orString(cfg.App.Language, DefaultLanguage),
			LogPath:            orString(cfg.App.LogPath, filepath.Join(dir, defaultWatchLogFileName)),
			DefaultFetchParams: orString(cfg.App.DefaultFetchParams, DefaultFetchParams),
			Headless:           headless,
		},
		Launch: WatchLaunch{
			Page:   page,
			Params: cfg.Launch.Params,
			Toggle: cfg.Launch.Toggle,
		},
		Storage: WatchStorage{
			DSN:          orString(cfg.Storage.DB.DSN, filepath.Join(dir, defaultDatabaseFileName)),
			SnapshotPath: orString(cfg.Storage.Files.SnapshotPath, filepath.Join(dir, defaultSnapshotFileName)),
		},
		Adapter: WatchAdapter{
			HTTPAddress:    orString(cfg.Adapter.HTTPAddress, DefaultAdapterAddress),
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: orDuration(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
			HashKey:        cfg.Adapter.HashKey,
		},
		Sync: SyncTimings{
			PollInterval:          orDuration(cfg.Sync.PollInterval, DefaultPollInterval),
			UpdateInterval:        orDuration(cfg.Sync.UpdateInterval, DefaultUpdateInterval),
			StaleAttemptThreshold: orDuration(cfg.Sync.StaleAttemptThreshold, DefaultStaleAttempt),
			ReadingFreshness:      orDuration(cfg.Sync.ReadingFreshness, DefaultReadingFreshness),
			StatusFreshness:       orDuration(cfg.Sync.StatusFreshness, DefaultStatusFreshness),
			DisplayWatchdog:       orDuration(cfg.Sync.DisplayWatchdog, DefaultDisplayWatchdog),
			SilentWatchdog:        orDuration(cfg.Sync.SilentWatchdog, DefaultSilentWatchdog),
			SilentExitDelay:       orDuration(cfg.Sync.SilentExitDelay, DefaultSilentExitDelay),
			FetchInterval:         orDuration(cfg.Sync.FetchInterval, DefaultFetchInterval),
		},
		Workers: WatchWorkers{
			AlarmPollInterval: orDuration(cfg.Workers.AlarmPollInterval, DefaultAlarmPollInterval),
			Executable:        cfg.Workers.Executable,
		},
	}

	return watchCfg, watchCfg.validate()
}

// DefaultSyncTimings returns the timings used when nothing is configured.
func DefaultSyncTimings() SyncTimings {
	return SyncTimings{
		PollInterval:          DefaultPollInterval,
		UpdateInterval:        DefaultUpdateInterval,
		StaleAttemptThreshold: DefaultStaleAttempt,
		ReadingFreshness:      DefaultReadingFreshness,
		StatusFreshness:       DefaultStatusFreshness,
		DisplayWatchdog:       DefaultDisplayWatchdog,
		SilentWatchdog:        DefaultSilentWatchdog,
		SilentExitDelay:       DefaultSilentExitDelay,
		FetchInterval:         DefaultFetchInterval,
	}
}

// Watchdog returns the session bound for mode.
func (t SyncTimings) Watchdog(mode models.FetchMode) time.Duration {
	if mode == models.FetchSilent {
		return t.SilentWatchdog
	}
	return t.DisplayWatchdog
}
