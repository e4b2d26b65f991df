package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values applied by [GetWatchConfig] and [GetCompanionConfig] to
// fields no source has set.
const (
	DefaultLanguage          = "en"
	DefaultFetchParams       = "full"
	DefaultAdapterAddress    = "127.0.0.1:17580"
	DefaultServerAddress     = "127.0.0.1:17580"
	DefaultServerGRPCAddress = "127.0.0.1:17581"
	DefaultRequestTimeout    = 5 * time.Second
	DefaultPollInterval      = time.Second
	DefaultUpdateInterval    = time.Minute
	DefaultStaleAttempt      = 2 * time.Minute
	DefaultReadingFreshness  = 6 * time.Minute
	DefaultStatusFreshness   = 6 * time.Minute
	DefaultDisplayWatchdog   = 5 * time.Second
	DefaultSilentWatchdog    = 4 * time.Second
	DefaultSilentExitDelay   = time.Second
	DefaultFetchInterval     = 5 * time.Minute
	DefaultAlarmPollInterval = time.Second
	defaultAppDirName        = "drip-watch"
	defaultDatabaseFileName  = "state.db"
	defaultSnapshotFileName  = "info.json"
	defaultWatchLogFileName  = "watch.log"
)

// dataDir returns the per-user directory holding the database, snapshot and
// log files. It falls back to the working directory.
func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, defaultAppDirName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", defaultAppDirName)
	}
	return defaultAppDirName
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDuration(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}
