package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and TOML files.
// Durations are written as strings like "5s" or "1m30s".
type StructuredFileConfig struct {
	App struct {
		Language           string `json:"language" toml:"language"`
		LogPath            string `json:"log_path" toml:"log_path"`
		DefaultFetchParams string `json:"default_fetch_params" toml:"default_fetch_params"`
		Headless           bool   `json:"headless" toml:"headless"`
	} `json:"app,omitempty" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db"`

		Files struct {
			SnapshotPath string `json:"snapshot_path" toml:"snapshot_path"`
		} `json:"files,omitempty" toml:"files"`
	} `json:"storage,omitempty" toml:"storage"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		HashKey        string   `json:"hash_key" toml:"hash_key"`
	} `json:"adapter,omitempty" toml:"adapter"`

	Sync struct {
		PollInterval          Duration `json:"poll_interval" toml:"poll_interval"`
		UpdateInterval        Duration `json:"update_interval" toml:"update_interval"`
		StaleAttemptThreshold Duration `json:"stale_attempt_threshold" toml:"stale_attempt_threshold"`
		ReadingFreshness      Duration `json:"reading_freshness" toml:"reading_freshness"`
		StatusFreshness       Duration `json:"status_freshness" toml:"status_freshness"`
		DisplayWatchdog       Duration `json:"display_watchdog" toml:"display_watchdog"`
		SilentWatchdog        Duration `json:"silent_watchdog" toml:"silent_watchdog"`
		SilentExitDelay       Duration `json:"silent_exit_delay" toml:"silent_exit_delay"`
		FetchInterval         Duration `json:"fetch_interval" toml:"fetch_interval"`
	} `json:"sync,omitempty" toml:"sync"`

	Server struct {
		HTTPAddress string `json:"http_address" toml:"http_address"`
		GRPCAddress string `json:"grpc_address" toml:"grpc_address"`
		HashKey     string `json:"hash_key" toml:"hash_key"`
		AssetsDir   string `json:"assets_dir" toml:"assets_dir"`
	} `json:"server,omitempty" toml:"server"`

	Workers struct {
		AlarmPollInterval Duration `json:"alarm_poll_interval" toml:"alarm_poll_interval"`
		Executable        string   `json:"executable" toml:"executable"`
	} `json:"workers,omitempty" toml:"workers"`
}

// parseFile reads a config file. Files ending in .toml are decoded with
// go-toml, everything with a .json extension with encoding/json.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	var headless string
	if f.App.Headless {
		headless = "true"
	}

	return &StructuredConfig{
		App: App{
			Language:           f.App.Language,
			LogPath:            f.App.LogPath,
			DefaultFetchParams: f.App.DefaultFetchParams,
			Headless:           headless,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.Storage.DB.DSN,
			},
			Files: Files{
				SnapshotPath: f.Storage.Files.SnapshotPath,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			GRPCAddress:    f.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			HashKey:        f.Adapter.HashKey,
		},
		Sync: Sync{
			PollInterval:          time.Duration(f.Sync.PollInterval),
			UpdateInterval:        time.Duration(f.Sync.UpdateInterval),
			StaleAttemptThreshold: time.Duration(f.Sync.StaleAttemptThreshold),
			ReadingFreshness:      time.Duration(f.Sync.ReadingFreshness),
			StatusFreshness:       time.Duration(f.Sync.StatusFreshness),
			DisplayWatchdog:       time.Duration(f.Sync.DisplayWatchdog),
			SilentWatchdog:        time.Duration(f.Sync.SilentWatchdog),
			SilentExitDelay:       time.Duration(f.Sync.SilentExitDelay),
			FetchInterval:         time.Duration(f.Sync.FetchInterval),
		},
		Server: Server{
			HTTPAddress: f.Server.HTTPAddress,
			GRPCAddress: f.Server.GRPCAddress,
			HashKey:     f.Server.HashKey,
			AssetsDir:   f.Server.AssetsDir,
		},
		Workers: Workers{
			AlarmPollInterval: time.Duration(f.Workers.AlarmPollInterval),
			Executable:        f.Workers.Executable,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in JSON and TOML. Bare JSON numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalText implements encoding.TextUnmarshaler, used by go-toml.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
