package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:17580", expected: NetAddress{Host: "localhost", Port: 17580}},
		{name: "ipv4", input: "127.0.0.1:9090", expected: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":9090", expected: NetAddress{Port: 9090}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "example:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-page", "update",
		"-params", "short",
		"-toggle", "disableUpdates",
		"-a", "127.0.0.1:9000",
		"-grpc-address", "127.0.0.1:9001",
		"-d", "/tmp/state.db",
		"-f", "/tmp/info.json",
		"-config", "/tmp/watch.toml",
		"-lang", "ru",
		"-log", "/tmp/watch.log",
		"-headless",
		"-hash-key", "secret",
		"-request-timeout", "2s",
		"-fetch-interval", "10m",
		"-listen", "localhost:9100",
		"-assets", "/srv/assets",
	})
	require.NoError(t, err)

	assert.Equal(t, "update", cfg.Launch.Page)
	assert.Equal(t, "short", cfg.Launch.Params)
	assert.Equal(t, "disableUpdates", cfg.Launch.Toggle)
	assert.Equal(t, "127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9001", cfg.Adapter.GRPCAddress)
	assert.Equal(t, "/tmp/state.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/info.json", cfg.Storage.Files.SnapshotPath)
	assert.Equal(t, "/tmp/watch.toml", cfg.ConfigFilePath)
	assert.Equal(t, "ru", cfg.App.Language)
	assert.Equal(t, "/tmp/watch.log", cfg.App.LogPath)
	assert.Equal(t, "true", cfg.App.Headless)
	assert.Equal(t, "secret", cfg.Adapter.HashKey)
	assert.Equal(t, "secret", cfg.Server.HashKey)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Sync.FetchInterval)
	assert.Equal(t, "localhost:9100", cfg.Server.HTTPAddress)
	assert.Equal(t, "/srv/assets", cfg.Server.AssetsDir)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nowhere"})
	assert.Error(t, err)
}
