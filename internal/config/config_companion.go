package config

import (
	"fmt"
	"time"
)

// CompanionConfig is the typed configuration of the companion simulator.
type CompanionConfig struct {
	// HTTPAddress is the request endpoint listen address.
	HTTPAddress string
	// GRPCAddress is the gRPC health listen address.
	GRPCAddress string
	// HashKey verifies request signatures when non-empty.
	HashKey string
	// AssetsDir is the root served by get_img. Empty serves a built-in image.
	AssetsDir string
	// RequestTimeout bounds request handling.
	RequestTimeout time.Duration
}

// GetCompanionConfig builds and validates the simulator config.
func GetCompanionConfig(args []string) (*CompanionConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	companionCfg := &CompanionConfig{
		HTTPAddress:    orString(cfg.Server.HTTPAddress, DefaultServerAddress),
		GRPCAddress:    orString(cfg.Server.GRPCAddress, DefaultServerGRPCAddress),
		HashKey:        cfg.Server.HashKey,
		AssetsDir:      cfg.Server.AssetsDir,
		RequestTimeout: orDuration(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
	}

	return companionCfg, companionCfg.validate()
}
