package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-drip-watch/internal/client"
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	args := os.Args[1:]

	cfg, err := config.GetWatchConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("drip-watch", cfg.App.LogPath, false)
	log.Info().
		Str("version", orNA(buildVersion)).
		Str("date", orNA(buildDate)).
		Str("commit", orNA(buildCommit)).
		Str("page", string(cfg.Launch.Page)).
		Msg("drip-watch started")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, args, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init watch app error")
	}

	runErr := app.Run(ctx)
	if err := app.Close(); err != nil {
		log.Error().Err(err).Msg("error closing watch app")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("watch app run error")
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
