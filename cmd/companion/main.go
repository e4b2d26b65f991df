package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/companion"
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/handler"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("companion")
	cfg, err := config.GetCompanionConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	handlers, err := handler.NewHandlers(
		companion.NewGenerator(clock.System(), false),
		companion.NewImages(cfg.AssetsDir),
		cfg,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
