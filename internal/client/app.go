package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-drip-watch/internal/adapter"
	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/service"
	"github.com/MKhiriev/go-drip-watch/internal/store"
	"github.com/MKhiriev/go-drip-watch/internal/tui"
	"github.com/MKhiriev/go-drip-watch/models"
)

type App struct {
	cfg  *config.WatchConfig
	args []string

	storages  *store.Storages
	services  *service.Services
	companion adapter.CompanionAdapter
	clock     clock.Clock

	// newScreen builds the interactive display of display-mode pages.
	newScreen func(onRefresh func()) screen

	logger *logger.Logger
}

// NewApp opens the durable store and the companion channel described by
// cfg. args are the process arguments, forwarded to entries launched by the
// wake daemon.
func NewApp(ctx context.Context, cfg *config.WatchConfig, args []string, logger *logger.Logger) (*App, error) {
	clk := clock.System()

	storages, err := store.NewStorages(ctx, cfg.Storage, models.AlarmSettings{
		FetchInterval: cfg.Sync.FetchInterval,
		FetchParams:   cfg.App.DefaultFetchParams,
	}, clk, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	companion, err := adapter.NewCompanionAdapter(cfg.Adapter, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("error creating companion adapter: %w", err)
	}

	return newApp(cfg, args, storages, companion, clk, logger), nil
}

func newApp(cfg *config.WatchConfig, args []string, storages *store.Storages, companion adapter.CompanionAdapter, clk clock.Clock, logger *logger.Logger) *App {
	a := &App{
		cfg:       cfg,
		args:      args,
		storages:  storages,
		services:  service.NewServices(storages, cfg, clk, logger),
		companion: companion,
		clock:     clk,
		logger:    logger,
	}
	a.newScreen = func(onRefresh func()) screen {
		if cfg.App.Headless {
			return newLogScreen(logger)
		}
		return tui.New(appTitle, onRefresh)
	}
	return a
}

// Run serves the page selected by the launch config.
func (a *App) Run(ctx context.Context) error {
	page := a.cfg.Launch.Page
	a.logger.Info().Str("page", string(page)).Msg("starting page")
	a.applyLogLevel(ctx)

	switch page {
	case models.PageMain:
		return a.runMain(ctx)
	case models.PageUpdate:
		return a.runUpdate(ctx, models.FetchDisplay)
	case models.PageUpdateLocal:
		return a.runUpdate(ctx, models.FetchSilent)
	case models.PageConfig:
		return a.runConfig(ctx)
	case models.PageHide:
		a.hide()
		return nil
	case models.PageAlarmDaemon:
		return a.runAlarmDaemon(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}
}

// Close implements [Client].
func (a *App) Close() error {
	return errors.Join(a.companion.Close(), a.storages.Close())
}

// applyLogLevel follows the stored showLog setting.
func (a *App) applyLogLevel(ctx context.Context) {
	settings, err := a.services.Settings.Settings(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("error reading settings, keeping log level")
		return
	}
	logger.SetVerbose(settings.ShowLog)
}

// hide is the exit action of the update pages.
func (a *App) hide() {
	a.logger.Info().Msg("hiding watch app")
}
