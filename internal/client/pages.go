package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-drip-watch/internal/service"
	"github.com/MKhiriev/go-drip-watch/internal/workers"
	"github.com/MKhiriev/go-drip-watch/models"
)

// runMain shows the last known reading, fetches once and keeps polling
// until the user leaves.
func (a *App) runMain(ctx context.Context) error {
	settings, err := a.services.Settings.Settings(ctx)
	if err != nil {
		return fmt.Errorf("error reading settings: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var engine service.SyncEngine
	scr := a.newScreen(func() { engine.Fetch(models.FetchDisplay, "") })
	engine = a.services.NewSyncEngine(a.companion, scr, nil)
	screenDone := runScreen(ctx, scr)

	if settings.DisableUpdates {
		scr.ShowMessage(a.services.Messages.Text(service.MsgUpdatesDisabled))
		return <-screenDone
	}

	engine.Start(ctx)
	defer engine.Close()

	if err := engine.Seed(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("error seeding from durable state")
	}
	engine.Fetch(models.FetchDisplay, "")
	engine.StartPolling()

	return <-screenDone
}

// runUpdate prepares the next alarm and runs exactly one fetch session in
// mode. It returns once the session has invoked its exit action.
func (a *App) runUpdate(ctx context.Context, mode models.FetchMode) error {
	log := a.logger.WithStr("mode", string(mode))

	if _, err := a.services.Alarms.PrepareNextAlarm(ctx); err != nil {
		log.Err(err).Msg("error preparing next alarm")
	}

	state, err := a.storages.State.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("error loading sync state: %w", err)
	}
	if !state.Settings.UpdatesEnabled() {
		log.Info().Err(service.ErrUpdatesDisabled).Msg("skipping fetch")
		a.hide()
		return nil
	}

	params := a.cfg.Launch.Params
	if params == "" {
		params = state.Alarm.FetchParams
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	scr := newLogScreen(a.logger)
	if mode == models.FetchDisplay {
		scr = a.newScreen(nil)
	}
	screenDone := runScreen(ctx, scr)

	engine := a.services.NewSyncEngine(a.companion, scr, a.hide)
	engine.Start(ctx)
	defer engine.Close()

	if err := engine.Seed(ctx); err != nil {
		log.Warn().Err(err).Msg("error seeding from durable state")
	}
	if !engine.Fetch(mode, params) {
		cancel()
		<-screenDone
		return ErrFetchNotStarted
	}

	select {
	case <-engine.Exited():
	case <-ctx.Done():
	case err := <-screenDone:
		// the user left before the session ended
		return err
	}
	cancel()
	return <-screenDone
}

// runConfig flips the requested toggle and reschedules the background
// cycle so the change takes effect right away.
func (a *App) runConfig(ctx context.Context) error {
	var (
		settings models.Settings
		err      error
	)
	if name := a.cfg.Launch.Toggle; name != "" {
		settings, err = a.services.Settings.Toggle(ctx, name)
	} else {
		settings, err = a.services.Settings.Settings(ctx)
	}
	if err != nil {
		return fmt.Errorf("error updating settings: %w", err)
	}

	a.logger.Info().
		Bool(service.ToggleDisableUpdates, settings.DisableUpdates).
		Bool(service.ToggleUseAppFetch, settings.UseAppFetch).
		Bool(service.ToggleShowLog, settings.ShowLog).
		Msg("settings")

	if _, err := a.services.Alarms.PrepareNextAlarm(ctx); err != nil {
		return fmt.Errorf("error preparing next alarm: %w", err)
	}
	return nil
}

// runAlarmDaemon fires due alarms until ctx is cancelled.
func (a *App) runAlarmDaemon(ctx context.Context) error {
	launcher, err := workers.NewExecLauncher(a.cfg.Workers.Executable, a.args, a.logger)
	if err != nil {
		return err
	}
	return workers.NewWorkers(
		workers.NewWakeDispatcher(a.storages.Alarms, launcher, a.clock, a.cfg.Workers.AlarmPollInterval, a.logger),
	).Run(ctx)
}
