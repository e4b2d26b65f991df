package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/store"
	"github.com/MKhiriev/go-drip-watch/models"
)

type alarmService struct {
	state  store.StateRepository
	alarms store.AlarmRepository
	clock  clock.Clock

	logger *logger.Logger
}

func NewAlarmService(state store.StateRepository, alarms store.AlarmRepository, clk clock.Clock, logger *logger.Logger) AlarmService {
	return &alarmService{
		state:  state,
		alarms: alarms,
		clock:  clk,
		logger: logger,
	}
}

func (s *alarmService) PrepareNextAlarm(ctx context.Context) (string, error) {
	state, err := s.state.LoadState(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading sync state: %w", err)
	}

	if state.AlarmID != "" {
		if err = s.cancel(ctx, state.AlarmID); err != nil {
			return "", err
		}
		if err = s.state.SetAlarmID(ctx, ""); err != nil {
			return "", fmt.Errorf("error clearing alarm id: %w", err)
		}
	}
	// alarms registered by a run that died before saving the id
	if err = s.cancelOrphans(ctx); err != nil {
		return "", err
	}

	if !state.Settings.UpdatesEnabled() {
		s.logger.Info().
			Bool("disable_updates", state.Settings.DisableUpdates).
			Bool("use_app_fetch", state.Settings.UseAppFetch).
			Msg("background updates are off, no alarm scheduled")
		return "", nil
	}

	interval := state.Alarm.FetchInterval
	if interval <= 0 {
		interval = config.DefaultFetchInterval
	}
	alarm, err := s.alarms.Register(ctx, s.clock.Now().Add(interval), models.PageUpdateLocal, state.Alarm.FetchParams)
	if err != nil {
		return "", fmt.Errorf("error registering alarm: %w", err)
	}
	if err = s.state.SetAlarmID(ctx, alarm.ID); err != nil {
		return "", fmt.Errorf("error saving alarm id: %w", err)
	}

	s.logger.Info().
		Str("alarm_id", alarm.ID).
		Time("due_at", alarm.DueAt).
		Msg("next alarm scheduled")
	return alarm.ID, nil
}

func (s *alarmService) cancel(ctx context.Context, id string) error {
	err := s.alarms.Cancel(ctx, id)
	switch {
	case errors.Is(err, store.ErrAlarmNotFound):
		s.logger.Debug().Str("alarm_id", id).Msg("previous alarm already fired or cancelled")
		return nil
	case err != nil:
		return fmt.Errorf("error cancelling alarm %s: %w", id, err)
	}
	s.logger.Debug().Str("alarm_id", id).Msg("previous alarm cancelled")
	return nil
}

func (s *alarmService) cancelOrphans(ctx context.Context) error {
	active, err := s.alarms.Active(ctx)
	if err != nil {
		return fmt.Errorf("error listing active alarms: %w", err)
	}
	for _, alarm := range active {
		if alarm.Page != models.PageUpdateLocal {
			continue
		}
		s.logger.Warn().Str("alarm_id", alarm.ID).Msg("cancelling orphaned alarm")
		if err = s.cancel(ctx, alarm.ID); err != nil {
			return err
		}
	}
	return nil
}
