package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/store"
	"github.com/MKhiriev/go-drip-watch/models"
)

// Settings toggle names accepted by [SettingsService.Toggle].
const (
	ToggleDisableUpdates = "disableUpdates"
	ToggleUseAppFetch    = "useAppFetch"
	ToggleShowLog        = "showLog"
)

type settingsService struct {
	state store.StateRepository
	clock clock.Clock

	logger *logger.Logger
}

func NewSettingsService(state store.StateRepository, clk clock.Clock, logger *logger.Logger) SettingsService {
	return &settingsService{state: state, clock: clk, logger: logger}
}

func (s *settingsService) Settings(ctx context.Context) (models.Settings, error) {
	state, err := s.state.LoadState(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("error loading settings: %w", err)
	}
	return state.Settings, nil
}

// Toggle flips one setting and stamps the modification time.
func (s *settingsService) Toggle(ctx context.Context, name string) (models.Settings, error) {
	state, err := s.state.LoadState(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("error loading settings: %w", err)
	}

	switch name {
	case ToggleDisableUpdates:
		state.Settings.DisableUpdates = !state.Settings.DisableUpdates
	case ToggleUseAppFetch:
		state.Settings.UseAppFetch = !state.Settings.UseAppFetch
	case ToggleShowLog:
		state.Settings.ShowLog = !state.Settings.ShowLog
	default:
		return models.Settings{}, fmt.Errorf("%w: %q", ErrUnknownToggle, name)
	}
	state.SettingsUpdatedAt = s.clock.Now()

	if err = s.state.SaveState(ctx, state); err != nil {
		return models.Settings{}, fmt.Errorf("error saving settings: %w", err)
	}

	s.logger.Info().Str("toggle", name).Interface("settings", state.Settings).Msg("settings updated")
	return state.Settings, nil
}
