// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/mock"
	"github.com/MKhiriev/go-drip-watch/models"
)

func TestSettingsService_Toggle(t *testing.T) {
	tests := []struct {
		name   string
		toggle string
		want   models.Settings
	}{
		{"disable updates", ToggleDisableUpdates, models.Settings{DisableUpdates: true, UseAppFetch: true}},
		{"app fetch", ToggleUseAppFetch, models.Settings{}},
		{"show log", ToggleShowLog, models.Settings{UseAppFetch: true, ShowLog: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			state := mock.NewMockStateRepository(ctrl)
			svc := NewSettingsService(state, fakeClock(), logger.Nop())
			ctx := context.Background()

			state.EXPECT().LoadState(ctx).Return(models.SyncState{Settings: models.DefaultSettings(), AlarmID: "keep"}, nil)
			state.EXPECT().SaveState(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, st models.SyncState) error {
				assert.Equal(t, tt.want, st.Settings)
				assert.True(t, t0.Equal(st.SettingsUpdatedAt))
				assert.Equal(t, "keep", st.AlarmID, "other keys are written back unchanged")
				return nil
			})

			got, err := svc.Toggle(ctx, tt.toggle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsService_ToggleUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := mock.NewMockStateRepository(ctrl)
	svc := NewSettingsService(state, fakeClock(), logger.Nop())
	ctx := context.Background()

	state.EXPECT().LoadState(ctx).Return(models.SyncState{}, nil)

	_, err := svc.Toggle(ctx, "darkMode")
	assert.ErrorIs(t, err, ErrUnknownToggle)
}

func TestSettingsService_Errors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("disk full")

	t.Run("load", func(t *testing.T) {
		state := mock.NewMockStateRepository(gomock.NewController(t))
		svc := NewSettingsService(state, fakeClock(), logger.Nop())
		state.EXPECT().LoadState(ctx).Return(models.SyncState{}, dbErr).Times(2)

		_, err := svc.Toggle(ctx, ToggleShowLog)
		assert.ErrorIs(t, err, dbErr)
		_, err = svc.Settings(ctx)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("save", func(t *testing.T) {
		state := mock.NewMockStateRepository(gomock.NewController(t))
		svc := NewSettingsService(state, fakeClock(), logger.Nop())
		state.EXPECT().LoadState(ctx).Return(models.SyncState{}, nil)
		state.EXPECT().SaveState(ctx, gomock.Any()).Return(dbErr)

		_, err := svc.Toggle(ctx, ToggleShowLog)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestSettingsService_Settings(t *testing.T) {
	state := mock.NewMockStateRepository(gomock.NewController(t))
	svc := NewSettingsService(state, fakeClock(), logger.Nop())
	ctx := context.Background()

	state.EXPECT().LoadState(ctx).Return(models.SyncState{Settings: models.Settings{ShowLog: true}}, nil)

	got, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.True(t, got.ShowLog)
}
