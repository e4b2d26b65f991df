// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/mock"
	"github.com/MKhiriev/go-drip-watch/internal/store"
	"github.com/MKhiriev/go-drip-watch/models"
)

func newTestAlarmSvc(t *testing.T) (AlarmService, *mock.MockStateRepository, *mock.MockAlarmRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	state := mock.NewMockStateRepository(ctrl)
	alarms := mock.NewMockAlarmRepository(ctrl)
	return NewAlarmService(state, alarms, fakeClock(), logger.Nop()), state, alarms
}

func enabledState(alarmID string) models.SyncState {
	return models.SyncState{
		AlarmID:  alarmID,
		Settings: models.DefaultSettings(),
		Alarm:    models.AlarmSettings{FetchInterval: 5 * time.Minute, FetchParams: "full"},
	}
}

func TestAlarmService_PrepareNextAlarm_ReplacesPrevious(t *testing.T) {
	svc, state, alarms := newTestAlarmSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		state.EXPECT().LoadState(ctx).Return(enabledState("old"), nil),
		alarms.EXPECT().Cancel(ctx, "old").Return(nil),
		state.EXPECT().SetAlarmID(ctx, "").Return(nil),
		alarms.EXPECT().Active(ctx).Return(nil, nil),
		alarms.EXPECT().Register(ctx, t0.Add(5*time.Minute), models.PageUpdateLocal, "full").
			Return(models.Alarm{ID: "new", DueAt: t0.Add(5 * time.Minute)}, nil),
		state.EXPECT().SetAlarmID(ctx, "new").Return(nil),
	)

	id, err := svc.PrepareNextAlarm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", id)
}

func TestAlarmService_PrepareNextAlarm_ToleratesFiredAlarm(t *testing.T) {
	svc, state, alarms := newTestAlarmSvc(t)
	ctx := context.Background()

	state.EXPECT().LoadState(ctx).Return(enabledState("fired"), nil)
	alarms.EXPECT().Cancel(ctx, "fired").Return(store.ErrAlarmNotFound)
	state.EXPECT().SetAlarmID(ctx, "").Return(nil)
	alarms.EXPECT().Active(ctx).Return(nil, nil)
	alarms.EXPECT().Register(ctx, gomock.Any(), models.PageUpdateLocal, "full").Return(models.Alarm{ID: "next"}, nil)
	state.EXPECT().SetAlarmID(ctx, "next").Return(nil)

	id, err := svc.PrepareNextAlarm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "next", id)
}

func TestAlarmService_PrepareNextAlarm_UpdatesDisabled(t *testing.T) {
	tests := []struct {
		name     string
		settings models.Settings
	}{
		{"updates disabled", models.Settings{DisableUpdates: true, UseAppFetch: true}},
		{"app fetch off", models.Settings{UseAppFetch: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, state, alarms := newTestAlarmSvc(t)
			ctx := context.Background()

			st := enabledState("old")
			st.Settings = tt.settings
			state.EXPECT().LoadState(ctx).Return(st, nil)
			alarms.EXPECT().Cancel(ctx, "old").Return(nil)
			state.EXPECT().SetAlarmID(ctx, "").Return(nil)
			alarms.EXPECT().Active(ctx).Return(nil, nil)

			id, err := svc.PrepareNextAlarm(ctx)
			require.NoError(t, err)
			assert.Empty(t, id)
		})
	}
}

func TestAlarmService_PrepareNextAlarm_CancelsOrphans(t *testing.T) {
	svc, state, alarms := newTestAlarmSvc(t)
	ctx := context.Background()

	state.EXPECT().LoadState(ctx).Return(enabledState(""), nil)
	alarms.EXPECT().Active(ctx).Return([]models.Alarm{
		{ID: "orphan", Page: models.PageUpdateLocal},
		{ID: "manual", Page: models.PageUpdate},
	}, nil)
	alarms.EXPECT().Cancel(ctx, "orphan").Return(nil)
	alarms.EXPECT().Register(ctx, gomock.Any(), models.PageUpdateLocal, "full").Return(models.Alarm{ID: "next"}, nil)
	state.EXPECT().SetAlarmID(ctx, "next").Return(nil)

	_, err := svc.PrepareNextAlarm(ctx)
	require.NoError(t, err)
}

func TestAlarmService_PrepareNextAlarm_DefaultInterval(t *testing.T) {
	svc, state, alarms := newTestAlarmSvc(t)
	ctx := context.Background()

	st := enabledState("")
	st.Alarm.FetchInterval = 0
	state.EXPECT().LoadState(ctx).Return(st, nil)
	alarms.EXPECT().Active(ctx).Return(nil, nil)
	alarms.EXPECT().Register(ctx, t0.Add(config.DefaultFetchInterval), models.PageUpdateLocal, "full").
		Return(models.Alarm{ID: "next"}, nil)
	state.EXPECT().SetAlarmID(ctx, "next").Return(nil)

	_, err := svc.PrepareNextAlarm(ctx)
	require.NoError(t, err)
}

func TestAlarmService_PrepareNextAlarm_Errors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("database is gone")

	t.Run("load state", func(t *testing.T) {
		svc, state, _ := newTestAlarmSvc(t)
		state.EXPECT().LoadState(ctx).Return(models.SyncState{}, dbErr)

		_, err := svc.PrepareNextAlarm(ctx)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("cancel", func(t *testing.T) {
		svc, state, alarms := newTestAlarmSvc(t)
		state.EXPECT().LoadState(ctx).Return(enabledState("old"), nil)
		alarms.EXPECT().Cancel(ctx, "old").Return(dbErr)

		_, err := svc.PrepareNextAlarm(ctx)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "error cancelling alarm old")
	})

	t.Run("register", func(t *testing.T) {
		svc, state, alarms := newTestAlarmSvc(t)
		state.EXPECT().LoadState(ctx).Return(enabledState(""), nil)
		alarms.EXPECT().Active(ctx).Return(nil, nil)
		alarms.EXPECT().Register(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Alarm{}, dbErr)

		_, err := svc.PrepareNextAlarm(ctx)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("save id", func(t *testing.T) {
		svc, state, alarms := newTestAlarmSvc(t)
		state.EXPECT().LoadState(ctx).Return(enabledState(""), nil)
		alarms.EXPECT().Active(ctx).Return(nil, nil)
		alarms.EXPECT().Register(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Alarm{ID: "next"}, nil)
		state.EXPECT().SetAlarmID(ctx, "next").Return(dbErr)

		_, err := svc.PrepareNextAlarm(ctx)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAlarmService_PrepareNextAlarm_Idempotent(t *testing.T) {
	ctx := context.Background()
	clk := fakeClock()
	dir := t.TempDir()
	storages, err := store.NewStorages(ctx, config.WatchStorage{
		DSN:          filepath.Join(dir, "state.db"),
		SnapshotPath: filepath.Join(dir, "info.json"),
	}, models.AlarmSettings{FetchInterval: 5 * time.Minute, FetchParams: "full"}, clk, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	svc := NewAlarmService(storages.State, storages.Alarms, clk, logger.Nop())

	first, err := svc.PrepareNextAlarm(ctx)
	require.NoError(t, err)
	second, err := svc.PrepareNextAlarm(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	active, err := storages.Alarms.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second, active[0].ID)
	assert.Equal(t, models.PageUpdateLocal, active[0].Page)
	assert.True(t, t0.Add(5*time.Minute).Equal(active[0].DueAt))

	state, err := storages.State.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, state.AlarmID)
}
