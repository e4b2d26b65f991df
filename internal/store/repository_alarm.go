// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/utils"
	"github.com/MKhiriev/go-drip-watch/models"
)

type alarmRepository struct {
	*DB
	ids    utils.IDGenerator
	clock  clock.Clock
	logger *logger.Logger
}

// NewAlarmRepository returns an [AlarmRepository] over the alarms table.
func NewAlarmRepository(db *DB, ids utils.IDGenerator, clk clock.Clock, logger *logger.Logger) AlarmRepository {
	return &alarmRepository{
		DB:     db,
		ids:    ids,
		clock:  clk,
		logger: logger,
	}
}

func (r *alarmRepository) Register(ctx context.Context, dueAt time.Time, page models.Page, params string) (models.Alarm, error) {
	alarm := models.Alarm{
		ID:        r.ids.Generate(),
		DueAt:     dueAt,
		Page:      page,
		Params:    params,
		State:     models.AlarmActive,
		CreatedAt: r.clock.Now(),
	}

	query, args, err := buildInsertAlarmQuery(alarm)
	if err != nil {
		return models.Alarm{}, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, "Register", func() error {
		_, err := r.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "alarmRepository.Register").
			Str("alarm_id", alarm.ID).
			Msg("failed to register alarm")
		return models.Alarm{}, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrExecutingStatement, err)
	}

	r.logger.Debug().
		Str("func", "alarmRepository.Register").
		Str("alarm_id", alarm.ID).
		Time("due_at", dueAt).
		Str("page", string(page)).
		Msg("alarm registered")

	return alarm, nil
}

func (r *alarmRepository) Cancel(ctx context.Context, id string) error {
	return r.transition(ctx, "Cancel", id, models.AlarmCancelled)
}

func (r *alarmRepository) MarkFired(ctx context.Context, id string) error {
	return r.transition(ctx, "MarkFired", id, models.AlarmFired)
}

func (r *alarmRepository) transition(ctx context.Context, op, id string, state models.AlarmState) error {
	if id == "" {
		return ErrAlarmNotFound
	}

	query, args, err := buildTransitionAlarmQuery(id, state)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrPersistence, ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.withRetry(ctx, op, func() error {
		res, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "alarmRepository."+op).
			Str("alarm_id", id).
			Msg("failed to update alarm state")
		return fmt.Errorf("%w: %w: %w", ErrPersistence, ErrExecutingStatement, err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrAlarmNotFound, id)
	}

	return nil
}

func (r *alarmRepository) Due(ctx context.Context, now time.Time) ([]models.Alarm, error) {
	query, args, err := buildSelectDueAlarmsQuery(now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "Due", query, args)
}

func (r *alarmRepository) Active(ctx context.Context) ([]models.Alarm, error) {
	query, args, err := buildSelectActiveAlarmsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "Active", query, args)
}

func (r *alarmRepository) list(ctx context.Context, op, query string, args []any) ([]models.Alarm, error) {
	var alarms []models.Alarm
	err := r.withRetry(ctx, op, func() error {
		var err error
		alarms, err = r.scanAlarms(ctx, query, args)
		return err
	})
	if err != nil {
		r.logger.Err(err).Str("func", "alarmRepository."+op).Msg("failed to list alarms")
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return alarms, nil
}

func (r *alarmRepository) scanAlarms(ctx context.Context, query string, args []any) ([]models.Alarm, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var alarms []models.Alarm
	for rows.Next() {
		var (
			alarm            models.Alarm
			dueAt, createdAt int64
			page, state      string
		)
		if err := rows.Scan(&alarm.ID, &dueAt, &page, &alarm.Params, &state, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		alarm.DueAt = time.UnixMilli(dueAt)
		alarm.CreatedAt = time.UnixMilli(createdAt)
		alarm.Page = models.Page(page)
		alarm.State = models.AlarmState(state)
		alarms = append(alarms, alarm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return alarms, nil
}
