// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/store"
)

// WakeDispatcher polls the alarm table and launches the entry of every
// alarm that became due. An alarm is marked fired before it is launched, so
// two daemons sharing one database never launch it twice.
type WakeDispatcher struct {
	alarms   store.AlarmRepository
	launcher Launcher
	clock    clock.Clock
	interval time.Duration
	logger   *logger.Logger
}

func NewWakeDispatcher(alarms store.AlarmRepository, launcher Launcher, clk clock.Clock, interval time.Duration, logger *logger.Logger) *WakeDispatcher {
	return &WakeDispatcher{
		alarms:   alarms,
		launcher: launcher,
		clock:    clk,
		interval: interval,
		logger:   logger.WithStr("worker", "wake_dispatcher"),
	}
}

// Run implements [Worker].
func (d *WakeDispatcher) Run(ctx context.Context) error {
	d.logger.Info().Dur("interval", d.interval).Msg("wake dispatcher started")
	defer d.logger.Info().Msg("wake dispatcher stopped")

	wake := make(chan struct{}, 1)
	for {
		if _, err := d.DispatchDue(ctx); err != nil {
			d.logger.Error().Err(err).Str("func", "WakeDispatcher.Run").Msg("dispatching due alarms failed")
		}

		timer := d.clock.AfterFunc(d.interval, func() {
			select {
			case wake <- struct{}{}:
			default:
			}
		})
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-wake:
		}
	}
}

// DispatchDue fires every alarm due at the current time and returns how
// many were launched. Alarms cancelled or fired by someone else in the
// meantime are skipped. A failed launch is logged and does not stop the
// remaining alarms.
func (d *WakeDispatcher) DispatchDue(ctx context.Context) (int, error) {
	due, err := d.alarms.Due(ctx, d.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("error listing due alarms: %w", err)
	}

	launched := 0
	for _, alarm := range due {
		log := d.logger.With().Str("alarm_id", alarm.ID).Str("page", string(alarm.Page)).Logger()

		if err := d.alarms.MarkFired(ctx, alarm.ID); err != nil {
			if errors.Is(err, store.ErrAlarmNotFound) {
				log.Debug().Msg("alarm is no longer active")
				continue
			}
			return launched, fmt.Errorf("error marking alarm %s fired: %w", alarm.ID, err)
		}

		if err := d.launcher.Launch(ctx, alarm); err != nil {
			log.Error().Err(err).Msg("alarm launch failed")
			continue
		}
		log.Info().Time("due_at", alarm.DueAt).Msg("alarm fired")
		launched++
	}
	return launched, nil
}
