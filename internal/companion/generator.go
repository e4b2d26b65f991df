// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package companion

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/models"
)

const (
	readingSlot = 5 * time.Minute
	curvePeriod = 3 * time.Hour

	baseMmol   = 6.5
	swingMmol  = 4.0
	highMmol   = 10.0
	lowMmol    = 3.9
	mgdlPerMol = 18.0

	// mgdlParam in get_info params switches the payload to mg/dl.
	mgdlParam = "mgdl"
)

// Generator produces a sine-shaped glucose curve. Readings are aligned to
// five-minute slots like a sensor, so repeated calls inside one slot return
// the same reading with a fresh status time.
type Generator struct {
	clock  clock.Clock
	isMgdl bool
}

func NewGenerator(clk clock.Clock, isMgdl bool) *Generator {
	return &Generator{clock: clk, isMgdl: isMgdl}
}

// Info returns the get_info payload for the current time.
func (g *Generator) Info(_ context.Context, params string) (models.InfoPayload, error) {
	now := g.clock.Now()
	slot := now.Truncate(readingSlot)

	value := curve(slot)
	delta := value - curve(slot.Add(-readingSlot))
	isMgdl := g.isMgdl || strings.Contains(params, mgdlParam)

	return models.InfoPayload{
		BG: &models.BGPayload{
			Val:    formatValue(value, isMgdl),
			Delta:  formatDelta(delta, isMgdl),
			Trend:  string(trendOf(delta)),
			IsHigh: value > highMmol,
			IsLow:  value < lowMmol,
			Time:   slot.UnixMilli(),
		},
		Status: &models.StatusPayload{
			Now:    now.UnixMilli(),
			IsMgdl: isMgdl,
		},
	}, nil
}

// curve returns the mmol/l value at t.
func curve(t time.Time) float64 {
	phase := float64(t.UnixMilli()%curvePeriod.Milliseconds()) / float64(curvePeriod.Milliseconds())
	return baseMmol + swingMmol*math.Sin(2*math.Pi*phase)
}

// trendOf classifies a five-minute change by its mg/dl per minute rate.
func trendOf(deltaMmol float64) models.Trend {
	rate := deltaMmol * mgdlPerMol / readingSlot.Minutes()
	switch {
	case rate > 3:
		return models.TrendDoubleUp
	case rate > 2:
		return models.TrendSingleUp
	case rate > 1:
		return models.TrendFortyFiveUp
	case rate >= -1:
		return models.TrendFlat
	case rate >= -2:
		return models.TrendFortyFiveDown
	case rate >= -3:
		return models.TrendSingleDown
	default:
		return models.TrendDoubleDown
	}
}

func formatValue(mmol float64, isMgdl bool) string {
	if isMgdl {
		return fmt.Sprintf("%.0f", mmol*mgdlPerMol)
	}
	return fmt.Sprintf("%.1f", mmol)
}

func formatDelta(mmol float64, isMgdl bool) string {
	if isMgdl {
		return fmt.Sprintf("%+.0f", mmol*mgdlPerMol)
	}
	return fmt.Sprintf("%+.1f", mmol)
}
