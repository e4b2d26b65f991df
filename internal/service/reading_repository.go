package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/models"
)

type readingRepository struct {
	clock            clock.Clock
	readingFreshness time.Duration
	statusFreshness  time.Duration

	mu       sync.RWMutex
	snapshot models.Snapshot
	// timeDiff is local time minus companion time at the moment of the last
	// fresh fetch.
	timeDiff time.Duration
}

// NewReadingRepository creates an empty repository. Freshness thresholds
// come from timings.
func NewReadingRepository(clk clock.Clock, timings config.SyncTimings) ReadingRepository {
	return &readingRepository{
		clock:            clk,
		readingFreshness: timings.ReadingFreshness,
		statusFreshness:  timings.StatusFreshness,
	}
}

func (r *readingRepository) SetData(raw string) error {
	return r.apply(raw, true)
}

func (r *readingRepository) RestoreData(raw string) error {
	return r.apply(raw, false)
}

func (r *readingRepository) apply(raw string, fresh bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := ParsePayload(raw, r.snapshot.Reading)
	if err != nil {
		return err
	}

	r.snapshot = snapshot
	r.timeDiff = 0
	if fresh && !snapshot.Status.Now.IsZero() {
		r.timeDiff = r.clock.Now().Sub(snapshot.Status.Now)
	}
	return nil
}

func (r *readingRepository) Reading() models.GlucoseReading {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot.Reading
}

func (r *readingRepository) Status() models.DeviceStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot.Status
}

func (r *readingRepository) Snapshot() models.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *readingRepository) IsStale() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isStaleLocked(r.companionNowLocked())
}

func (r *readingRepository) View() models.ReadingView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reading := r.snapshot.Reading
	if !reading.HasData() {
		return models.ReadingView{Unit: r.snapshot.Status.UnitText(), Trend: models.TrendNone, Arrow: reading.ArrowResource()}
	}

	now := r.companionNowLocked()
	return models.ReadingView{
		HasData: true,
		Value:   reading.Value,
		Delta:   reading.Delta,
		Unit:    r.snapshot.Status.UnitText(),
		Trend:   reading.Trend,
		Arrow:   reading.ArrowResource(),
		TimeAgo: TimeAgo(now.Sub(reading.Time)),
		IsHigh:  reading.IsHigh,
		IsLow:   reading.IsLow,
		Stale:   r.isStaleLocked(now),
	}
}

func (r *readingRepository) companionNowLocked() time.Time {
	return r.clock.Now().Add(-r.timeDiff)
}

func (r *readingRepository) isStaleLocked(now time.Time) bool {
	if !r.snapshot.Reading.HasData() {
		return false
	}
	if now.Sub(r.snapshot.Reading.Time) > r.readingFreshness {
		return true
	}
	status := r.snapshot.Status.Now
	return !status.IsZero() && now.Sub(status) > r.statusFreshness
}

// ParsePayload decodes a get_info payload. previous is used to derive the
// delta when the payload carries none; the returned Raw then carries the
// derived delta too.
func ParsePayload(raw string, previous models.GlucoseReading) (models.Snapshot, error) {
	var payload models.InfoPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if payload.BG == nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrParse, ErrMissingReading)
	}
	if payload.Status == nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrParse, ErrMissingStatus)
	}

	bg := payload.BG
	reading := models.GlucoseReading{
		Value:  strings.TrimSpace(bg.Val),
		Trend:  models.ParseTrend(bg.Trend),
		Time:   fromUnixMilli(bg.Time),
		IsHigh: bg.IsHigh,
		IsLow:  bg.IsLow,
		Delta:  strings.TrimSpace(bg.Delta),
	}
	numeric, numericOK := parseNumeric(reading.Value)
	reading.Numeric = numeric

	if reading.Delta == "" && numericOK && previous.HasData() && reading.Time.After(previous.Time) {
		if prev, ok := parseNumeric(previous.Value); ok {
			reading.Delta = formatDelta(numeric-prev, payload.Status.IsMgdl)
			// a derived delta is written back so a restored snapshot shows it
			bg.Delta = reading.Delta
			encoded, err := json.Marshal(payload)
			if err != nil {
				return models.Snapshot{}, fmt.Errorf("%w: %w", ErrParse, err)
			}
			raw = string(encoded)
		}
	}

	return models.Snapshot{
		Reading: reading,
		Status: models.DeviceStatus{
			Now:    fromUnixMilli(payload.Status.Now),
			IsMgdl: payload.Status.IsMgdl,
		},
		Raw: raw,
	}, nil
}

func parseNumeric(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.Replace(value, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func formatDelta(delta float64, mgdl bool) string {
	if mgdl {
		return fmt.Sprintf("%+.0f", delta)
	}
	return fmt.Sprintf("%+.1f", delta)
}

func fromUnixMilli(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
