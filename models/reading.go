package models

import "time"

// Trend is the direction category reported by the companion for a reading.
type Trend string

const (
	TrendDoubleUp       Trend = "DoubleUp"
	TrendSingleUp       Trend = "SingleUp"
	TrendFortyFiveUp    Trend = "FortyFiveUp"
	TrendFlat           Trend = "Flat"
	TrendFortyFiveDown  Trend = "FortyFiveDown"
	TrendSingleDown     Trend = "SingleDown"
	TrendDoubleDown     Trend = "DoubleDown"
	TrendNotComputable  Trend = "NotComputable"
	TrendRateOutOfRange Trend = "RateOutOfRange"
	TrendNone           Trend = "None"
)

// ParseTrend maps a companion trend string to a known category. Unknown and
// empty values map to TrendNone.
func ParseTrend(s string) Trend {
	switch t := Trend(s); t {
	case TrendDoubleUp, TrendSingleUp, TrendFortyFiveUp, TrendFlat,
		TrendFortyFiveDown, TrendSingleDown, TrendDoubleDown,
		TrendNotComputable, TrendRateOutOfRange:
		return t
	default:
		return TrendNone
	}
}

// GlucoseReading is an immutable snapshot of a single sensor value.
// The zero value means "no data yet".
type GlucoseReading struct {
	// Value is the reading exactly as the companion formatted it (e.g. "5.6").
	Value string
	// Numeric is Value parsed as a number; zero when Value is not numeric.
	Numeric float64
	Trend   Trend
	Time    time.Time
	IsHigh  bool
	IsLow   bool
	// Delta is the signed change from the previous reading (e.g. "+0.2").
	Delta string
}

// HasData reports whether the reading carries a value.
func (r GlucoseReading) HasData() bool {
	return r.Value != "" && !r.Time.IsZero()
}

// ArrowResource returns the image path used to render the trend arrow.
func (r GlucoseReading) ArrowResource() string {
	trend := r.Trend
	if trend == "" {
		trend = TrendNone
	}
	return "arrows/" + string(trend) + ".png"
}

// DeviceStatus is the companion-side status paired with each reading.
type DeviceStatus struct {
	// Now is the companion clock at the moment the payload was produced.
	Now    time.Time
	IsMgdl bool
}

// UnitText returns the display unit for values reported with this status.
func (s DeviceStatus) UnitText() string {
	if s.IsMgdl {
		return "mg/dl"
	}
	return "mmol/l"
}

// Snapshot is the most recent parsed reading and status, plus the raw payload
// they were parsed from.
type Snapshot struct {
	Reading GlucoseReading
	Status  DeviceStatus
	Raw     string
}

// IsEmpty reports whether the snapshot holds no reading.
func (s Snapshot) IsEmpty() bool {
	return !s.Reading.HasData()
}
