package tui

import (
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/models"
)

// LogDisplay writes what a screen would show to the log.
type LogDisplay struct {
	logger *logger.Logger
}

func NewLogDisplay(logger *logger.Logger) *LogDisplay {
	return &LogDisplay{logger: logger}
}

func (d *LogDisplay) ShowMessage(text string) {
	d.logger.Info().Str("message", text).Msg("status")
}

func (d *LogDisplay) ShowReading(view models.ReadingView) {
	d.logger.Info().
		Bool("has_data", view.HasData).
		Str("value", view.Value).
		Str("unit", view.Unit).
		Str("delta", view.Delta).
		Str("trend", string(view.Trend)).
		Str("age", view.TimeAgo).
		Bool("high", view.IsHigh).
		Bool("low", view.IsLow).
		Bool("stale", view.Stale).
		Msg("reading")
}

func (d *LogDisplay) SetLoading(loading bool) {
	d.logger.Debug().Bool("loading", loading).Msg("loading indicator")
}

func (d *LogDisplay) UpdateTimes(view models.ReadingView) {
	d.logger.Debug().Str("age", view.TimeAgo).Bool("stale", view.Stale).Msg("times updated")
}
