package tui

import (
	"strings"

	"github.com/MKhiriev/go-drip-watch/models"
)

const uiDivider = "──────────────────────────────"

const (
	noValue = "--"
	noDelta = "-- --"
)

var trendGlyphs = map[models.Trend]string{
	models.TrendDoubleUp:       "⇈",
	models.TrendSingleUp:       "↑",
	models.TrendFortyFiveUp:    "↗",
	models.TrendFlat:           "→",
	models.TrendFortyFiveDown:  "↘",
	models.TrendSingleDown:     "↓",
	models.TrendDoubleDown:     "⇊",
	models.TrendNotComputable:  "?",
	models.TrendRateOutOfRange: "!",
}

func trendGlyph(t models.Trend) string {
	if g, ok := trendGlyphs[t]; ok {
		return g
	}
	return "-"
}

// deltaLine renders "<delta> <age>", e.g. "+0.2 5 mins".
func deltaLine(view models.ReadingView) string {
	if !view.HasData {
		return noDelta
	}
	delta := view.Delta
	if delta == "" {
		delta = "0.0"
	}
	return delta + " " + view.TimeAgo
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	for _, line := range strings.Split(data, "\n") {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(hotKeys))

	return appStyle.Render(b.String())
}
