package tui

import "github.com/MKhiriev/go-drip-watch/models"

type statusMsg struct {
	text string
}

type readingMsg struct {
	view models.ReadingView
}

type timesMsg struct {
	view models.ReadingView
}

type loadingMsg struct {
	loading bool
}
