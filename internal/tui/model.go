// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drip-watch/models"
)

// watchModel renders the current reading, the status message and the
// loading indicator.
type watchModel struct {
	title     string
	onRefresh func()

	spinner spinner.Model
	loading bool
	message string
	view    models.ReadingView

	quitByUser bool
}

func newWatchModel(title string, onRefresh func()) watchModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return watchModel{
		title:     title,
		onRefresh: onRefresh,
		spinner:   s,
	}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.refresh):
			if m.onRefresh == nil {
				return m, nil
			}
			refresh := m.onRefresh
			return m, func() tea.Msg {
				refresh()
				return nil
			}
		}

	case statusMsg:
		m.message = msg.text

	case readingMsg:
		m.view = msg.view
		m.message = ""

	case timesMsg:
		if m.view.HasData && msg.view.HasData {
			m.view.TimeAgo = msg.view.TimeAgo
			m.view.Stale = msg.view.Stale
		}

	case loadingMsg:
		wasLoading := m.loading
		m.loading = msg.loading
		if m.loading && !wasLoading {
			return m, m.spinner.Tick
		}

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(m.valueLine())
	b.WriteString("\n")
	b.WriteString(deltaLine(m.view))
	if m.view.Stale {
		b.WriteString("\n")
		b.WriteString(staleStyle.Render("stale"))
	}
	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(messageStyle.Render(m.message))
	}
	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" updating")
	}

	return renderPage(m.title, b.String(), "r: refresh  q: quit")
}

func (m watchModel) valueLine() string {
	if !m.view.HasData {
		return valueStyle.Render(noValue)
	}

	style := valueStyle
	switch {
	case m.view.IsHigh:
		style = highStyle
	case m.view.IsLow:
		style = lowStyle
	}
	if m.view.Stale {
		style = style.Inherit(staleStyle)
	}

	return style.Render(m.view.Value) + " " + m.view.Unit + " " + trendGlyph(m.view.Trend)
}
