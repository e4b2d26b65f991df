package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	valueStyle   = lipgloss.NewStyle().Bold(true)
	highStyle    = valueStyle.Foreground(lipgloss.Color("#FFA0A0"))
	lowStyle     = valueStyle.Foreground(lipgloss.Color("#F6FF00"))
	staleStyle   = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	messageStyle = lipgloss.NewStyle().Italic(true)
)
