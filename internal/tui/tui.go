// Package tui contains the display implementations driven by the sync
// engine: a bubbletea terminal view and a log-only display for headless
// runs.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drip-watch/models"
)

// TUI is the terminal display. Its Display methods are safe to call from
// any goroutine once Run has started.
type TUI struct {
	program *tea.Program
}

// New creates the terminal display. onRefresh runs when the user asks for a
// manual update and may be nil.
func New(title string, onRefresh func(), opts ...tea.ProgramOption) *TUI {
	return &TUI{program: tea.NewProgram(newWatchModel(title, onRefresh), opts...)}
}

// Run blocks until the user quits or ctx is cancelled. A user quit is
// reported as ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, t.program.Quit)
	defer stop()

	finalModel, err := t.program.Run()
	if err != nil {
		return err
	}
	if result, ok := finalModel.(watchModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) ShowMessage(text string) {
	t.program.Send(statusMsg{text: text})
}

func (t *TUI) ShowReading(view models.ReadingView) {
	t.program.Send(readingMsg{view: view})
}

func (t *TUI) SetLoading(loading bool) {
	t.program.Send(loadingMsg{loading: loading})
}

func (t *TUI) UpdateTimes(view models.ReadingView) {
	t.program.Send(timesMsg{view: view})
}
