package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_RunStopsOnContextCancel(t *testing.T) {
	ui := New("drip-watch", nil, tea.WithInput(nil), tea.WithOutput(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- ui.Run(ctx) }()

	ui.ShowMessage("Connecting...")
	ui.SetLoading(true)
	ui.ShowReading(sampleView())
	ui.UpdateTimes(sampleView())
	ui.SetLoading(false)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("tui did not stop")
	}

	assert.NotPanics(t, func() { ui.ShowMessage("after exit") })
}
