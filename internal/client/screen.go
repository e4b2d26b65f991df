package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/tui"
)

const appTitle = "drip-watch"

// logScreen is the headless screen: everything shown goes to the log.
type logScreen struct {
	*tui.LogDisplay
}

func newLogScreen(logger *logger.Logger) screen {
	return logScreen{LogDisplay: tui.NewLogDisplay(logger)}
}

func (logScreen) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// runScreen starts s in its own goroutine. The returned channel yields the
// result once s stops; leaving the terminal view with the quit key is a
// normal stop.
func runScreen(ctx context.Context, s screen) <-chan error {
	done := make(chan error, 1)
	go func() {
		err := s.Run(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			err = nil
		}
		done <- err
	}()
	return done
}
