package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-drip-watch/internal/adapter"
	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/models"
)

// fetchSession is one open request/response exchange. Only the loop touches
// it.
type fetchSession struct {
	generation uint64
	mode       models.FetchMode
	params     string
	ctx        context.Context
	cancel     context.CancelFunc
	watchdog   clock.Timer
	succeeded  bool
	logger     *logger.Logger
}

// beginFetch opens a session unless one is already in flight.
func (e *syncEngine) beginFetch(mode models.FetchMode, params string) bool {
	if e.session != nil {
		e.logger.Debug().Uint64("generation", e.session.generation).Msg("fetch already in flight")
		return false
	}
	if params == "" {
		params = e.defaultParams
	}

	e.generation++
	s := &fetchSession{
		generation: e.generation,
		mode:       mode,
		params:     params,
	}
	s.ctx, s.cancel = context.WithCancel(e.ctx)
	s.logger = &logger.Logger{Logger: e.logger.With().
		Str("mode", string(mode)).
		Uint64("generation", s.generation).
		Logger()}
	e.session = s

	now := e.clock.Now()
	if _, err := e.state.MarkAttempt(s.ctx, now); err != nil {
		// The next instance cannot see this attempt and still reads the
		// previous success. Silent sessions stop here.
		s.logger.Err(err).Msg("error marking fetch attempt")
		if mode == models.FetchSilent {
			e.closeSession(s)
			e.runExit()
			return true
		}
	}

	s.logger.Info().Str("params", params).Msg("fetch session started")
	e.display.SetLoading(true)

	gen := s.generation
	go func() {
		connected := e.companion.Connected(s.ctx)
		e.post(func() { e.onProbe(gen, connected) })
	}()
	return true
}

// current returns the open session when it belongs to gen.
func (e *syncEngine) current(gen uint64) *fetchSession {
	if e.session == nil || e.session.generation != gen {
		return nil
	}
	return e.session
}

func (e *syncEngine) onProbe(gen uint64, connected bool) {
	s := e.current(gen)
	if s == nil {
		return
	}

	if !connected {
		s.logger.Warn().Err(adapter.ErrDisconnected).Msg("companion is not reachable")
		e.closeSession(s)
		if s.mode == models.FetchSilent {
			e.runExit()
			return
		}
		e.display.ShowMessage(e.messages.Text(MsgNoConnection))
		e.exitAfterDisplay()
		return
	}

	if s.mode == models.FetchDisplay {
		e.display.ShowMessage(e.messages.Text(MsgConnecting))
	}

	bound := e.timings.Watchdog(s.mode)
	s.watchdog = e.clock.AfterFunc(bound, func() {
		e.post(func() { e.onWatchdog(gen) })
	})

	go func() {
		ctx, cancel := context.WithTimeout(s.ctx, bound)
		defer cancel()
		payload, err := e.companion.GetInfo(ctx, s.params)
		e.post(func() { e.onResponse(gen, payload, err) })
	}()
}

func (e *syncEngine) onWatchdog(gen uint64) {
	s := e.current(gen)
	if s == nil {
		return
	}

	s.logger.Warn().Err(adapter.ErrTimeout).Msg("fetch session abandoned by watchdog")
	e.closeSession(s)
	if s.mode == models.FetchSilent {
		e.runExit()
		return
	}
	e.display.ShowMessage(e.messages.Text(MsgStartCompanion))
	e.exitAfterDisplay()
}

func (e *syncEngine) onResponse(gen uint64, payload string, err error) {
	s := e.current(gen)
	if s == nil {
		e.logger.Info().Uint64("generation", gen).Msg("discarding response of an abandoned session")
		return
	}

	if err := e.applyResponse(s, payload, err); err != nil {
		s.logger.Warn().Err(err).Msg("fetch failed")
	}
	e.finish(s)
}

// applyResponse persists and applies a successful payload. Panics are
// turned into errors so the session always finishes.
func (e *syncEngine) applyResponse(s *fetchSession, payload string, respErr error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while handling response: %v", r)
		}
	}()

	if respErr != nil {
		return fmt.Errorf("request error: %w", respErr)
	}
	snapshot, err := ParsePayload(payload, e.readings.Reading())
	if err != nil {
		return err
	}
	payload = snapshot.Raw

	if err = e.snapshots.Save(payload); err != nil {
		return fmt.Errorf("error saving snapshot: %w", err)
	}

	// the store keeps milliseconds, observed must compare equal after reload
	now := time.UnixMilli(e.clock.Now().UnixMilli())
	state, err := e.state.LoadState(s.ctx)
	if err != nil {
		return fmt.Errorf("error loading sync state: %w", err)
	}
	state.LastFetchSuccess = true
	state.LastSuccessfulUpdate = now
	if err = e.state.SaveState(s.ctx, state); err != nil {
		return fmt.Errorf("error saving sync state: %w", err)
	}
	e.observed = now
	s.succeeded = true

	if err = e.readings.SetData(payload); err != nil {
		return err
	}
	e.display.ShowReading(e.readings.View())
	s.logger.Info().Time("updated_at", now).Msg("fetch succeeded")
	return nil
}

func (e *syncEngine) finish(s *fetchSession) {
	e.closeSession(s)
	if s.mode == models.FetchSilent {
		e.scheduleExit(e.timings.SilentExitDelay)
		return
	}
	if !s.succeeded {
		e.display.ShowMessage(e.messages.Text(MsgStartCompanion))
	}
	e.exitAfterDisplay()
}

// exitAfterDisplay ends display sessions of processes that have an exit
// action.
func (e *syncEngine) exitAfterDisplay() {
	if e.exitAction != nil {
		e.scheduleExit(e.timings.SilentExitDelay)
	}
}

func (e *syncEngine) closeSession(s *fetchSession) {
	if s.watchdog != nil {
		s.watchdog.Stop()
	}
	s.cancel()
	if e.session == s {
		e.session = nil
	}
	e.display.SetLoading(false)
}
