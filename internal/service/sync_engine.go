package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-drip-watch/internal/adapter"
	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/store"
	"github.com/MKhiriev/go-drip-watch/models"
)

const eventQueueSize = 64

// EngineConfig tunes a [SyncEngine].
type EngineConfig struct {
	Timings config.SyncTimings
	// DefaultParams is sent to get_info when a fetch has no params.
	DefaultParams string
	Messages      *Messages
	Clock         clock.Clock
	// ExitAction ends the process run once a session is over. Nil keeps the
	// process running after display sessions.
	ExitAction func()
}

type syncEngine struct {
	state     store.StateRepository
	snapshots store.SnapshotStore
	companion adapter.CompanionAdapter
	readings  ReadingRepository
	display   Display

	clock         clock.Clock
	timings       config.SyncTimings
	defaultParams string
	messages      *Messages
	exitAction    func()
	logger        *logger.Logger

	events    chan func()
	quit      chan struct{}
	done      chan struct{}
	exited    chan struct{}
	started   atomic.Bool
	closeOnce sync.Once
	exitOnce  sync.Once

	// owned by the loop goroutine
	ctx        context.Context
	observed   time.Time
	session    *fetchSession
	generation uint64
	polling    bool
	pollTimer  clock.Timer
}

// NewSyncEngine wires the engine. Call Start before any other method.
func NewSyncEngine(
	state store.StateRepository,
	snapshots store.SnapshotStore,
	companion adapter.CompanionAdapter,
	readings ReadingRepository,
	display Display,
	cfg EngineConfig,
	logger *logger.Logger,
) SyncEngine {
	if cfg.Clock == nil {
		cfg.Clock = clock.System()
	}
	if cfg.Messages == nil {
		cfg.Messages = NewMessages(config.DefaultLanguage)
	}
	if cfg.DefaultParams == "" {
		cfg.DefaultParams = config.DefaultFetchParams
	}

	return &syncEngine{
		state:         state,
		snapshots:     snapshots,
		companion:     companion,
		readings:      readings,
		display:       display,
		clock:         cfg.Clock,
		timings:       cfg.Timings,
		defaultParams: cfg.DefaultParams,
		messages:      cfg.Messages,
		exitAction:    cfg.ExitAction,
		logger:        logger,
		events:        make(chan func(), eventQueueSize),
		quit:          make(chan struct{}),
		done:          make(chan struct{}),
		exited:        make(chan struct{}),
		ctx:           context.Background(),
	}
}

func (e *syncEngine) Start(ctx context.Context) {
	if !e.started.CompareAndSwap(false, true) {
		return
	}
	go e.run(ctx)
}

func (e *syncEngine) run(ctx context.Context) {
	defer close(e.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	e.ctx = ctx

	for {
		select {
		case <-ctx.Done():
			e.teardown()
			return
		case <-e.quit:
			e.teardown()
			return
		case f := <-e.events:
			f()
		}
	}
}

func (e *syncEngine) Close() {
	e.closeOnce.Do(func() { close(e.quit) })
	if e.started.Load() {
		<-e.done
	}
}

func (e *syncEngine) Exited() <-chan struct{} {
	return e.exited
}

// post queues f on the loop. It reports false once the loop is gone.
func (e *syncEngine) post(f func()) bool {
	if !e.started.Load() {
		return false
	}
	select {
	case <-e.done:
		return false
	case e.events <- f:
		return true
	}
}

// call runs f on the loop and waits for it.
func (e *syncEngine) call(f func()) bool {
	reply := make(chan struct{})
	if !e.post(func() { f(); close(reply) }) {
		return false
	}
	select {
	case <-reply:
		return true
	case <-e.done:
		return false
	}
}

func (e *syncEngine) Seed(ctx context.Context) error {
	var err error
	if !e.call(func() { err = e.seed(ctx) }) {
		return ErrEngineNotStarted
	}
	return err
}

func (e *syncEngine) seed(ctx context.Context) error {
	state, err := e.state.LoadState(ctx)
	if err != nil {
		return err
	}
	e.observed = state.LastSuccessfulUpdate
	if e.restoreSnapshot() {
		e.display.ShowReading(e.readings.View())
	}
	return nil
}

// restoreSnapshot loads the snapshot file into the repository and reports
// whether a reading is available afterwards.
func (e *syncEngine) restoreSnapshot() bool {
	raw, err := e.snapshots.Load()
	switch {
	case errors.Is(err, store.ErrSnapshotNotFound):
		e.logger.Debug().Msg("no snapshot yet")
		return false
	case err != nil:
		e.logger.Err(err).Msg("error reading snapshot")
		return false
	}

	if err = e.readings.RestoreData(raw); err != nil {
		// an unreadable snapshot means no data yet
		e.logger.Warn().Err(err).Msg("snapshot is not a valid payload")
		return false
	}
	return e.readings.Reading().HasData()
}

func (e *syncEngine) Fetch(mode models.FetchMode, params string) bool {
	started := false
	e.call(func() { started = e.beginFetch(mode, params) })
	return started
}

func (e *syncEngine) Tick() models.Decision {
	var decision models.Decision
	e.call(func() { decision = e.tick() })
	return decision
}

func (e *syncEngine) tick() models.Decision {
	e.display.UpdateTimes(e.readings.View())

	if e.session != nil {
		return EvaluateTriggers(TriggerInput{InFlight: true})
	}

	state, err := e.state.LoadState(e.ctx)
	if err != nil {
		e.logger.Err(err).Msg("error loading sync state, skipping tick")
		return models.Decision{Rule: models.RuleNotModified, Action: models.ActionNone}
	}

	decision := EvaluateTriggers(TriggerInput{
		Now:                   e.clock.Now(),
		State:                 state,
		Observed:              e.observed,
		DataStale:             e.readings.IsStale(),
		UpdateInterval:        e.timings.UpdateInterval,
		StaleAttemptThreshold: e.timings.StaleAttemptThreshold,
	})
	e.logger.Debug().
		Str("rule", string(decision.Rule)).
		Str("action", string(decision.Action)).
		Msg("trigger evaluated")

	switch decision.Action {
	case models.ActionFetch:
		e.beginFetch(models.FetchDisplay, "")
	case models.ActionReload:
		e.reload(state)
	}
	return decision
}

// reload applies a snapshot another process instance wrote.
func (e *syncEngine) reload(state models.SyncState) {
	e.logger.Info().Msg("data updated by another instance, reloading snapshot")
	e.observed = state.LastSuccessfulUpdate
	if e.restoreSnapshot() {
		e.display.ShowReading(e.readings.View())
	}
}

func (e *syncEngine) StartPolling() {
	e.call(func() {
		if e.polling {
			return
		}
		e.polling = true
		e.armPoll()
	})
}

func (e *syncEngine) StopPolling() {
	e.call(e.stopPolling)
}

func (e *syncEngine) stopPolling() {
	e.polling = false
	if e.pollTimer != nil {
		e.pollTimer.Stop()
		e.pollTimer = nil
	}
}

func (e *syncEngine) armPoll() {
	e.pollTimer = e.clock.AfterFunc(e.timings.PollInterval, func() {
		e.post(e.onPoll)
	})
}

func (e *syncEngine) onPoll() {
	if !e.polling {
		return
	}
	e.tick()
	e.armPoll()
}

// runExit invokes the exit action once. Safe from any goroutine.
func (e *syncEngine) runExit() {
	e.exitOnce.Do(func() {
		e.logger.Info().Msg("exiting")
		if e.exitAction != nil {
			e.exitAction()
		}
		close(e.exited)
	})
}

func (e *syncEngine) scheduleExit(delay time.Duration) {
	if delay <= 0 {
		e.runExit()
		return
	}
	e.clock.AfterFunc(delay, e.runExit)
}

func (e *syncEngine) teardown() {
	e.stopPolling()
	if e.session != nil {
		e.logger.Warn().Uint64("generation", e.session.generation).Msg("engine stopped with an open session")
		e.closeSession(e.session)
	}
}
