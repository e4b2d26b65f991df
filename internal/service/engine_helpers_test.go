package service

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/mock"
	"github.com/MKhiriev/go-drip-watch/internal/store"
	"github.com/MKhiriev/go-drip-watch/models"
)

const (
	waitFor  = 2 * time.Second
	pollStep = 5 * time.Millisecond
)

// spyDisplay records everything the engine shows.
type spyDisplay struct {
	mu       sync.Mutex
	messages []string
	readings []models.ReadingView
	loading  []bool
	times    int
}

func (d *spyDisplay) ShowMessage(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, text)
}

func (d *spyDisplay) ShowReading(view models.ReadingView) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.readings = append(d.readings, view)
}

func (d *spyDisplay) SetLoading(loading bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = append(d.loading, loading)
}

func (d *spyDisplay) UpdateTimes(models.ReadingView) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.times++
}

func (d *spyDisplay) Messages() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.messages...)
}

func (d *spyDisplay) Readings() []models.ReadingView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.ReadingView(nil), d.readings...)
}

func (d *spyDisplay) Loading() []bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]bool(nil), d.loading...)
}

func (d *spyDisplay) TimesUpdated() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.times
}

// syncBuffer is a goroutine-safe log sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Contains(s string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Contains(b.buf.String(), s)
}

type engineFixture struct {
	engine    *syncEngine
	clock     *clock.Fake
	storages  *store.Storages
	companion *mock.MockCompanionAdapter
	readings  ReadingRepository
	display   *spyDisplay
	logs      *syncBuffer
	exits     atomic.Int32
}

// newEngineFixture starts an engine over a fresh on-disk store. withExit
// installs an exit action, as the update pages do.
func newEngineFixture(t *testing.T, withExit bool) *engineFixture {
	t.Helper()

	ctx := context.Background()
	dir := t.TempDir()
	clk := fakeClock()

	storages, err := store.NewStorages(ctx, config.WatchStorage{
		DSN:          filepath.Join(dir, "state.db"),
		SnapshotPath: filepath.Join(dir, "info.json"),
	}, models.AlarmSettings{FetchInterval: 5 * time.Minute, FetchParams: "full"}, clk, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	f := &engineFixture{
		clock:     clk,
		storages:  storages,
		companion: mock.NewMockCompanionAdapter(gomock.NewController(t)),
		readings:  NewReadingRepository(clk, testTimings()),
		display:   &spyDisplay{},
		logs:      &syncBuffer{},
	}

	cfg := EngineConfig{Timings: testTimings(), Clock: clk}
	if withExit {
		cfg.ExitAction = func() { f.exits.Add(1) }
	}
	log := &logger.Logger{Logger: zerolog.New(f.logs)}

	f.engine = NewSyncEngine(storages.State, storages.Snapshot, f.companion, f.readings, f.display, cfg, log).(*syncEngine)
	f.engine.Start(ctx)
	t.Cleanup(f.engine.Close)

	return f
}

func (f *engineFixture) inFlight() bool {
	open := false
	f.engine.call(func() { open = f.engine.session != nil })
	return open
}

func (f *engineFixture) waitIdle(t *testing.T) {
	t.Helper()
	require.Eventually(t, func() bool { return !f.inFlight() }, waitFor, pollStep)
}

func (f *engineFixture) hasExited() bool {
	select {
	case <-f.engine.Exited():
		return true
	default:
		return false
	}
}

func (f *engineFixture) state(t *testing.T) models.SyncState {
	t.Helper()
	state, err := f.storages.State.LoadState(context.Background())
	require.NoError(t, err)
	return state
}

// seedSynced stores a successful sync that happened age ago together with a
// matching snapshot, as a previous run would have left it.
func (f *engineFixture) seedSynced(t *testing.T, age time.Duration) string {
	t.Helper()
	ctx := context.Background()
	at := t0.Add(-age)

	raw := infoPayload("5.6", at, at)
	require.NoError(t, f.storages.Snapshot.Save(raw))

	state := f.state(t)
	state.LastFetchSuccess = true
	state.LastSuccessfulUpdate = at
	state.LastFetchAttempt = at
	require.NoError(t, f.storages.State.SaveState(ctx, state))
	require.NoError(t, f.engine.Seed(ctx))
	return raw
}
