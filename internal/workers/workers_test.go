// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Run was called and blocks until ctx is done.
type countingWorker struct {
	runCount atomic.Int32
}

func (m *countingWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

// failingWorker returns err right away.
type failingWorker struct {
	err error
}

func (f *failingWorker) Run(context.Context) error {
	return f.err
}

func runAsync(ws *Workers, ctx context.Context) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- ws.Run(ctx) }()
	return errCh
}

func waitErr(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
		return nil
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ws, ctx)

	deadline := time.Now().Add(2 * time.Second)
	for w1.runCount.Load()+w2.runCount.Load()+w3.runCount.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := waitErr(t, errCh); err != nil {
		t.Errorf("expected nil error on cancel, got %v", err)
	}
	for i, w := range []*countingWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should return right away on an empty workers list
	if err := ws.Run(context.Background()); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	if err := ws.Run(context.Background()); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestWorkers_Run_FailureStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &countingWorker{}
	ws := NewWorkers(blocking, &failingWorker{err: boom})

	err := waitErr(t, runAsync(ws, context.Background()))

	if !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
}
