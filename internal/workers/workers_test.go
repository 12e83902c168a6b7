// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chastukhin

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks Start and Stop calls.
type mockWorker struct {
	startCount int
	stopCount  int
	stopOrder  *[]string
	name       string
}

func (m *mockWorker) Start(context.Context) {
	m.startCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
	if m.stopOrder != nil {
		*m.stopOrder = append(*m.stopOrder, m.name)
	}
}

func TestWorkers_Start_AllWorkersAreStarted(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Start(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.startCount != 1 {
			t.Errorf("worker[%d]: expected startCount=1, got %d", i, w.startCount)
		}
	}
}

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	var order []string
	w1 := &mockWorker{name: "first", stopOrder: &order}
	w2 := &mockWorker{name: "second", stopOrder: &order}

	ws := NewWorkers(w1, w2)
	ws.Start(context.Background())
	ws.Stop()

	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("expected reverse stop order, got %v", order)
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

// mockChecker counts decay check invocations.
type mockChecker struct {
	calls atomic.Int64
}

func (m *mockChecker) CheckAndApplyDecay(context.Context) bool {
	m.calls.Add(1)
	return false
}

func TestDecayJob_StartRunsImmediateCheck(t *testing.T) {
	checker := &mockChecker{}
	job := NewDecayJob(checker, time.Hour)
	defer job.Stop()

	job.Start(context.Background())

	if got := checker.calls.Load(); got != 1 {
		t.Errorf("expected 1 immediate check, got %d", got)
	}
}

func TestDecayJob_TickerFiresChecks(t *testing.T) {
	checker := &mockChecker{}
	job := NewDecayJob(checker, 10*time.Millisecond)
	defer job.Stop()

	job.Start(context.Background())

	deadline := time.After(2 * time.Second)
	for checker.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 checks, got %d", checker.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestDecayJob_StopIsIdempotent(t *testing.T) {
	checker := &mockChecker{}
	job := NewDecayJob(checker, time.Hour)

	// Stop before Start must not panic or block.
	job.Stop()

	job.Start(context.Background())
	job.Stop()
	job.Stop()
}

func TestDecayJob_StopHaltsTicker(t *testing.T) {
	checker := &mockChecker{}
	job := NewDecayJob(checker, 10*time.Millisecond)

	job.Start(context.Background())
	job.Stop()

	settled := checker.calls.Load()
	time.Sleep(50 * time.Millisecond)

	if got := checker.calls.Load(); got != settled {
		t.Errorf("checks continued after Stop: %d -> %d", settled, got)
	}
}

func TestDecayJob_ContextCancelHaltsTicker(t *testing.T) {
	checker := &mockChecker{}
	job := NewDecayJob(checker, 10*time.Millisecond)
	defer job.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	cancel()

	time.Sleep(30 * time.Millisecond)
	settled := checker.calls.Load()
	time.Sleep(50 * time.Millisecond)

	if got := checker.calls.Load(); got != settled {
		t.Errorf("checks continued after context cancel: %d -> %d", settled, got)
	}
}

func TestDecayJob_RestartReplacesPreviousRun(t *testing.T) {
	checker := &mockChecker{}
	job := NewDecayJob(checker, time.Hour)
	defer job.Stop()

	ctx := context.Background()
	job.Start(ctx)
	job.Start(ctx)

	// Two immediate checks, one per Start; the first goroutine is gone.
	if got := checker.calls.Load(); got != 2 {
		t.Errorf("expected 2 immediate checks after restart, got %d", got)
	}
}

func TestDecayJob_ZeroIntervalDefaults(t *testing.T) {
	checker := &mockChecker{}
	job := NewDecayJob(checker, 0)
	defer job.Stop()

	// The default interval is long; only the immediate check fires.
	job.Start(context.Background())

	if got := checker.calls.Load(); got != 1 {
		t.Errorf("expected 1 immediate check, got %d", got)
	}
}

func TestDecayJob_RunsThroughAggregate(t *testing.T) {
	checker := &mockChecker{}
	ws := NewWorkers(NewDecayJob(checker, time.Hour))

	ws.Start(context.Background())
	defer ws.Stop()

	if got := checker.calls.Load(); got != 1 {
		t.Errorf("expected 1 immediate check via aggregate, got %d", got)
	}
}
