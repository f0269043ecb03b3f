// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that records Start and Stop calls into a shared log.
type mockWorker struct {
	id  int
	log *[]int
}

func (m *mockWorker) Start(context.Context) {
	*m.log = append(*m.log, m.id)
}

func (m *mockWorker) Stop() {
	*m.log = append(*m.log, -m.id)
}

func TestWorkers_StartStop_Order(t *testing.T) {
	var log []int
	ws := NewWorkers(&mockWorker{id: 1, log: &log}, nil, &mockWorker{id: 2, log: &log})

	ws.Start(context.Background())
	ws.Stop()

	expected := []int{1, 2, -2, -1}
	if len(log) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, log)
	}
	for i, v := range expected {
		if log[i] != v {
			t.Errorf("expected log[%d]=%d, got %d", i, v, log[i])
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on an empty group
	ws.Start(context.Background())
	ws.Stop()
}

func TestTicker_RunsJob(t *testing.T) {
	var runs atomic.Int32
	tk := NewTicker(10*time.Millisecond, func(context.Context) { runs.Add(1) })

	tk.Start(context.Background())
	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	tk.Stop()

	if runs.Load() < 3 {
		t.Fatalf("expected at least 3 runs, got %d", runs.Load())
	}

	after := runs.Load()
	time.Sleep(40 * time.Millisecond)
	if runs.Load() != after {
		t.Errorf("job ran after Stop: %d -> %d", after, runs.Load())
	}
}

func TestTicker_StopsOnContextCancel(t *testing.T) {
	var runs atomic.Int32
	tk := NewTicker(10*time.Millisecond, func(context.Context) { runs.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	tk.Start(ctx)
	cancel()
	tk.Stop()

	after := runs.Load()
	time.Sleep(40 * time.Millisecond)
	if runs.Load() != after {
		t.Errorf("job ran after cancel: %d -> %d", after, runs.Load())
	}
}

func TestTicker_StopWithoutStart(t *testing.T) {
	tk := NewTicker(0, func(context.Context) {})

	// Should not block or panic
	tk.Stop()

	if tk.interval != DefaultTickerInterval {
		t.Errorf("expected default interval, got %v", tk.interval)
	}
}

func TestTicker_Restart(t *testing.T) {
	var runs atomic.Int32
	tk := NewTicker(10*time.Millisecond, func(context.Context) { runs.Add(1) })

	tk.Start(context.Background())
	tk.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	tk.Stop()

	if runs.Load() == 0 {
		t.Fatal("expected restarted ticker to run")
	}
}
