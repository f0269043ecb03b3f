package workers

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Workers starts and stops a fixed list of workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	group := &Workers{}
	for _, w := range ws {
		if w != nil {
			group.workers = append(group.workers, w)
		}
	}
	return group
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for _, worker := range slices.Backward(w.workers) {
		worker.Stop()
	}
}

// DefaultTickerInterval is used when a [Ticker] is built with a non-positive
// interval.
const DefaultTickerInterval = 5 * time.Second

// Ticker runs a [Job] every interval on a background goroutine. The first
// run happens one interval after Start. A Ticker may be started again after
// Stop.
type Ticker struct {
	interval time.Duration
	job      Job

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ Worker = (*Ticker)(nil)

// NewTicker creates an idle Ticker.
func NewTicker(interval time.Duration, job Job) *Ticker {
	if interval <= 0 {
		interval = DefaultTickerInterval
	}
	return &Ticker{interval: interval, job: job}
}

// Start launches the ticking goroutine. A running ticker is stopped first.
// The goroutine exits when ctx is cancelled or Stop is called.
func (t *Ticker) Start(ctx context.Context) {
	t.Stop()

	t.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		tick := time.NewTicker(t.interval)
		defer tick.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-tick.C:
				t.job(jobCtx)
			}
		}
	}()
}

// Stop cancels the goroutine's context and blocks until it has exited.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	t.wg.Wait()
}
