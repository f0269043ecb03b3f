// Package workers provides abstractions for managing and running
// background workers in the console.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers together, and a Ticker that runs a job on a fixed interval.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines and
// return. Stop must block until those goroutines have exited and must be
// safe to call on a worker that was never started.
//
// Example implementation:
//
//	type MyWorker struct{ t *Ticker }
//
//	func (w *MyWorker) Start(ctx context.Context) { w.t.Start(ctx) }
//	func (w *MyWorker) Stop()                     { w.t.Stop() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Job is the unit of work run by a [Ticker] on every tick.
type Job func(ctx context.Context)
