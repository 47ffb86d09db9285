// Package workers provides abstractions for managing and running
// background workers in the client application.
// It defines the Worker interface, a Workers aggregate that runs
// several workers under one context, and the Dispatcher that serializes
// state mutations onto a single goroutine.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled or the worker has nothing left to do.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
