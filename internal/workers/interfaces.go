// Package workers runs the client's background jobs.
//
// A Worker blocks in Run until its context is cancelled. Workers groups
// several of them so the client app can start and stop them together.
package workers

import "context"

// Worker is a background job bound to a context.
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

// Sweeper drops expired entries from an in-memory table.
type Sweeper interface {
	Sweep()
}
