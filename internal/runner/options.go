package runner

import (
	"context"
	"time"
)

// Requester executes one batched request and returns its elapsed time.
// Implementations must be safe for concurrent use; a returned error is
// treated as a transport failure and aborts the whole run.
type Requester interface {
	Do(ctx context.Context, ids []string) (time.Duration, error)
}

// Options configure the Runner.
type Options struct {
	Concurrency int        // number of worker goroutines
	Iterations  int        // full passes over the batches per worker
	Batches     [][]string // identifier batches, issued in order within a pass
	Requester   Requester  // request executor (required)
}

func (o *Options) normalize() {
	if o.Concurrency <= 0 {
		o.Concurrency = 1
	}
	if o.Iterations <= 0 {
		o.Iterations = 1
	}
}
