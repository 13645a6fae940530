// Package runner drives the fixed fan-out of a load-generation run: a pool
// of workers that each sweep every batch for a configured number of
// iterations. Total requests issued = concurrency × iterations × batches.
package runner

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Result captures a completed run.
type Result struct {
	// Samples holds one elapsed-time measurement per completed request,
	// merged across workers after the join. No ordering guarantee.
	Samples  []time.Duration
	Duration time.Duration
}

// Runner coordinates the worker pool.
type Runner struct {
	opt Options
}

func New(opt Options) *Runner {
	opt.normalize()
	return &Runner{opt: opt}
}

// Run blocks until every worker has finished every iteration. The first
// requester error cancels every worker and is returned with no samples:
// an aborted run produces no partial results. External cancellation (e.g.
// an interrupt signal) aborts the same way.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	if r.opt.Requester == nil {
		return Result{}, errors.New("requester is required")
	}
	if len(r.opt.Batches) == 0 {
		return Result{}, errors.New("at least one batch is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		abortOnce sync.Once
		abortErr  error
	)
	abort := func(err error) {
		abortOnce.Do(func() {
			abortErr = err
			cancel()
		})
	}

	// Workers accumulate locally and publish their slice only once they
	// finish cleanly; merging happens after the join.
	perWorker := make([][]time.Duration, r.opt.Concurrency)

	var wg sync.WaitGroup
	wg.Add(r.opt.Concurrency)
	for w := 0; w < r.opt.Concurrency; w++ {
		go func(w int) {
			defer wg.Done()
			samples := make([]time.Duration, 0, r.opt.Iterations*len(r.opt.Batches))
			for i := 0; i < r.opt.Iterations; i++ {
				for _, ids := range r.opt.Batches {
					if ctx.Err() != nil {
						return
					}
					elapsed, err := r.opt.Requester.Do(ctx, ids)
					if err != nil {
						abort(err)
						return
					}
					samples = append(samples, elapsed)
				}
			}
			perWorker[w] = samples
		}(w)
	}
	wg.Wait()

	if abortErr != nil {
		return Result{Duration: time.Since(start)}, abortErr
	}
	if err := ctx.Err(); err != nil {
		return Result{Duration: time.Since(start)}, err
	}

	merged := make([]time.Duration, 0, r.opt.Concurrency*r.opt.Iterations*len(r.opt.Batches))
	for _, s := range perWorker {
		merged = append(merged, s...)
	}
	return Result{Samples: merged, Duration: time.Since(start)}, nil
}
