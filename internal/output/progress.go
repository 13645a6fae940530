package output

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/jaguzmanb1/meliload/internal/metrics"
)

// ProgressReporter rewrites a single status line while a run is in flight.
type ProgressReporter struct {
	collector *metrics.Collector
	ticker    *time.Ticker
	done      chan struct{}
	finished  chan struct{}
	writer    io.Writer
	active    int32
}

// NewProgressReporter creates a progress reporter that updates at the given interval.
func NewProgressReporter(collector *metrics.Collector, interval time.Duration, writer io.Writer) *ProgressReporter {
	if writer == nil {
		writer = io.Discard
	}
	return &ProgressReporter{
		collector: collector,
		ticker:    time.NewTicker(interval),
		done:      make(chan struct{}),
		finished:  make(chan struct{}),
		writer:    writer,
	}
}

// Start begins displaying progress updates in a background goroutine.
func (p *ProgressReporter) Start() {
	if !atomic.CompareAndSwapInt32(&p.active, 0, 1) {
		return // already running
	}
	go p.run()
}

// Stop halts progress updates and waits for the background goroutine to exit.
func (p *ProgressReporter) Stop() {
	if atomic.CompareAndSwapInt32(&p.active, 1, 0) {
		close(p.done)
		p.ticker.Stop()
		<-p.finished
	}
}

func (p *ProgressReporter) run() {
	defer close(p.finished)
	for {
		select {
		case <-p.ticker.C:
			snap := p.collector.Snapshot()
			line := fmt.Sprintf("\rRequests: %d | Warnings: %d | RPS: %.1f",
				snap.Requests, snap.Warnings, snap.RequestsPerSec)
			if snap.Requests > 0 {
				line += fmt.Sprintf(" | p50: %.1fms | p99: %.1fms",
					float64(snap.P50Latency)/float64(time.Millisecond),
					float64(snap.P99Latency)/float64(time.Millisecond))
			}
			fmt.Fprint(p.writer, line)
		case <-p.done:
			return
		}
	}
}
