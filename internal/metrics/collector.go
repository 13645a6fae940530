// Package metrics aggregates request latencies. The Collector gives a live,
// approximate view of a run in flight; Summarize computes the exact final
// statistics from the raw samples once every worker has finished.
package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Collector records per-request outcomes in a thread-safe manner. It backs
// the progress line and the warning breakdown; it never feeds the final
// latency summary.
type Collector struct {
	mu               sync.Mutex
	hist             *hdrhistogram.Histogram
	requests         int64
	warnings         int64
	warningsByStatus map[int]int64
	start            time.Time
}

// Progress is a point-in-time view of a run in flight. Percentiles come from
// a histogram and are approximate.
type Progress struct {
	Requests       int64
	Warnings       int64
	Elapsed        time.Duration
	RequestsPerSec float64
	P50Latency     time.Duration
	P99Latency     time.Duration
}

// StatusBucket is the aggregated warning count for one HTTP status code.
type StatusBucket struct {
	Status int   `json:"status"`
	Count  int64 `json:"count"`
}

func NewCollector() *Collector {
	// Track latencies from 1µs up to 60s with 3 significant figures.
	h := hdrhistogram.New(1, 60_000_000, 3)
	return &Collector{
		hist:             h,
		warningsByStatus: make(map[int]int64),
		start:            time.Now(),
	}
}

// Start marks the actual beginning of the run for rate calculations. Call it
// immediately before the workers launch.
func (c *Collector) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = time.Now()
}

// RecordRequest records one completed request. Statuses outside 200-299
// count as warnings.
func (c *Collector) RecordRequest(latency time.Duration, status int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if latency > 0 {
		us := latency.Microseconds()
		if us < c.hist.LowestTrackableValue() {
			us = c.hist.LowestTrackableValue()
		}
		if us > c.hist.HighestTrackableValue() {
			us = c.hist.HighestTrackableValue()
		}
		_ = c.hist.RecordValue(us)
	}

	c.requests++
	if status < 200 || status > 299 {
		c.warnings++
		c.warningsByStatus[status]++
	}
}

// Snapshot returns the live view of the run so far.
func (c *Collector) Snapshot() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := Progress{
		Requests: c.requests,
		Warnings: c.warnings,
		Elapsed:  time.Since(c.start),
	}
	if p.Elapsed > 0 && c.requests > 0 {
		p.RequestsPerSec = float64(c.requests) / p.Elapsed.Seconds()
	}
	if c.hist.TotalCount() > 0 {
		p.P50Latency = time.Duration(c.hist.ValueAtQuantile(50)) * time.Microsecond
		p.P99Latency = time.Duration(c.hist.ValueAtQuantile(99)) * time.Microsecond
	}
	return p
}

// WarningBuckets returns the per-status warning counts sorted by status code.
func (c *Collector) WarningBuckets() []StatusBucket {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.warningsByStatus) == 0 {
		return nil
	}
	rows := make([]StatusBucket, 0, len(c.warningsByStatus))
	for status, count := range c.warningsByStatus {
		rows = append(rows, StatusBucket{Status: status, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Status < rows[j].Status })
	return rows
}
