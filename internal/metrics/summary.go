package metrics

import (
	"errors"
	"math"
	"sort"
	"time"
)

// ErrNoSamples is returned when a summary is requested over zero samples.
// Statistics over an empty collection are undefined and must never default
// to zero.
var ErrNoSamples = errors.New("no latency samples collected")

// Summary holds the aggregate statistics of a completed run.
type Summary struct {
	Count  int           `json:"requests"`
	Mean   time.Duration `json:"-"`
	Median time.Duration `json:"-"`
	P95    time.Duration `json:"-"`
	Min    time.Duration `json:"-"`
	Max    time.Duration `json:"-"`

	// JSON-friendly millisecond fields.
	MeanMs   float64 `json:"mean_ms"`
	MedianMs float64 `json:"median_ms"`
	P95Ms    float64 `json:"p95_ms"`
	MinMs    float64 `json:"min_ms"`
	MaxMs    float64 `json:"max_ms"`
}

// Summarize computes the aggregate statistics over the raw samples of a run.
// The input slice is left untouched; export order stays collection order.
func Summarize(samples []time.Duration) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrNoSamples
	}

	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, s := range samples {
		sum += s
	}

	s := Summary{
		Count:  len(samples),
		Mean:   time.Duration(int64(sum) / int64(len(samples))),
		Median: quantile(sorted, 0.5),
		P95:    quantile(sorted, 0.95),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	s.MeanMs = float64(s.Mean) / float64(time.Millisecond)
	s.MedianMs = float64(s.Median) / float64(time.Millisecond)
	s.P95Ms = float64(s.P95) / float64(time.Millisecond)
	s.MinMs = float64(s.Min) / float64(time.Millisecond)
	s.MaxMs = float64(s.Max) / float64(time.Millisecond)
	return s, nil
}

// quantile returns the p-quantile of ascending-sorted samples using linear
// interpolation between closest ranks: position h = (n-1)p, interpolated
// between the samples at floor(h) and floor(h)+1 (the inclusive method).
func quantile(sorted []time.Duration, p float64) time.Duration {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + time.Duration(frac*float64(sorted[lo+1]-sorted[lo]))
}
