package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/jaguzmanb1/meliload/internal/httpclient"
	"github.com/jaguzmanb1/meliload/internal/metrics"
)

// httpRequester issues one batched items request per call and records the
// observed latency with the live collector.
type httpRequester struct {
	client    *http.Client
	builder   *httpclient.RequestBuilder
	collector *metrics.Collector
	warnings  *stderrWarningLogger
}

// Do sends a single GET for the given id batch. The measured window spans
// from just before the request is sent until the body has been fully read,
// so the sample covers the complete exchange. A non-2xx status is logged
// as a warning but still yields a valid sample; transport and body-read
// failures are returned and abort the run.
func (r *httpRequester) Do(ctx context.Context, ids []string) (time.Duration, error) {
	req, err := r.builder.Build(ctx, ids)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	body, readErr := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if cerr := resp.Body.Close(); readErr == nil {
		readErr = cerr
	}
	if readErr != nil {
		return 0, readErr
	}

	r.collector.RecordRequest(elapsed, resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.warnings.LogWarning(resp.StatusCode, elapsed, len(body))
	}

	return elapsed, nil
}

// stderrWarningLogger serializes warning lines emitted by concurrent
// workers.
type stderrWarningLogger struct {
	mu sync.Mutex
}

func (l *stderrWarningLogger) LogWarning(status int, elapsed time.Duration, payloadBytes int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(os.Stderr, "WARN: HTTP %d taking %.2f ms (payload %d B)\n",
		status, float64(elapsed)/float64(time.Millisecond), payloadBytes)
}
