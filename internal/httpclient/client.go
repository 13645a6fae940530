package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RequestBuilder builds the batched lookup requests issued during a run.
type RequestBuilder struct {
	base *url.URL
}

// NewRequestBuilder parses and validates the target URL.
func NewRequestBuilder(target string) (*RequestBuilder, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, errors.New("target URL is required")
	}

	base, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parse target URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("target URL %q must use http or https", target)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("target URL %q has no host", target)
	}

	return &RequestBuilder{base: base}, nil
}

// Build returns a GET request for one batch. Identifiers are percent-encoded
// individually and joined with literal commas into the item_ids parameter;
// any query already present on the target is replaced.
func (b *RequestBuilder) Build(ctx context.Context, ids []string) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(ids) == 0 {
		return nil, errors.New("batch must contain at least one identifier")
	}

	u := *b.base
	u.RawQuery = "item_ids=" + joinEncoded(ids)

	return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
}

func joinEncoded(ids []string) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(url.QueryEscape(id))
	}
	return sb.String()
}

// NewClient returns an HTTP client tuned for load generation. Every worker
// shares the same client and thus the same connection pool.
func NewClient(timeout time.Duration) *http.Client {
	if timeout < 0 {
		timeout = 0
	}

	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          256,
		MaxIdleConnsPerHost:   32,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
