package plex

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultMaxRetries  = 3
	DefaultBaseBackoff = 500 * time.Millisecond
	maxBackoff         = 30 * time.Second
)

// HTTPDoer is the subset of *http.Client the client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RetryingDoer retries requests the server throttled with 429, honoring
// Retry-After. Other failures are returned as-is.
type RetryingDoer struct {
	client *retryablehttp.Client
}

// NewRetryingDoer wraps client with the default retry policy.
func NewRetryingDoer(client *http.Client) *RetryingDoer {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = client
	rc.Logger = nil
	rc.RetryMax = DefaultMaxRetries
	rc.RetryWaitMin = DefaultBaseBackoff
	rc.RetryWaitMax = maxBackoff
	rc.CheckRetry = retryThrottled
	rc.Backoff = retryablehttp.DefaultBackoff
	// Hand back the last response so callers see the real status.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return &RetryingDoer{client: rc}
}

// withLogger routes retry diagnostics to log.
func (d *RetryingDoer) withLogger(log *slog.Logger) *RetryingDoer {
	if log != nil {
		d.client.Logger = log
	}
	return d
}

// Do executes req, waiting out 429 responses up to DefaultMaxRetries times.
func (d *RetryingDoer) Do(req *http.Request) (*http.Response, error) {
	rreq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, fmt.Errorf("wrap request: %w", err)
	}
	return d.client.Do(rreq)
}

// retryThrottled retries only 429. Transport errors and other statuses
// are the caller's to handle.
func retryThrottled(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusTooManyRequests, nil
}
