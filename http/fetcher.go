// Package http provides the HTTP-facing implementations: the compliant
// wikitoc.Fetcher that issues identified, rate-limit-friendly requests,
// and the JSON API server that exposes the pipeline.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/tkondo/wikitoc"
)

// Request headers sent with every fetch, mirroring a polite browser-like
// client that prefers Japanese content.
const (
	acceptHeader         = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptLanguageHeader = "ja,en-US,en;q=0.9"
)

// Ensure Fetcher implements wikitoc.Fetcher at compile time.
var _ wikitoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML over HTTP with the identifying User-Agent, a fixed
// timeout, and no retries. The no-retry policy is deliberate: it avoids
// amplifying load on the target site.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides the fetch timeout. Intended for tests; production
// callers use the wikitoc.FetchTimeout default.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: wikitoc.FetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	// The client timeout holds independently of any caller deadline; a
	// shorter caller deadline cancels the request early via the context.
	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch issues exactly one GET and returns the response body. Timeouts,
// connection failures, and error statuses map to distinct error codes so
// the result assembler can report them as separate categories.
func (f *Fetcher) Fetch(ctx context.Context, fetchURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return "", wikitoc.Errorf(wikitoc.EINVALID, "invalid request URL %q: %v", fetchURL, err)
	}
	req.Header.Set("User-Agent", wikitoc.UserAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguageHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", wikitoc.Errorf(wikitoc.ETIMEOUT, "fetch of %s timed out after %s", fetchURL, f.timeout)
		}
		return "", wikitoc.Errorf(wikitoc.EUNAVAILABLE, "connection failed for %s: %v", fetchURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", wikitoc.Errorf(wikitoc.EUPSTREAM, "HTTP %d for %s", resp.StatusCode, fetchURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return "", wikitoc.Errorf(wikitoc.ETIMEOUT, "fetch of %s timed out after %s", fetchURL, f.timeout)
		}
		return "", wikitoc.Errorf(wikitoc.EUNAVAILABLE, "reading response from %s failed: %v", fetchURL, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
