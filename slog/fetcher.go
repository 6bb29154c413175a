// Package slog provides logging decorators for wikitoc interfaces.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/tkondo/wikitoc"
)

// Ensure Fetcher implements wikitoc.Fetcher.
var _ wikitoc.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a wikitoc.Fetcher with structured logging of every outbound
// fetch: URL, duration, payload size, and a content digest for spotting
// changed pages across runs.
type Fetcher struct {
	next   wikitoc.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next wikitoc.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"code", wikitoc.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return "", err
	}

	f.logger.Info("fetch",
		"url", url,
		"bytes", len(html),
		"digest", fmt.Sprintf("%016x", xxhash.Sum64String(html)),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
