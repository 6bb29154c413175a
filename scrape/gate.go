// Package scrape wires the validate, rate limit, fetch, and extract stages
// into the single-page scraping pipeline.
package scrape

import (
	"context"
	"time"

	"github.com/tkondo/wikitoc"
	"golang.org/x/time/rate"
)

var _ wikitoc.Gate = (*Gate)(nil)

// Gate enforces a minimum interval between outbound fetches using a token
// bucket with burst 1: the first call proceeds immediately, every later
// call waits until the interval since the previous permit has elapsed.
// Safe for concurrent use. Each Gate is an isolated piece of state; the
// process wires exactly one instance into its pipeline so all fetches
// share the budget.
type Gate struct {
	limiter *rate.Limiter
}

// NewGate creates a Gate with the given minimum interval between permits.
func NewGate(minInterval time.Duration) *Gate {
	return &Gate{
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// Wait blocks until the gate permits the next fetch. Returns an error if
// the context is canceled before the wait completes; no permit is consumed
// in that case.
func (g *Gate) Wait(ctx context.Context) error {
	return g.limiter.Wait(ctx)
}
