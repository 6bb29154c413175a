package scrape

import (
	"context"
	"errors"

	"github.com/tkondo/wikitoc"
)

var _ wikitoc.Scraper = (*Pipeline)(nil)

// Pipeline runs one URL through the full sequence: validate against the
// policy, wait at the rate gate, fetch, extract, assemble. Validation runs
// first so a forbidden URL never consumes the shared rate budget or
// generates outbound traffic. No stage retries; a caller that re-invokes
// Scrape re-enters the gate, which throttles retries naturally.
type Pipeline struct {
	Policy    wikitoc.Policy
	Gate      wikitoc.Gate
	Fetcher   wikitoc.Fetcher
	Extractor wikitoc.Extractor
}

// Scrape executes the pipeline for one URL. Every outcome is a well-formed
// ScrapeResult; errors never propagate as panics or raw transport faults.
func (p *Pipeline) Scrape(ctx context.Context, url string) *wikitoc.ScrapeResult {
	if v := p.Policy.Validate(url); !v.Allowed {
		return wikitoc.NewRejectedResult(url, v)
	}

	if err := p.Gate.Wait(ctx); err != nil {
		// The caller gave up while waiting; do not fetch. A plain
		// cancellation is not a timeout and is reported as such. The
		// deadline branch also covers the gate refusing a wait that
		// cannot finish before the deadline.
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return wikitoc.NewErrorResult(url, wikitoc.Errorf(wikitoc.EINTERNAL, "request canceled while waiting for rate limit"))
		}
		return wikitoc.NewErrorResult(url, wikitoc.Errorf(wikitoc.ETIMEOUT, "caller deadline expired while waiting for rate limit"))
	}

	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return wikitoc.NewErrorResult(url, err)
	}

	title, toc, err := p.Extractor.Extract(html)
	if err != nil {
		return wikitoc.NewErrorResult(url, err)
	}

	return wikitoc.NewSuccessResult(url, title, toc)
}
