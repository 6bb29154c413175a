package wikitoc

import "context"

// Scraper runs the full pipeline for one URL: validate, rate limit, fetch,
// extract, assemble. It never panics or aborts; every outcome, including
// rejection and failure, is a well-formed ScrapeResult.
type Scraper interface {
	Scrape(ctx context.Context, url string) *ScrapeResult
}
