package mock

import (
	"context"

	"github.com/tkondo/wikitoc"
)

var _ wikitoc.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of wikitoc.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) *wikitoc.ScrapeResult
}

func (s *Scraper) Scrape(ctx context.Context, url string) *wikitoc.ScrapeResult {
	return s.ScrapeFn(ctx, url)
}
