package wikitoc

import "context"

// Fetcher retrieves HTML from URLs. Implementations issue exactly one GET
// per call with the identifying UserAgent header and no retries; a caller
// that wants resilience re-invokes the whole pipeline, which re-enters the
// rate gate.
type Fetcher interface {
	// Fetch performs a single GET and returns the response body.
	// The context controls cancellation; implementations additionally
	// enforce FetchTimeout on their own.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}
