package mock

import "github.com/tkondo/wikitoc"

var _ wikitoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikitoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, []wikitoc.TocEntry, error)
}

func (e *Extractor) Extract(html string) (string, []wikitoc.TocEntry, error) {
	return e.ExtractFn(html)
}
