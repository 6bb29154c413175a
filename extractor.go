package wikitoc

// Extractor parses HTML into the page title and an ordered heading
// sequence. A document with zero qualifying headings is not an error:
// it yields an empty sequence.
type Extractor interface {
	Extract(html string) (title string, toc []TocEntry, err error)
}
