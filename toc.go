package wikitoc

// TocEntry is one heading of the article body, in document order. Level is
// the source heading rank (2-6; level 1 is the page title and never appears
// in the TOC). Anchor preserves literal Unicode, matching the anchors
// Wikipedia itself renders.
type TocEntry struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
	Href   string `json:"href"`
}

// ResultError is the structured error carried by a failed ScrapeResult.
type ResultError struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

// ScrapeResult is the externally visible outcome of one pipeline run.
// Success is authoritative: TOC is only meaningful when it is true.
// TotalItems always equals len(TOC).
type ScrapeResult struct {
	Success    bool         `json:"success"`
	URL        string       `json:"url"`
	Title      string       `json:"title"`
	TOC        []TocEntry   `json:"toc"`
	TotalItems int          `json:"total_items"`
	Error      *ResultError `json:"error,omitempty"`
}

// NewSuccessResult assembles a successful result. TotalItems is derived
// from the entries so it can never drift from len(TOC).
func NewSuccessResult(url, title string, toc []TocEntry) *ScrapeResult {
	if toc == nil {
		toc = []TocEntry{}
	}
	return &ScrapeResult{
		Success:    true,
		URL:        url,
		Title:      title,
		TOC:        toc,
		TotalItems: len(toc),
	}
}

// NewRejectedResult assembles the result for a URL the policy rejected.
func NewRejectedResult(url string, v Verdict) *ScrapeResult {
	return &ScrapeResult{
		URL: url,
		TOC: []TocEntry{},
		Error: &ResultError{
			Category: v.Category,
			Message:  v.Reason,
		},
	}
}

// NewErrorResult assembles the result for a fetch or extraction failure,
// mapping the application error code to a user-visible category.
func NewErrorResult(url string, err error) *ScrapeResult {
	var category Category
	switch ErrorCode(err) {
	case ETIMEOUT:
		category = CategoryTimeout
	case EUNAVAILABLE:
		category = CategoryConnectionFailed
	case EUPSTREAM:
		category = CategoryHTTPError
	case EINVALID:
		category = CategoryExtractionFailure
	default:
		category = CategoryInternal
	}
	return &ScrapeResult{
		URL: url,
		TOC: []TocEntry{},
		Error: &ResultError{
			Category: category,
			Message:  ErrorMessage(err),
		},
	}
}

// NewInputFailureResult assembles the result for a missing or blank url
// parameter. Such requests never enter the pipeline.
func NewInputFailureResult(url, message string) *ScrapeResult {
	return &ScrapeResult{
		URL: url,
		TOC: []TocEntry{},
		Error: &ResultError{
			Category: CategoryInputFailure,
			Message:  message,
		},
	}
}
