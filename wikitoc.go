// Package wikitoc extracts a structured table of contents from a single
// Wikipedia article while enforcing the site's crawling policy: forbidden
// namespaces are rejected before any network traffic, every fetch passes
// through a process-wide rate gate, and requests carry an identifying
// User-Agent.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, scrape/).
package wikitoc

import "time"

// Compliance constants. These are deliberately constants rather than
// configuration: changing any of them changes the crawling-policy
// guarantee and must be a code change.
const (
	// UserAgent identifies every outbound request, as required by
	// wikipedia.org's robots.txt guidance for automated clients.
	UserAgent = "Educational-TOC-Scraper/1.0 (Contact: educational.purpose@example.com)"

	// MinRequestInterval is the minimum spacing between outbound fetches
	// issued by one process instance.
	MinRequestInterval = 1 * time.Second

	// FetchTimeout bounds a single outbound fetch.
	FetchTimeout = 10 * time.Second

	// RobotsCompliance is the disclosure string echoed in API responses.
	RobotsCompliance = "Respects wikipedia.org robots.txt: forbidden namespaces are rejected before any request and fetches are limited to one per second per process."
)
