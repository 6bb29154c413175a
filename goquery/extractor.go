// Package goquery provides a goquery-based implementation of
// wikitoc.Extractor that walks a Wikipedia article's heading elements in
// document order.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tkondo/wikitoc"
)

// Ensure Extractor implements wikitoc.Extractor at compile time.
var _ wikitoc.Extractor = (*Extractor)(nil)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Labels of the TOC box itself, which is not an article section.
var tocLabels = map[string]bool{
	"contents":          true,
	"table of contents": true,
	"目次":                true,
}

// Extractor parses article HTML into a title and an ordered TOC sequence.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title (first H1, Wikipedia's #firstHeading
// preferred) and one TocEntry per H2-H6 heading in document order. H1 is
// the title and never appears in the sequence. Zero headings is a valid
// outcome, not an error.
func (e *Extractor) Extract(html string) (string, []wikitoc.TocEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", nil, wikitoc.Errorf(wikitoc.EINVALID, "failed to parse HTML: %v", err)
	}

	title := headingText(doc.Find("h1#firstHeading").First())
	if title == "" {
		title = headingText(doc.Find("h1").First())
	}

	toc := []wikitoc.TocEntry{}
	doc.Find("h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		// The classic TOC box contains its own "Contents" heading.
		if sel.Closest("#toc").Length() > 0 {
			return
		}

		text := headingText(sel)
		if text == "" || tocLabels[strings.ToLower(text)] {
			return
		}

		anchor := headingAnchor(sel, text)
		toc = append(toc, wikitoc.TocEntry{
			Level:  headingLevel(goquery.NodeName(sel)),
			Title:  text,
			Anchor: anchor,
			Href:   "#" + anchor,
		})
	})

	return title, toc, nil
}

// headingText returns a heading's rendered text with edit links and
// reference markers dropped and whitespace runs collapsed. The markup is
// removed from a clone, so the parsed tree is never mutated.
func headingText(sel *goquery.Selection) string {
	clean := sel.Clone()
	clean.Find("span.mw-editsection, sup.reference").Remove()
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(clean.Text(), " "))
}

// headingAnchor resolves the anchor for a heading: the element's own id,
// else the id of its mw-headline span (where MediaWiki places it), else a
// slug derived from the title with whitespace runs replaced by
// underscores. Non-ASCII characters stay literal, matching the anchors
// Wikipedia renders.
func headingAnchor(sel *goquery.Selection, title string) string {
	if id, ok := sel.Attr("id"); ok && id != "" {
		return id
	}
	if id, ok := sel.Find("span.mw-headline").Attr("id"); ok && id != "" {
		return id
	}
	return whitespaceRE.ReplaceAllString(title, "_")
}

// headingLevel maps a tag name (h2..h6) to its numeric rank.
func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 1
}
