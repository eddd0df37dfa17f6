package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsgrab"
)

var _ newsgrab.LinkSelector = (*LinkSelector)(nil)

// LinkSelector finds article links on a listing page using a cascade of
// CSS selectors, with a long-anchor-text heuristic when nothing matches.
type LinkSelector struct {
	origin  string
	cascade newsgrab.Cascade
	limit   int
	minText int
}

// LinkSelectorOption configures a LinkSelector.
type LinkSelectorOption func(*LinkSelector)

// WithLinkCascade replaces the default link cascade.
func WithLinkCascade(c newsgrab.Cascade) LinkSelectorOption {
	return func(s *LinkSelector) {
		s.cascade = c
	}
}

// WithLimit sets the maximum number of links returned, clamped to
// 1..newsgrab.MaxCandidates. Defaults to newsgrab.MaxCandidates.
func WithLimit(n int) LinkSelectorOption {
	return func(s *LinkSelector) {
		s.limit = min(max(n, 1), newsgrab.MaxCandidates)
	}
}

// NewLinkSelector creates a LinkSelector that resolves root-relative hrefs
// against origin.
func NewLinkSelector(origin string, opts ...LinkSelectorOption) *LinkSelector {
	s := &LinkSelector{
		origin:  origin,
		cascade: newsgrab.DefaultLinkCascade(),
		limit:   newsgrab.MaxCandidates,
		minText: newsgrab.MinFallbackTextLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectLinks parses HTML and returns candidate links.
//
// The first cascade pattern matching at least one anchor decides the result:
// its first matches (up to the limit) are read in document order and
// anchors missing an href or visible text are skipped, so fewer than limit
// links may come back even when more anchors matched. When no pattern
// matches, every anchor in the document is scanned and the first ones with
// long enough text are returned with Fallback set.
func (s *LinkSelector) SelectLinks(html string) (*newsgrab.LinkSelection, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	if pattern, anchors, ok := firstMatch(doc, s.cascade); ok {
		anchors = anchors.Slice(0, min(anchors.Length(), s.limit))
		return &newsgrab.LinkSelection{
			Links:   s.collect(anchors),
			Pattern: pattern.Name,
		}, nil
	}

	return &newsgrab.LinkSelection{
		Links:    s.fallback(doc),
		Fallback: true,
	}, nil
}

// collect reads href and text from each anchor, skipping incomplete ones.
func (s *LinkSelector) collect(anchors *goquery.Selection) []newsgrab.CandidateLink {
	links := make([]newsgrab.CandidateLink, 0, anchors.Length())
	anchors.Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		title := strings.TrimSpace(sel.Text())
		if href == "" || title == "" {
			return
		}
		links = append(links, s.candidate(title, href))
	})
	return links
}

// fallback scans all anchors and keeps those whose text is long enough to
// plausibly be a headline.
func (s *LinkSelector) fallback(doc *goquery.Document) []newsgrab.CandidateLink {
	links := make([]newsgrab.CandidateLink, 0, s.limit)
	doc.Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(links) >= s.limit {
			return false
		}
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		title := strings.TrimSpace(sel.Text())
		if href == "" || utf8.RuneCountInString(title) <= s.minText {
			return true
		}
		links = append(links, s.candidate(title, href))
		return true
	})
	return links
}

func (s *LinkSelector) candidate(title, href string) newsgrab.CandidateLink {
	return newsgrab.CandidateLink{
		Title: title,
		Href:  href,
		URL:   newsgrab.ResolveHref(s.origin, href),
	}
}
