// Package goquery implements the link and content cascades on top of
// goquery's CSS selector engine.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/newsgrab"
)

// invisibleSelectors lists elements whose text is never shown to a reader.
const invisibleSelectors = "script, style, noscript, template"

// parse builds a queryable document from raw HTML.
func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// firstMatch evaluates cascade against doc in order and returns the first
// pattern matching at least one node, together with all of its matches.
func firstMatch(doc *goquery.Document, cascade newsgrab.Cascade) (newsgrab.Pattern, *goquery.Selection, bool) {
	for _, p := range cascade {
		sel := doc.Find(p.Selector)
		if sel.Length() > 0 {
			return p, sel, true
		}
	}
	return newsgrab.Pattern{}, nil, false
}

// visibleText returns the trimmed text of sel without script-like content.
// The selection is modified in place, so callers pass nodes from a document
// they own.
func visibleText(sel *goquery.Selection) string {
	sel.Find(invisibleSelectors).Remove()
	return strings.TrimSpace(sel.Text())
}

// ValidateCascade checks that every selector in cascade is valid CSS.
func ValidateCascade(cascade newsgrab.Cascade) error {
	if err := cascade.Validate(); err != nil {
		return err
	}
	for _, p := range cascade {
		if _, err := cascadia.ParseGroup(p.Selector); err != nil {
			return newsgrab.Errorf(newsgrab.EINVALID, "pattern %s: invalid selector %q: %v", p.Name, p.Selector, err)
		}
	}
	return nil
}
