package goquery

import "github.com/fwojciec/newsgrab"

var _ newsgrab.TextExtractor = (*TextExtractor)(nil)

// TextExtractor extracts article text from the first content region matched
// by a cascade of CSS selectors, falling back to the whole body.
type TextExtractor struct {
	cascade newsgrab.Cascade
}

// TextExtractorOption configures a TextExtractor.
type TextExtractorOption func(*TextExtractor)

// WithContentCascade replaces the default content cascade.
func WithContentCascade(c newsgrab.Cascade) TextExtractorOption {
	return func(e *TextExtractor) {
		e.cascade = c
	}
}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor(opts ...TextExtractorOption) *TextExtractor {
	e := &TextExtractor{
		cascade: newsgrab.DefaultContentCascade(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText returns the visible text of the first element matched by the
// first matching pattern. When no pattern matches, the visible text of the
// document body is returned instead.
func (e *TextExtractor) ExtractText(html string) (string, error) {
	doc, err := parse(html)
	if err != nil {
		return "", err
	}

	region := doc.Find("body")
	if _, sel, ok := firstMatch(doc, e.cascade); ok {
		region = sel.First()
	}

	return visibleText(region), nil
}
