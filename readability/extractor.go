// Package readability implements newsgrab.TextExtractor with go-readability,
// scoring the page instead of walking a selector cascade.
package readability

import (
	"strings"

	"github.com/fwojciec/newsgrab"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements newsgrab.TextExtractor at compile time.
var _ newsgrab.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the trimmed text of the readable article body.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", newsgrab.Errorf(newsgrab.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", newsgrab.Errorf(newsgrab.EINVALID, "readability: %v", err)
	}

	return strings.TrimSpace(article.TextContent), nil
}
