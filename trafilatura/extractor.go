// Package trafilatura implements newsgrab.TextExtractor with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/newsgrab"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements newsgrab.TextExtractor at compile time.
var _ newsgrab.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article text from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor with trafilatura's fallback
// extractors enabled.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// ExtractText returns the trimmed main-content text.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", newsgrab.Errorf(newsgrab.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return "", newsgrab.Errorf(newsgrab.EINVALID, "trafilatura: %v", err)
	}
	if result == nil {
		return "", nil
	}

	return strings.TrimSpace(result.ContentText), nil
}
