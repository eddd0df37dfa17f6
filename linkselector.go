package newsgrab

// Pattern is one structural hypothesis about a site's markup, expressed as
// a CSS selector.
type Pattern struct {
	Name     string `yaml:"name" json:"name"`
	Selector string `yaml:"selector" json:"selector"`
}

// Cascade is an ordered list of patterns. Patterns are tried in order and
// the first one matching at least one node wins; later patterns are not
// consulted and results are never merged across patterns.
type Cascade []Pattern

// Validate returns an error if the cascade is empty or has blank selectors.
// Selector syntax is checked by goquery.ValidateCascade.
func (c Cascade) Validate() error {
	if len(c) == 0 {
		return Errorf(EINVALID, "cascade must contain at least one pattern")
	}
	for i, p := range c {
		if p.Selector == "" {
			return Errorf(EINVALID, "pattern %d (%s) has an empty selector", i, p.Name)
		}
	}
	return nil
}

// DefaultLinkCascade returns the link-selection patterns for news-listing
// pages, most specific first.
func DefaultLinkCascade() Cascade {
	return Cascade{
		{Name: "news-path", Selector: `a[href*="/news/"]`},
		{Name: "news-item", Selector: ".news-item a"},
		{Name: "article-title", Selector: ".article-title a"},
		{Name: "post-title", Selector: ".post-title a"},
		{Name: "h2", Selector: "h2 a"},
		{Name: "h3", Selector: "h3 a"},
	}
}

// DefaultContentCascade returns the content-region patterns for article
// pages, in decreasing specificity.
func DefaultContentCascade() Cascade {
	return Cascade{
		{Name: "article", Selector: "article"},
		{Name: "article-content", Selector: ".article-content"},
		{Name: "post-content", Selector: ".post-content"},
		{Name: "entry-content", Selector: ".entry-content"},
		{Name: "main", Selector: "main"},
		{Name: "content", Selector: ".content"},
		{Name: "content-id", Selector: "#content"},
	}
}

// LinkSelection is the outcome of running a link cascade over a listing page.
type LinkSelection struct {
	// Links holds at most MaxCandidates links in document order.
	Links []CandidateLink

	// Pattern names the cascade entry that matched. Empty on fallback.
	Pattern string

	// Fallback is true when no pattern matched and Links came from the
	// long-anchor-text heuristic. Fallback links are not enriched.
	Fallback bool
}

// LinkSelector finds candidate article links on a listing page.
type LinkSelector interface {
	// SelectLinks parses HTML and returns the selected candidates.
	SelectLinks(html string) (*LinkSelection, error)
}
