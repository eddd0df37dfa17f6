package newsgrab

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// whitespaceRe matches what JavaScript's \s matches, which includes the
	// ideographic space and no-break space common on Japanese pages.
	whitespaceRe = regexp.MustCompile(`[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]+`)

	// blankLineRe matches a newline, optional whitespace and another newline.
	blankLineRe = regexp.MustCompile(`\n[\s\v\p{Zs}\x{FEFF}]*\n`)
)

// NormalizeContent collapses whitespace runs into single spaces, collapses
// blank-line runs into single newlines and truncates the result to
// MaxContentLength characters. The result may be empty.
func NormalizeContent(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = blankLineRe.ReplaceAllString(text, "\n")
	return Truncate(text, MaxContentLength)
}

// Truncate returns the first n characters (runes) of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// ResolveHref turns an anchor href into the URL stored on a CandidateLink.
//
// Absolute hrefs pass through unchanged, root-relative hrefs are prefixed
// with origin and scheme-relative hrefs ("//host/path") take the origin's
// scheme. Anything else is returned as-is.
func ResolveHref(origin, href string) string {
	if u, err := url.Parse(href); err == nil && u.IsAbs() {
		return href
	}
	switch {
	case strings.HasPrefix(href, "//"):
		scheme := "https"
		if u, err := url.Parse(origin); err == nil && u.Scheme != "" {
			scheme = u.Scheme
		}
		return scheme + ":" + href
	case strings.HasPrefix(href, "/"):
		return strings.TrimRight(origin, "/") + href
	default:
		return href
	}
}

// Origin returns the scheme and host of rawURL, e.g. "https://example.com".
func Origin(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", Errorf(EINVALID, "URL %q must be absolute", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}
