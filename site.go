package newsgrab

import (
	"net/url"
	"time"
)

// Default settings for a Site.
const (
	DefaultTitle      = "ニュース"
	DefaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	DefaultListingTTL = 5 * time.Minute
	DefaultArticleTTL = time.Hour
)

// Site describes one news source: where its listing page lives, the origin
// root-relative links resolve against and the cascades used on its markup.
type Site struct {
	Title           string        `yaml:"title"`
	ListingURL      string        `yaml:"listing_url"`
	Origin          string        `yaml:"origin"`
	UserAgent       string        `yaml:"user_agent"`
	LinkPatterns    Cascade       `yaml:"link_patterns"`
	ContentPatterns Cascade       `yaml:"content_patterns"`
	ListingTTL      time.Duration `yaml:"listing_ttl"`
	ArticleTTL      time.Duration `yaml:"article_ttl"`
}

// NewSite returns a Site with every optional field set to its default.
func NewSite() *Site {
	s := &Site{}
	s.SetDefaults()
	return s
}

// SetDefaults fills unset fields. Origin is derived from ListingURL when
// the listing URL is known.
func (s *Site) SetDefaults() {
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if s.UserAgent == "" {
		s.UserAgent = DefaultUserAgent
	}
	if len(s.LinkPatterns) == 0 {
		s.LinkPatterns = DefaultLinkCascade()
	}
	if len(s.ContentPatterns) == 0 {
		s.ContentPatterns = DefaultContentCascade()
	}
	if s.ListingTTL == 0 {
		s.ListingTTL = DefaultListingTTL
	}
	if s.ArticleTTL == 0 {
		s.ArticleTTL = DefaultArticleTTL
	}
	if s.Origin == "" && s.ListingURL != "" {
		if origin, err := Origin(s.ListingURL); err == nil {
			s.Origin = origin
		}
	}
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.Origin == "" {
		return Errorf(EINVALID, "site origin required")
	}
	u, err := url.Parse(s.Origin)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Errorf(EINVALID, "site origin %q must be an absolute URL", s.Origin)
	}
	if s.ListingURL != "" {
		if _, err := Origin(s.ListingURL); err != nil {
			return err
		}
	}
	if err := s.LinkPatterns.Validate(); err != nil {
		return Errorf(EINVALID, "link patterns: %s", ErrorMessage(err))
	}
	if err := s.ContentPatterns.Validate(); err != nil {
		return Errorf(EINVALID, "content patterns: %s", ErrorMessage(err))
	}
	if s.ListingTTL < 0 || s.ArticleTTL < 0 {
		return Errorf(EINVALID, "cache TTLs must not be negative")
	}
	return nil
}
