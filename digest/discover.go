package digest

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsgrab"
	"golang.org/x/sync/errgroup"
)

var _ newsgrab.Discoverer = (*Discoverer)(nil)

// Discoverer fetches a listing page, selects candidate links and enriches
// each one with article content.
type Discoverer struct {
	Fetcher      newsgrab.Fetcher
	LinkSelector newsgrab.LinkSelector
	Content      newsgrab.ContentExtractor

	// Concurrency bounds parallel article extraction. Values <= 1 extract
	// articles one at a time in discovery order.
	Concurrency int

	// Now stamps item dates. Defaults to time.Now.
	Now func() time.Time

	// Logger receives absorbed failures at warn level. Optional.
	Logger *slog.Logger
}

// Discover returns the news items for listingURL. The result is never nil.
func (d *Discoverer) Discover(ctx context.Context, listingURL string) []newsgrab.NewsItem {
	logger := loggerOrDiscard(d.Logger)

	html, err := d.Fetcher.Fetch(ctx, listingURL)
	if err != nil {
		logger.Warn("listing fetch failed", "url", listingURL, "err", err)
		return []newsgrab.NewsItem{newsgrab.SentinelItem(nowOrDefault(d.Now))}
	}

	sel, err := d.LinkSelector.SelectLinks(html)
	if err != nil {
		logger.Warn("link selection failed", "url", listingURL, "err", err)
		return []newsgrab.NewsItem{}
	}
	if sel == nil || len(sel.Links) == 0 {
		return []newsgrab.NewsItem{}
	}

	if sel.Fallback {
		logger.Debug("no link pattern matched, using anchor-text fallback", "url", listingURL, "count", len(sel.Links))
		return d.pending(sel.Links)
	}

	logger.Debug("link pattern matched", "url", listingURL, "pattern", sel.Pattern, "count", len(sel.Links))
	if d.Concurrency > 1 {
		return d.enrichConcurrent(ctx, sel.Links)
	}
	return d.enrich(ctx, sel.Links)
}

// pending builds items without visiting the articles.
func (d *Discoverer) pending(links []newsgrab.CandidateLink) []newsgrab.NewsItem {
	date := newsgrab.FormatDate(nowOrDefault(d.Now))
	items := make([]newsgrab.NewsItem, len(links))
	for i, l := range links {
		items[i] = newsgrab.NewsItem{
			Title:   l.Title,
			Link:    l.URL,
			Content: newsgrab.PendingContent,
			Date:    date,
		}
	}
	return items
}

func (d *Discoverer) enrich(ctx context.Context, links []newsgrab.CandidateLink) []newsgrab.NewsItem {
	items := make([]newsgrab.NewsItem, len(links))
	for i, l := range links {
		items[i] = d.item(ctx, l)
	}
	return items
}

// enrichConcurrent extracts articles over a bounded pool. Each worker
// writes only its own index, so order matches discovery order.
func (d *Discoverer) enrichConcurrent(ctx context.Context, links []newsgrab.CandidateLink) []newsgrab.NewsItem {
	items := make([]newsgrab.NewsItem, len(links))

	var g errgroup.Group
	g.SetLimit(d.Concurrency)
	for i, l := range links {
		g.Go(func() error {
			items[i] = d.item(ctx, l)
			return nil
		})
	}
	_ = g.Wait()

	return items
}

func (d *Discoverer) item(ctx context.Context, l newsgrab.CandidateLink) newsgrab.NewsItem {
	content := d.Content.Extract(ctx, l.URL)
	return newsgrab.NewsItem{
		Title:   l.Title,
		Link:    l.URL,
		Content: content,
		Date:    newsgrab.FormatDate(nowOrDefault(d.Now)),
	}
}
