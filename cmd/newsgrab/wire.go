package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/newsgrab"
	"github.com/fwojciec/newsgrab/cache"
	"github.com/fwojciec/newsgrab/digest"
	"github.com/fwojciec/newsgrab/etree"
	"github.com/fwojciec/newsgrab/goquery"
	"github.com/fwojciec/newsgrab/htmltomarkdown"
	nghttp "github.com/fwojciec/newsgrab/http"
	"github.com/fwojciec/newsgrab/readability"
	"github.com/fwojciec/newsgrab/redis"
	"github.com/fwojciec/newsgrab/render"
	ngslog "github.com/fwojciec/newsgrab/slog"
	"github.com/fwojciec/newsgrab/trafilatura"
	"github.com/fwojciec/newsgrab/yaml"
)

// wire builds the site and the pipeline for command.
func (m *Main) wire(ctx context.Context, cli *CLI, command string, stdout, stderr io.Writer) (*Dependencies, func(), error) {
	logger := newLogger(stderr, cli.Verbose, cli.LogFormat)

	site, err := loadSite(cli, commandURL(cli, command))
	if err != nil {
		return nil, nil, err
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Site:      site,
		Renderers: renderers(),
	}
	if command == "site" {
		return deps, func() {}, nil
	}

	var fetcher newsgrab.Fetcher = m.Fetcher
	if fetcher == nil {
		fetcher = nghttp.NewFetcher(
			nghttp.WithTimeout(cli.Timeout),
			nghttp.WithUserAgent(site.UserAgent),
		)
	}

	store, closeStore, err := newStore(ctx, cli, command, logger)
	if err != nil {
		_ = fetcher.Close()
		return nil, nil, err
	}
	cleanup := func() {
		closeStore()
		_ = fetcher.Close()
	}

	extractor, err := newTextExtractor(cli.Extractor, site)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	linkSelector, err := newLinkSelector(site)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	listingFetcher, articleFetcher := fetcher, fetcher
	if store != nil {
		listingFetcher = cache.NewFetcher(fetcher, store, site.ListingTTL, cache.WithNamespace("listing"))
		articleFetcher = cache.NewFetcher(fetcher, store, site.ArticleTTL, cache.WithNamespace("article"))
	}

	content := ngslog.NewLoggingContentExtractor(&digest.ContentExtractor{
		Fetcher:   ngslog.NewLoggingFetcher(articleFetcher, logger),
		Extractor: extractor,
		Logger:    logger,
	}, logger)

	deps.Content = content
	deps.Discoverer = ngslog.NewLoggingDiscoverer(&digest.Discoverer{
		Fetcher:      ngslog.NewLoggingFetcher(listingFetcher, logger),
		LinkSelector: linkSelector,
		Content:      content,
		Concurrency:  cli.Concurrency,
		Logger:       logger,
	}, logger)

	return deps, cleanup, nil
}

// commandURL returns the positional URL of command, if any. extract
// anchors the site on the article itself.
func commandURL(cli *CLI, command string) string {
	switch command {
	case "fetch":
		return cli.Fetch.URL
	case "serve":
		return cli.Serve.URL
	case "site":
		return cli.Site.URL
	case "extract":
		return cli.Extract.URL
	}
	return ""
}

// loadSite layers the site definition: defaults, then --config, then
// flags, then the positional URL. A positional URL replaces the listing
// URL and, unless --origin is given, the origin.
func loadSite(cli *CLI, url string) (*newsgrab.Site, error) {
	site := newsgrab.NewSite()
	if cli.Config != "" {
		s, err := yaml.LoadSite(cli.Config)
		if err != nil {
			return nil, err
		}
		site = s
	}

	if url != "" {
		origin, err := newsgrab.Origin(url)
		if err != nil {
			return nil, err
		}
		site.ListingURL = url
		site.Origin = origin
	}
	if cli.Origin != "" {
		site.Origin = cli.Origin
	}
	if cli.UserAgent != "" {
		site.UserAgent = cli.UserAgent
	}
	site.SetDefaults()

	if site.ListingURL == "" {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "listing URL required: pass a URL or set listing_url in --config")
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}

// newStore returns the page cache for command. fetch and extract only
// cache when Redis is configured; serve falls back to an in-process store.
func newStore(ctx context.Context, cli *CLI, command string, logger *slog.Logger) (newsgrab.Cache, func(), error) {
	if cli.RedisAddr != "" {
		store, err := redis.NewStore(cli.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		if err := store.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, pages will not be cached", "addr", cli.RedisAddr, "err", err)
		}
		return store, func() { _ = store.Close() }, nil
	}
	if command == "serve" {
		return cache.NewMemoryStore(), func() {}, nil
	}
	return nil, func() {}, nil
}

func newTextExtractor(name string, site *newsgrab.Site) (newsgrab.TextExtractor, error) {
	switch name {
	case "", "cascade":
		if err := goquery.ValidateCascade(site.ContentPatterns); err != nil {
			return nil, newsgrab.Errorf(newsgrab.EINVALID, "content patterns: %s", newsgrab.ErrorMessage(err))
		}
		return goquery.NewTextExtractor(goquery.WithContentCascade(site.ContentPatterns)), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	}
	return nil, newsgrab.Errorf(newsgrab.EINVALID, "unknown extractor %q", name)
}

func newLinkSelector(site *newsgrab.Site) (newsgrab.LinkSelector, error) {
	if err := goquery.ValidateCascade(site.LinkPatterns); err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "link patterns: %s", newsgrab.ErrorMessage(err))
	}
	return goquery.NewLinkSelector(site.Origin, goquery.WithLinkCascade(site.LinkPatterns)), nil
}

func renderers() map[string]newsgrab.Renderer {
	return map[string]newsgrab.Renderer{
		newsgrab.FormatText:     render.TextRenderer{},
		newsgrab.FormatJSON:     render.JSONRenderer{},
		newsgrab.FormatHTML:     render.NewHTMLRenderer(),
		newsgrab.FormatMarkdown: htmltomarkdown.NewRenderer(),
		newsgrab.FormatRSS:      etree.NewRSSRenderer(),
	}
}

// newLogger logs warnings and errors by default; verbose adds debug
// records, including one per fetch and extraction.
func newLogger(w io.Writer, verbose bool, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
