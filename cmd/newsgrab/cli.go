package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newsgrab"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Site       *newsgrab.Site
	Discoverer newsgrab.Discoverer
	Content    newsgrab.ContentExtractor
	Renderers  map[string]newsgrab.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string        `short:"C" env:"NEWSGRAB_CONFIG" help:"YAML site file (listing URL, origin, cascades, TTLs)"`
	Origin      string        `env:"NEWSGRAB_ORIGIN" help:"Origin root-relative links resolve against (default: listing URL origin)"`
	UserAgent   string        `env:"NEWSGRAB_USER_AGENT" help:"User-Agent sent with every request"`
	Timeout     time.Duration `short:"t" default:"10s" env:"NEWSGRAB_TIMEOUT" help:"Fetch timeout per page"`
	Extractor   string        `default:"cascade" enum:"cascade,readability,trafilatura" env:"NEWSGRAB_EXTRACTOR" help:"Article text extractor (cascade, readability, trafilatura)"`
	Concurrency int           `short:"c" default:"1" env:"NEWSGRAB_CONCURRENCY" help:"Articles extracted in parallel; values above 1 change fetch timing"`
	RedisAddr   string        `env:"NEWSGRAB_REDIS_ADDR" help:"Redis address for the shared page cache"`
	Verbose     bool          `short:"v" help:"Log debug output to stderr"`
	LogFormat   string        `default:"text" enum:"text,json" env:"NEWSGRAB_LOG_FORMAT" help:"Log format (text, json)"`

	Fetch   FetchCmd   `cmd:"" help:"Fetch a listing page and print its news items"`
	Extract ExtractCmd `cmd:"" help:"Extract the content of a single article"`
	Serve   ServeCmd   `cmd:"" help:"Serve the news page over HTTP"`
	Site    SiteCmd    `cmd:"" help:"Print the effective site configuration as YAML"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL    string `arg:"" optional:"" help:"Listing page URL (default: listing_url from --config)"`
	Format string `short:"f" default:"text" enum:"text,json,html,markdown,rss" help:"Output format (text, json, html, markdown, rss)"`
	Output string `short:"o" help:"Write to this file instead of stdout; the file is replaced atomically"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Article URL"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	URL  string `arg:"" optional:"" help:"Listing page URL (default: listing_url from --config)"`
	Addr string `short:"a" default:":8080" env:"NEWSGRAB_ADDR" help:"Listen address"`
}

// SiteCmd is the "site" subcommand.
type SiteCmd struct {
	URL string `arg:"" optional:"" help:"Listing page URL (default: listing_url from --config)"`
}
