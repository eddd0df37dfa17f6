// Package gin serves rendered news pages over HTTP using gin-gonic/gin.
// Every request runs the pipeline once; nothing is shared between requests
// except what the injected fetchers cache.
package gin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsgrab"
	ngslog "github.com/fwojciec/newsgrab/slog"
	"github.com/gin-gonic/gin"
)

// Default server timeouts. WriteTimeout covers a full pipeline run of up
// to MaxCandidates+1 sequential fetches.
const (
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 90 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Route paths and the format each one renders.
var routes = []struct {
	path   string
	format string
}{
	{"/", newsgrab.FormatHTML},
	{"/api/news", newsgrab.FormatJSON},
	{"/feed.xml", newsgrab.FormatRSS},
	{"/news.md", newsgrab.FormatMarkdown},
	{"/news.txt", newsgrab.FormatText},
}

// Server renders the configured site's listing on every request.
type Server struct {
	site       *newsgrab.Site
	discoverer newsgrab.Discoverer
	renderers  map[string]newsgrab.Renderer
	logger     *slog.Logger
	engine     *gin.Engine
}

// NewServer creates a Server. Routes are registered only for formats
// present in renderers. Callers choose the gin mode with gin.SetMode.
func NewServer(site *newsgrab.Site, discoverer newsgrab.Discoverer, renderers map[string]newsgrab.Renderer, logger *slog.Logger) *Server {
	s := &Server{
		site:       site,
		discoverer: discoverer,
		renderers:  renderers,
		logger:     logger,
		engine:     gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.requestLogger())

	s.engine.GET("/healthz", s.health)
	for _, r := range routes {
		if renderer, ok := renderers[r.format]; ok {
			s.engine.GET(r.path, s.page(renderer))
		}
	}
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "listing_url", s.site.ListingURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) page(renderer newsgrab.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page := &newsgrab.Page{
			Title:     s.site.Title,
			SourceURL: s.site.ListingURL,
			Items:     s.discoverer.Discover(ctx, s.site.ListingURL),
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, page); err != nil {
			s.logger.Error("render failed", "path", c.FullPath(), "err", err)
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}

		etag := ETag(buf.Bytes())
		c.Header("ETag", etag)
		c.Header("Cache-Control", "no-cache")
		if c.GetHeader("If-None-Match") == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Data(http.StatusOK, renderer.ContentType(), buf.Bytes())
	}
}

// requestLogger tags the request context with a run id taken from
// X-Request-ID or freshly generated, then logs the request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = ngslog.NewRunID()
		}
		c.Header("X-Request-ID", id)
		c.Request = c.Request.WithContext(ngslog.WithRunID(c.Request.Context(), id))

		begin := time.Now()
		c.Next()
		s.logger.Info("request",
			"run_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
		)
	}
}

// ETag returns a strong entity tag for body.
func ETag(body []byte) string {
	return `"` + strconv.FormatUint(xxhash.Sum64(body), 16) + `"`
}
