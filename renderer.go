package newsgrab

import "io"

// Renderer writes a page of news items in one output format.
type Renderer interface {
	// Render writes page to w. An empty page must render the
	// NotFoundMessage state rather than nothing.
	Render(w io.Writer, page *Page) error

	// ContentType returns the MIME type of the rendered output.
	ContentType() string
}

// Output formats understood by the CLI and the HTTP server.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatRSS      = "rss"
)
