package render

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/newsgrab"
)

var _ newsgrab.Renderer = (*JSONRenderer)(nil)

// JSONRenderer renders a page as an indented JSON object. Items is always
// an array, never null.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, page *newsgrab.Page) error {
	out := *page
	if out.Items == nil {
		out.Items = []newsgrab.NewsItem{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (JSONRenderer) ContentType() string {
	return "application/json; charset=utf-8"
}
