package render

import (
	"io"

	"github.com/fwojciec/newsgrab"
)

var _ newsgrab.Renderer = (*TextRenderer)(nil)

// TextRenderer renders items with newsgrab.FormatItems.
type TextRenderer struct{}

func (TextRenderer) Render(w io.Writer, page *newsgrab.Page) error {
	_, err := io.WriteString(w, newsgrab.FormatItems(page.Items)+"\n")
	return err
}

func (TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}
