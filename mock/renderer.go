package mock

import (
	"io"

	"github.com/fwojciec/newsgrab"
)

var _ newsgrab.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of newsgrab.Renderer.
type Renderer struct {
	RenderFn      func(w io.Writer, page *newsgrab.Page) error
	ContentTypeFn func() string
}

func (r *Renderer) Render(w io.Writer, page *newsgrab.Page) error {
	return r.RenderFn(w, page)
}

func (r *Renderer) ContentType() string {
	return r.ContentTypeFn()
}
