package htmltomarkdown

import (
	"bytes"
	"io"

	"github.com/fwojciec/newsgrab"
	"github.com/fwojciec/newsgrab/render"
)

var _ newsgrab.Renderer = (*Renderer)(nil)

// Renderer renders a page as Markdown.
type Renderer struct {
	html *render.HTMLRenderer
	conv *Converter
}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		html: render.NewHTMLRenderer(),
		conv: NewConverter(),
	}
}

func (r *Renderer) Render(w io.Writer, page *newsgrab.Page) error {
	var buf bytes.Buffer
	if err := r.html.RenderFragment(&buf, page); err != nil {
		return err
	}
	md, err := r.conv.Convert(buf.String())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, md+"\n")
	return err
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}
