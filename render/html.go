// Package render provides the built-in newsgrab.Renderer implementations
// that need nothing beyond the standard library.
package render

import (
	"html/template"
	"io"

	"github.com/fwojciec/newsgrab"
)

var _ newsgrab.Renderer = (*HTMLRenderer)(nil)

const pageTemplate = `{{define "news" -}}
<main class="news">
<h1>{{.Title}}</h1>
{{- if .Empty}}
<p class="news-empty">{{.NotFound}}</p>
{{- else}}
{{- range .Items}}
<article class="news-item">
{{- if .Link}}
<h2><a href="{{.Link}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a></h2>
{{- else}}
<h2>{{.Title}}</h2>
{{- end}}
<p class="news-content">{{.Content}}</p>
<time class="news-date">{{.Date}}</time>
</article>
{{- end}}
{{- end}}
</main>
{{end}}<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
{{template "news" .}}</body>
</html>
`

// HTMLRenderer renders a page as a standalone HTML document.
// Titles, links and content are escaped by html/template.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer returns an HTMLRenderer using the built-in template.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

type pageData struct {
	Title    string
	Items    []newsgrab.NewsItem
	Empty    bool
	NotFound string
}

func (r *HTMLRenderer) Render(w io.Writer, page *newsgrab.Page) error {
	return r.tmpl.Execute(w, newPageData(page))
}

// RenderFragment writes only the <main> element, for embedding or for
// converting to other markup.
func (r *HTMLRenderer) RenderFragment(w io.Writer, page *newsgrab.Page) error {
	return r.tmpl.ExecuteTemplate(w, "news", newPageData(page))
}

func newPageData(page *newsgrab.Page) pageData {
	title := page.Title
	if title == "" {
		title = newsgrab.DefaultTitle
	}
	return pageData{
		Title:    title,
		Items:    page.Items,
		Empty:    page.Empty(),
		NotFound: newsgrab.NotFoundMessage,
	}
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}
