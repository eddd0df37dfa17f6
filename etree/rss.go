// Package etree renders news pages as RSS 2.0 feeds using beevik/etree.
package etree

import (
	"io"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/newsgrab"
)

var _ newsgrab.Renderer = (*RSSRenderer)(nil)

// RSSRenderer renders a page as an RSS 2.0 channel with one <item> per
// news item.
type RSSRenderer struct {
	// Location interprets item dates, which carry no zone. Defaults to
	// time.Local.
	Location *time.Location
}

// NewRSSRenderer returns an RSSRenderer using the local time zone.
func NewRSSRenderer() *RSSRenderer {
	return &RSSRenderer{Location: time.Local}
}

func (r *RSSRenderer) Render(w io.Writer, page *newsgrab.Page) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	channel := rss.CreateElement("channel")

	title := page.Title
	if title == "" {
		title = newsgrab.DefaultTitle
	}
	channel.CreateElement("title").SetText(title)
	channel.CreateElement("link").SetText(page.SourceURL)
	if page.Empty() {
		channel.CreateElement("description").SetText(newsgrab.NotFoundMessage)
	} else {
		channel.CreateElement("description").SetText(title)
	}

	for _, item := range page.Items {
		el := channel.CreateElement("item")
		el.CreateElement("title").SetText(item.Title)
		if item.Link != "" {
			el.CreateElement("link").SetText(item.Link)
			guid := el.CreateElement("guid")
			guid.CreateAttr("isPermaLink", "true")
			guid.SetText(item.Link)
		}
		el.CreateElement("description").SetText(item.Content)
		if pub, ok := r.pubDate(item.Date); ok {
			el.CreateElement("pubDate").SetText(pub)
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func (r *RSSRenderer) ContentType() string {
	return "application/rss+xml; charset=utf-8"
}

func (r *RSSRenderer) pubDate(date string) (string, bool) {
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(newsgrab.DateLayout, date, loc)
	if err != nil {
		return "", false
	}
	return t.Format(time.RFC1123Z), true
}
