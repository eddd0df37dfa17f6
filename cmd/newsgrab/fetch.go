package main

import (
	"fmt"

	"github.com/fwojciec/newsgrab"
	"github.com/fwojciec/newsgrab/fs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	renderer, ok := deps.Renderers[c.Format]
	if !ok {
		return newsgrab.Errorf(newsgrab.EINVALID, "unknown format %q", c.Format)
	}

	page := &newsgrab.Page{
		Title:     deps.Site.Title,
		SourceURL: deps.Site.ListingURL,
		Items:     deps.Discoverer.Discover(deps.Ctx, deps.Site.ListingURL),
	}

	if c.Output == "" {
		if err := renderer.Render(deps.Stdout, page); err != nil {
			return fmt.Errorf("render %s: %w", c.Format, err)
		}
		return nil
	}

	f, err := fs.Create(c.Output)
	if err != nil {
		return err
	}
	if err := renderer.Render(f, page); err != nil {
		_ = f.Abort()
		return fmt.Errorf("render %s: %w", c.Format, err)
	}
	if err := f.Commit(); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stderr, "Wrote %d items to %s\n", len(page.Items), c.Output)
	return nil
}
