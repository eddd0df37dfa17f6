package main

import (
	"fmt"

	nggin "github.com/fwojciec/newsgrab/gin"
	"github.com/gin-gonic/gin"
)

// Run executes the serve command. It blocks until the context is
// cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gin.SetMode(gin.ReleaseMode)
	fmt.Fprintf(deps.Stderr, "Serving %s on %s\n", deps.Site.ListingURL, c.Addr)
	srv := nggin.NewServer(deps.Site, deps.Discoverer, deps.Renderers, deps.Logger)
	return srv.ListenAndServe(deps.Ctx, c.Addr)
}
