package main

import "fmt"

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Content.Extract(deps.Ctx, c.URL))
	return nil
}
