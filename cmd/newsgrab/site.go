package main

import "github.com/fwojciec/newsgrab/yaml"

// Run executes the site command.
func (c *SiteCmd) Run(deps *Dependencies) error {
	data, err := yaml.MarshalSite(deps.Site)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
