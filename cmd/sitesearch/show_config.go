package main

import (
	"fmt"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/yaml"
)

// Run executes the show-config command.
func (c *ShowConfigCmd) Run(deps *Dependencies) error {
	cfg, err := loadConfig(deps, &c.BuildCmd)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	return yaml.WriteConfig(deps.Stdout, cfg)
}
