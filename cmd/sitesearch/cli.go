package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// ConfigPath is the YAML file layered between defaults and flags.
	ConfigPath string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" env:"SITESEARCH_CONFIG" help:"YAML configuration file"`
	Verbose bool   `short:"v" help:"Log every page as it is processed"`

	Build      BuildCmd      `cmd:"" default:"withargs" help:"Build the search index (default command)"`
	Query      QueryCmd      `cmd:"" help:"Search a built index"`
	ShowConfig ShowConfigCmd `cmd:"" name:"show-config" help:"Print the effective configuration as YAML"`
}

// BuildCmd is the "build" subcommand. Flags left at their zero value do
// not override the configuration file or the built-in defaults.
type BuildCmd struct {
	Prefix string `arg:"" optional:"" help:"Public path prefix the site is served under"`

	Root        string   `help:"Directory holding the generated site (default: __site)"`
	Output      string   `short:"o" help:"Path of the index script to write (default: __site/libs/lunr/lunr_index.js)"`
	BuildRoot   string   `name:"build-root" help:"Leading source path replaced by the prefix in URLs (default: the site root)"`
	ExcludeDir  []string `name:"exclude-dir" help:"Directory name to skip at any depth (repeatable)"`
	SkipTag     []string `name:"skip-tag" help:"HTML tag whose content is not indexed (repeatable)"`
	Remove      []string `sep:"none" help:"CSS selector of elements removed before indexing (repeatable)"`
	Analyzer    string   `short:"a" help:"Text analyzer: en, standard or simple (default: en)"`
	TitleBoost  float64  `name:"title-boost" help:"Relevance multiplier of page titles (default: 100)"`
	Concurrency int      `short:"c" help:"Pages extracted in parallel (default: 8)"`
	IndexName   string   `name:"index-name" help:"JavaScript binding of the index (default: SEARCH_INDEX)"`
	PreviewName string   `name:"preview-name" help:"JavaScript binding of the preview table (default: PREVIEW_LOOKUP)"`
	Sitemap     string   `help:"Also write a sitemap to this path"`
	BaseURL     string   `name:"base-url" help:"Absolute site URL used in the sitemap"`
	Strict      bool     `help:"Fail when any page cannot be indexed"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Artifact    string   `arg:"" help:"Path of a built index script"`
	Terms       []string `arg:"" help:"Search terms"`
	Limit       int      `short:"n" default:"10" help:"Maximum number of results"`
	IndexName   string   `name:"index-name" default:"SEARCH_INDEX" help:"JavaScript binding of the index"`
	PreviewName string   `name:"preview-name" default:"PREVIEW_LOOKUP" help:"JavaScript binding of the preview table"`
}

// ShowConfigCmd is the "show-config" subcommand.
type ShowConfigCmd struct {
	BuildCmd
}

// loadConfig layers the configuration file and the explicitly set flags
// over the defaults.
func loadConfig(deps *Dependencies, flags *BuildCmd) (*sitesearch.Config, error) {
	cfg := sitesearch.DefaultConfig()
	if deps.ConfigPath != "" {
		if err := yaml.LoadConfig(deps.ConfigPath, cfg); err != nil {
			return nil, err
		}
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *BuildCmd) apply(cfg *sitesearch.Config) {
	setString(&cfg.Prefix, c.Prefix)
	setString(&cfg.Root, c.Root)
	setString(&cfg.Output, c.Output)
	setString(&cfg.BuildRoot, c.BuildRoot)
	setString(&cfg.Analyzer, c.Analyzer)
	setString(&cfg.IndexName, c.IndexName)
	setString(&cfg.PreviewName, c.PreviewName)
	setString(&cfg.Sitemap.Path, c.Sitemap)
	setString(&cfg.Sitemap.BaseURL, c.BaseURL)
	if len(c.ExcludeDir) > 0 {
		cfg.ExcludeDirs = c.ExcludeDir
	}
	if len(c.SkipTag) > 0 {
		cfg.SkipTags = c.SkipTag
	}
	if len(c.Remove) > 0 {
		cfg.RemoveSelectors = c.Remove
	}
	if c.TitleBoost != 0 {
		cfg.TitleBoost = c.TitleBoost
	}
	if c.Concurrency != 0 {
		cfg.Concurrency = c.Concurrency
	}
	if c.Strict {
		cfg.Strict = true
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
