package main

import (
	"fmt"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/bleve"
	"github.com/fwojciec/sitesearch/build"
	"github.com/fwojciec/sitesearch/etree"
	"github.com/fwojciec/sitesearch/fs"
	"github.com/fwojciec/sitesearch/goquery"
	"github.com/fwojciec/sitesearch/index"
	"github.com/fwojciec/sitesearch/js"
	sslog "github.com/fwojciec/sitesearch/slog"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	cfg, err := loadConfig(deps, c)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	b, err := newBuilder(cfg, deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	progress := func(event build.ProgressEvent) {
		if event.Type == build.ProgressStarted {
			fmt.Fprintf(deps.Stdout, "Found %d pages under %s\n", event.Total, cfg.Root)
		}
	}

	result, err := b.Build(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d of %d pages (%s of text, %d terms)\n",
		result.Indexed, result.Scanned, build.FormatBytes(result.Bytes), len(result.Artifact.Index.Terms))
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", cfg.Output)
	if cfg.Sitemap.Path != "" {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", cfg.Sitemap.Path)
	}
	if n := len(result.Duplicates); n > 0 {
		fmt.Fprintf(deps.Stdout, "%d page(s) repeat the content of an earlier page\n", n)
	}
	fmt.Fprint(deps.Stderr, sitesearch.FormatFailures(result.Failures))
	return nil
}

// newBuilder wires the pipeline for cfg. Settings that would only fail
// after the site has been read are checked here first.
func newBuilder(cfg *sitesearch.Config, deps *Dependencies) (*build.Builder, error) {
	if err := goquery.ValidateSelectors(cfg.RemoveSelectors); err != nil {
		return nil, err
	}
	for _, name := range []string{cfg.IndexName, cfg.PreviewName} {
		if err := js.ValidateName(name); err != nil {
			return nil, err
		}
	}
	tokenizer, err := bleve.TokenizerFor(cfg.Analyzer)
	if err != nil {
		return nil, err
	}

	logger := deps.Logger
	site := fs.NewSite(cfg.Root, cfg.ExcludeDirs)
	extractor := goquery.NewExtractor(
		goquery.WithSkipTags(cfg.SkipTags),
		goquery.WithRemoveSelectors(cfg.RemoveSelectors),
	)

	writers := []sitesearch.ArtifactWriter{
		sslog.NewLoggingArtifactWriter(
			fs.NewArtifactWriter(cfg.Output, &js.Encoder{IndexName: cfg.IndexName, PreviewName: cfg.PreviewName}),
			logger,
		),
	}
	if cfg.Sitemap.Path != "" {
		writers = append(writers, sslog.NewLoggingArtifactWriter(
			fs.NewArtifactWriter(cfg.Sitemap.Path, &etree.SitemapEncoder{BaseURL: cfg.Sitemap.BaseURL}),
			logger,
		))
	}

	return &build.Builder{
		Scanner:     sslog.NewLoggingScanner(site, logger),
		Opener:      site,
		Extractor:   sslog.NewLoggingExtractor(extractor, logger),
		Tokenizer:   tokenizer,
		Rewriter:    sitesearch.URLRewriter{BuildRoot: cfg.EffectiveBuildRoot(), Prefix: cfg.Prefix},
		Writers:     writers,
		Root:        cfg.Root,
		Concurrency: cfg.Concurrency,
		Strict:      cfg.Strict,
		IndexOptions: []index.Option{
			index.WithTitleBoost(cfg.TitleBoost),
		},
		Logger: logger,
	}, nil
}
