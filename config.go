package sitesearch

import "strings"

// Defaults used when neither the config file nor the command line sets a value.
var (
	DefaultExcludeDirs = []string{"assets", "css", "libs"}
	DefaultSkipTags    = []string{"style", "script", "code", "fieldset"}
)

const (
	DefaultRoot        = "__site"
	DefaultOutput      = "__site/libs/lunr/lunr_index.js"
	DefaultAnalyzer    = "en"
	DefaultTitleBoost  = 100
	DefaultConcurrency = 8
	DefaultIndexName   = "SEARCH_INDEX"
	DefaultPreviewName = "PREVIEW_LOOKUP"
)

// Config holds the settings of one index build.
type Config struct {
	// Root is the directory holding the generated site.
	Root string `yaml:"root"`
	// Output is the path of the script file to write.
	Output string `yaml:"output"`
	// BuildRoot is the source path prefix replaced by Prefix in public URLs.
	// Defaults to Root.
	BuildRoot string `yaml:"build_root"`
	// Prefix is the public path the site is served under.
	Prefix string `yaml:"prefix"`

	ExcludeDirs     []string `yaml:"exclude_dirs"`
	SkipTags        []string `yaml:"skip_tags"`
	RemoveSelectors []string `yaml:"remove_selectors"`

	Analyzer    string  `yaml:"analyzer"`
	TitleBoost  float64 `yaml:"title_boost"`
	Concurrency int     `yaml:"concurrency"`

	IndexName   string `yaml:"index_name"`
	PreviewName string `yaml:"preview_name"`

	// Strict makes any extraction failure fatal.
	Strict bool `yaml:"strict"`

	Sitemap SitemapConfig `yaml:"sitemap"`
}

// SitemapConfig configures the optional sitemap output.
type SitemapConfig struct {
	Path    string `yaml:"path"`
	BaseURL string `yaml:"base_url"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Root:        DefaultRoot,
		Output:      DefaultOutput,
		ExcludeDirs: append([]string(nil), DefaultExcludeDirs...),
		SkipTags:    append([]string(nil), DefaultSkipTags...),
		Analyzer:    DefaultAnalyzer,
		TitleBoost:  DefaultTitleBoost,
		Concurrency: DefaultConcurrency,
		IndexName:   DefaultIndexName,
		PreviewName: DefaultPreviewName,
	}
}

// EffectiveBuildRoot returns BuildRoot, or Root when BuildRoot is unset.
func (c *Config) EffectiveBuildRoot() string {
	if c.BuildRoot != "" {
		return c.BuildRoot
	}
	return c.Root
}

// Validate returns an error if the configuration cannot drive a build.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return Errorf(EINVALID, "site root required")
	}
	if strings.TrimSpace(c.Output) == "" {
		return Errorf(EINVALID, "output path required")
	}
	if c.Analyzer == "" {
		return Errorf(EINVALID, "analyzer required")
	}
	if c.TitleBoost <= 0 {
		return Errorf(EINVALID, "title boost must be positive, got %v", c.TitleBoost)
	}
	if c.Concurrency < 1 {
		return Errorf(EINVALID, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.Sitemap.Path != "" && c.Sitemap.BaseURL == "" {
		return Errorf(EINVALID, "sitemap base URL required when a sitemap path is set")
	}
	return nil
}
