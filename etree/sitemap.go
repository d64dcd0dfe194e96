// Package etree writes a sitemaps.org sitemap of the indexed pages.
package etree

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitesearch"
)

// SitemapNamespace is the sitemaps.org schema namespace.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Ensure SitemapEncoder implements sitesearch.ArtifactEncoder at compile time.
var _ sitesearch.ArtifactEncoder = (*SitemapEncoder)(nil)

// SitemapEncoder writes one url entry per indexed document, in id order.
type SitemapEncoder struct {
	// BaseURL is prepended to every preview URL, e.g. "https://example.com".
	BaseURL string
}

// Encode writes the sitemap of a.
func (e *SitemapEncoder) Encode(w io.Writer, a *sitesearch.Artifact) error {
	if e.BaseURL == "" {
		return sitesearch.Errorf(sitesearch.EINVALID, "sitemap requires a base URL")
	}
	if err := a.Validate(); err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)

	base := strings.TrimRight(e.BaseURL, "/")
	for _, id := range a.Index.DocIDs() {
		loc := a.Previews[id].URL
		if !strings.HasPrefix(loc, "/") {
			loc = "/" + loc
		}
		urlset.CreateElement("url").CreateElement("loc").SetText(base + loc)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
