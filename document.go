package sitesearch

import (
	"context"
	"io"
)

// Document is the indexable record of one HTML page.
type Document struct {
	// ID is assigned in discovery order and keys both the index postings
	// and the preview table.
	ID int `json:"id"`

	// Path is the slash-separated path relative to the site root.
	Path string `json:"path"`

	// SourcePath is the slash-separated path including the site root as it
	// was given, e.g. "__site/docs/page.html". Public URLs are derived from it.
	SourcePath string `json:"sourcePath"`

	Title       string `json:"title"`
	Body        string `json:"body"`
	ContentHash string `json:"contentHash"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID < 0 {
		return Errorf(EINVALID, "document %q has negative id %d", d.Path, d.ID)
	}
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document %q title required", d.Path)
	}
	return nil
}

// Scanner enumerates the HTML pages of a site.
type Scanner interface {
	// Scan returns slash-separated page paths relative to the site root in
	// depth-first order. Returns ESCAN if the root cannot be enumerated.
	Scan(ctx context.Context) ([]string, error)
}

// PageOpener opens a scanned page for reading.
type PageOpener interface {
	Open(path string) (io.ReadCloser, error)
}
