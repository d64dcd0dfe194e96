package sitesearch

import "io"

// Extractor turns the raw HTML of one page into a Document.
type Extractor interface {
	// Extract parses the page read from r. The path is the page's
	// root-relative path; it becomes Document.Path and the fallback title.
	// The returned document has no ID or SourcePath yet.
	// Returns EEXTRACT if the page cannot be read or parsed.
	Extract(r io.Reader, path string) (*Document, error)
}
