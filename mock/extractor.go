package mock

import (
	"io"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitesearch.Extractor.
type Extractor struct {
	ExtractFn func(r io.Reader, path string) (*sitesearch.Document, error)
}

func (e *Extractor) Extract(r io.Reader, path string) (*sitesearch.Document, error) {
	return e.ExtractFn(r, path)
}
