package mock

import (
	"context"
	"io"

	"github.com/fwojciec/sitesearch"
)

// Compile-time interface verification.
var (
	_ sitesearch.Scanner    = (*Scanner)(nil)
	_ sitesearch.PageOpener = (*PageOpener)(nil)
)

// Scanner is a mock implementation of sitesearch.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context) ([]string, error)
}

func (s *Scanner) Scan(ctx context.Context) ([]string, error) {
	return s.ScanFn(ctx)
}

// PageOpener is a mock implementation of sitesearch.PageOpener.
type PageOpener struct {
	OpenFn func(path string) (io.ReadCloser, error)
}

func (o *PageOpener) Open(path string) (io.ReadCloser, error) {
	return o.OpenFn(path)
}
