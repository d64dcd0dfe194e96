package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Ensure LoggingExtractor implements sitesearch.Extractor.
var _ sitesearch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-page logging. Successful
// pages are logged at debug level, failures as warnings.
type LoggingExtractor struct {
	next   sitesearch.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sitesearch.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the page.
func (e *LoggingExtractor) Extract(r io.Reader, path string) (doc *sitesearch.Document, err error) {
	cr := &countingReader{r: r}
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Warn("extract",
				"path", path,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		e.logger.Debug("extract",
			"path", path,
			"title", doc.Title,
			"bytes", cr.n,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(cr, path)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
