// Package slog provides logging decorators for the sitesearch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Ensure LoggingScanner implements sitesearch.Scanner.
var _ sitesearch.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner with logging.
type LoggingScanner struct {
	next   sitesearch.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next sitesearch.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the operation.
func (s *LoggingScanner) Scan(ctx context.Context) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scan",
			"pages", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scan(ctx)
}
