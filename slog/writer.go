package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Ensure LoggingArtifactWriter implements sitesearch.ArtifactWriter.
var _ sitesearch.ArtifactWriter = (*LoggingArtifactWriter)(nil)

// LoggingArtifactWriter wraps an ArtifactWriter with logging.
type LoggingArtifactWriter struct {
	next   sitesearch.ArtifactWriter
	logger *slog.Logger
}

// NewLoggingArtifactWriter creates a new LoggingArtifactWriter.
func NewLoggingArtifactWriter(next sitesearch.ArtifactWriter, logger *slog.Logger) *LoggingArtifactWriter {
	return &LoggingArtifactWriter{next: next, logger: logger}
}

// WriteArtifact delegates to the wrapped writer and logs the operation.
func (w *LoggingArtifactWriter) WriteArtifact(ctx context.Context, a *sitesearch.Artifact) (err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"documents", len(a.Previews),
			"duration", time.Since(begin),
			"err", err,
		}
		if p, ok := w.next.(interface{ Path() string }); ok {
			attrs = append([]any{"path", p.Path()}, attrs...)
		}
		if a.Index != nil {
			attrs = append(attrs, "terms", len(a.Index.Terms))
		}
		w.logger.Info("write artifact", attrs...)
	}(time.Now())
	return w.next.WriteArtifact(ctx, a)
}
