package mock

import (
	"context"
	"io"

	"github.com/fwojciec/sitesearch"
)

// Compile-time interface verification.
var (
	_ sitesearch.ArtifactEncoder = (*ArtifactEncoder)(nil)
	_ sitesearch.ArtifactWriter  = (*ArtifactWriter)(nil)
)

// ArtifactEncoder is a mock implementation of sitesearch.ArtifactEncoder.
type ArtifactEncoder struct {
	EncodeFn func(w io.Writer, a *sitesearch.Artifact) error
}

func (e *ArtifactEncoder) Encode(w io.Writer, a *sitesearch.Artifact) error {
	return e.EncodeFn(w, a)
}

// ArtifactWriter is a mock implementation of sitesearch.ArtifactWriter.
type ArtifactWriter struct {
	WriteArtifactFn func(ctx context.Context, a *sitesearch.Artifact) error
}

func (w *ArtifactWriter) WriteArtifact(ctx context.Context, a *sitesearch.Artifact) error {
	return w.WriteArtifactFn(ctx, a)
}
