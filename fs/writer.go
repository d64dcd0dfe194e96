package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitesearch"
)

// Ensure ArtifactWriter implements sitesearch.ArtifactWriter at compile time.
var _ sitesearch.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter writes an encoded artifact to a single file.
// The file is written to a temporary name in the target directory and
// renamed into place, so readers never observe a partial artifact.
type ArtifactWriter struct {
	path    string
	encoder sitesearch.ArtifactEncoder
}

// NewArtifactWriter creates a writer that encodes artifacts with encoder
// and stores them at path.
func NewArtifactWriter(path string, encoder sitesearch.ArtifactEncoder) *ArtifactWriter {
	return &ArtifactWriter{path: path, encoder: encoder}
}

// Path returns the output path.
func (w *ArtifactWriter) Path() string {
	return w.path
}

// WriteArtifact encodes a and stores it, creating missing parent directories.
func (w *ArtifactWriter) WriteArtifact(ctx context.Context, a *sitesearch.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return w.fail(err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return w.fail(err)
	}
	tmpPath := f.Name()

	if err := w.encoder.Encode(f, a); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return w.fail(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return w.fail(err)
	}

	// Published next to the site, so readable by the web server.
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return w.fail(err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)
		return w.fail(err)
	}
	return nil
}

func (w *ArtifactWriter) fail(err error) error {
	return sitesearch.Errorf(sitesearch.EWRITE, "write %q: %s", w.path, sitesearch.ErrorMessage(err))
}
