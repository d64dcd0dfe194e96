package sitesearch

import (
	"context"
	"io"
)

// Artifact is the output of a build: the index and the preview table the
// search widget resolves matches through.
type Artifact struct {
	Index    *Index
	Previews map[int]PreviewEntry
}

// Validate returns EBUILD unless the preview table is keyed by exactly the
// document ids of the index.
func (a *Artifact) Validate() error {
	if a.Index == nil {
		return Errorf(EBUILD, "artifact has no index")
	}
	if len(a.Previews) != len(a.Index.FieldLengths) {
		return Errorf(EBUILD, "index has %d documents but preview table has %d entries", len(a.Index.FieldLengths), len(a.Previews))
	}
	for id := range a.Index.FieldLengths {
		if _, ok := a.Previews[id]; !ok {
			return Errorf(EBUILD, "document %d is indexed but has no preview entry", id)
		}
	}
	return nil
}

// ArtifactEncoder serializes an artifact into a specific file format.
type ArtifactEncoder interface {
	Encode(w io.Writer, a *Artifact) error
}

// ArtifactWriter persists an artifact.
type ArtifactWriter interface {
	// WriteArtifact returns EWRITE naming the output path on failure.
	WriteArtifact(ctx context.Context, a *Artifact) error
}
