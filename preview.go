package sitesearch

import (
	"path"
	"path/filepath"
	"strings"
)

// PreviewEntry is what the search widget shows for a matching document.
type PreviewEntry struct {
	Title string `json:"t"`
	URL   string `json:"l"`
}

// URLRewriter derives public URLs from source paths.
type URLRewriter struct {
	// BuildRoot is the leading part of a source path that is replaced,
	// typically the site root as given on the command line.
	BuildRoot string

	// Prefix is the public path the site is served under. Leading and
	// trailing slashes are ignored.
	Prefix string
}

// Rewrite replaces a leading BuildRoot in sourcePath, matched
// case-insensitively and only at the start, with "/" + Prefix.
// Paths that do not start with BuildRoot are returned unmodified.
func (rw URLRewriter) Rewrite(sourcePath string) string {
	if rw.BuildRoot == "" {
		return sourcePath
	}

	var rest string
	root := path.Clean(filepath.ToSlash(rw.BuildRoot))
	switch {
	case root == ".":
		// Source paths under the working directory carry no root segment.
		if strings.HasPrefix(sourcePath, "/") || strings.HasPrefix(sourcePath, "../") {
			return sourcePath
		}
		rest = "/" + sourcePath
	case len(sourcePath) >= len(root) && strings.EqualFold(sourcePath[:len(root)], root):
		rest = sourcePath[len(root):]
	default:
		return sourcePath
	}

	prefix := strings.Trim(rw.Prefix, "/")
	if prefix == "" {
		if !strings.HasPrefix(rest, "/") {
			rest = "/" + rest
		}
		return rest
	}
	return "/" + prefix + rest
}

// BuildPreviews derives one preview entry per document, keyed by document
// id. Returns EBUILD if an id is negative or appears twice.
func BuildPreviews(docs []*Document, rw URLRewriter) (map[int]PreviewEntry, error) {
	previews := make(map[int]PreviewEntry, len(docs))
	for _, doc := range docs {
		if doc.ID < 0 {
			return nil, Errorf(EBUILD, "preview for %q: negative document id %d", doc.Path, doc.ID)
		}
		if _, exists := previews[doc.ID]; exists {
			return nil, Errorf(EBUILD, "preview for %q: duplicate document id %d", doc.Path, doc.ID)
		}
		previews[doc.ID] = PreviewEntry{
			Title: doc.Title,
			URL:   rw.Rewrite(doc.SourcePath),
		}
	}
	return previews, nil
}
