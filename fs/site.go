// Package fs provides file-based access to a generated site and its outputs.
package fs

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitesearch"
)

// Ensure Site implements the scanner and opener interfaces at compile time.
var (
	_ sitesearch.Scanner    = (*Site)(nil)
	_ sitesearch.PageOpener = (*Site)(nil)
)

// Site is a generated static site on the local file system.
type Site struct {
	root    string
	exclude map[string]struct{}
}

// NewSite creates a Site rooted at root. Directories whose name appears in
// excludeDirs are never descended into, at any depth.
func NewSite(root string, excludeDirs []string) *Site {
	exclude := make(map[string]struct{}, len(excludeDirs))
	for _, name := range excludeDirs {
		exclude[name] = struct{}{}
	}
	return &Site{root: root, exclude: exclude}
}

// Root returns the site root as given.
func (s *Site) Root() string {
	return s.root
}

// IsHTML reports whether filename has an .htm or .html extension,
// ignoring case.
func IsHTML(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".htm") || strings.HasSuffix(lower, ".html")
}

// Scan walks the site depth-first and returns the slash-separated paths of
// all HTML pages relative to the root. Entries are visited in the order
// os.ReadDir returns them. Symbolic links to directories are not followed.
func (s *Site) Scan(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sitesearch.Errorf(sitesearch.ESCAN, "site root %q not found", s.root)
		}
		return nil, sitesearch.Errorf(sitesearch.ESCAN, "site root %q: %v", s.root, err)
	}
	if !info.IsDir() {
		return nil, sitesearch.Errorf(sitesearch.ESCAN, "site root %q is not a directory", s.root)
	}

	var pages []string
	if err := s.walk(ctx, "", &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (s *Site) walk(ctx context.Context, dir string, pages *[]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full := filepath.Join(s.root, filepath.FromSlash(dir))
	entries, err := os.ReadDir(full)
	if err != nil {
		return sitesearch.Errorf(sitesearch.ESCAN, "read directory %q: %v", full, err)
	}

	for _, entry := range entries {
		rel := path.Join(dir, entry.Name())
		if entry.IsDir() {
			if _, skip := s.exclude[entry.Name()]; skip {
				continue
			}
			if err := s.walk(ctx, rel, pages); err != nil {
				return err
			}
			continue
		}
		if IsHTML(entry.Name()) {
			*pages = append(*pages, rel)
		}
	}
	return nil
}

// Open opens a page by its root-relative path.
func (s *Site) Open(page string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, filepath.FromSlash(page)))
}
