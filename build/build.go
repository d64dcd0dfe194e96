// Package build runs the indexing pipeline: it scans a site, extracts every
// page concurrently, indexes the results and writes the artifact.
package build

import (
	"context"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/index"
	"golang.org/x/sync/errgroup"
)

// Builder orchestrates a single build run. It holds no state between runs.
type Builder struct {
	Scanner   sitesearch.Scanner
	Opener    sitesearch.PageOpener
	Extractor sitesearch.Extractor
	Tokenizer sitesearch.Tokenizer
	Rewriter  sitesearch.URLRewriter
	Writers   []sitesearch.ArtifactWriter

	// Root is the site root as given by the user. Source paths are Root
	// joined with the scanned relative path.
	Root string

	// Concurrency bounds the number of pages extracted at once.
	Concurrency int

	// Strict makes any extraction failure fatal.
	Strict bool

	IndexOptions []index.Option
	Logger       *slog.Logger
}

// Result holds the outcome of a build.
type Result struct {
	Artifact   *sitesearch.Artifact
	Scanned    int
	Indexed    int
	Bytes      int
	Failures   []*sitesearch.ExtractFailure
	Duplicates []Duplicate
}

// Duplicate records a page whose body is identical to an earlier page.
type Duplicate struct {
	Path   string
	SameAs string
}

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress. It is never
// called concurrently.
type ProgressFunc func(event ProgressEvent)

// extractResult holds the outcome of processing a single page.
type extractResult struct {
	position int
	path     string
	doc      *sitesearch.Document
	err      error
}

// Build runs the pipeline. Extraction failures are collected in the result
// unless Strict is set or no page could be extracted at all. Any other
// failure aborts the run before an artifact is written.
func (b *Builder) Build(ctx context.Context, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	paths, err := b.Scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, sitesearch.Errorf(sitesearch.ESCAN, "no HTML pages found under %q", b.Root)
	}

	results, err := b.extractAll(ctx, paths, progress)
	if err != nil {
		return nil, err
	}

	res := &Result{Scanned: len(paths)}
	docs := b.collect(results, res)
	if len(docs) == 0 {
		return nil, sitesearch.Errorf(sitesearch.EEXTRACT, "none of the %d pages could be extracted\n%s", len(paths), strings.TrimSpace(sitesearch.FormatFailures(res.Failures)))
	}
	if b.Strict && len(res.Failures) > 0 {
		return nil, sitesearch.Errorf(sitesearch.EEXTRACT, "%s", strings.TrimSpace(sitesearch.FormatFailures(res.Failures)))
	}

	tokenizer := b.Tokenizer
	if tokenizer == nil {
		tokenizer = sitesearch.SimpleTokenizer{}
	}
	idx, err := index.Build(docs, tokenizer, b.IndexOptions...)
	if err != nil {
		return nil, err
	}
	previews, err := sitesearch.BuildPreviews(docs, b.Rewriter)
	if err != nil {
		return nil, err
	}
	artifact := &sitesearch.Artifact{Index: idx, Previews: previews}
	if err := artifact.Validate(); err != nil {
		return nil, err
	}

	for _, w := range b.Writers {
		if err := w.WriteArtifact(ctx, artifact); err != nil {
			return nil, err
		}
	}

	progress(ProgressEvent{
		Type:      ProgressFinished,
		Completed: len(paths),
		Total:     len(paths),
	})

	res.Artifact = artifact
	res.Indexed = len(docs)
	return res, nil
}

// extractAll extracts every page on a bounded pool and returns the results
// in scan order.
func (b *Builder) extractAll(ctx context.Context, paths []string, progress ProgressFunc) ([]extractResult, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = sitesearch.DefaultConcurrency
	}

	resultCh := make(chan extractResult, len(paths))
	var completed atomic.Int64
	total := len(paths)

	progress(ProgressEvent{
		Type:  ProgressStarted,
		Total: total,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, p := range paths {
			i, p := i, p
			g.Go(func() error {
				resultCh <- b.extract(gctx, i, p)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]extractResult, len(paths))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Path:      result.path,
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// extract opens and parses a single page.
func (b *Builder) extract(ctx context.Context, position int, p string) extractResult {
	result := extractResult{
		position: position,
		path:     p,
	}
	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	rc, err := b.Opener.Open(p)
	if err != nil {
		result.err = sitesearch.Errorf(sitesearch.EEXTRACT, "%v", err)
		return result
	}
	defer rc.Close()

	doc, err := b.Extractor.Extract(rc, p)
	if err != nil {
		result.err = err
		return result
	}
	result.doc = doc
	return result
}

// collect assigns dense ids in scan order to the extracted documents and
// records failures and duplicate content in res.
func (b *Builder) collect(results []extractResult, res *Result) []*sitesearch.Document {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	docs := make([]*sitesearch.Document, 0, len(results))
	firstByHash := make(map[string]string)
	for _, r := range results {
		if r.err != nil {
			res.Failures = append(res.Failures, &sitesearch.ExtractFailure{Path: r.path, Err: r.err})
			continue
		}

		doc := r.doc
		doc.ID = len(docs)
		doc.Path = r.path
		doc.SourcePath = path.Join(filepath.ToSlash(b.Root), r.path)
		doc.ContentHash = ComputeHash(doc.Body)
		if err := doc.Validate(); err != nil {
			res.Failures = append(res.Failures, &sitesearch.ExtractFailure{Path: r.path, Err: err})
			continue
		}

		if doc.Body != "" {
			if first, ok := firstByHash[doc.ContentHash]; ok {
				res.Duplicates = append(res.Duplicates, Duplicate{Path: r.path, SameAs: first})
				logger.Warn("duplicate content", "path", r.path, "same_as", first, "hash", doc.ContentHash)
			} else {
				firstByHash[doc.ContentHash] = r.path
			}
		}

		res.Bytes += len(doc.Body)
		docs = append(docs, doc)
	}
	return docs
}
