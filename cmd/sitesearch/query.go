package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/bleve"
	"github.com/fwojciec/sitesearch/build"
	"github.com/fwojciec/sitesearch/index"
	"github.com/fwojciec/sitesearch/js"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	artifact, err := c.load()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	tokenizer, err := bleve.TokenizerFor(artifact.Index.Tokenizer)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	matches, err := index.Search(artifact.Index, tokenizer, strings.Join(c.Terms, " "), c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}
	for _, m := range matches {
		p := artifact.Previews[m.ID]
		fmt.Fprintf(deps.Stdout, "%-40s  %s  %.3f\n", build.TruncatePath(p.Title, 40), p.URL, m.Score)
	}
	return nil
}

func (c *QueryCmd) load() (*sitesearch.Artifact, error) {
	f, err := os.Open(c.Artifact)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, sitesearch.Errorf(sitesearch.ENOTFOUND, "index %q not found", c.Artifact)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := &js.Decoder{IndexName: c.IndexName, PreviewName: c.PreviewName}
	a, err := dec.Decode(f)
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "read %s: %s", c.Artifact, sitesearch.ErrorMessage(err))
	}
	return a, nil
}
