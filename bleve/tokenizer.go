// Package bleve provides tokenizers backed by bleve's text analyzers.
package bleve

import (
	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/registry"
	"github.com/fwojciec/sitesearch"
)

// Analyzer names accepted by NewTokenizer.
const (
	EnglishName  = en.AnalyzerName
	StandardName = standard.Name
)

// Ensure Tokenizer implements sitesearch.Tokenizer at compile time.
var _ sitesearch.Tokenizer = (*Tokenizer)(nil)

// Tokenizer runs text through a named bleve analyzer.
type Tokenizer struct {
	name     string
	analyzer analysis.Analyzer
}

// NewTokenizer returns a tokenizer for the named analyzer. EnglishName
// lower-cases, drops possessives and English stop words, and applies Porter
// stemming. StandardName does the same without possessives or stemming.
func NewTokenizer(name string) (*Tokenizer, error) {
	switch name {
	case EnglishName, StandardName:
	default:
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "unknown analyzer %q", name)
	}
	analyzer, err := registry.NewCache().AnalyzerNamed(name)
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINTERNAL, "load analyzer %q: %v", name, err)
	}
	return &Tokenizer{name: name, analyzer: analyzer}, nil
}

// TokenizerFor resolves any tokenizer name that can appear in an index.
func TokenizerFor(name string) (sitesearch.Tokenizer, error) {
	if name == sitesearch.SimpleTokenizerName {
		return sitesearch.SimpleTokenizer{}, nil
	}
	return NewTokenizer(name)
}

// Name returns the analyzer name.
func (t *Tokenizer) Name() string {
	return t.name
}

// Tokenize returns the analyzed terms of text in order of appearance.
func (t *Tokenizer) Tokenize(text string) []string {
	stream := t.analyzer.Analyze([]byte(text))
	terms := make([]string, 0, len(stream))
	for _, tok := range stream {
		terms = append(terms, string(tok.Term))
	}
	return terms
}
