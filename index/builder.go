// Package index builds and queries the inverted index shipped in the
// search artifact.
package index

import (
	"github.com/fwojciec/sitesearch"
)

// Default field boosts. A title hit outweighs many body hits.
const (
	DefaultTitleBoost = 100
	DefaultBodyBoost  = 1
)

// Option configures a Builder.
type Option func(*Builder)

// WithTitleBoost sets the relevance multiplier of the title field.
func WithTitleBoost(boost float64) Option {
	return func(b *Builder) {
		b.titleBoost = boost
	}
}

// WithBodyBoost sets the relevance multiplier of the body field.
func WithBodyBoost(boost float64) Option {
	return func(b *Builder) {
		b.bodyBoost = boost
	}
}

// Builder accumulates documents into an index.
type Builder struct {
	tokenizer  sitesearch.Tokenizer
	titleBoost float64
	bodyBoost  float64
	idx        *sitesearch.Index
}

// NewBuilder returns an empty Builder that tokenizes with tokenizer.
func NewBuilder(tokenizer sitesearch.Tokenizer, opts ...Option) *Builder {
	b := &Builder{
		tokenizer:  tokenizer,
		titleBoost: DefaultTitleBoost,
		bodyBoost:  DefaultBodyBoost,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.idx = &sitesearch.Index{
		Version:   sitesearch.IndexVersion,
		Tokenizer: tokenizer.Name(),
		Fields: []sitesearch.Field{
			{Name: sitesearch.FieldTitle, Boost: b.titleBoost},
			{Name: sitesearch.FieldBody, Boost: b.bodyBoost},
		},
		FieldLengths: make(map[int]map[string]int),
		Terms:        make(map[string]map[int]map[string]int),
	}
	return b
}

// Add indexes the title and body of doc under doc.ID. It fails with EBUILD
// when the id is negative or already present, leaving the index unchanged.
func (b *Builder) Add(doc *sitesearch.Document) error {
	if doc.ID < 0 {
		return sitesearch.Errorf(sitesearch.EBUILD, "negative document id %d for %s", doc.ID, doc.Path)
	}
	if _, ok := b.idx.FieldLengths[doc.ID]; ok {
		return sitesearch.Errorf(sitesearch.EBUILD, "duplicate document id %d for %s", doc.ID, doc.Path)
	}

	lengths := make(map[string]int, 2)
	b.idx.FieldLengths[doc.ID] = lengths
	b.addField(doc.ID, sitesearch.FieldTitle, doc.Title, lengths)
	b.addField(doc.ID, sitesearch.FieldBody, doc.Body, lengths)
	return nil
}

func (b *Builder) addField(id int, field, text string, lengths map[string]int) {
	terms := b.tokenizer.Tokenize(text)
	lengths[field] = len(terms)
	for _, term := range terms {
		postings, ok := b.idx.Terms[term]
		if !ok {
			postings = make(map[int]map[string]int)
			b.idx.Terms[term] = postings
		}
		freqs, ok := postings[id]
		if !ok {
			freqs = make(map[string]int, 2)
			postings[id] = freqs
		}
		freqs[field]++
	}
}

// Len returns the number of documents added so far.
func (b *Builder) Len() int {
	return len(b.idx.FieldLengths)
}

// Index returns the index built so far. Later calls to Add modify it.
func (b *Builder) Index() *sitesearch.Index {
	return b.idx
}

// Build indexes docs in one call.
func Build(docs []*sitesearch.Document, tokenizer sitesearch.Tokenizer, opts ...Option) (*sitesearch.Index, error) {
	b := NewBuilder(tokenizer, opts...)
	for _, doc := range docs {
		if err := b.Add(doc); err != nil {
			return nil, err
		}
	}
	return b.Index(), nil
}
