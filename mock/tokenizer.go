package mock

import "github.com/fwojciec/sitesearch"

var _ sitesearch.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of sitesearch.Tokenizer.
type Tokenizer struct {
	NameFn     func() string
	TokenizeFn func(text string) []string
}

func (t *Tokenizer) Name() string {
	return t.NameFn()
}

func (t *Tokenizer) Tokenize(text string) []string {
	return t.TokenizeFn(text)
}
