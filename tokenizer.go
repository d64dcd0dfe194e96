package sitesearch

import (
	"strings"
	"unicode"
)

// Tokenizer turns text into normalized index terms. The same algorithm must
// be applied to page text at build time and to query text at lookup time,
// so every Tokenizer has a stable name that is recorded in the index.
type Tokenizer interface {
	Name() string
	Tokenize(text string) []string
}

// SimpleTokenizerName identifies SimpleTokenizer in an index.
const SimpleTokenizerName = "simple"

var _ Tokenizer = SimpleTokenizer{}

// SimpleTokenizer lower-cases text and splits it on every rune that is
// neither a letter nor a digit. It does not stem or drop stop words.
type SimpleTokenizer struct{}

// Name returns the tokenizer's identifier.
func (SimpleTokenizer) Name() string {
	return SimpleTokenizerName
}

// Tokenize returns the terms of text in order of appearance.
func (SimpleTokenizer) Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
