package index_test

import (
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/index"
	"github.com/fwojciec/sitesearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, docs ...*sitesearch.Document) *sitesearch.Index {
	t.Helper()
	idx, err := index.Build(docs, sitesearch.SimpleTokenizer{})
	require.NoError(t, err)
	return idx
}

func ids(matches []index.Match) []int {
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.ID)
	}
	return out
}

// Story: Ranked Lookup
// Title hits outrank body hits and rare terms outrank common ones

func TestSearch_TitleOutranksBody(t *testing.T) {
	t.Parallel()

	// Given one page titled "Hello" and another mentioning hello once in its body
	idx := build(t,
		doc(0, "Other", "say hello there"),
		doc(1, "Hello", "nothing relevant here"),
	)

	// When I search for hello
	matches, err := index.Search(idx, sitesearch.SimpleTokenizer{}, "hello", 0)

	// Then the titled page ranks first
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, ids(matches))
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestSearch_RareTermsWeighMore(t *testing.T) {
	t.Parallel()

	idx := build(t,
		doc(0, "A", "common"),
		doc(1, "B", "common"),
		doc(2, "C", "common rare"),
		doc(3, "D", "common"),
	)

	common, err := index.Search(idx, sitesearch.SimpleTokenizer{}, "common", 0)
	require.NoError(t, err)
	rare, err := index.Search(idx, sitesearch.SimpleTokenizer{}, "rare", 0)
	require.NoError(t, err)

	assert.Len(t, common, 4)
	assert.Equal(t, []int{2}, ids(rare))
	assert.Greater(t, rare[0].Score, common[0].Score)
}

func TestSearch_MultipleTermsAccumulate(t *testing.T) {
	t.Parallel()

	idx := build(t,
		doc(0, "A", "alpha"),
		doc(1, "B", "alpha beta"),
		doc(2, "C", "beta"),
	)

	matches, err := index.Search(idx, sitesearch.SimpleTokenizer{}, "alpha beta alpha", 0)

	require.NoError(t, err)
	assert.Equal(t, 1, matches[0].ID)
	assert.Len(t, matches, 3)
}

func TestSearch_TiesBreakByID(t *testing.T) {
	t.Parallel()

	idx := build(t,
		doc(2, "Same", "text"),
		doc(0, "Same", "text"),
		doc(1, "Same", "text"),
	)

	matches, err := index.Search(idx, sitesearch.SimpleTokenizer{}, "same", 0)

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, ids(matches))
}

func TestSearch_Limit(t *testing.T) {
	t.Parallel()

	idx := build(t,
		doc(0, "Go", ""),
		doc(1, "Go", ""),
		doc(2, "Go", ""),
	)

	matches, err := index.Search(idx, sitesearch.SimpleTokenizer{}, "go", 2)

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, ids(matches))
}

func TestSearch_NoMatches(t *testing.T) {
	t.Parallel()

	idx := build(t, doc(0, "Title", "body"))

	t.Run("unknown term", func(t *testing.T) {
		t.Parallel()

		matches, err := index.Search(idx, sitesearch.SimpleTokenizer{}, "missing", 0)

		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("query without terms", func(t *testing.T) {
		t.Parallel()

		matches, err := index.Search(idx, sitesearch.SimpleTokenizer{}, " ?! ", 0)

		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestSearch_RequiresMatchingTokenizer(t *testing.T) {
	t.Parallel()

	idx := build(t, doc(0, "Title", "body"))
	other := &mock.Tokenizer{
		NameFn:     func() string { return "en" },
		TokenizeFn: func(text string) []string { return []string{text} },
	}

	_, err := index.Search(idx, other, "title", 0)

	assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	assert.Contains(t, sitesearch.ErrorMessage(err), `"simple"`)
}

func TestSearch_NilIndex(t *testing.T) {
	t.Parallel()

	_, err := index.Search(nil, sitesearch.SimpleTokenizer{}, "x", 0)

	assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
}
