package sitesearch_test

import (
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLRewriter_Rewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		buildRoot string
		prefix    string
		source    string
		want      string
	}{
		{"replaces build root with prefix", "build", "site", "build/docs/page.html", "/site/docs/page.html"},
		{"matches build root case-insensitively", "build", "site", "BUILD/docs/page.html", "/site/docs/page.html"},
		{"replaces only the leading occurrence", "build", "site", "build/build/page.html", "/site/build/page.html"},
		{"ignores build root in the middle", "build", "site", "out/build/page.html", "out/build/page.html"},
		{"passes through when prefix is absent", "__site", "site", "docs/page.html", "docs/page.html"},
		{"empty prefix yields root-relative url", "__site", "", "__site/docs/page.html", "/docs/page.html"},
		{"slashes around prefix are ignored", "__site", "/project/", "__site/index.html", "/project/index.html"},
		{"trailing slash on build root", "__site/", "site", "__site/index.html", "/site/index.html"},
		{"dot build root prefixes everything", ".", "site", "docs/page.html", "/site/docs/page.html"},
		{"empty build root passes through", "", "site", "build/page.html", "build/page.html"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rw := sitesearch.URLRewriter{BuildRoot: tt.buildRoot, Prefix: tt.prefix}

			assert.Equal(t, tt.want, rw.Rewrite(tt.source))
		})
	}
}

func TestBuildPreviews(t *testing.T) {
	t.Parallel()

	rw := sitesearch.URLRewriter{BuildRoot: "__site", Prefix: "docs"}

	t.Run("keys entries by document id", func(t *testing.T) {
		t.Parallel()

		docs := []*sitesearch.Document{
			{ID: 0, Path: "index.html", SourcePath: "__site/index.html", Title: "Home"},
			{ID: 1, Path: "guide/intro.html", SourcePath: "__site/guide/intro.html", Title: "Intro"},
		}

		previews, err := sitesearch.BuildPreviews(docs, rw)

		require.NoError(t, err)
		assert.Equal(t, map[int]sitesearch.PreviewEntry{
			0: {Title: "Home", URL: "/docs/index.html"},
			1: {Title: "Intro", URL: "/docs/guide/intro.html"},
		}, previews)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		t.Parallel()

		docs := []*sitesearch.Document{
			{ID: 3, Path: "a.html", Title: "A"},
			{ID: 3, Path: "b.html", Title: "B"},
		}

		_, err := sitesearch.BuildPreviews(docs, rw)

		assert.Equal(t, sitesearch.EBUILD, sitesearch.ErrorCode(err))
		assert.Contains(t, sitesearch.ErrorMessage(err), "b.html")
	})

	t.Run("rejects negative ids", func(t *testing.T) {
		t.Parallel()

		_, err := sitesearch.BuildPreviews([]*sitesearch.Document{{ID: -2, Path: "a.html", Title: "A"}}, rw)

		assert.Equal(t, sitesearch.EBUILD, sitesearch.ErrorCode(err))
	})
}
