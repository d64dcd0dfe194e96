package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/sitesearch/cmd/sitesearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSite creates files below a new temporary site root.
func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "__site")
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}

func page(title, body string) string {
	return "<html><head><title>" + title + "</title></head><body>" + body + "</body></html>"
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = main.NewMain().Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func defaultSite(t *testing.T) string {
	return writeSite(t, map[string]string{
		"index.html":         page("Home", "<p>Welcome to the handbook.</p>"),
		"docs/install.html":  page("Install", "<p>Run the installer.</p><pre><code>secretcode --flag</code></pre>"),
		"docs/hello.html":    page("Hello", "<p>Greetings.</p>"),
		"docs/other.html":    page("Other", "<p>Say hello to everyone.</p>"),
		"libs/vendor.html":   page("Vendor", "<p>bundled library</p>"),
		"assets/x/deep.html": page("Asset", "<p>asset page</p>"),
		"css/readme.txt":     "not html",
	})
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "--help")

	require.NoError(t, err)
	for _, cmd := range []string{"build", "query", "show-config"} {
		assert.Contains(t, stdout, cmd, "Help should mention %s command", cmd)
	}
}

// Story: Building From the Command Line
// Running with no command builds the index for the site

func TestMain_Run_BuildsIndex(t *testing.T) {
	t.Parallel()

	// Given a generated site with excluded asset directories
	root := defaultSite(t)
	out := filepath.Join(root, "libs", "lunr", "lunr_index.js")

	// When I run the default command
	stdout, stderr, err := run(t, "--root", root, "--output", out)

	// Then only the content pages are indexed
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "Found 4 pages")
	assert.Contains(t, stdout, "Indexed 4 of 4 pages")
	assert.Contains(t, stdout, "Wrote "+out)

	// And the artifact declares the index and the preview table
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "const SEARCH_INDEX = "))
	assert.Contains(t, string(data), "\nconst PREVIEW_LOOKUP = ")
	assert.Contains(t, string(data), `"l":"/docs/install.html"`)
	assert.NotContains(t, string(data), "Vendor")
	assert.NotContains(t, string(data), "secretcode")
}

func TestMain_Run_PrefixArgument(t *testing.T) {
	t.Parallel()

	root := defaultSite(t)
	out := filepath.Join(t.TempDir(), "index.js")

	_, stderr, err := run(t, "--root", root, "--output", out, "handbook")

	require.NoError(t, err, stderr)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"l":"/handbook/docs/install.html"`)
}

func TestMain_Run_MissingRootFails(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope")
	out := filepath.Join(t.TempDir(), "index.js")

	_, stderr, err := run(t, "--root", missing, "--output", out)

	require.Error(t, err)
	assert.Contains(t, stderr, missing)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMain_Run_ReportsUnreadablePages(t *testing.T) {
	t.Parallel()

	// Given a site with a page that cannot be opened
	root := defaultSite(t)
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.html"), filepath.Join(root, "broken.html")))
	out := filepath.Join(t.TempDir(), "index.js")

	// When I build it
	stdout, stderr, err := run(t, "--root", root, "--output", out)

	// Then the other pages are indexed and the failure is summarized
	require.NoError(t, err)
	assert.Contains(t, stdout, "Indexed 4 of 5 pages")
	assert.Contains(t, stderr, "1 page(s) could not be indexed:")
	assert.Contains(t, stderr, "broken.html")

	// And strict mode turns it into an error
	_, _, err = run(t, "--root", root, "--output", out, "--strict")
	assert.Error(t, err)
}

func TestMain_Run_InvalidSettings(t *testing.T) {
	t.Parallel()

	root := defaultSite(t)
	out := filepath.Join(t.TempDir(), "index.js")

	for _, tc := range []struct {
		name string
		args []string
	}{
		{"unknown analyzer", []string{"--analyzer", "klingon"}},
		{"bad selector", []string{"--remove", "div["}},
		{"bad binding", []string{"--index-name", "not-valid"}},
		{"sitemap without base url", []string{"--sitemap", filepath.Join(t.TempDir(), "sitemap.xml")}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"--root", root, "--output", out}, tc.args...)
			_, stderr, err := run(t, args...)

			require.Error(t, err)
			assert.Contains(t, stderr, "error:")
		})
	}
}

func TestMain_Run_WritesSitemap(t *testing.T) {
	t.Parallel()

	root := defaultSite(t)
	dir := t.TempDir()
	sitemap := filepath.Join(dir, "sitemap.xml")

	_, stderr, err := run(t, "--root", root, "--output", filepath.Join(dir, "index.js"),
		"--sitemap", sitemap, "--base-url", "https://example.com")

	require.NoError(t, err, stderr)
	data, err := os.ReadFile(sitemap)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<loc>https://example.com/docs/install.html</loc>")
}

// Story: Configuration Layers
// Flags override the config file, which overrides the defaults

func TestMain_Run_ConfigFile(t *testing.T) {
	t.Parallel()

	root := defaultSite(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "from-config.js")
	cfg := filepath.Join(dir, "sitesearch.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("root: "+root+"\noutput: "+out+"\nprefix: fromfile\nindex_name: CONFIG_INDEX\n"), 0644))

	t.Run("file overrides defaults", func(t *testing.T) {
		_, stderr, err := run(t, "--config", cfg)

		require.NoError(t, err, stderr)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "const CONFIG_INDEX = "))
		assert.Contains(t, string(data), `"/fromfile/index.html"`)
	})

	t.Run("flags override the file", func(t *testing.T) {
		stdout, stderr, err := run(t, "--config", cfg, "show-config", "--index-name", "FLAG_INDEX", "fromflag")

		require.NoError(t, err, stderr)
		assert.Contains(t, stdout, "index_name: FLAG_INDEX")
		assert.Contains(t, stdout, "prefix: fromflag")
		assert.Contains(t, stdout, "root: "+root)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, stderr, err := run(t, "--config", filepath.Join(dir, "missing.yaml"))

		require.Error(t, err)
		assert.Contains(t, stderr, "not found")
	})
}

// Story: Querying a Built Index
// The query command ranks pages the way the search widget does

func TestMain_Run_Query(t *testing.T) {
	t.Parallel()

	// Given a built index
	root := defaultSite(t)
	out := filepath.Join(t.TempDir(), "index.js")
	_, stderr, err := run(t, "--root", root, "--output", out)
	require.NoError(t, err, stderr)

	t.Run("title match ranks first", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := run(t, "query", out, "hello")

		require.NoError(t, err, stderr)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "/docs/hello.html")
		assert.Contains(t, lines[1], "/docs/other.html")
	})

	t.Run("stemmed terms match", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "query", out, "installing")

		require.NoError(t, err)
		assert.Contains(t, stdout, "/docs/install.html")
	})

	t.Run("skipped content is not searchable", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "query", out, "secretcode")

		require.NoError(t, err)
		assert.Equal(t, "No matches.\n", stdout)
	})

	t.Run("missing index", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "query", filepath.Join(t.TempDir(), "none.js"), "x")

		require.Error(t, err)
		assert.Contains(t, stderr, "not found")
	})
}
