// Package js reads and writes the search artifact as a JavaScript file that
// declares the index and the preview table as two constants.
package js

import (
	"bufio"
	"encoding/json"
	"io"
	"regexp"

	"github.com/fwojciec/sitesearch"
)

// Default binding names.
const (
	DefaultIndexName   = sitesearch.DefaultIndexName
	DefaultPreviewName = sitesearch.DefaultPreviewName
)

// Ensure Encoder implements sitesearch.ArtifactEncoder at compile time.
var _ sitesearch.ArtifactEncoder = (*Encoder)(nil)

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var reserved = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true,
	"function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "let": true, "new": true, "null": true,
	"return": true, "static": true, "super": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
}

// Encoder writes an artifact as
//
//	const SEARCH_INDEX = {...};
//	const PREVIEW_LOOKUP = {...};
//
// JSON output escapes <, >, &, U+2028 and U+2029, so the file is safe to
// inline in a script element.
type Encoder struct {
	IndexName   string
	PreviewName string
}

// Encode validates the artifact and binding names before writing anything.
func (e *Encoder) Encode(w io.Writer, a *sitesearch.Artifact) error {
	indexName, previewName, err := bindings(e.IndexName, e.PreviewName)
	if err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := writeBinding(bw, indexName, a.Index); err != nil {
		return err
	}
	if err := writeBinding(bw, previewName, a.Previews); err != nil {
		return err
	}
	return bw.Flush()
}

func writeBinding(w *bufio.Writer, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return sitesearch.Errorf(sitesearch.EINTERNAL, "encode %s: %v", name, err)
	}
	if _, err := w.WriteString("const " + name + " = "); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.WriteString(";\n")
	return err
}

// bindings applies defaults and returns EINVALID for names that cannot be
// declared as JavaScript constants.
func bindings(indexName, previewName string) (string, string, error) {
	if indexName == "" {
		indexName = DefaultIndexName
	}
	if previewName == "" {
		previewName = DefaultPreviewName
	}
	for _, name := range []string{indexName, previewName} {
		if err := ValidateName(name); err != nil {
			return "", "", err
		}
	}
	if indexName == previewName {
		return "", "", sitesearch.Errorf(sitesearch.EINVALID, "index and preview bindings are both named %q", indexName)
	}
	return indexName, previewName, nil
}

// ValidateName returns EINVALID unless name is a JavaScript identifier that
// is not a reserved word.
func ValidateName(name string) error {
	if !identifier.MatchString(name) || reserved[name] {
		return sitesearch.Errorf(sitesearch.EINVALID, "%q is not a valid JavaScript identifier", name)
	}
	return nil
}
