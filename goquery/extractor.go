// Package goquery extracts indexable text from HTML pages using goquery.
package goquery

import (
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/sitesearch"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitesearch.Extractor at compile time.
var _ sitesearch.Extractor = (*Extractor)(nil)

// displayMath matches \[ ... \] spans, shortest first, across lines.
var displayMath = regexp.MustCompile(`(?s)\\\[.*?\\\]`)

// blockElements separate their text from surrounding text.
var blockElements = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {}, "br": {},
	"caption": {}, "dd": {}, "details": {}, "div": {}, "dl": {}, "dt": {},
	"figcaption": {}, "figure": {}, "footer": {}, "form": {}, "h1": {},
	"h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {}, "header": {}, "hr": {},
	"li": {}, "main": {}, "nav": {}, "ol": {}, "option": {}, "p": {},
	"pre": {}, "section": {}, "summary": {}, "table": {}, "td": {},
	"th": {}, "tr": {}, "ul": {},
}

// Extractor builds documents from HTML pages.
type Extractor struct {
	skipTags        map[string]struct{}
	removeSelectors []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSkipTags replaces the set of tags whose content is left out of the
// body text. Defaults to sitesearch.DefaultSkipTags.
func WithSkipTags(tags []string) Option {
	return func(e *Extractor) {
		e.skipTags = make(map[string]struct{}, len(tags))
		for _, tag := range tags {
			e.skipTags[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
		}
	}
}

// WithRemoveSelectors sets CSS selectors whose matches are removed from the
// body before text extraction, e.g. "nav" or ".sidebar".
func WithRemoveSelectors(selectors []string) Option {
	return func(e *Extractor) {
		e.removeSelectors = selectors
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	WithSkipTags(sitesearch.DefaultSkipTags)(e)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidateSelectors returns EINVALID for the first selector that does not
// compile. Invalid selectors would otherwise silently match nothing.
func ValidateSelectors(selectors []string) error {
	for _, s := range selectors {
		if _, err := cascadia.Compile(s); err != nil {
			return sitesearch.Errorf(sitesearch.EINVALID, "invalid selector %q: %v", s, err)
		}
	}
	return nil
}

// Extract parses one page. The title is the text of the first title
// element, or path when the page has none. The body is the text of the
// body element without removed or skipped elements and without \[ ... \]
// spans, with whitespace collapsed.
func (e *Extractor) Extract(r io.Reader, path string) (*sitesearch.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EEXTRACT, "parse %q: %v", path, err)
	}

	title := collapseSpace(doc.Find("title").First().Text())
	if title == "" {
		title = path
	}

	var body string
	if sel := doc.Find("body").First(); sel.Length() > 0 {
		for _, s := range e.removeSelectors {
			sel.Find(s).Remove()
		}
		body = e.text(sel.Get(0))
	}
	body = collapseSpace(displayMath.ReplaceAllString(body, " "))

	return &sitesearch.Document{
		Path:  path,
		Title: title,
		Body:  body,
	}, nil
}

// text concatenates the text nodes below n in document order.
func (e *Extractor) text(n *html.Node) string {
	var b strings.Builder
	e.walk(&b, n)
	return b.String()
}

func (e *Extractor) walk(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if e.skip(n) {
			return
		}
	case html.DocumentNode:
	default:
		// Comments and doctypes carry no indexable text.
		return
	}

	_, block := blockElements[n.Data]
	if block {
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		e.walk(b, c)
	}
	if block {
		b.WriteByte(' ')
	}
}

// skip reports whether the subtree rooted at element n is left out.
func (e *Extractor) skip(n *html.Node) bool {
	_, ok := e.skipTags[n.Data]
	return ok
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
