// Package sitesearch builds client-side search indexes for static sites.
// It scans a directory of generated HTML pages, extracts their title and
// body text, builds a field-weighted inverted index, and writes the index
// together with a preview table as a script file a browser can load
// without any server.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bleve/, etree/).
package sitesearch
