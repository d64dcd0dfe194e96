package sitesearch

import "sort"

// IndexVersion is the current serialized index format.
const IndexVersion = 1

// Field names used in postings.
const (
	FieldTitle = "t"
	FieldBody  = "b"
)

// Field describes an indexed document field and its relevance multiplier.
type Field struct {
	Name  string  `json:"name"`
	Boost float64 `json:"boost"`
}

// Index is an inverted index over a set of documents. It is built once per
// run and serialized verbatim into the artifact.
type Index struct {
	Version   int     `json:"version"`
	Tokenizer string  `json:"tokenizer"`
	Fields    []Field `json:"fields"`

	// FieldLengths maps document id to the token count of each field. Its
	// key set is the document-id universe of the index, so documents that
	// produced no terms are still present.
	FieldLengths map[int]map[string]int `json:"fieldLengths"`

	// Terms maps a normalized term to the documents containing it and, per
	// document, the term frequency in each field.
	Terms map[string]map[int]map[string]int `json:"terms"`
}

// DocIDs returns the document ids of the index in ascending order.
func (idx *Index) DocIDs() []int {
	ids := make([]int, 0, len(idx.FieldLengths))
	for id := range idx.FieldLengths {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Boost returns the boost of the named field, or 0 if it is not indexed.
func (idx *Index) Boost(field string) float64 {
	for _, f := range idx.Fields {
		if f.Name == field {
			return f.Boost
		}
	}
	return 0
}
