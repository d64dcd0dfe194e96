package index

import (
	"math"
	"sort"

	"github.com/fwojciec/sitesearch"
)

// BM25 parameters.
const (
	bm25K1 = 1.2
	bm25B  = 0.75
)

// Match is a scored search hit.
type Match struct {
	ID    int
	Score float64
}

// Search ranks the documents of idx against query and returns at most limit
// matches, best first. A limit of zero or less returns every match. The
// tokenizer must be the one the index was built with.
func Search(idx *sitesearch.Index, tokenizer sitesearch.Tokenizer, query string, limit int) ([]Match, error) {
	if idx == nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "no index")
	}
	if tokenizer.Name() != idx.Tokenizer {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "index was built with tokenizer %q, not %q", idx.Tokenizer, tokenizer.Name())
	}

	n := float64(len(idx.FieldLengths))
	avg := averageLengths(idx)
	scores := make(map[int]float64)
	seen := make(map[string]bool)
	for _, term := range tokenizer.Tokenize(query) {
		if seen[term] {
			continue
		}
		seen[term] = true

		postings := idx.Terms[term]
		if len(postings) == 0 {
			continue
		}
		df := float64(len(postings))
		idf := math.Log(1 + (n-df+0.5)/(df+0.5))
		for id, freqs := range postings {
			for _, f := range idx.Fields {
				tf := float64(freqs[f.Name])
				if tf == 0 {
					continue
				}
				norm := 1.0
				if avg[f.Name] > 0 {
					norm = 1 - bm25B + bm25B*float64(idx.FieldLengths[id][f.Name])/avg[f.Name]
				}
				scores[id] += f.Boost * idf * tf * (bm25K1 + 1) / (tf + bm25K1*norm)
			}
		}
	}

	matches := make([]Match, 0, len(scores))
	for id, score := range scores {
		matches = append(matches, Match{ID: id, Score: score})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// averageLengths returns the mean token count of each field.
func averageLengths(idx *sitesearch.Index) map[string]float64 {
	avg := make(map[string]float64, len(idx.Fields))
	if len(idx.FieldLengths) == 0 {
		return avg
	}
	for _, lengths := range idx.FieldLengths {
		for field, l := range lengths {
			avg[field] += float64(l)
		}
	}
	for field := range avg {
		avg[field] /= float64(len(idx.FieldLengths))
	}
	return avg
}
