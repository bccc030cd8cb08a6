package retriever

import (
	"sort"

	"github.com/invosight/server/internal/invoices"
)

// rrfK is the reciprocal rank fusion constant (standard value from Cormack
// et al. 2009).
const rrfK = 60

// fuseRRF merges the vector and keyword rankings into one list scored by
// score(d) = sum over rankings of 1/(k + rank(d)). Rows are identified by
// invoice ID; a row present in both rankings accumulates both contributions.
func fuseRRF(vector, keyword []invoices.Match, topK int) []HybridRecord {
	type scored struct {
		record      invoices.Record
		score       float64
		vectorRank  int
		keywordRank int
	}

	merged := make(map[int64]*scored)

	for i, m := range vector {
		rank := i + 1
		merged[m.ID] = &scored{
			record:     m.Record,
			score:      1.0 / float64(rrfK+rank),
			vectorRank: rank,
		}
	}

	for i, m := range keyword {
		rank := i + 1
		contribution := 1.0 / float64(rrfK+rank)

		if existing, ok := merged[m.ID]; ok {
			existing.score += contribution
			existing.keywordRank = rank
		} else {
			merged[m.ID] = &scored{
				record:      m.Record,
				score:       contribution,
				keywordRank: rank,
			}
		}
	}

	results := make([]HybridRecord, 0, len(merged))

	for _, s := range merged {
		results = append(results, HybridRecord{
			Record:      s.record,
			RRFScore:    s.score,
			VectorRank:  s.vectorRank,
			KeywordRank: s.keywordRank,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].RRFScore != results[j].RRFScore {
			return results[i].RRFScore > results[j].RRFScore
		}

		// stable order for equal scores
		return results[i].ID < results[j].ID
	})

	if len(results) > topK {
		results = results[:topK]
	}

	return results
}
