package retriever

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"github.com/invosight/server/internal/invoices"
	"github.com/invosight/server/internal/llm"
)

// search paths into the invoices table
type Store interface {
	SimilaritySearch(ctx context.Context, embedding pgvector.Vector, threshold float64, limit int) ([]invoices.Match, int64, error)
	KeywordSearch(ctx context.Context, query string, limit int) ([]invoices.Match, error)
}

// Retriever answers conceptual questions by distance-ranked similarity
// search over precomputed row embeddings.
type Retriever struct {
	embedder llm.Embedder
	store    Store
}

// ScoredRecord is an invoice projection annotated with cosine distance
// (lower = more similar). The raw embedding is never part of the projection.
type ScoredRecord struct {
	invoices.Record
	Distance float64 `json:"distance"`
}

// SearchResponse is the retriever's wire shape: a distance-ordered page plus
// the count of all rows beneath the threshold, independent of the page size.
type SearchResponse struct {
	Results            []ScoredRecord `json:"results"`
	TotalRelevantCount int64          `json:"total_relevant_count"`
}

// HybridRecord carries the fused score of the exploratory RRF search along
// with the per-signal ranks that produced it.
type HybridRecord struct {
	invoices.Record
	RRFScore    float64 `json:"rrf_score"`
	VectorRank  int     `json:"vector_rank,omitempty"`
	KeywordRank int     `json:"keyword_rank,omitempty"`
}

// HybridResponse is the wire shape of the hybrid search.
type HybridResponse struct {
	Results []HybridRecord `json:"results"`
}

// ErrorPayload is the degraded result for an embedding or store failure.
type ErrorPayload struct {
	Error string `json:"error"`
}
