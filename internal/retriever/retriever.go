package retriever

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"

	"github.com/invosight/server/internal/invoices"
	"github.com/invosight/server/internal/llm"
	"github.com/invosight/server/internal/logger"
	"github.com/invosight/server/internal/tracer"
)

func New(embedder llm.Embedder, store Store) *Retriever {
	return &Retriever{
		embedder: embedder,
		store:    store,
	}
}

// Search embeds the question once, then runs a single store query that both
// pages and counts. The query embedding is computed exactly one time per
// request: reusing it across the candidate set is part of the contract, not
// an optimization, because the alternative is one embedding round trip per
// row.
//
// Returns a JSON object {results, total_relevant_count}. Embedding and store
// failures both degrade to {"error": message} with a nil error so the
// conversational turn survives.
func (r *Retriever) Search(ctx context.Context, question string, threshold float64, limit int) (string, error) {
	if question == "" {
		return "", fmt.Errorf("question cannot be empty")
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	ctx, span := tracer.Tracer("retriever").Start(ctx, "vector_search")
	defer span.End()

	span.SetAttributes(
		attribute.String("user_query", question),
		attribute.Float64("threshold", threshold),
		attribute.Int("limit", limit),
	)

	embedding, err := r.embedder.GenerateEmbedding(ctx, question)
	if err != nil {
		logger.ErrorErr(err, "query embedding failed", "question", question)
		return marshalError(err), nil
	}

	matches, total, err := r.store.SimilaritySearch(ctx, pgvector.NewVector(embedding), threshold, limit)
	if err != nil {
		logger.ErrorErr(err, "similarity search failed", "question", question)
		return marshalError(err), nil
	}

	resp := SearchResponse{
		Results:            make([]ScoredRecord, 0, len(matches)),
		TotalRelevantCount: total,
	}

	for _, m := range matches {
		resp.Results = append(resp.Results, ScoredRecord{
			Record:   m.Record,
			Distance: m.Distance,
		})
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to serialize results: %w", err)
	}

	span.SetAttributes(
		attribute.Int("results", len(resp.Results)),
		attribute.Int64("total_relevant_count", total),
	)

	return string(out), nil
}

// HybridSearch fuses full-text rank and vector distance via reciprocal rank
// fusion. Exploratory: it is reachable through the tools API only and is not
// a routing target.
func (r *Retriever) HybridSearch(ctx context.Context, question string, limit int) (string, error) {
	if question == "" {
		return "", fmt.Errorf("question cannot be empty")
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	ctx, span := tracer.Tracer("retriever").Start(ctx, "hybrid_search")
	defer span.End()

	span.SetAttributes(attribute.String("user_query", question))

	embedding, err := r.embedder.GenerateEmbedding(ctx, question)
	if err != nil {
		logger.ErrorErr(err, "query embedding failed", "question", question)
		return marshalError(err), nil
	}

	candidateK := limit * hybridCandidateFactor

	// run the two signal searches in parallel; both share one pool
	var (
		vectorMatches, keywordMatches []invoices.Match
		vectorErr, keywordErr         error
		wg                            sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		vectorMatches, _, vectorErr = r.store.SimilaritySearch(ctx, pgvector.NewVector(embedding), hybridMaxDistance, candidateK)
	}()

	go func() {
		defer wg.Done()
		keywordMatches, keywordErr = r.store.KeywordSearch(ctx, question, candidateK)
	}()

	wg.Wait()

	if vectorErr != nil {
		logger.ErrorErr(vectorErr, "hybrid vector leg failed", "question", question)
		return marshalError(vectorErr), nil
	}

	if keywordErr != nil {
		logger.ErrorErr(keywordErr, "hybrid keyword leg failed", "question", question)
		return marshalError(keywordErr), nil
	}

	fused := fuseRRF(vectorMatches, keywordMatches, limit)

	out, err := json.Marshal(HybridResponse{Results: fused})
	if err != nil {
		return "", fmt.Errorf("failed to serialize results: %w", err)
	}

	span.SetAttributes(attribute.Int("results", len(fused)))

	return string(out), nil
}

func marshalError(err error) string {
	payload, merr := json.Marshal(ErrorPayload{Error: err.Error()})
	if merr != nil {
		return `{"error": "search failed"}`
	}

	return string(payload)
}
