package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/invosight/server/internal/config"
	"github.com/invosight/server/internal/invoices"
	"github.com/invosight/server/internal/llm"
	"github.com/invosight/server/internal/logger"
)

// rows embedded and inserted per round trip
const batchSize = 100

// reads invoice rows from CSV, embeds them and inserts them in batches
func IngestInvoices(cfg *config.Config, db *pgxpool.Pool, flags config.Flags) error {
	ctx := context.Background()
	logger.Info("starting invoice ingestion", "path", flags.Path, "clear", flags.Clear)

	store := invoices.NewStore(db)

	// clear existing rows if requested
	if flags.Clear {
		logger.Info("clearing existing invoices")

		if err := store.ClearAll(ctx); err != nil {
			return fmt.Errorf("failed to clear existing invoices: %w", err)
		}

		logger.Info("cleared existing invoices")
	}

	records, err := invoices.ReadCSV(flags.Path)
	if err != nil {
		return fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) == 0 {
		return fmt.Errorf("no records found in %s", flags.Path)
	}

	logger.Info("loaded records", "count", len(records))

	// create OpenAI embedder
	embedder := llm.NewOpenAIEmbedder(llm.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  "text-embedding-3-small",
	})

	// embed and insert in batches
	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		batch := records[start:end]

		texts := make([]string, len(batch))
		for i, r := range batch {
			texts[i] = r.EmbeddingText()
		}

		raw, err := embedder.GenerateEmbeddings(ctx, texts)
		if err != nil {
			return fmt.Errorf("failed to generate embeddings for rows %d-%d: %w", start, end, err)
		}

		vectors := make([]pgvector.Vector, len(raw))
		for i, e := range raw {
			vectors[i] = pgvector.NewVector(e)
		}

		if err := store.InsertBatch(ctx, batch, vectors); err != nil {
			return fmt.Errorf("failed to insert rows %d-%d: %w", start, end, err)
		}

		logger.Info("inserted batch", "from", start, "to", end)
	}

	// verify insertion
	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify row count: %w", err)
	}

	logger.Info("successfully ingested invoices",
		"rows_inserted", len(records),
		"total_rows", count,
	)

	return nil
}
