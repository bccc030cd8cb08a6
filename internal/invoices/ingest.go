package invoices

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
)

// CreateSchema enables the vector extension and creates the invoices table
// if missing.
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createExtensionSQL); err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}

	if _, err := s.pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create invoices table: %w", err)
	}

	return nil
}

// DropTable removes the invoices table entirely.
func (s *Store) DropTable(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, dropTableSQL); err != nil {
		return fmt.Errorf("failed to drop invoices table: %w", err)
	}

	return nil
}

// ClearAll deletes every row but keeps the table and indexes.
func (s *Store) ClearAll(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, clearTableSQL); err != nil {
		return fmt.Errorf("failed to clear invoices: %w", err)
	}

	return nil
}

// Count returns the number of ingested rows.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := s.pool.QueryRow(ctx, countRowsSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	return count, nil
}

// InsertBatch writes records with their embeddings in one batched round
// trip. records and embeddings must be index-aligned.
func (s *Store) InsertBatch(ctx context.Context, records []Record, embeddings []pgvector.Vector) error {
	if len(records) != len(embeddings) {
		return fmt.Errorf("record count %d does not match embedding count %d", len(records), len(embeddings))
	}

	batch := &pgx.Batch{}

	for i, r := range records {
		batch.Queue(insertRecordSQL,
			r.ID, r.FiscalWeekBeginDate, r.InvoiceDate, r.Region,
			r.FacilityName, r.BranchID, r.Channel, r.SoldToName,
			r.ShipToName, r.ProductType, r.MajorCode, r.MajorDesc,
			r.MidCode, r.MidDesc, r.MinorCode, r.MinorDesc,
			r.Item, r.ItemDesc, r.Sales, r.GrossProfit,
			r.GMPercent, r.TLE, embeddings[i],
		)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	return nil
}

// SetupFullTextSearch adds the tsv column, populates it from the free-text
// fields, and creates the GIN index. Idempotent; safe to rerun after every
// ingest.
func (s *Store) SetupFullTextSearch(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, addTSVColumnSQL); err != nil {
		return fmt.Errorf("failed to add tsv column: %w", err)
	}

	if _, err := s.pool.Exec(ctx, populateTSVSQL); err != nil {
		return fmt.Errorf("failed to populate tsv column: %w", err)
	}

	if _, err := s.pool.Exec(ctx, createTSVIndexSQL); err != nil {
		return fmt.Errorf("failed to create tsv index: %w", err)
	}

	return nil
}
