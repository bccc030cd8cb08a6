package invoices

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// Store is the read path over the invoices table. All methods acquire a
// connection from the shared pool for the duration of one query and release
// it on return, including on error or cancellation.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// SimilaritySearch runs the single-query page-and-count search against the
// precomputed query embedding. Results are ordered by ascending cosine
// distance; totalRelevant is the count of all rows strictly below threshold,
// independent of limit.
func (s *Store) SimilaritySearch(ctx context.Context, embedding pgvector.Vector, threshold float64, limit int) ([]Match, int64, error) {
	rows, err := s.pool.Query(ctx, similaritySearchQuery, embedding, threshold, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute similarity query: %w", err)
	}

	defer rows.Close()

	var (
		matches       []Match
		totalRelevant int64
	)

	for rows.Next() {
		var m Match

		if err := scanMatch(rows, &m, &m.Distance, &totalRelevant); err != nil {
			return nil, 0, fmt.Errorf("failed to scan row: %w", err)
		}

		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return matches, totalRelevant, nil
}

// KeywordSearch runs a full-text search over the tsv column, ranked by
// ts_rank descending.
func (s *Store) KeywordSearch(ctx context.Context, query string, limit int) ([]Match, error) {
	rows, err := s.pool.Query(ctx, keywordSearchQuery, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute keyword query: %w", err)
	}

	defer rows.Close()

	var matches []Match

	for rows.Next() {
		var m Match

		if err := scanMatch(rows, &m, &m.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return matches, nil
}

// FetchByInvoiceID returns the record with the given invoice identifier, or
// pgx.ErrNoRows if absent.
func (s *Store) FetchByInvoiceID(ctx context.Context, id int64) (*Record, error) {
	rows, err := s.pool.Query(ctx, fetchByInvoiceIDQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute fetch query: %w", err)
	}

	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating rows: %w", err)
		}

		return nil, pgx.ErrNoRows
	}

	var m Match
	if err := scanMatch(rows, &m); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}

	return &m.Record, nil
}

// SelectRows executes a generated SELECT statement and returns the result as
// flat column-name → value mappings. Only read statements are accepted; the
// generated query never writes.
func (s *Store) SelectRows(ctx context.Context, sql string) ([]map[string]any, error) {
	if err := ensureReadOnly(sql); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))

	for i, fd := range fields {
		columns[i] = fd.Name
	}

	var results []map[string]any

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row values: %w", err)
		}

		record := make(map[string]any, len(columns))
		for i, col := range columns {
			record[col] = normalizeValue(values[i])
		}

		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}

// scanMatch scans the shared record projection followed by any trailing
// score/aggregate columns.
func scanMatch(rows pgx.Rows, m *Match, extra ...any) error {
	dest := []any{
		&m.ID, &m.FiscalWeekBeginDate, &m.InvoiceDate, &m.Region,
		&m.FacilityName, &m.BranchID, &m.Channel, &m.SoldToName,
		&m.ShipToName, &m.ProductType, &m.MajorCode, &m.MajorDesc,
		&m.MidCode, &m.MidDesc, &m.MinorCode, &m.MinorDesc,
		&m.Item, &m.ItemDesc, &m.Sales, &m.GrossProfit,
		&m.GMPercent, &m.TLE,
	}

	dest = append(dest, extra...)

	return rows.Scan(dest...)
}
