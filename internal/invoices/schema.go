package invoices

import (
	"fmt"

	"github.com/invosight/server/internal/llm"
)

// DDL for the invoices table. The embedding column dimension is pinned to
// the embedder's output size; changing models requires a re-ingest.
var createTableSQL = fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS invoices (
		id SERIAL PRIMARY KEY,
		"ID" BIGINT,
		"FiscalWeekBeginDate" TEXT,
		"Invoice Date" TEXT,
		"Region" TEXT,
		"Facility Name" TEXT,
		"Branch Id" TEXT,
		"Channel" TEXT,
		"soldto_name" TEXT,
		"shipto_name" TEXT,
		"Product Type" TEXT,
		"Major Code" TEXT,
		"Major Desc" TEXT,
		"Mid Code" TEXT,
		"Mid Desc" TEXT,
		"Minor Code" TEXT,
		"Minor Desc" TEXT,
		"Item" TEXT,
		"Item Desc" TEXT,
		"Sales" FLOAT8,
		"Gross Profit" FLOAT8,
		"GM Percent" FLOAT8,
		"TLE" FLOAT8,
		embedding vector(%d)
	)`, llm.EmbeddingDimensions)

const (
	createExtensionSQL = `CREATE EXTENSION IF NOT EXISTS vector`

	dropTableSQL = `DROP TABLE IF EXISTS invoices`

	clearTableSQL = `DELETE FROM invoices`

	countRowsSQL = `SELECT COUNT(*) FROM invoices`

	insertRecordSQL = `
		INSERT INTO invoices (
			"ID", "FiscalWeekBeginDate", "Invoice Date", "Region",
			"Facility Name", "Branch Id", "Channel", "soldto_name",
			"shipto_name", "Product Type", "Major Code", "Major Desc",
			"Mid Code", "Mid Desc", "Minor Code", "Minor Desc",
			"Item", "Item Desc", "Sales", "Gross Profit",
			"GM Percent", "TLE", embedding
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)`

	addTSVColumnSQL = `ALTER TABLE invoices ADD COLUMN IF NOT EXISTS tsv tsvector`

	// tsv covers the free-text columns only; categorical codes stay out of
	// the full-text index
	populateTSVSQL = `
		UPDATE invoices
		SET tsv = to_tsvector('english',
			coalesce("soldto_name", '') || ' ' || coalesce("shipto_name", '') || ' ' ||
			coalesce("Major Desc", '') || ' ' || coalesce("Mid Desc", '') || ' ' ||
			coalesce("Minor Desc", '') || ' ' || coalesce("Item Desc", '')
		)`

	createTSVIndexSQL = `CREATE INDEX IF NOT EXISTS invoices_tsv_idx ON invoices USING GIN(tsv)`
)
