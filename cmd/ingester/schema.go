package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invosight/server/internal/invoices"
	"github.com/invosight/server/internal/logger"
)

// creates the vector extension and the invoices table
func CreateSchema(db *pgxpool.Pool) error {
	ctx := context.Background()
	store := invoices.NewStore(db)

	if err := store.CreateSchema(ctx); err != nil {
		return err
	}

	logger.Info("schema created")

	return nil
}

// builds the tsv column and its GIN index over the ingested rows
func SetupFullTextSearch(db *pgxpool.Pool) error {
	ctx := context.Background()
	store := invoices.NewStore(db)

	if err := store.SetupFullTextSearch(ctx); err != nil {
		return err
	}

	logger.Info("full-text search column and index set up")

	return nil
}
