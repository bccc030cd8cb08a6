package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invosight/server/internal/config"
	"github.com/invosight/server/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ingester <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  schema    - create the vector extension and invoices table")
		fmt.Println("  invoices  - ingest invoice rows with embeddings from a CSV file")
		fmt.Println("  fts       - build the full-text search column and index")
		fmt.Println("  all       - run schema, invoices and fts in order")
		fmt.Println("\nOptions:")
		fmt.Println("  --path <path>  - Custom path to the invoices CSV file")
		fmt.Println("  --clear        - Clear existing data before ingesting")
		os.Exit(1)
	}

	command := os.Args[1]

	// load environment variables
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// connect to database
	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("connected to database")

	// route to appropriate command
	switch command {
	case "schema":
		if err := CreateSchema(db); err != nil {
			logger.Fatal("failed to create schema", "error", err)
		}

	case "invoices":
		flags := config.ParseInvoicesFlags()
		if err := IngestInvoices(cfg, db, flags); err != nil {
			logger.Fatal("failed to ingest invoices", "error", err)
		}

	case "fts":
		if err := SetupFullTextSearch(db); err != nil {
			logger.Fatal("failed to set up full-text search", "error", err)
		}

	case "all":
		flags := config.DefaultInvoicesFlags()

		for _, arg := range os.Args[2:] {
			if arg == "--clear" {
				flags.Clear = true
			}
		}

		logger.Info("ingesting all data (schema, invoices, fts)")

		if err := CreateSchema(db); err != nil {
			logger.Fatal("failed to create schema", "error", err)
		}

		if err := IngestInvoices(cfg, db, flags); err != nil {
			logger.Fatal("failed to ingest invoices", "error", err)
		}

		if err := SetupFullTextSearch(db); err != nil {
			logger.Fatal("failed to set up full-text search", "error", err)
		}

		logger.Info("successfully ingested all data")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
