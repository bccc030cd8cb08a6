package config

import (
	"flag"
	"os"
)

// Flags holds the parsed CLI options for one ingester subcommand
type Flags struct {
	Path  string
	Clear bool
}

// parses CLI flags for the invoices subcommand
func ParseInvoicesFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("invoices", flag.ExitOnError)
	path := fs.String("path", "./resources/invoices.csv", "path to the invoices CSV file")
	clearFlag := fs.Bool("clear", false, "clear existing invoices before ingesting")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Path: *path, Clear: *clearFlag}
}

// returns default flags for invoices ingestion
func DefaultInvoicesFlags() Flags {
	return Flags{Path: "./resources/invoices.csv", Clear: false}
}
