package translator

import (
	"context"

	"github.com/invosight/server/internal/llm"
)

// read path into the invoices table
type Store interface {
	SelectRows(ctx context.Context, sql string) ([]map[string]any, error)
}

// Translator converts a natural language question into SQL, executes it, and
// shapes the result into a JSON record sequence.
type Translator struct {
	generator llm.TextGenerator
	store     Store
}

// ErrorPayload is the degraded result for a query that failed against the
// store: the turn survives and the caller can explain the failure.
type ErrorPayload struct {
	Error string `json:"error"`
}
