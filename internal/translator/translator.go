package translator

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/invosight/server/internal/llm"
	"github.com/invosight/server/internal/logger"
	"github.com/invosight/server/internal/tracer"
)

func New(generator llm.TextGenerator, store Store) *Translator {
	return &Translator{
		generator: generator,
		store:     store,
	}
}

// Search converts the question into SQL, executes it read-only, and returns
// the result rows as a JSON array of flat column→value objects.
//
// A completion failure is a hard error for the caller to handle. A store
// failure (malformed generated SQL, schema drift) degrades to the JSON
// payload {"error": message} with a nil error, so one bad query becomes a
// visible, explainable failure instead of a crashed turn.
func (t *Translator) Search(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", fmt.Errorf("question cannot be empty")
	}

	ctx, span := tracer.Tracer("translator").Start(ctx, "sql_search")
	defer span.End()

	span.SetAttributes(attribute.String("user_query", question))

	resp, err := t.generator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: systemPrompt,
		Messages:     []llm.Message{{Role: "user", Content: question}},
		MaxTokens:    maxSQLTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate SQL: %w", err)
	}

	sql := stripCodeFence(resp.Text)
	span.SetAttributes(attribute.String("sql_query", sql))
	logger.Debug("generated SQL query", "question", question, "sql", sql)

	rows, err := t.store.SelectRows(ctx, sql)
	if err != nil {
		logger.ErrorErr(err, "SQL execution failed", "sql", sql)
		return marshalError(err), nil
	}

	if rows == nil {
		rows = []map[string]any{}
	}

	out, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("failed to serialize results: %w", err)
	}

	span.SetAttributes(attribute.String("results_json", string(out)))

	return string(out), nil
}

func marshalError(err error) string {
	payload, merr := json.Marshal(ErrorPayload{Error: err.Error()})
	if merr != nil {
		return `{"error": "query execution failed"}`
	}

	return string(payload)
}
