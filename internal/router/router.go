package router

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/invosight/server/internal/logger"
	"github.com/invosight/server/internal/tracer"
)

// Router dispatches each question to exactly one registered retrieval
// strategy. The registry is populated at startup and read-only afterwards.
type Router struct {
	registry map[Tool]Executor
}

func New(sqlSearch, vectorSearch Executor) *Router {
	return &Router{
		registry: map[Tool]Executor{
			ToolSQLSearch:    sqlSearch,
			ToolVectorSearch: vectorSearch,
		},
	}
}

// Run routes a question, executes the selected tool, and reports the
// terminal event to the handler (which may be nil). A tool error moves the
// question to the failed state and is surfaced as-is; the other tool is
// never tried.
func (r *Router) Run(ctx context.Context, question string, events EventHandler) Outcome {
	ctx, span := tracer.Tracer("router").Start(ctx, "route_question")
	defer span.End()

	decision := Decide(question)

	span.SetAttributes(
		attribute.String("user_query", question),
		attribute.String("tool", string(decision.Tool)),
		attribute.String("reason", decision.Reason),
	)

	outcome := Outcome{Decision: decision, State: StateRoutedSQL}
	if decision.Tool == ToolVectorSearch {
		outcome.State = StateRoutedVector
	}

	logger.Debug("routed question", "tool", decision.Tool, "reason", decision.Reason)

	executor, ok := r.registry[decision.Tool]
	if !ok || executor == nil {
		outcome.State = StateFailed
		outcome.Err = fmt.Errorf("no executor registered for tool %q", decision.Tool)
		span.RecordError(outcome.Err)

		if events != nil {
			events.OnError(ctx, decision, outcome.Err)
		}

		return outcome
	}

	result, err := executor.Execute(ctx, question)
	if err != nil {
		outcome.State = StateFailed
		outcome.Err = err
		span.RecordError(err)

		if events != nil {
			events.OnError(ctx, decision, err)
		}

		return outcome
	}

	outcome.State = StateAnswered
	outcome.Result = result

	if events != nil {
		events.OnResult(ctx, decision, result)
	}

	return outcome
}
