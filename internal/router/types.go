package router

import "context"

// Tool names the retrieval strategies the router can dispatch to. The set is
// fixed at startup; there is no runtime tool discovery.
type Tool string

const (
	ToolSQLSearch    Tool = "sql-search"
	ToolVectorSearch Tool = "vector-search"
)

// State tracks a question through the single-step routing machine. A question
// is routed exactly once and either answered or failed; there is no re-route
// to the other tool.
type State int

const (
	StateUnrouted State = iota
	StateRoutedSQL
	StateRoutedVector
	StateAnswered
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnrouted:
		return "unrouted"
	case StateRoutedSQL:
		return "routed-sql"
	case StateRoutedVector:
		return "routed-vector"
	case StateAnswered:
		return "answered"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Executor runs one retrieval strategy against a question and returns a JSON
// payload. Tool-level degradation (a bad generated query, an unreachable
// store) arrives as a {"error": ...} payload with a nil error; a non-nil
// error is a hard failure.
type Executor interface {
	Execute(ctx context.Context, question string) (string, error)
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(ctx context.Context, question string) (string, error)

func (f ExecutorFunc) Execute(ctx context.Context, question string) (string, error) {
	return f(ctx, question)
}

// EventHandler receives the terminal event of one routed question.
type EventHandler interface {
	OnResult(ctx context.Context, decision Decision, result string)
	OnError(ctx context.Context, decision Decision, err error)
}

// Decision is the one-shot routing choice for a question.
type Decision struct {
	Tool   Tool   `json:"tool"`
	Reason string `json:"reason"`
}

// Outcome is the terminal record of one routed question.
type Outcome struct {
	Decision Decision
	State    State
	Result   string
	Err      error
}
