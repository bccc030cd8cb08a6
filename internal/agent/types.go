package agent

import (
	"context"

	"github.com/invosight/server/internal/llm"
	"github.com/invosight/server/internal/router"
)

// interface for single-step tool dispatch
type Dispatcher interface {
	Run(ctx context.Context, question string, events router.EventHandler) router.Outcome
}

// orchestrates tool-grounded question answering
type Agent struct {
	dispatcher Dispatcher
	generator  llm.TextGenerator
}

// contains all inputs for one conversational turn
type ChatRequest struct {
	Message             string
	ConversationHistory []Message
	CustomGenerator     llm.TextGenerator // optional BYOK generator
}

// contains the composed answer and metadata
type ChatResponse struct {
	Response     string `json:"response"`
	Tool         string `json:"tool"`
	ToolResult   string `json:"tool_result,omitempty"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// represents a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}
