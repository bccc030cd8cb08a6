package agent

import (
	"context"
	"fmt"

	"github.com/invosight/server/internal/llm"
	"github.com/invosight/server/internal/logger"
)

const answerMaxTokens = 1024

func New(dispatcher Dispatcher, generator llm.TextGenerator) *Agent {
	return &Agent{
		dispatcher: dispatcher,
		generator:  generator,
	}
}

// Chat runs one conversational turn: route the question to a retrieval tool,
// execute it, then compose a grounded answer from the tool's JSON payload.
// Tool-level degradation ({"error": ...} payloads) still reaches the
// generator so the failure is explained to the user; a hard tool failure
// aborts the turn.
func (a *Agent) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Message == "" {
		return nil, fmt.Errorf("message cannot be empty")
	}

	textGenerator := a.generator
	if req.CustomGenerator != nil {
		textGenerator = req.CustomGenerator
	}

	outcome := a.dispatcher.Run(ctx, req.Message, nil)
	if outcome.Err != nil {
		return nil, fmt.Errorf("tool %s failed: %w", outcome.Decision.Tool, outcome.Err)
	}

	logger.Debug("tool returned",
		"tool", outcome.Decision.Tool,
		"state", outcome.State.String(),
		"result_bytes", len(outcome.Result),
	)

	systemPrompt := buildSystemPrompt(SystemPromptContext{
		Tool:       string(outcome.Decision.Tool),
		ToolResult: outcome.Result,
	})

	messages := make([]llm.Message, 0, len(req.ConversationHistory)+1)
	for _, m := range req.ConversationHistory {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: req.Message})

	response, err := textGenerator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: systemPrompt,
		Messages:     messages,
		MaxTokens:    answerMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compose answer: %w", err)
	}

	return &ChatResponse{
		Response:     response.Text,
		Tool:         string(outcome.Decision.Tool),
		ToolResult:   outcome.Result,
		Model:        textGenerator.Model(),
		InputTokens:  response.Usage.InputTokens,
		OutputTokens: response.Usage.OutputTokens,
	}, nil
}
