package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/invosight/server/internal/llm"
	"github.com/invosight/server/internal/router"
)

type mockDispatcher struct {
	runFunc func(ctx context.Context, question string, events router.EventHandler) router.Outcome
	calls   int
}

func (m *mockDispatcher) Run(ctx context.Context, question string, events router.EventHandler) router.Outcome {
	m.calls++
	if m.runFunc != nil {
		return m.runFunc(ctx, question, events)
	}
	return router.Outcome{
		Decision: router.Decision{Tool: router.ToolSQLSearch},
		State:    router.StateAnswered,
		Result:   `[]`,
	}
}

type mockGenerator struct {
	generateFunc func(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error)
	lastRequest  llm.TextGenerationRequest
}

func (m *mockGenerator) GenerateText(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	m.lastRequest = req
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return &llm.TextGenerationResponse{
		Text:  "Here is your answer.",
		Usage: llm.Usage{InputTokens: 100, OutputTokens: 20},
	}, nil
}

func (m *mockGenerator) Model() string {
	return "test-model"
}

func TestChatComposesAnswerFromToolResult(t *testing.T) {
	toolResult := `[{"Region":"Central","Sales":1250.50}]`
	dispatcher := &mockDispatcher{
		runFunc: func(_ context.Context, _ string, _ router.EventHandler) router.Outcome {
			return router.Outcome{
				Decision: router.Decision{Tool: router.ToolSQLSearch},
				State:    router.StateAnswered,
				Result:   toolResult,
			}
		},
	}
	generator := &mockGenerator{}

	a := New(dispatcher, generator)

	resp, err := a.Chat(context.Background(), ChatRequest{Message: "Total sales in the Central region"})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	if dispatcher.calls != 1 {
		t.Errorf("dispatcher called %d times, want 1", dispatcher.calls)
	}
	if resp.Tool != string(router.ToolSQLSearch) {
		t.Errorf("Tool = %q, want %q", resp.Tool, router.ToolSQLSearch)
	}
	if resp.ToolResult != toolResult {
		t.Errorf("ToolResult = %q, want %q", resp.ToolResult, toolResult)
	}
	if resp.Model != "test-model" {
		t.Errorf("Model = %q, want %q", resp.Model, "test-model")
	}

	if !strings.Contains(generator.lastRequest.SystemPrompt, toolResult) {
		t.Error("system prompt does not carry the tool result")
	}
	if !strings.Contains(generator.lastRequest.SystemPrompt, string(router.ToolSQLSearch)) {
		t.Error("system prompt does not name the tool")
	}
}

func TestChatForwardsConversationHistory(t *testing.T) {
	generator := &mockGenerator{}
	a := New(&mockDispatcher{}, generator)

	history := []Message{
		{Role: "user", Content: "Show me invoices for ACME Corp"},
		{Role: "assistant", Content: "ACME Corp has 12 invoices."},
	}

	_, err := a.Chat(context.Background(), ChatRequest{
		Message:             "What about just the Central region?",
		ConversationHistory: history,
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	got := generator.lastRequest.Messages
	if len(got) != 3 {
		t.Fatalf("got %d messages, want 3", len(got))
	}
	if got[0].Content != history[0].Content || got[1].Content != history[1].Content {
		t.Error("history was not forwarded in order")
	}
	if got[2].Role != "user" || got[2].Content != "What about just the Central region?" {
		t.Errorf("last message = %+v, want the current question", got[2])
	}
}

func TestChatHardToolFailureAborts(t *testing.T) {
	toolErr := errors.New("completion service unreachable")
	dispatcher := &mockDispatcher{
		runFunc: func(_ context.Context, _ string, _ router.EventHandler) router.Outcome {
			return router.Outcome{
				Decision: router.Decision{Tool: router.ToolSQLSearch},
				State:    router.StateFailed,
				Err:      toolErr,
			}
		},
	}

	a := New(dispatcher, &mockGenerator{})

	_, err := a.Chat(context.Background(), ChatRequest{Message: "Total sales by region"})
	if err == nil {
		t.Fatal("expected error for hard tool failure")
	}
	if !errors.Is(err, toolErr) {
		t.Errorf("error = %v, want wrapped %v", err, toolErr)
	}
}

func TestChatDegradedToolPayloadStillAnswers(t *testing.T) {
	dispatcher := &mockDispatcher{
		runFunc: func(_ context.Context, _ string, _ router.EventHandler) router.Outcome {
			return router.Outcome{
				Decision: router.Decision{Tool: router.ToolSQLSearch},
				State:    router.StateAnswered,
				Result:   `{"error": "column \"Salez\" does not exist"}`,
			}
		},
	}
	generator := &mockGenerator{}

	a := New(dispatcher, generator)

	resp, err := a.Chat(context.Background(), ChatRequest{Message: "Total salez"})
	if err != nil {
		t.Fatalf("degraded tool payload must not abort the turn: %v", err)
	}
	if resp.Response == "" {
		t.Error("expected a composed answer explaining the failure")
	}
	if !strings.Contains(generator.lastRequest.SystemPrompt, "Salez") {
		t.Error("error payload did not reach the generator")
	}
}

func TestChatGeneratorFailurePropagates(t *testing.T) {
	generator := &mockGenerator{
		generateFunc: func(_ context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			return nil, errors.New("rate limited")
		},
	}

	a := New(&mockDispatcher{}, generator)

	if _, err := a.Chat(context.Background(), ChatRequest{Message: "anything"}); err == nil {
		t.Fatal("expected error when answer composition fails")
	}
}

func TestChatEmptyMessage(t *testing.T) {
	a := New(&mockDispatcher{}, &mockGenerator{})

	if _, err := a.Chat(context.Background(), ChatRequest{Message: ""}); err == nil {
		t.Fatal("expected error for empty message")
	}
}

func TestChatCustomGenerator(t *testing.T) {
	custom := &mockGenerator{
		generateFunc: func(_ context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			return &llm.TextGenerationResponse{Text: "custom answer"}, nil
		},
	}
	platform := &mockGenerator{
		generateFunc: func(_ context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			t.Fatal("platform generator must not run when a custom one is supplied")
			return nil, nil
		},
	}

	a := New(&mockDispatcher{}, platform)

	resp, err := a.Chat(context.Background(), ChatRequest{
		Message:         "anything",
		CustomGenerator: custom,
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if resp.Response != "custom answer" {
		t.Errorf("Response = %q, want %q", resp.Response, "custom answer")
	}
}
