package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invosight/server/internal/agent"
)

type mockChatter struct {
	chatFunc func(ctx context.Context, req agent.ChatRequest) (*agent.ChatResponse, error)
	lastReq  agent.ChatRequest
}

func (m *mockChatter) Chat(ctx context.Context, req agent.ChatRequest) (*agent.ChatResponse, error) {
	m.lastReq = req
	if m.chatFunc != nil {
		return m.chatFunc(ctx, req)
	}
	return &agent.ChatResponse{
		Response: "ACME Corp has 12 invoices in the Central region.",
		Tool:     "sql-search",
		Model:    "test-model",
	}, nil
}

func setupRouter(chatter *mockChatter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/chat", Handler(chatter))

	return router
}

func postJSON(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestChatHandler_Success(t *testing.T) {
	chatter := &mockChatter{}
	router := setupRouter(chatter)

	w := postJSON(t, router, Request{Message: "Show me invoices for ACME Corp in the Central region"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sql-search", resp.Tool)
	assert.Equal(t, "test-model", resp.Model)
	assert.NotEmpty(t, resp.Response)

	assert.Equal(t, "Show me invoices for ACME Corp in the Central region", chatter.lastReq.Message)
}

func TestChatHandler_ForwardsHistory(t *testing.T) {
	chatter := &mockChatter{}
	router := setupRouter(chatter)

	w := postJSON(t, router, Request{
		Message: "What about the Northeast?",
		ConversationHistory: []agent.Message{
			{Role: "user", Content: "Total sales by region"},
			{Role: "assistant", Content: "Central leads with $1.2M."},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, chatter.lastReq.ConversationHistory, 2)
	assert.Equal(t, "Total sales by region", chatter.lastReq.ConversationHistory[0].Content)
}

func TestChatHandler_MissingMessage(t *testing.T) {
	router := setupRouter(&mockChatter{})

	w := postJSON(t, router, map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_AgentFailure(t *testing.T) {
	chatter := &mockChatter{
		chatFunc: func(_ context.Context, _ agent.ChatRequest) (*agent.ChatResponse, error) {
			return nil, errors.New("completion service unreachable")
		},
	}
	router := setupRouter(chatter)

	w := postJSON(t, router, Request{Message: "anything"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to answer question")
}
