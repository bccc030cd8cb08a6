package chat

import "github.com/invosight/server/internal/agent"

// Request represents the request body for a conversational turn
type Request struct {
	Message             string          `json:"message" binding:"required"`
	ConversationHistory []agent.Message `json:"conversation_history"`
}

// Response represents the composed answer for a conversational turn
type Response struct {
	Response     string `json:"response"`
	Tool         string `json:"tool"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}
