package chat

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invosight/server/internal/agent"
	"github.com/invosight/server/internal/errors"
	"github.com/invosight/server/internal/logger"
)

// interface for the conversational agent
type Chatter interface {
	Chat(ctx context.Context, req agent.ChatRequest) (*agent.ChatResponse, error)
}

// creates a handler for conversational question answering
func Handler(agentClient Chatter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		resp, err := agentClient.Chat(c.Request.Context(), agent.ChatRequest{
			Message:             req.Message,
			ConversationHistory: req.ConversationHistory,
		})
		if err != nil {
			logger.ErrorErr(err, "chat turn failed")
			errors.InternalError(c, "failed to answer question", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Response:     resp.Response,
			Tool:         resp.Tool,
			Model:        resp.Model,
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
		})
	}
}
