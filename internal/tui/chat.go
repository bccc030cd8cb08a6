package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const chatRequestTimeout = 90 * time.Second

var chatHTTPClient = &http.Client{Timeout: chatRequestTimeout}

func sendChat(endpoint, userQuery string, conversationHistory []Message) tea.Cmd {
	return func() tea.Msg {
		payload := chatRequestPayload{
			Message:             userQuery,
			ConversationHistory: conversationHistory,
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			return ChatErrorMsg{userQuery: userQuery, err: fmt.Errorf("failed to marshal request: %w", err)}
		}

		resp, err := chatHTTPClient.Post(endpoint, "application/json", bytes.NewBuffer(jsonData)) //nolint:gosec // G107: endpoint is from config, not user input
		if err != nil {
			return ChatErrorMsg{userQuery: userQuery, err: fmt.Errorf("failed to connect to server: %w", err)}
		}
		defer resp.Body.Close() //nolint:errcheck

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body) //nolint:errcheck
			return ChatErrorMsg{userQuery: userQuery, err: fmt.Errorf("server returned error %d: %s", resp.StatusCode, string(body))}
		}

		var result chatResponsePayload

		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return ChatErrorMsg{userQuery: userQuery, err: fmt.Errorf("failed to parse response: %w", err)}
		}

		return ChatResponseMsg{
			userQuery: userQuery,
			response:  result.Response,
			tool:      result.Tool,
			model:     result.Model,
		}
	}
}

func formatMetadata(tool, model string) string {
	return fmt.Sprintf("tool: %s | model: %s", tool, model)
}
