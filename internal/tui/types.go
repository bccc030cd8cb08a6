package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents a chat message in the conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// main TUI application model
type Model struct {
	input               textinput.Model
	viewport            viewport.Model
	spinner             spinner.Model
	glamourRenderer     *glamour.TermRenderer
	conversationHistory []Message
	transcript          []transcriptEntry
	endpoint            string
	width               int
	height              int
	ready               bool
	isFetching          bool
	err                 error
}

// one rendered line block in the transcript
type transcriptEntry struct {
	role     string
	content  string
	metadata string
}

// sent when the server answers a chat turn
type ChatResponseMsg struct {
	userQuery string
	response  string
	tool      string
	model     string
}

// sent when a chat turn fails
type ChatErrorMsg struct {
	userQuery string
	err       error
}

// wire shapes of the chat endpoint
type chatRequestPayload struct {
	Message             string    `json:"message"`
	ConversationHistory []Message `json:"conversation_history,omitempty"`
}

type chatResponsePayload struct {
	Response string `json:"response"`
	Tool     string `json:"tool"`
	Model    string `json:"model"`
}
