package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

func NewApp(endpoint string) *Model {
	ti := textinput.New()
	ti.Placeholder = "ask about your invoices..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		input:    ti,
		spinner:  sp,
		endpoint: endpoint,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.isFetching {
				return m, nil
			}

			m.isFetching = true
			m.input.SetValue("")
			m.transcript = append(m.transcript, transcriptEntry{role: "user", content: query})

			// The server appends the current message after the history, so
			// the request carries the history as it stood before this turn.
			history := m.conversationHistory
			m.conversationHistory = append(m.conversationHistory, Message{Role: "user", Content: query})
			m.refreshViewport()

			return m, tea.Batch(
				m.spinner.Tick,
				sendChat(m.endpoint, query, history),
			)

		case "ctrl+l":
			m.transcript = nil
			m.conversationHistory = nil
			m.refreshViewport()

			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := strings.Count(logo, "\n") + 3
		footerHeight := 4

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-headerHeight-footerHeight)
			m.ready = true

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(msg.Width-8),
			)
			if err == nil {
				m.glamourRenderer = renderer
			}
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}

		m.input.Width = msg.Width - 8
		m.refreshViewport()

	case ChatResponseMsg:
		m.isFetching = false
		m.transcript = append(m.transcript, transcriptEntry{
			role:     "assistant",
			content:  msg.response,
			metadata: formatMetadata(msg.tool, msg.model),
		})
		m.conversationHistory = append(m.conversationHistory, Message{Role: "assistant", Content: msg.response})
		m.refreshViewport()
		m.input.Focus()

		return m, nil

	case ChatErrorMsg:
		m.isFetching = false
		m.transcript = append(m.transcript, transcriptEntry{
			role:    "error",
			content: msg.err.Error(),
		})
		m.refreshViewport()
		m.input.Focus()

		return m, nil

	case spinner.TickMsg:
		if m.isFetching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)

			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  [Enter: Send] [Ctrl+L: Clear] [Ctrl+C: Exit]"))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	b.WriteString(inputBoxStyle.Width(m.width - 4).Render(m.input.View()))
	b.WriteString("\n")

	if m.isFetching {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%s thinking...", m.spinner.View())))
	}

	return b.String()
}

// rebuilds the viewport content from the transcript and scrolls to the
// bottom
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	var b strings.Builder

	for _, entry := range m.transcript {
		switch entry.role {
		case "user":
			b.WriteString(userLabelStyle.Render("you"))
			b.WriteString("\n")
			b.WriteString(entry.content)

		case "assistant":
			b.WriteString(assistantLabelStyle.Render("invosight"))
			b.WriteString("\n")
			b.WriteString(m.renderMarkdown(entry.content))

			if entry.metadata != "" {
				b.WriteString(metadataStyle.Render(entry.metadata))
				b.WriteString("\n")
			}

		case "error":
			b.WriteString(errorStyle.Render("error"))
			b.WriteString("\n")
			b.WriteString(entry.content)
		}

		b.WriteString("\n\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *Model) renderMarkdown(content string) string {
	if m.glamourRenderer == nil {
		return content + "\n"
	}

	rendered, err := m.glamourRenderer.Render(content)
	if err != nil {
		return content + "\n"
	}

	return rendered
}
