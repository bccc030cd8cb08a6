package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/invosight/server/internal/tui"
)

func main() {
	endpoint := os.Getenv("INVOSIGHT_CHAT_ENDPOINT")

	if endpoint == "" {
		endpoint = "http://localhost:8080/api/v1/chat"
	}

	app := tui.NewApp(endpoint)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running invosight tui: %v\n", err)
		os.Exit(1)
	}
}
