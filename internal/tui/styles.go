package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorBlue      = lipgloss.Color("#5F87FF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	metadataStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Bold(true)

	inputBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)
)

const logo = `
  ██╗███╗   ██╗██╗   ██╗ ██████╗ ███████╗██╗ ██████╗ ██╗  ██╗████████╗
  ██║████╗  ██║██║   ██║██╔═══██╗██╔════╝██║██╔════╝ ██║  ██║╚══██╔══╝
  ██║██╔██╗ ██║██║   ██║██║   ██║███████╗██║██║  ███╗███████║   ██║
  ██║██║╚██╗██║╚██╗ ██╔╝██║   ██║╚════██║██║██║   ██║██╔══██║   ██║
  ██║██║ ╚████║ ╚████╔╝ ╚██████╔╝███████║██║╚██████╔╝██║  ██║   ██║
  ╚═╝╚═╝  ╚═══╝  ╚═══╝   ╚═════╝ ╚══════╝╚═╝ ╚═════╝ ╚═╝  ╚═╝   ╚═╝
`
