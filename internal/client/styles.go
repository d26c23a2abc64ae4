package client

import "github.com/charmbracelet/lipgloss"

var (
	noticeStyle = lipgloss.NewStyle().Bold(true)
	warnStyle   = lipgloss.NewStyle().Faint(true)
)
