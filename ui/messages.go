package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval is how often the model polls the job channel.
const tickInterval = 50 * time.Millisecond

// tickMsg drives the poll loop while the TUI is open.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
