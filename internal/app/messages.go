package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg refreshes the history panel so its relative timestamps stay
// current while it is open.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
