// Package tui runs arcade games in the terminal with Bubble Tea: the fixed-rate
// game loop, key mapping, the game picker, the run history and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg. Rates of zero or less fall back to 60 Hz.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
