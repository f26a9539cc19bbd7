// Package tui provides the Bubble Tea integration: the terminal loop,
// key-to-action mapping, screen rendering, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation frame. It carries the send time so the
// model can derive the real elapsed delta between frames.
type TickMsg time.Time

// tickCmd returns a command that emits tick messages at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
