// Package tui provides the Bubble Tea integration for the arcade.
// It handles the terminal UI loop, input mapping, and screen routing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Epoch ties it to the
// scheduler stream that produced it.
type TickMsg struct {
	Epoch uint64
	Time  time.Time
}

// tickCmd returns a command that delivers one tick for epoch after interval.
func tickCmd(interval time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, Time: t}
	})
}
