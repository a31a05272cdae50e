// Package tui runs the platformer in a terminal through Bubble Tea. It maps
// keys to game actions, drives the tick loop and hosts the title menu, the
// scoreboard viewer and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// runProgram runs a full-screen program and returns its final model.
func runProgram[M tea.Model](model M) (M, error) {
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(M); ok {
		return fm, nil
	}
	return model, nil
}
