// Package tui provides the Bubble Tea host for the race.
// It owns the tick loop, turns terminal key presses into held keys, draws the
// game onto a cell buffer and presents the winner.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen ties the message to one tick chain so a stale chain dies out.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd schedules the next tick of chain gen.
// Only the handler of a tick schedules the next one, so ticks never overlap.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
