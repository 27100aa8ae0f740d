// Package tui provides the Bubble Tea front end for the carrot field.
// It handles the terminal UI loop, mouse and key mapping, and turns
// controller effects into field, sound and display updates.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carrot-field/internal/game"
)

// FrameMsg is sent to advance animations and redraw.
type FrameMsg time.Time

// CountdownMsg delivers one countdown second to the controller.
type CountdownMsg struct {
	Token game.TimerToken
}

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// countdownCmd schedules the tick requested by a ScheduleTick effect.
func countdownCmd(token game.TimerToken, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return CountdownMsg{Token: token}
	})
}
