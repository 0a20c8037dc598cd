// Package tui provides the Bubble Tea front end for the snake game.
// It handles the terminal UI loop, input mapping, and rendering, both for
// local play and for SSH sessions served via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame of the game loop. It carries the time
// the tick fired so the model can compute the real elapsed delta.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified frame rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
