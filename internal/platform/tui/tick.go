// Package tui runs a game inside a Bubble Tea program.
// It owns the fixed tick loop, maps keys and mouse to game input, and
// routes game events to audio, the round log and the logger.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swipey/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval is the wall-clock time between ticks at the given rate.
// Rates of zero or less use core.DefaultTickRate, matching RuntimeConfig.DT.
func tickInterval(tickRate int) time.Duration {
	return time.Second / time.Duration(core.RuntimeConfig{TickRate: tickRate}.Rate())
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
