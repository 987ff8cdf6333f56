// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is used when a config leaves the tick rate unset.
const DefaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// TickInterval is the wall-clock length of one simulation step.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// RunLength converts a run's tick count to the time it took to play.
func RunLength(ticks, tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Duration(ticks) * time.Second / time.Duration(tickRate)
}

// FormatRunLength renders a run length as m:ss.
func FormatRunLength(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// tickCmd schedules the next simulation step.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(TickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
