package animate

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// FrameMsg is a frame tick addressed to one animation run.
type FrameMsg struct {
	RunID string
	Time  time.Time
}

// Frame schedules the next tick for a, or nil when a is not running.
func Frame(a Animator, interval time.Duration) tea.Cmd {
	if !a.Running() {
		return nil
	}
	id := a.RunID()
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{RunID: id, Time: t}
	})
}

// Step advances a by one interval if msg belongs to its current run and
// returns the follow-up tick. Ticks from stopped or replaced runs are
// dropped so they never touch stale indices.
func Step(a Animator, msg FrameMsg, interval time.Duration) tea.Cmd {
	if !a.Running() || msg.RunID != a.RunID() {
		return nil
	}
	a.Advance(interval)
	return Frame(a, interval)
}
