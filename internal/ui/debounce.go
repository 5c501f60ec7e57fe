package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceMsg is delivered when a debounce timer elapses.
type debounceMsg struct {
	Key string
	Gen uint64
}

// Debouncer coalesces repeated triggers into one delivery after Wait.
// A trigger inside the wait window supersedes the pending one: its tick still
// arrives, but Fire rejects it because the generation moved on.
type Debouncer struct {
	Key  string
	Wait time.Duration
	gen  uint64
	live bool
}

// NewDebouncer creates a debouncer whose messages carry key.
func NewDebouncer(key string, wait time.Duration) *Debouncer {
	return &Debouncer{Key: key, Wait: wait}
}

// Trigger (re)schedules delivery and returns the timer command.
func (d *Debouncer) Trigger() tea.Cmd {
	d.gen++
	d.live = true
	key, gen := d.Key, d.gen
	return tea.Tick(d.Wait, func(time.Time) tea.Msg {
		return debounceMsg{Key: key, Gen: gen}
	})
}

// Fire reports whether msg is the latest pending tick for this debouncer.
// A successful Fire consumes the pending delivery.
func (d *Debouncer) Fire(msg debounceMsg) bool {
	if !d.live || msg.Key != d.Key || msg.Gen != d.gen {
		return false
	}
	d.live = false
	return true
}

// Cancel drops the pending delivery, if any.
func (d *Debouncer) Cancel() {
	d.live = false
}

// Pending reports whether a delivery is scheduled.
func (d *Debouncer) Pending() bool {
	return d.live
}
