package ui

import (
	"testing"
	"time"
)

func TestDebouncer_OnlyLatestTriggerFires(t *testing.T) {
	d := NewDebouncer("resize", 250*time.Millisecond)

	first := d.Trigger()
	second := d.Trigger()
	if first == nil || second == nil {
		t.Fatal("Trigger should return a tick command")
	}

	stale := debounceMsg{Key: "resize", Gen: 1}
	latest := debounceMsg{Key: "resize", Gen: 2}
	if d.Fire(stale) {
		t.Error("superseded tick should not fire")
	}
	if !d.Pending() {
		t.Error("latest tick should still be pending")
	}
	if !d.Fire(latest) {
		t.Error("latest tick should fire")
	}
	if d.Fire(latest) {
		t.Error("a tick fires at most once")
	}
}

func TestDebouncer_KeysDoNotCross(t *testing.T) {
	resize := NewDebouncer("resize", time.Millisecond)
	redraw := NewDebouncer("redraw", time.Millisecond)
	resize.Trigger()
	redraw.Trigger()

	if resize.Fire(debounceMsg{Key: "redraw", Gen: 1}) {
		t.Error("resize should ignore redraw ticks")
	}
	if !redraw.Fire(debounceMsg{Key: "redraw", Gen: 1}) {
		t.Error("redraw should fire on its own tick")
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer("redraw", time.Millisecond)
	d.Trigger()
	d.Cancel()
	if d.Pending() {
		t.Error("Cancel should clear the pending delivery")
	}
	if d.Fire(debounceMsg{Key: "redraw", Gen: 1}) {
		t.Error("cancelled tick should not fire")
	}
}
