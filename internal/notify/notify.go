// Package notify tracks the single transient notice shown to the user.
//
// Notices replace each other instead of queueing. Each notice carries an ID
// so that an expiry scheduled for an older notice cannot dismiss a newer one.
package notify

import (
	"fmt"
	"time"
)

// DefaultDuration is how long a notice stays visible.
const DefaultDuration = 3 * time.Second

// Severity selects how a notice is styled.
type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ParseSeverity maps "info", "success", "warning" and "error" to a Severity.
// Anything else is Info, matching the default styling.
func ParseSeverity(s string) Severity {
	switch s {
	case "success":
		return Success
	case "warning":
		return Warning
	case "error":
		return Error
	default:
		return Info
	}
}

// Notice is one visible message.
type Notice struct {
	ID       uint64
	Message  string
	Severity Severity
	Shown    time.Time
}

// Center holds at most one visible notice.
type Center struct {
	Duration time.Duration
	now      func() time.Time
	current  *Notice
	nextID   uint64
}

// NewCenter creates a Center whose notices last d (DefaultDuration if d <= 0).
func NewCenter(d time.Duration) *Center {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Center{Duration: d, now: time.Now}
}

// Notify replaces the visible notice and returns the new one.
func (c *Center) Notify(message string, sev Severity) Notice {
	c.nextID++
	n := Notice{ID: c.nextID, Message: message, Severity: sev, Shown: c.now()}
	c.current = &n
	return n
}

// Expire dismisses the notice with the given ID if it is still visible.
// It reports whether anything was dismissed.
func (c *Center) Expire(id uint64) bool {
	if c.current == nil || c.current.ID != id {
		return false
	}
	c.current = nil
	return true
}

// Dismiss hides whatever notice is visible.
func (c *Center) Dismiss() {
	c.current = nil
}

// Current returns the visible notice, if any.
func (c *Center) Current() (Notice, bool) {
	if c.current == nil {
		return Notice{}, false
	}
	return *c.current, true
}
