package ui

import (
	"time"

	"agripredict/internal/notify"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const noticeMaxWidth = 48

// expireNoticeCmd schedules the expiry of notice n.
func expireNoticeCmd(n notify.Notice, after time.Duration) tea.Cmd {
	id := n.ID
	return tea.Tick(after, func(time.Time) tea.Msg {
		return noticeExpiredMsg{ID: id}
	})
}

// renderNotice draws a notice with a severity-colored left border.
func renderNotice(n notify.Notice) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(severityColor(n.Severity))).
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1).
		MaxWidth(noticeMaxWidth)
	return style.Render(n.Message)
}
