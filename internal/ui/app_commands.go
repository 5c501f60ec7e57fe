package ui

import (
	"agripredict/internal/notify"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleKey routes a key press. ctrl+c always quits; otherwise the top
// modal sees the key first, then the keybind registry, then the page.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return cmd
	}
	if consumed, cmd := a.KeyHandler.Handle(msg, a.Section); consumed {
		return cmd
	}
	if p, ok := a.Pages[a.Section]; ok {
		_, cmd := p.Update(msg)
		return cmd
	}
	return nil
}

// handleCommand executes a bound command.
func (a *appModelAdapter) handleCommand(c Command) tea.Cmd {
	a.Log.Debug("command", zap.Stringer("command", c), zap.Stringer("section", a.Section))

	if s, ok := sectionCommands[c]; ok {
		a.goTo(s)
		return nil
	}
	if t, ok := tabCommands[c]; ok {
		a.goTo(SectionDashboard)
		return a.selectTab(t)
	}

	switch c {
	case CmdQuit:
		return a.quit()
	case CmdNextTab:
		from := a.Tabs.Active()
		return a.afterTabChange(from, a.Tabs.Next())
	case CmdPrevTab:
		from := a.Tabs.Active()
		return a.afterTabChange(from, a.Tabs.Prev())
	case CmdFocusNext, CmdFocusPrev:
		if chart, ok := a.Charts.For(a.Tabs.Active()); ok {
			delta := 1
			if c == CmdFocusPrev {
				delta = -1
			}
			chart.Focus(delta)
		}
		return nil
	case CmdOpenEstimator:
		return a.openEstimator()
	case CmdComingSoon:
		return a.showComingSoon()
	case CmdCloseModal:
		a.closeModal()
		return nil
	case CmdNotifyMe:
		a.closeModal()
		return a.Notify("Thanks for your interest! We'll notify you when this feature is ready.", notify.Info)
	case CmdContactEmail:
		a.Log.Info("contact", zap.String("channel", "email"), zap.String("to", a.Data.Contact().Email))
		return a.Notify("Opening email client...", notify.Info)
	case CmdContactGitHub:
		a.Log.Info("contact", zap.String("channel", "github"), zap.String("to", a.Data.Contact().GitHub))
		return a.Notify("Opening link in new tab...", notify.Info)
	case CmdContactLinkedIn:
		a.Log.Info("contact", zap.String("channel", "linkedin"), zap.String("to", a.Data.Contact().LinkedIn))
		return a.Notify("Opening link in new tab...", notify.Info)
	}
	return nil
}

// Notify shows message, replacing any visible notice, and schedules its
// expiry. An expiry for a replaced notice is ignored.
func (m *AppModel) Notify(message string, sev notify.Severity) tea.Cmd {
	n := m.Notices.Notify(message, sev)
	m.Log.Debug("notice", zap.Uint64("id", n.ID), zap.Stringer("severity", n.Severity), zap.String("message", message))
	return expireNoticeCmd(n, m.Notices.Duration)
}

func (m *AppModel) goTo(s Section) {
	if m.Section == s {
		return
	}
	m.Log.Debug("section", zap.Stringer("from", m.Section), zap.Stringer("to", s))
	m.Section = s
}

func (m *AppModel) quit() tea.Cmd {
	m.Close()
	return tea.Quit
}
