package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}

// RenderKeybindHelp produces the transient help box shown after SPC.
// When the handler holds a partial sequence (e.g. "SPC g"), it shows the
// next level instead.
func RenderKeybindHelp(keyHandler *KeyHandler, section Section) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	km := NewKeyMap(keyHandler, section)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)
	prefix := keyHandler.CurrentSeq()
	if prefix == "" {
		prefix = "SPC"
	}
	return boxStyle.Render(Styles.Muted.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings))
}

// RenderSectionHints renders the footer of single-key bindings for section.
func RenderSectionHints(reg *KeybindRegistry, section Section) string {
	if reg == nil {
		return ""
	}
	bindings := sortedBindings(reg.SectionHints(section))
	return Styles.Hint.Render("SPC: commands  ") + newHelpModel().ShortHelpView(bindings)
}
