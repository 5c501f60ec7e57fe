package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition for modals and pages; it follows Bubble
// Tea's Init/Update/View but returns the concrete View from Update.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
