package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ComingSoonModal announces a feature that is not available yet.
// Enter or n registers interest; Esc closes.
type ComingSoonModal struct {
	Title string
	Label string
}

// Ensure ComingSoonModal implements View.
var _ View = (*ComingSoonModal)(nil)

// NewComingSoonModal creates the coming-soon modal.
func NewComingSoonModal() *ComingSoonModal {
	return &ComingSoonModal{
		Title: "Coming soon",
		Label: "We're working hard to bring you this feature.\nStay tuned for updates!",
	}
}

// Init implements View.
func (m *ComingSoonModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ComingSoonModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q":
			return m, CmdCloseModal.Cmd()
		case "enter", "n":
			return m, CmdNotifyMe.Cmd()
		}
	}
	return m, nil
}

// View implements View.
func (m *ComingSoonModal) View() string {
	content := Styles.Title.Render(m.Title) + "\n\n"
	content += Styles.Normal.Render(m.Label) + "\n\n"
	content += Styles.Hint.Render("Enter: notify me  Esc: close")
	return Styles.Box.Render(content)
}
