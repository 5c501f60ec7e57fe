package ui

import (
	"fmt"
	"strings"

	"agripredict/internal/dataset"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardView renders the tab bar and the active tab. It owns no state of
// its own: tabs, charts and regions belong to the session.
type DashboardView struct {
	Tabs    *TabController
	Charts  *ChartSet
	Regions *Regions
	Data    *dataset.Dataset
	width   int
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		d.width = msg.Width
	}
	return d, nil
}

// View implements View.
func (d *DashboardView) View() string {
	var b strings.Builder
	b.WriteString(d.tabBar() + "\n\n")
	switch t := d.Tabs.Active(); t {
	case TabYield:
		b.WriteString(d.chartOrPlaceholder(t))
		if reg, ok := d.Regions.Get(RegionEstimateResult); ok && reg.Visible {
			b.WriteString("\n" + Styles.BoxCompact.Render(reg.Content))
		}
		b.WriteString("\n" + Styles.Hint.Render("e: estimate yield for your field  ←/→: inspect bars"))
	case TabPest, TabWeather:
		b.WriteString(d.chartOrPlaceholder(t))
		b.WriteString("\n" + Styles.Hint.Render("←/→: inspect"))
	case TabRecommendations:
		b.WriteString(d.recommendations())
	}
	return b.String()
}

func (d *DashboardView) tabBar() string {
	parts := make([]string, len(Tabs))
	for i, t := range Tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Title())
		if t == d.Tabs.Active() {
			parts[i] = Styles.TabActive.Render(label)
		} else {
			parts[i] = Styles.TabInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (d *DashboardView) chartOrPlaceholder(t Tab) string {
	if c, ok := d.Charts.For(t); ok {
		return c.View()
	}
	return Styles.Empty.Render("Chart unavailable")
}

func (d *DashboardView) recommendations() string {
	if d.Data == nil {
		return Styles.Empty.Render("No recommendations")
	}
	recs := d.Data.Recommendations()
	if len(recs) == 0 {
		return Styles.Empty.Render("No recommendations")
	}
	cardW := max(d.width-4, 40)
	cards := make([]string, len(recs))
	for i, r := range recs {
		header := Styles.Label.Render(r.Title) + "  " + priorityStyle(r.Priority).Render(string(r.Priority)+" priority")
		meta := Styles.Muted.Render(r.Type.Label() + " · " + r.Crop)
		body := lipgloss.NewStyle().Width(cardW - 4).Render(r.Description)
		cards[i] = Styles.Card.Width(cardW).Render(header + "\n" + meta + "\n" + body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
