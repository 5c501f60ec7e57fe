package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// SwitchTab activates the named dashboard tab and schedules a redraw of its
// chart. Unknown names change nothing and return nil.
func (m *AppModel) SwitchTab(name string) tea.Cmd {
	t, ok := ParseTab(name)
	if !ok {
		m.Log.Debug("ignoring unknown tab", zap.String("tab", name))
		return nil
	}
	return m.selectTab(t)
}

func (m *AppModel) selectTab(t Tab) tea.Cmd {
	from := m.Tabs.Active()
	if !m.Tabs.Select(t) {
		return nil
	}
	return m.afterTabChange(from, t)
}

// afterTabChange records the switch and debounces the chart redraw so the
// chart lays out against the tab it now sits in.
func (m *AppModel) afterTabChange(from, to Tab) tea.Cmd {
	m.Log.Debug("tab switched", zap.Stringer("from", from), zap.Stringer("to", to))
	m.Telemetry.RecordTabSwitch(context.Background(), from.String(), to.String())
	m.redrawTab = to
	return m.redraw.Trigger()
}

// handleWindowSize stores the terminal size and debounces the chart resize.
func (a *appModelAdapter) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	a.width, a.height = msg.Width, msg.Height
	a.Dashboard.Update(msg)
	return a.resize.Trigger()
}

// handleDebounce runs whichever debounced action msg belongs to. Stale
// ticks from superseded triggers are dropped.
func (a *appModelAdapter) handleDebounce(msg debounceMsg) {
	switch {
	case a.resize.Fire(msg):
		a.Charts.ResizeAll(a.chartWidth(), a.chartHeight())
		for _, p := range a.Pages {
			p.Resize(a.width, a.pageHeight())
		}
		a.Log.Debug("resized", zap.Int("width", a.width), zap.Int("height", a.height))
	case a.redraw.Fire(msg):
		if chart, ok := a.Charts.For(a.redrawTab); ok {
			chart.Resize(a.chartWidth(), a.chartHeight())
		}
	}
}
