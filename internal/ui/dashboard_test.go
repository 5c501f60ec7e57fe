package ui

import (
	"strings"
	"testing"

	"agripredict/internal/dataset"

	tea "github.com/charmbracelet/bubbletea"
)

func testDashboard() *DashboardView {
	data := dataset.Default()
	regions := DefaultRegions()
	tabs := NewTabController()
	return &DashboardView{Tabs: tabs, Charts: NewChartSet(data, regions), Regions: regions, Data: data}
}

func TestDashboardView_TabBarMarksActiveTab(t *testing.T) {
	d := testDashboard()
	view := d.View()
	for _, tab := range Tabs {
		if !strings.Contains(view, tab.Title()) {
			t.Errorf("tab bar should contain %q", tab.Title())
		}
	}
	if !strings.Contains(view, "Predicted Yield") {
		t.Errorf("yield tab should show the yield chart, got:\n%s", view)
	}
}

func TestDashboardView_ShowsActiveChart(t *testing.T) {
	d := testDashboard()

	d.Tabs.Select(TabPest)
	if view := d.View(); !strings.Contains(view, "Pest Risk Score") {
		t.Errorf("pest tab should show the pest chart, got:\n%s", view)
	}
	d.Tabs.Select(TabWeather)
	if view := d.View(); !strings.Contains(view, "Weather Forecast") {
		t.Errorf("weather tab should show the weather chart, got:\n%s", view)
	}
}

func TestDashboardView_RecommendationCards(t *testing.T) {
	d := testDashboard()
	d.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	d.Tabs.Select(TabRecommendations)

	view := d.View()
	for _, r := range d.Data.Recommendations() {
		if !strings.Contains(view, r.Title) {
			t.Errorf("recommendations should contain %q", r.Title)
		}
	}
	if !strings.Contains(view, "High priority") {
		t.Errorf("expected a priority badge, got:\n%s", view)
	}
}

func TestDashboardView_MissingChartShowsPlaceholder(t *testing.T) {
	data := dataset.Default()
	regions := NewRegions(RegionEstimateForm, RegionEstimateResult)
	d := &DashboardView{Tabs: NewTabController(), Charts: NewChartSet(data, regions), Regions: regions, Data: data}

	if view := d.View(); !strings.Contains(view, "Chart unavailable") {
		t.Errorf("expected placeholder when the chart region is missing, got:\n%s", view)
	}
}

func TestDashboardView_ShowsEstimateResultWhenVisible(t *testing.T) {
	d := testDashboard()
	if strings.Contains(d.View(), "Confidence Level") {
		t.Fatal("hidden result should not render")
	}
	d.Regions.Show(RegionEstimateResult, "Confidence Level: 90%")
	if !strings.Contains(d.View(), "Confidence Level: 90%") {
		t.Error("visible result should render on the yield tab")
	}
}
