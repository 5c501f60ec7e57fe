package ui

import (
	"math"
	"strings"
	"testing"

	"agripredict/internal/dataset"
)

func TestYieldPoints(t *testing.T) {
	records := dataset.Default().Yield()
	points := YieldPoints(records)
	if len(points) != len(records) {
		t.Fatalf("expected %d points, got %d", len(records), len(points))
	}
	for i, p := range points {
		if p.Label != records[i].Crop || p.Value != records[i].PredictedYield {
			t.Errorf("point %d = %+v, want crop %q yield %v", i, p, records[i].Crop, records[i].PredictedYield)
		}
		if len(p.Meta) == 0 || !strings.HasPrefix(p.Meta[0], "Region: ") {
			t.Errorf("point %d should carry the region in its tooltip, got %v", i, p.Meta)
		}
	}
}

func TestPestPoints_ColoredByRisk(t *testing.T) {
	records := dataset.Default().Pests()
	points := PestPoints(records)
	for i, p := range points {
		want := records[i].Pest + " (" + records[i].Crop + ")"
		if p.Label != want {
			t.Errorf("label = %q, want %q", p.Label, want)
		}
		if p.Color != RiskColor(records[i].RiskLevel) {
			t.Errorf("%s: color %q does not match risk %s", p.Label, p.Color, records[i].RiskLevel)
		}
	}
}

func TestWeatherSeries(t *testing.T) {
	records := dataset.Default().Weather()
	labels, series := WeatherSeries(records)
	if len(labels) != len(records) {
		t.Fatalf("expected %d labels, got %d", len(records), len(labels))
	}
	if labels[0] != records[0].Date.Format("Jan 2") {
		t.Errorf("label = %q", labels[0])
	}
	if len(series) != 3 {
		t.Fatalf("expected max, min and precipitation series, got %d", len(series))
	}
	for _, s := range series {
		if len(s.Values) != len(records) {
			t.Errorf("%s has %d values, want %d", s.Name, len(s.Values), len(records))
		}
	}
}

func TestDonutChart_SharesSumToOne(t *testing.T) {
	d := NewDonutChart("Pest Risk Score", PestPoints(dataset.Default().Pests()))
	sum := 0.0
	for _, s := range d.Shares() {
		sum += s
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("shares sum to %v, want 1", sum)
	}
}

func TestChart_FocusWrapsAndRedraws(t *testing.T) {
	b := NewBarChart("Yield", "t/ha", []Point{{Label: "a", Value: 1}, {Label: "b", Value: 2}})
	before := b.Redraws()
	b.Focus(-1)
	if b.Focused() != 1 {
		t.Errorf("Focus(-1) from 0 = %d, want 1", b.Focused())
	}
	b.Focus(1)
	if b.Focused() != 0 {
		t.Errorf("Focus(1) from 1 = %d, want 0", b.Focused())
	}
	if b.Redraws() != before+2 {
		t.Errorf("each focus change should redraw, got %d redraws", b.Redraws()-before)
	}
}

func TestChart_EmptyShowsNoData(t *testing.T) {
	for _, c := range []Chart{
		NewBarChart("Yield", "t/ha", nil),
		NewDonutChart("Pests", nil),
		NewLineChart("Weather", nil, nil),
	} {
		if !strings.Contains(c.View(), "No data") {
			t.Errorf("%s: expected empty-state text, got:\n%s", c.Title(), c.View())
		}
	}
}

func TestChartSet_SkipsMissingRegions(t *testing.T) {
	data := dataset.Default()

	all := NewChartSet(data, DefaultRegions())
	if all.Len() != 3 {
		t.Fatalf("expected 3 charts, got %d", all.Len())
	}
	if _, ok := all.For(TabRecommendations); ok {
		t.Error("recommendations has no chart")
	}

	partial := NewChartSet(data, NewRegions(RegionPestChart))
	if partial.Len() != 1 {
		t.Fatalf("expected only the pest chart, got %d", partial.Len())
	}
	if _, ok := partial.For(TabYield); ok {
		t.Error("yield chart should not exist without its region")
	}
}

func TestChartSet_ResizeAllAndClose(t *testing.T) {
	s := NewChartSet(dataset.Default(), DefaultRegions())
	s.ResizeAll(100, 20)
	for _, tab := range []Tab{TabYield, TabPest, TabWeather} {
		c, _ := s.For(tab)
		if c.Redraws() == 0 {
			t.Errorf("%v chart was not redrawn on resize", tab)
		}
	}
	s.Close()
	if s.Len() != 0 {
		t.Errorf("Close should drop all charts, %d left", s.Len())
	}
}
