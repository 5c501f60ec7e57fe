package ui

import (
	"fmt"

	"agripredict/internal/dataset"
	"agripredict/internal/ui/textutil"
)

// YieldPoints builds the yield bar chart input: predicted yield per crop,
// with region and growing conditions as tooltip lines.
func YieldPoints(records []dataset.YieldRecord) []Point {
	points := make([]Point, len(records))
	for i, r := range records {
		points[i] = Point{
			Label: r.Crop,
			Value: r.PredictedYield,
			Meta: []string{
				"Region: " + r.Region,
				fmt.Sprintf("Temperature: %s°C", textutil.Number(r.Temperature)),
				fmt.Sprintf("Rainfall: %smm", textutil.Number(r.Rainfall)),
				fmt.Sprintf("Soil pH: %s", textutil.Number(r.SoilPH)),
			},
		}
	}
	return points
}

// PestPoints builds the pest donut input: risk score per "pest (crop)",
// colored by risk level.
func PestPoints(records []dataset.PestRecord) []Point {
	points := make([]Point, len(records))
	for i, r := range records {
		points[i] = Point{
			Label: fmt.Sprintf("%s (%s)", r.Pest, r.Crop),
			Value: float64(r.RiskScore),
			Color: RiskColor(r.RiskLevel),
			Meta: []string{
				fmt.Sprintf("Risk Score: %d", r.RiskScore),
				fmt.Sprintf("Risk Level: %s", r.RiskLevel),
				"Region: " + r.Region,
			},
		}
	}
	return points
}

// WeatherSeries builds the weather line chart input: "Aug 24" style labels
// and max/min temperature plus precipitation series.
func WeatherSeries(records []dataset.WeatherRecord) ([]string, []Series) {
	labels := make([]string, len(records))
	maxT := Series{Name: "Max Temperature (°C)", Color: ColorRiskHigh}
	minT := Series{Name: "Min Temperature (°C)", Color: ColorRiskLow}
	rain := Series{Name: "Precipitation (mm)", Color: ColorRiskOther}
	for i, r := range records {
		labels[i] = r.Date.Format("Jan 2")
		maxT.Values = append(maxT.Values, r.TempMax)
		minT.Values = append(minT.Values, r.TempMin)
		rain.Values = append(rain.Values, r.PrecipitationMm)
	}
	return labels, []Series{maxT, minT, rain}
}

// ChartSet owns the dashboard's chart instances. A chart whose region is
// missing is never created.
type ChartSet struct {
	charts map[Tab]Chart
}

// NewChartSet builds the charts for every chart region present in regions.
func NewChartSet(data *dataset.Dataset, regions *Regions) *ChartSet {
	s := &ChartSet{charts: make(map[Tab]Chart)}
	if data == nil {
		return s
	}
	if _, ok := regions.Get(RegionYieldChart); ok {
		s.charts[TabYield] = NewBarChart("Predicted Yield (tons/hectare)", "Yield (tons/hectare)", YieldPoints(data.Yield()))
	}
	if _, ok := regions.Get(RegionPestChart); ok {
		s.charts[TabPest] = NewDonutChart("Pest Risk Score", PestPoints(data.Pests()))
	}
	if _, ok := regions.Get(RegionWeatherChart); ok {
		labels, series := WeatherSeries(data.Weather())
		s.charts[TabWeather] = NewLineChart("Weather Forecast", labels, series)
	}
	return s
}

// For returns the chart shown on tab t.
func (s *ChartSet) For(t Tab) (Chart, bool) {
	if s == nil {
		return nil, false
	}
	c, ok := s.charts[t]
	return c, ok
}

// ResizeAll resizes and redraws every chart.
func (s *ChartSet) ResizeAll(width, height int) {
	if s == nil {
		return
	}
	for _, c := range s.charts {
		c.Resize(width, height)
	}
}

// Len returns the number of live charts.
func (s *ChartSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.charts)
}

// Close drops every chart instance. Later lookups find nothing.
func (s *ChartSet) Close() {
	if s != nil {
		s.charts = map[Tab]Chart{}
	}
}
