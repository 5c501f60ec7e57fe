// Package dataset holds the read-only sample records rendered by the dashboard:
// yield predictions, pest risks, weather readings and recommendations.
package dataset

import (
	_ "embed"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

// DateLayout is the layout of WeatherRecord dates in the source data.
const DateLayout = "2006-01-02"

// RiskLevel is the three-level category derived from a pest risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Risk score thresholds. A score at or above the threshold falls in that level.
const (
	RiskMediumThreshold = 40
	RiskHighThreshold   = 70
)

// RiskLevelForScore maps a 0-100 risk score to its level.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score >= RiskHighThreshold:
		return RiskHigh
	case score >= RiskMediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Priority ranks a recommendation.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Rank orders priorities High < Medium < Low for sorting.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// RecommendationType classifies a recommendation.
type RecommendationType string

const (
	RecommendIrrigation  RecommendationType = "irrigation"
	RecommendFertilizer  RecommendationType = "fertilizer"
	RecommendPestControl RecommendationType = "pest_control"
)

// Label returns a human-readable label ("pest_control" -> "Pest control").
func (t RecommendationType) Label() string {
	switch t {
	case RecommendIrrigation:
		return "Irrigation"
	case RecommendFertilizer:
		return "Fertilizer"
	case RecommendPestControl:
		return "Pest control"
	default:
		return string(t)
	}
}

// YieldRecord is a stored yield prediction for a crop in a region.
type YieldRecord struct {
	Crop           string  `yaml:"crop"`
	Region         string  `yaml:"region"`
	PredictedYield float64 `yaml:"predicted_yield"` // tons/hectare
	Temperature    float64 `yaml:"temperature"`     // °C
	Rainfall       float64 `yaml:"rainfall"`        // mm
	SoilPH         float64 `yaml:"soil_ph"`
}

// PestRecord is a pest threat for a crop in a region.
type PestRecord struct {
	Crop      string    `yaml:"crop"`
	Pest      string    `yaml:"pest"`
	RiskLevel RiskLevel `yaml:"risk_level"`
	RiskScore int       `yaml:"risk_score"`
	Region    string    `yaml:"region"`
}

// WeatherRecord is one day of weather readings.
type WeatherRecord struct {
	Date            time.Time `yaml:"-"`
	RawDate         string    `yaml:"date"`
	TempMax         float64   `yaml:"temp_max"`
	TempMin         float64   `yaml:"temp_min"`
	HumidityPct     float64   `yaml:"humidity"`
	PrecipitationMm float64   `yaml:"precipitation"`
	WindSpeed       float64   `yaml:"wind_speed"`
}

// Recommendation is an actionable suggestion for a crop.
type Recommendation struct {
	Type        RecommendationType `yaml:"type"`
	Title       string             `yaml:"title"`
	Description string             `yaml:"description"`
	Priority    Priority           `yaml:"priority"`
	Crop        string             `yaml:"crop"`
}

// Statistics are the headline figures shown on the home section.
type Statistics struct {
	YieldIncrease string `yaml:"yield_increase"`
	CostReduction string `yaml:"cost_reduction"`
	FarmersServed string `yaml:"farmers_served"`
	AccuracyRate  string `yaml:"accuracy_rate"`
}

// Contact is the team block shown on the about section.
type Contact struct {
	Team     string `yaml:"team"`
	Tagline  string `yaml:"tagline"`
	Email    string `yaml:"email"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	About    string `yaml:"about"`
}

type document struct {
	Contact         Contact          `yaml:"contact"`
	Yield           []YieldRecord    `yaml:"yield"`
	Pests           []PestRecord     `yaml:"pests"`
	Weather         []WeatherRecord  `yaml:"weather"`
	Recommendations []Recommendation `yaml:"recommendations"`
	Crops           []string         `yaml:"crops"`
	Regions         []string         `yaml:"regions"`
	Statistics      Statistics       `yaml:"statistics"`
}

// Dataset is an immutable table of sample records.
// Accessors return copies; the underlying slices are never exposed.
type Dataset struct {
	doc document
}

// Default returns the embedded sample dataset.
// It panics if the embedded data is malformed, which is a build defect.
func Default() *Dataset {
	d, err := Parse(sampleYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded dataset: %v", err))
	}
	return d
}

// Parse decodes and validates a dataset document.
func Parse(data []byte) (*Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	for i := range doc.Weather {
		t, err := time.Parse(DateLayout, doc.Weather[i].RawDate)
		if err != nil {
			return nil, fmt.Errorf("weather[%d] date %q: %w", i, doc.Weather[i].RawDate, err)
		}
		doc.Weather[i].Date = t
	}
	d := &Dataset{doc: doc}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dataset) validate() error {
	for i, p := range d.doc.Pests {
		if p.RiskScore < 0 || p.RiskScore > 100 {
			return fmt.Errorf("pest %q: risk score %d out of range [0,100]", p.Pest, p.RiskScore)
		}
		if want := RiskLevelForScore(p.RiskScore); p.RiskLevel != want {
			return fmt.Errorf("pest[%d] %q: risk level %s does not match score %d (want %s)", i, p.Pest, p.RiskLevel, p.RiskScore, want)
		}
	}
	sorted := sort.SliceIsSorted(d.doc.Weather, func(i, j int) bool {
		return d.doc.Weather[i].Date.Before(d.doc.Weather[j].Date)
	})
	if !sorted {
		return fmt.Errorf("weather records are not ordered by date")
	}
	for _, r := range d.doc.Recommendations {
		switch r.Priority {
		case PriorityLow, PriorityMedium, PriorityHigh:
		default:
			return fmt.Errorf("recommendation %q: unknown priority %q", r.Title, r.Priority)
		}
	}
	return nil
}

// Yield returns the stored yield records.
func (d *Dataset) Yield() []YieldRecord {
	return append([]YieldRecord(nil), d.doc.Yield...)
}

// Pests returns the stored pest records.
func (d *Dataset) Pests() []PestRecord {
	return append([]PestRecord(nil), d.doc.Pests...)
}

// Weather returns the weather records ordered by date.
func (d *Dataset) Weather() []WeatherRecord {
	return append([]WeatherRecord(nil), d.doc.Weather...)
}

// Recommendations returns the recommendations in source order.
func (d *Dataset) Recommendations() []Recommendation {
	return append([]Recommendation(nil), d.doc.Recommendations...)
}

// Crops returns the crops offered by the estimator form.
func (d *Dataset) Crops() []string {
	return append([]string(nil), d.doc.Crops...)
}

// Regions returns the regions offered by the estimator form.
func (d *Dataset) Regions() []string {
	return append([]string(nil), d.doc.Regions...)
}

// Statistics returns the headline figures.
func (d *Dataset) Statistics() Statistics {
	return d.doc.Statistics
}

// Contact returns the team contact block.
func (d *Dataset) Contact() Contact {
	return d.doc.Contact
}

// FindYield returns the stored record for crop and region, if any.
// Matching is exact, as in the form's select values.
func (d *Dataset) FindYield(crop, region string) (YieldRecord, bool) {
	for _, r := range d.doc.Yield {
		if r.Crop == crop && r.Region == region {
			return r, true
		}
	}
	return YieldRecord{}, false
}
