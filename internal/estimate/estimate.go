// Package estimate produces crop yield estimates from the sample dataset.
//
// A stored prediction for the exact crop and region is returned as is.
// Anything else gets a synthetic figure: a per-crop base yield scaled by a
// soil-pH penalty and a bounded random jitter.
package estimate

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"agripredict/internal/dataset"
)

const (
	// DefaultBaseYield applies to crops with no base yield constant (t/ha).
	DefaultBaseYield = 4.0
	// DefaultOptimalPH applies to crops with no optimal pH constant.
	DefaultOptimalPH = 6.5

	phPenaltyPerUnit = 0.1
	phAdjustmentMin  = 0.8

	jitterMin  = 0.9
	jitterSpan = 0.2

	confidenceMin  = 88
	confidenceSpan = 8
)

var baseYields = map[string]float64{
	"Wheat":    4.2,
	"Corn":     9.8,
	"Soybeans": 3.1,
	"Rice":     4.5,
	"Cotton":   2.8,
	"Barley":   3.9,
}

var optimalPH = map[string]float64{
	"Wheat":    6.5,
	"Corn":     6.2,
	"Soybeans": 6.8,
	"Rice":     6.0,
	"Cotton":   6.2,
	"Barley":   6.8,
}

// Result is a transient estimate for one request.
type Result struct {
	Crop           string
	Region         string
	PredictedYield float64 // tons/hectare, one decimal
	SoilPH         float64
	ConfidencePct  int
	FromRecord     bool // true when a stored prediction matched
}

// Estimator answers yield requests against a dataset.
// It is not safe for concurrent use; the UI calls it from its update loop.
type Estimator struct {
	data *dataset.Dataset
	rng  *rand.Rand
}

// New creates an Estimator drawing noise from src.
// A nil src seeds from the clock, so results are not reproducible.
func New(data *dataset.Dataset, src rand.Source) *Estimator {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>1)
	}
	return &Estimator{data: data, rng: rand.New(src)}
}

// NewSeeded creates an Estimator whose noise is fully determined by seed.
func NewSeeded(data *dataset.Dataset, seed uint64) *Estimator {
	return New(data, rand.NewPCG(seed, seed))
}

// Estimate returns the yield estimate for crop, region and soil pH.
// soilPH must already be validated (see ParsePH).
func (e *Estimator) Estimate(crop, region string, soilPH float64) Result {
	if e.data != nil {
		if rec, ok := e.data.FindYield(crop, region); ok {
			return Result{
				Crop:           rec.Crop,
				Region:         rec.Region,
				PredictedYield: rec.PredictedYield,
				SoilPH:         rec.SoilPH,
				ConfidencePct:  e.confidence(),
				FromRecord:     true,
			}
		}
	}

	adj := PHAdjustment(soilPH, OptimalPH(crop))
	jitter := jitterMin + e.rng.Float64()*jitterSpan
	return Result{
		Crop:           crop,
		Region:         region,
		PredictedYield: roundTenth(BaseYield(crop) * adj * jitter),
		SoilPH:         soilPH,
		ConfidencePct:  e.confidence(),
	}
}

func (e *Estimator) confidence() int {
	return confidenceMin + e.rng.IntN(confidenceSpan)
}

// BaseYield returns the base yield constant for crop, or DefaultBaseYield.
func BaseYield(crop string) float64 {
	if v, ok := baseYields[crop]; ok {
		return v
	}
	return DefaultBaseYield
}

// OptimalPH returns the optimal soil pH for crop, or DefaultOptimalPH.
func OptimalPH(crop string) float64 {
	if v, ok := optimalPH[crop]; ok {
		return v
	}
	return DefaultOptimalPH
}

// PHAdjustment is the linear pH penalty, floored at 0.8.
func PHAdjustment(soilPH, optimal float64) float64 {
	return math.Max(phAdjustmentMin, 1-phPenaltyPerUnit*math.Abs(soilPH-optimal))
}

// ParsePH validates user input for the soil pH field.
func ParsePH(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("soil pH is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("soil pH %q is not a number", s)
	}
	if v < 0 || v > 14 {
		return 0, fmt.Errorf("soil pH %g is outside 0-14", v)
	}
	return v, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
