package ui

// RegionID names a render region the app reads from and writes into.
type RegionID string

const (
	RegionYieldChart     RegionID = "yield-chart"
	RegionPestChart      RegionID = "pest-chart"
	RegionWeatherChart   RegionID = "weather-chart"
	RegionEstimateForm   RegionID = "estimate-form"
	RegionEstimateResult RegionID = "estimate-result"
	RegionComingSoon     RegionID = "coming-soon-modal"
)

// Region is a handle to a named area: its text content and visibility.
type Region struct {
	ID      RegionID
	Content string
	Visible bool
}

// Regions is the map of render regions available to the session.
type Regions struct {
	byID map[RegionID]*Region
}

// NewRegions creates hidden, empty regions for ids.
func NewRegions(ids ...RegionID) *Regions {
	r := &Regions{byID: make(map[RegionID]*Region, len(ids))}
	for _, id := range ids {
		r.byID[id] = &Region{ID: id}
	}
	return r
}

// DefaultRegions returns every region the app knows how to render.
func DefaultRegions() *Regions {
	return NewRegions(
		RegionYieldChart,
		RegionPestChart,
		RegionWeatherChart,
		RegionEstimateForm,
		RegionEstimateResult,
		RegionComingSoon,
	)
}

// Get returns the region handle for id.
func (r *Regions) Get(id RegionID) (*Region, bool) {
	if r == nil {
		return nil, false
	}
	reg, ok := r.byID[id]
	return reg, ok
}

// Remove drops a region; later lookups report it missing.
func (r *Regions) Remove(id RegionID) {
	if r != nil {
		delete(r.byID, id)
	}
}

// Show sets content and makes the region visible. It reports whether the
// region exists.
func (r *Regions) Show(id RegionID, content string) bool {
	reg, ok := r.Get(id)
	if !ok {
		return false
	}
	reg.Content = content
	reg.Visible = true
	return true
}
