package ui

import "testing"

func TestRegions_GetShowRemove(t *testing.T) {
	r := DefaultRegions()

	reg, ok := r.Get(RegionEstimateResult)
	if !ok {
		t.Fatal("expected estimate-result region")
	}
	if reg.Visible || reg.Content != "" {
		t.Errorf("new region should be hidden and empty, got %+v", reg)
	}

	if !r.Show(RegionEstimateResult, "9.8 tons/hectare") {
		t.Fatal("Show on an existing region should succeed")
	}
	if !reg.Visible || reg.Content != "9.8 tons/hectare" {
		t.Errorf("Show should update the shared handle, got %+v", reg)
	}

	r.Remove(RegionEstimateResult)
	if _, ok := r.Get(RegionEstimateResult); ok {
		t.Error("removed region should be missing")
	}
	if r.Show(RegionEstimateResult, "x") {
		t.Error("Show on a missing region should report false")
	}
}

func TestRegions_NilIsEmpty(t *testing.T) {
	var r *Regions
	if _, ok := r.Get(RegionYieldChart); ok {
		t.Error("nil Regions should have no regions")
	}
	r.Remove(RegionYieldChart)
}
