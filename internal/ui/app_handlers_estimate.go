package ui

import (
	"context"
	"fmt"
	"strings"

	"agripredict/internal/estimate"
	"agripredict/internal/notify"
	"agripredict/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// openEstimator shows the estimate form over the yield tab.
func (a *appModelAdapter) openEstimator() tea.Cmd {
	form, ok := a.Regions.Get(RegionEstimateForm)
	if !ok {
		a.Log.Warn("region missing", zap.String("region", string(RegionEstimateForm)))
		return a.Notify("Estimate form not found", notify.Error)
	}
	if a.Overlays.Has(RegionEstimateForm) {
		return nil
	}
	a.goTo(SectionDashboard)
	var cmds []tea.Cmd
	if a.Tabs.Active() != TabYield {
		cmds = append(cmds, a.selectTab(TabYield))
	}
	modal := NewEstimateModal(a.Data.Crops(), a.Data.Regions())
	a.Overlays.Push(Overlay{View: modal, Region: RegionEstimateForm})
	form.Visible = true
	cmds = append(cmds, modal.Init())
	return tea.Batch(cmds...)
}

// handleEstimateRequest validates the submitted form, runs the estimator
// and writes the result into the result region.
func (a *appModelAdapter) handleEstimateRequest(req EstimateRequestMsg) tea.Cmd {
	if _, ok := a.Regions.Get(RegionEstimateResult); !ok {
		a.Log.Warn("region missing", zap.String("region", string(RegionEstimateResult)))
		return a.Notify("Form elements not found", notify.Error)
	}
	ph, err := estimate.ParsePH(req.PH)
	if err != nil {
		a.Log.Debug("rejected estimate input", zap.String("ph", req.PH), zap.Error(err))
		return a.Notify(fmt.Sprintf("Invalid soil pH: %v", err), notify.Warning)
	}
	if req.Crop == "" || req.Region == "" {
		return a.Notify("Please select a crop and a region", notify.Warning)
	}

	res := a.Estimate(req.Crop, req.Region, ph)
	a.Regions.Show(RegionEstimateResult, FormatEstimate(res))
	if top, ok := a.Overlays.Peek(); ok && top.Region == RegionEstimateForm {
		a.closeModal()
	}
	return a.Notify("Yield prediction calculated successfully!", notify.Success)
}

// Estimate runs the estimator and records the request.
func (m *AppModel) Estimate(crop, region string, ph float64) estimate.Result {
	started := m.now()
	res := m.Estimator.Estimate(crop, region, ph)
	elapsed := m.now().Sub(started)
	m.LastEstimate = &res

	m.Telemetry.RecordEstimate(context.Background(), telemetry.Estimate{
		Crop:       res.Crop,
		Region:     res.Region,
		SoilPH:     res.SoilPH,
		Yield:      res.PredictedYield,
		Confidence: res.ConfidencePct,
		FromRecord: res.FromRecord,
		Started:    started,
		Duration:   elapsed,
	})
	m.Log.Info("estimate",
		zap.String("crop", res.Crop),
		zap.String("region", res.Region),
		zap.Float64("soil_ph", res.SoilPH),
		zap.Float64("yield", res.PredictedYield),
		zap.Int("confidence", res.ConfidencePct),
		zap.Bool("from_record", res.FromRecord),
	)
	return res
}

// FormatEstimate renders a result the way the result panel shows it.
func FormatEstimate(r estimate.Result) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Yield Prediction Result") + "\n")
	fmt.Fprintf(&b, "Crop: %s\n", r.Crop)
	fmt.Fprintf(&b, "Region: %s\n", r.Region)
	fmt.Fprintf(&b, "Predicted Yield: %.1f tons/hectare\n", r.PredictedYield)
	fmt.Fprintf(&b, "Soil pH: %.1f\n", r.SoilPH)
	fmt.Fprintf(&b, "Confidence Level: %d%%", r.ConfidencePct)
	return b.String()
}

// showComingSoon opens the coming-soon dialog.
func (a *appModelAdapter) showComingSoon() tea.Cmd {
	reg, ok := a.Regions.Get(RegionComingSoon)
	if !ok {
		a.Log.Warn("region missing", zap.String("region", string(RegionComingSoon)))
		return a.Notify("Coming soon dialog not found", notify.Error)
	}
	if a.Overlays.Has(RegionComingSoon) {
		return nil
	}
	modal := NewComingSoonModal()
	a.Overlays.Push(Overlay{View: modal, Region: RegionComingSoon})
	reg.Visible = true
	return modal.Init()
}

// closeModal pops the top modal and hides its region.
func (m *AppModel) closeModal() {
	top, ok := m.Overlays.Pop()
	if !ok {
		return
	}
	if reg, ok := m.Regions.Get(top.Region); ok {
		reg.Visible = false
	}
}
