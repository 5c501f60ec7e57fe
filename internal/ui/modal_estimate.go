package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type estimateField int

const (
	fieldCrop estimateField = iota
	fieldRegion
	fieldPH
	fieldCount
)

// EstimateModal is the yield estimator form: crop and region selectors and
// a soil pH input. Submitting sends EstimateRequestMsg with the raw pH text.
type EstimateModal struct {
	Crops     []string
	Regions   []string
	cropIdx   int
	regionIdx int
	field     estimateField
	ph        textinput.Model
}

// Ensure EstimateModal implements View.
var _ View = (*EstimateModal)(nil)

// NewEstimateModal creates the form with the first crop and region selected.
func NewEstimateModal(crops, regions []string) *EstimateModal {
	ti := textinput.New()
	ti.Placeholder = "6.5"
	ti.CharLimit = 5
	ti.Width = 8
	ti.SetValue("6.5")
	return &EstimateModal{Crops: crops, Regions: regions, ph: ti}
}

// Crop returns the selected crop, or "" when there are none.
func (m *EstimateModal) Crop() string {
	if len(m.Crops) == 0 {
		return ""
	}
	return m.Crops[m.cropIdx]
}

// Region returns the selected region, or "" when there are none.
func (m *EstimateModal) Region() string {
	if len(m.Regions) == 0 {
		return ""
	}
	return m.Regions[m.regionIdx]
}

// SetPH replaces the pH input text.
func (m *EstimateModal) SetPH(s string) {
	m.ph.SetValue(s)
}

// Select picks crop and region by name; unknown names leave the selection as is.
func (m *EstimateModal) Select(crop, region string) {
	for i, c := range m.Crops {
		if c == crop {
			m.cropIdx = i
		}
	}
	for i, r := range m.Regions {
		if r == region {
			m.regionIdx = i
		}
	}
}

// Init implements View.
func (m *EstimateModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *EstimateModal) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.ph, cmd = m.ph.Update(msg)
		return m, cmd
	}
	switch key.String() {
	case "esc":
		return m, CmdCloseModal.Cmd()
	case "enter":
		req := EstimateRequestMsg{Crop: m.Crop(), Region: m.Region(), PH: strings.TrimSpace(m.ph.Value())}
		return m, func() tea.Msg { return req }
	case "tab", "down":
		return m, m.setField((m.field + 1) % fieldCount)
	case "shift+tab", "up":
		return m, m.setField((m.field + fieldCount - 1) % fieldCount)
	case "left", "right":
		if m.field != fieldPH {
			m.cycle(key.String() == "right")
			return m, nil
		}
	}
	if m.field == fieldPH {
		var cmd tea.Cmd
		m.ph, cmd = m.ph.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *EstimateModal) setField(f estimateField) tea.Cmd {
	m.field = f
	if f == fieldPH {
		return m.ph.Focus()
	}
	m.ph.Blur()
	return nil
}

func (m *EstimateModal) cycle(forward bool) {
	step := 1
	if !forward {
		step = -1
	}
	switch m.field {
	case fieldCrop:
		if n := len(m.Crops); n > 0 {
			m.cropIdx = (m.cropIdx + step + n) % n
		}
	case fieldRegion:
		if n := len(m.Regions); n > 0 {
			m.regionIdx = (m.regionIdx + step + n) % n
		}
	}
}

// View implements View.
func (m *EstimateModal) View() string {
	row := func(f estimateField, label, value string) string {
		prefix := "  "
		style := Styles.Normal
		if m.field == f {
			prefix = Styles.Selected.Render("▸ ")
			style = Styles.Selected
		}
		return prefix + Styles.Label.Render(label) + " " + style.Render(value)
	}
	content := Styles.Title.Render("Yield estimator") + "\n\n"
	content += row(fieldCrop, "Crop:   ", "‹ "+m.Crop()+" ›") + "\n"
	content += row(fieldRegion, "Region: ", "‹ "+m.Region()+" ›") + "\n"
	content += row(fieldPH, "Soil pH:", m.ph.View()) + "\n\n"
	content += Styles.Hint.Render("Tab: next field  ←/→: change  Enter: estimate  Esc: cancel")
	return Styles.Box.Render(content)
}
