package ui

import (
	"agripredict/internal/dataset"
	"agripredict/internal/notify"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - active tab, borders
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - hints
	ColorText      = "252" // Light gray - normal text
	ColorWarning   = "208" // Orange - warnings
	ColorSuccess   = "42"  // Green - success
)

// ChartPalette is the series palette for charts, in assignment order.
var ChartPalette = []string{"#1FB8CD", "#FFC185", "#B4413C", "#ECEBD5", "#5D878F", "#DB4545", "#D2BA4C", "#964325", "#944454", "#13343B"}

// Risk colors for pest charts.
const (
	ColorRiskHigh   = "#DB4545"
	ColorRiskMedium = "#FFC185"
	ColorRiskLow    = "#1FB8CD"
	ColorRiskOther  = "#5D878F"
)

// RiskColor returns the chart color for a risk level.
func RiskColor(level dataset.RiskLevel) string {
	switch level {
	case dataset.RiskHigh:
		return ColorRiskHigh
	case dataset.RiskMedium:
		return ColorRiskMedium
	case dataset.RiskLow:
		return ColorRiskLow
	default:
		return ColorRiskOther
	}
}

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style

	Box        lipgloss.Style
	BoxCompact lipgloss.Style
	Card       lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style

	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Empty    lipgloss.Style
	Label    lipgloss.Style
	Stat     lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)).
		Underline(true).
		Padding(0, 1),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	NavActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	NavInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle().Bold(true),
	Stat: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
}

// severityColor is the left-border color of a notice.
func severityColor(s notify.Severity) string {
	switch s {
	case notify.Success:
		return ColorSuccess
	case notify.Warning:
		return ColorWarning
	case notify.Error:
		return ColorDanger
	default:
		return ColorAccent
	}
}

// priorityStyle colors a recommendation priority badge.
func priorityStyle(p dataset.Priority) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch p {
	case dataset.PriorityHigh:
		return s.Foreground(lipgloss.Color(ColorDanger))
	case dataset.PriorityMedium:
		return s.Foreground(lipgloss.Color(ColorWarning))
	default:
		return s.Foreground(lipgloss.Color(ColorAccent))
	}
}
