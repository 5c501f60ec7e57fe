package ui

import (
	"fmt"
	"math"
	"strings"

	"agripredict/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultChartWidth  = 72
	defaultChartHeight = 12
	minChartWidth      = 32
)

// Point is one datum handed to a chart: a label, a value and tooltip lines.
type Point struct {
	Label string
	Value float64
	Meta  []string
	Color string // lipgloss color; empty picks from ChartPalette
}

// Chart renders a set of points. Charts cache their last frame; Resize and
// Redraw re-render it, and Redraws counts how often that happened.
type Chart interface {
	Title() string
	Points() []Point
	Resize(width, height int)
	Redraw()
	Redraws() int
	Focus(delta int)
	Focused() int
	View() string
}

// chartBase holds the state shared by every chart kind. render is set by the
// concrete chart to its own frame builder.
type chartBase struct {
	title   string
	points  []Point
	width   int
	height  int
	focus   int
	redraws int
	frame   string
	render  func() string
}

func newChartBase(title string, points []Point) chartBase {
	for i := range points {
		if points[i].Color == "" {
			points[i].Color = ChartPalette[i%len(ChartPalette)]
		}
	}
	return chartBase{title: title, points: points, width: defaultChartWidth, height: defaultChartHeight}
}

func (c *chartBase) Title() string { return c.title }

func (c *chartBase) Points() []Point { return append([]Point(nil), c.points...) }

func (c *chartBase) Resize(width, height int) {
	if width < minChartWidth {
		width = minChartWidth
	}
	c.width, c.height = width, height
	c.Redraw()
}

func (c *chartBase) Redraw() {
	c.frame = c.render()
	c.redraws++
}

func (c *chartBase) Redraws() int { return c.redraws }

// Focus moves the highlighted point by delta, wrapping around.
func (c *chartBase) Focus(delta int) {
	n := len(c.points)
	if n == 0 {
		return
	}
	c.focus = ((c.focus+delta)%n + n) % n
	c.Redraw()
}

func (c *chartBase) Focused() int { return c.focus }

func (c *chartBase) View() string {
	if c.frame == "" {
		c.Redraw()
	}
	return c.frame
}

// tooltip renders the focused point's metadata.
func (c *chartBase) tooltip(header string) string {
	if len(c.points) == 0 {
		return ""
	}
	p := c.points[c.focus]
	lines := []string{Styles.Label.Render(header)}
	for _, m := range p.Meta {
		lines = append(lines, "  "+m)
	}
	return Styles.Muted.Render(strings.Join(lines, "\n"))
}

func (c *chartBase) marker(i int) string {
	if i == c.focus {
		return Styles.Selected.Render("▸ ")
	}
	return "  "
}

func colored(color, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

// BarChart draws one horizontal bar per point, scaled to the largest value.
type BarChart struct {
	chartBase
	Unit string
}

// NewBarChart creates a bar chart. unit labels the value axis.
func NewBarChart(title, unit string, points []Point) *BarChart {
	b := &BarChart{chartBase: newChartBase(title, points), Unit: unit}
	b.render = b.renderFrame
	return b
}

func (b *BarChart) renderFrame() string {
	var sb strings.Builder
	sb.WriteString(Styles.Title.Render(b.title) + "\n")
	if len(b.points) == 0 {
		sb.WriteString(Styles.Empty.Render("No data"))
		return sb.String()
	}

	labels := make([]string, len(b.points))
	maxV := 0.0
	for i, p := range b.points {
		labels[i] = p.Label
		maxV = math.Max(maxV, p.Value)
	}
	labelW := min(textutil.MaxWidth(labels), 16)
	const valueW = 6
	avail := max(b.width-labelW-valueW-4, 8)

	for i, p := range b.points {
		n := 0
		if maxV > 0 {
			n = int(math.Round(p.Value / maxV * float64(avail)))
		}
		sb.WriteString(b.marker(i))
		sb.WriteString(textutil.Fit(p.Label, labelW) + " ")
		sb.WriteString(colored(p.Color, strings.Repeat("█", n)))
		sb.WriteString(" " + textutil.Number(p.Value) + "\n")
	}
	sb.WriteString(Styles.Hint.Render(strings.Repeat(" ", labelW+3) + b.Unit))
	if tip := b.tooltip(b.points[b.focus].Label); tip != "" {
		sb.WriteString("\n\n" + tip)
	}
	return sb.String()
}

// DonutChart shows each point's share of the total as a segmented ring
// flattened onto one line, followed by a legend.
type DonutChart struct {
	chartBase
}

// NewDonutChart creates a donut chart.
func NewDonutChart(title string, points []Point) *DonutChart {
	d := &DonutChart{chartBase: newChartBase(title, points)}
	d.render = d.renderFrame
	return d
}

// Shares returns each point's fraction of the total.
func (d *DonutChart) Shares() []float64 {
	total := 0.0
	for _, p := range d.points {
		total += p.Value
	}
	out := make([]float64, len(d.points))
	if total == 0 {
		return out
	}
	for i, p := range d.points {
		out[i] = p.Value / total
	}
	return out
}

func (d *DonutChart) renderFrame() string {
	var sb strings.Builder
	sb.WriteString(Styles.Title.Render(d.title) + "\n")
	if len(d.points) == 0 {
		sb.WriteString(Styles.Empty.Render("No data"))
		return sb.String()
	}

	shares := d.Shares()
	ringW := max(d.width-4, 16)
	used := 0
	var ring strings.Builder
	for i, p := range d.points {
		n := int(math.Round(shares[i] * float64(ringW)))
		if i == len(d.points)-1 {
			n = ringW - used
		}
		n = max(n, 0)
		used += n
		ring.WriteString(colored(p.Color, strings.Repeat("━", n)))
	}
	sb.WriteString("  " + ring.String() + "\n\n")

	labels := make([]string, len(d.points))
	for i, p := range d.points {
		labels[i] = p.Label
	}
	labelW := min(textutil.MaxWidth(labels), 32)
	for i, p := range d.points {
		sb.WriteString(d.marker(i))
		sb.WriteString(colored(p.Color, "●") + " ")
		sb.WriteString(textutil.Fit(p.Label, labelW))
		sb.WriteString(fmt.Sprintf("  %3.0f%%  %s\n", shares[i]*100, textutil.Number(p.Value)))
	}
	if tip := d.tooltip(d.points[d.focus].Label); tip != "" {
		sb.WriteString("\n" + tip)
	}
	return sb.String()
}

// Series is one line of a LineChart.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// LineChart plots several series over shared labels as sparklines with
// their values, one row per series.
type LineChart struct {
	chartBase
	Series []Series
}

// NewLineChart creates a line chart. Each series must have one value per label.
func NewLineChart(title string, labels []string, series []Series) *LineChart {
	points := make([]Point, len(labels))
	for i, l := range labels {
		meta := make([]string, 0, len(series))
		for _, s := range series {
			if i < len(s.Values) {
				meta = append(meta, fmt.Sprintf("%s: %s", s.Name, textutil.Number(s.Values[i])))
			}
		}
		points[i] = Point{Label: l, Meta: meta}
		if len(series) > 0 && i < len(series[0].Values) {
			points[i].Value = series[0].Values[i]
		}
	}
	for i := range series {
		if series[i].Color == "" {
			series[i].Color = ChartPalette[i%len(ChartPalette)]
		}
	}
	lc := &LineChart{chartBase: newChartBase(title, points), Series: series}
	lc.render = lc.renderFrame
	return lc
}

func (lc *LineChart) renderFrame() string {
	var sb strings.Builder
	sb.WriteString(Styles.Title.Render(lc.title) + "\n")
	if len(lc.points) == 0 {
		sb.WriteString(Styles.Empty.Render("No data"))
		return sb.String()
	}

	names := make([]string, len(lc.Series))
	for i, s := range lc.Series {
		names[i] = s.Name
	}
	nameW := min(textutil.MaxWidth(names), 24)
	colW := max((lc.width-nameW-2)/len(lc.points), 7)

	sb.WriteString(strings.Repeat(" ", nameW+2))
	for i, p := range lc.points {
		cell := textutil.Fit(p.Label, colW)
		if i == lc.focus {
			cell = Styles.Selected.Render(cell)
		}
		sb.WriteString(cell)
	}
	sb.WriteString("\n")

	for _, s := range lc.Series {
		sb.WriteString("  " + textutil.Fit(s.Name, nameW))
		for i, v := range s.Values {
			if i >= len(lc.points) {
				break
			}
			cell := string(sparkGlyph(v, s.Values)) + " " + textutil.Number(v)
			sb.WriteString(colored(s.Color, textutil.Fit(cell, colW)))
		}
		sb.WriteString("\n")
	}
	if tip := lc.tooltip(lc.points[lc.focus].Label); tip != "" {
		sb.WriteString("\n" + tip)
	}
	return sb.String()
}

// sparkGlyph scales v within the range of values to a block glyph.
func sparkGlyph(v float64, values []float64) rune {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range values {
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}
	if hi <= lo {
		return sparkLevels[len(sparkLevels)/2]
	}
	idx := int(math.Round((v - lo) / (hi - lo) * float64(len(sparkLevels)-1)))
	return sparkLevels[idx]
}
