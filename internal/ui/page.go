package ui

import (
	"fmt"
	"strings"

	"agripredict/internal/dataset"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// PageView shows a section's markdown copy in a scrollable viewport.
type PageView struct {
	Markdown string
	theme    string
	viewport viewport.Model
	width    int
}

// Ensure PageView implements View.
var _ View = (*PageView)(nil)

// NewPageView creates a page rendering md with the given glamour style.
func NewPageView(md, theme string) *PageView {
	p := &PageView{Markdown: md, theme: theme, viewport: viewport.New(defaultChartWidth, 20)}
	p.Resize(defaultChartWidth, 20)
	return p
}

// Resize re-renders the copy for the new width.
func (p *PageView) Resize(width, height int) {
	p.width = width
	p.viewport.Width = width
	p.viewport.Height = max(height, 5)
	p.viewport.SetContent(renderMarkdown(p.Markdown, p.theme, width))
}

// Init implements View.
func (p *PageView) Init() tea.Cmd {
	return nil
}

// Update implements View. Scrolling keys go to the viewport.
func (p *PageView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View implements View.
func (p *PageView) View() string {
	return p.viewport.View()
}

// renderMarkdown renders md with glamour, falling back to the raw text if
// the renderer cannot be built or fails.
func renderMarkdown(md, theme string, width int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = md
		}
	}()
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}
	rendered, err := r.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

func homeMarkdown(d *dataset.Dataset) string {
	s := d.Statistics()
	c := d.Contact()
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Team)
	fmt.Fprintf(&b, "**%s**\n\n", c.Tagline)
	b.WriteString("Predict crop yields, catch pest outbreaks early and act on weather-aware recommendations.\n\n")
	b.WriteString("## Impact\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Yield increase | %s |\n", s.YieldIncrease)
	fmt.Fprintf(&b, "| Cost reduction | %s |\n", s.CostReduction)
	fmt.Fprintf(&b, "| Farmers served | %s |\n", s.FarmersServed)
	fmt.Fprintf(&b, "| Accuracy rate | %s |\n\n", s.AccuracyRate)
	b.WriteString("Press **Enter** to get your forecast or **w** to see how it works.\n")
	return b.String()
}

func howItWorksMarkdown() string {
	return `# How it works

1. **Collect** soil, weather and field observations.
2. **Analyze** them against historical yields and pest pressure.
3. **Predict** yield per crop and region, with a confidence level.
4. **Act** on prioritized irrigation, fertilizer and pest control advice.

## Features

- **Yield prediction**: per-crop estimates adjusted for soil pH.
- **Pest risk**: risk scores for the threats most likely in your region.
- **Weather insight**: short-range temperature and precipitation outlook.
- **Recommendations**: what to do next, ranked by priority.

Press **l** to learn more.
`
}

func aboutMarkdown(d *dataset.Dataset) string {
	c := d.Contact()
	var b strings.Builder
	fmt.Fprintf(&b, "# About %s\n\n%s\n\n", c.Team, c.About)
	b.WriteString("## Contact\n\n")
	fmt.Fprintf(&b, "- Email: %s\n", c.Email)
	fmt.Fprintf(&b, "- GitHub: github.com/%s\n", c.GitHub)
	fmt.Fprintf(&b, "- LinkedIn: linkedin.com/in/%s\n\n", c.LinkedIn)
	b.WriteString("Press **m** to email us.\n")
	return b.String()
}
