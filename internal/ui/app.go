package ui

import (
	"fmt"
	"strings"
	"time"

	"agripredict/internal/config"
	"agripredict/internal/dataset"
	"agripredict/internal/estimate"
	"agripredict/internal/notify"
	"agripredict/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const unexpectedErrorMessage = "An unexpected error occurred. Please refresh the page."

// Options configures a new session. Zero fields get defaults.
type Options struct {
	Config    *config.Config
	Data      *dataset.Dataset
	Estimator *estimate.Estimator
	Regions   *Regions
	Logger    *zap.Logger
	Telemetry *telemetry.Recorder
}

// AppModel is the dashboard session. It owns the chart instances, the tab
// controller, the notice center and the modal stack for the lifetime of the
// program; Close tears them down.
type AppModel struct {
	Section      Section
	Tabs         *TabController
	Charts       *ChartSet
	Regions      *Regions
	Notices      *notify.Center
	Overlays     OverlayStack
	KeyHandler   *KeyHandler
	Estimator    *estimate.Estimator
	Data         *dataset.Dataset
	Dashboard    *DashboardView
	Pages        map[Section]*PageView
	Log          *zap.Logger
	Telemetry    *telemetry.Recorder
	LastEstimate *estimate.Result

	resize    *Debouncer
	redraw    *Debouncer
	redrawTab Tab
	width     int
	height    int
	closed    bool
	now       func() time.Time
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the session and its charts.
func NewAppModel(opts Options) *AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	data := opts.Data
	if data == nil {
		data = dataset.Default()
	}
	regions := opts.Regions
	if regions == nil {
		regions = DefaultRegions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rec := opts.Telemetry
	if rec == nil {
		rec = telemetry.Disabled()
	}
	est := opts.Estimator
	if est == nil {
		if cfg.Seed != nil {
			est = estimate.NewSeeded(data, *cfg.Seed)
		} else {
			est = estimate.New(data, nil)
		}
	}

	tabs := NewTabController()
	if !tabs.SwitchTo(cfg.InitialTab) {
		logger.Warn("unknown initial tab, using yield", zap.String("tab", cfg.InitialTab))
	}
	charts := NewChartSet(data, regions)

	m := &AppModel{
		Section:    SectionHome,
		Tabs:       tabs,
		Charts:     charts,
		Regions:    regions,
		Notices:    notify.NewCenter(cfg.NoticeDuration),
		KeyHandler: NewKeyHandler(DefaultKeybinds()),
		Estimator:  est,
		Data:       data,
		Dashboard:  &DashboardView{Tabs: tabs, Charts: charts, Regions: regions, Data: data},
		Pages: map[Section]*PageView{
			SectionHome:       NewPageView(homeMarkdown(data), cfg.Theme),
			SectionHowItWorks: NewPageView(howItWorksMarkdown(), cfg.Theme),
			SectionAbout:      NewPageView(aboutMarkdown(data), cfg.Theme),
		},
		Log:       logger,
		Telemetry: rec,
		resize:    NewDebouncer("resize", cfg.ResizeDebounce),
		redraw:    NewDebouncer("redraw", cfg.RedrawDelay),
		now:       time.Now,
	}
	logger.Info("session started",
		zap.String("tab", tabs.Active().String()),
		zap.Int("charts", charts.Len()),
	)
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Close releases the chart instances and modals. It is safe to call twice.
func (m *AppModel) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.Charts.Close()
	m.Overlays = OverlayStack{}
	m.resize.Cancel()
	m.redraw.Cancel()
	m.Log.Info("session closed")
}

// Closed reports whether Close has run.
func (m *AppModel) Closed() bool {
	return m.closed
}

// Init implements tea.Model. The initial tab gets a redraw like any switch.
func (a *appModelAdapter) Init() tea.Cmd {
	a.redrawTab = a.Tabs.Active()
	return a.redraw.Trigger()
}

// Update implements tea.Model. Panics in handlers are recovered, logged and
// reported as an error notice; the program keeps running.
func (a *appModelAdapter) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			a.Log.Error("recovered panic in update",
				zap.Any("panic", r),
				zap.String("msg", typeName(msg)),
				zap.Stack("stack"),
			)
			model, cmd = a, a.Notify(unexpectedErrorMessage, notify.Error)
		}
	}()
	return a, a.update(msg)
}

func (a *appModelAdapter) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case debounceMsg:
		a.handleDebounce(msg)
		return nil
	case noticeExpiredMsg:
		a.Notices.Expire(msg.ID)
		return nil
	case NotifyMsg:
		return a.Notify(msg.Message, msg.Severity)
	case CommandMsg:
		return a.handleCommand(msg.Command)
	case EstimateRequestMsg:
		return a.handleEstimateRequest(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	// Anything else (cursor blink and the like) belongs to the top modal.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return cmd
	}
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			a.Log.Error("recovered panic in view", zap.Any("panic", r), zap.Stack("stack"))
			out = unexpectedErrorMessage
		}
	}()
	return a.render()
}

func (m *AppModel) render() string {
	var b strings.Builder
	b.WriteString(m.navBar() + "\n")
	if n, ok := m.Notices.Current(); ok {
		notice := renderNotice(n)
		if m.width > 0 {
			notice = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, notice)
		}
		b.WriteString(notice + "\n")
	}
	b.WriteString("\n")
	if top, ok := m.Overlays.Peek(); ok {
		b.WriteString(top.View.View())
	} else {
		b.WriteString(m.sectionView())
	}
	if help := RenderKeybindHelp(m.KeyHandler, m.Section); help != "" {
		b.WriteString("\n" + help)
	} else if m.Overlays.Len() == 0 {
		b.WriteString("\n\n" + RenderSectionHints(m.KeyHandler.Registry, m.Section))
	}
	return b.String()
}

func (m *AppModel) navBar() string {
	parts := []string{Styles.Title.Render("🌾 " + m.Data.Contact().Team)}
	for _, s := range Sections {
		if s == m.Section {
			parts = append(parts, Styles.NavActive.Render(s.String()))
		} else {
			parts = append(parts, Styles.NavInactive.Render(s.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *AppModel) sectionView() string {
	if m.Section == SectionDashboard {
		return m.Dashboard.View()
	}
	if p, ok := m.Pages[m.Section]; ok {
		return p.View()
	}
	return ""
}

func (m *AppModel) chartWidth() int {
	if m.width == 0 {
		return defaultChartWidth
	}
	return m.width - 4
}

func (m *AppModel) chartHeight() int {
	return max(m.height-10, defaultChartHeight)
}

func (m *AppModel) pageHeight() int {
	return max(m.height-8, 5)
}

func typeName(msg tea.Msg) string {
	if msg == nil {
		return "<nil>"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", msg), "ui.")
}
