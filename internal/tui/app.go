package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/ghra/internal/domain"
	"github.com/h0rv/ghra/internal/store"
	"github.com/h0rv/ghra/internal/timewindow"
	"github.com/h0rv/ghra/internal/view"
)

// Analyzer runs one repository analysis. *analysis.Analyzer implements it.
type Analyzer interface {
	AnalyzeString(ctx context.Context, raw string, cutoff time.Time) (*domain.AnalysisResult, error)
	Now() time.Time
}

// AppScreen represents the different screens in the application flow.
type AppScreen int

const (
	ScreenRepoInput AppScreen = iota
	ScreenFilterPicker
	ScreenLoading
	ScreenDashboard
)

// AppModel is the root Bubble Tea model that manages screen transitions.
// It orchestrates the flow from repository input -> time window -> dashboard.
type AppModel struct {
	// Dependencies
	analyzer Analyzer
	store    *store.Store
	ctx      context.Context

	// CLI flags (pre-filled values)
	repoFlag   string
	filterFlag timewindow.FilterOption

	// Current state
	currentScreen AppScreen
	currentModel  tea.Model
	spinner       spinner.Model
	pending       view.Request
	err           error

	width  int
	height int
}

// NewAppModel creates a new app model with optional CLI flag values.
// Pass empty strings to prompt for the repository and time window.
func NewAppModel(analyzer Analyzer, s *store.Store, ctx context.Context, repoFlag string, filterFlag timewindow.FilterOption) AppModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := AppModel{
		analyzer:   analyzer,
		store:      s,
		ctx:        ctx,
		repoFlag:   repoFlag,
		filterFlag: filterFlag,
		spinner:    sp,
	}

	switch {
	case repoFlag != "" && filterFlag != "":
		m.currentScreen = ScreenLoading
		m.pending = view.Request{Repo: repoFlag, Filter: filterFlag}
	case repoFlag != "":
		m.currentScreen = ScreenFilterPicker
		m.pending = view.Request{Repo: repoFlag, Filter: timewindow.Last7Days}
		m.currentModel = NewFilterPickerModel(repoFlag, timewindow.Last7Days)
	default:
		m.currentScreen = ScreenRepoInput
		m.currentModel = NewRepoInputModel("", s.Recent())
	}

	return m
}

// Init initializes the app model.
func (m AppModel) Init() tea.Cmd {
	if m.currentScreen == ScreenLoading {
		return tea.Batch(m.spinner.Tick, m.analyze(m.pending))
	}
	return m.currentModel.Init()
}

// Update handles messages and transitions between screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.currentScreen == ScreenLoading {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case RepoSubmittedMsg:
		m.pending.Repo = msg.Repo
		if m.filterFlag != "" {
			m.pending.Filter = m.filterFlag
			return m.startAnalysis(m.pending)
		}
		filter := m.pending.Filter
		if filter == "" {
			filter = timewindow.Last7Days
		}
		m.currentScreen = ScreenFilterPicker
		picker := NewFilterPickerModel(msg.Repo, filter)
		m.currentModel = picker
		return m, picker.Init()

	case FilterSelectedMsg:
		m.pending.Filter = msg.Filter
		return m.startAnalysis(m.pending)

	case backToRepoMsg:
		return m.showRepoInput(m.pending.Repo)

	case AnalyzeRequestedMsg:
		return m.startAnalysis(msg.Request)

	case analysisDoneMsg:
		m.store.Record(msg.model)
		m.currentScreen = ScreenDashboard
		dashboard := NewDashboardModel(msg.model)
		m.currentModel = dashboard
		return m, dashboard.Init()

	case NewSearchMsg:
		repo := ""
		if req, ok := m.store.LastRequest(); ok {
			repo = req.Repo
		}
		return m.showRepoInput(repo)

	case spinner.TickMsg:
		if m.currentScreen != ScreenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Delegate to current screen's model
	if m.currentModel != nil && m.currentScreen != ScreenLoading {
		var cmd tea.Cmd
		m.currentModel, cmd = m.currentModel.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current screen.
func (m AppModel) View() string {
	// Show error if present
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n\nPress Ctrl+C to quit", m.err))
	}

	if m.currentScreen == ScreenLoading {
		return fmt.Sprintf("%s Analyzing %s (issues updated in the last %s)...\n\nPress Ctrl+C to quit",
			m.spinner.View(), m.pending.Repo, m.pending.Filter)
	}

	if m.currentModel != nil {
		return m.currentModel.View()
	}

	return ""
}

// Screen returns the active screen.
func (m AppModel) Screen() AppScreen {
	return m.currentScreen
}

func (m AppModel) showRepoInput(initial string) (tea.Model, tea.Cmd) {
	m.currentScreen = ScreenRepoInput
	input := NewRepoInputModel(initial, m.store.Recent())
	m.currentModel = input
	return m, input.Init()
}

func (m AppModel) startAnalysis(req view.Request) (tea.Model, tea.Cmd) {
	m.pending = req
	m.currentScreen = ScreenLoading
	return m, tea.Batch(m.spinner.Tick, m.analyze(req))
}

// analyze creates a command that runs one analysis and builds its view model.
func (m AppModel) analyze(req view.Request) tea.Cmd {
	return func() tea.Msg {
		return analysisDoneMsg{model: Run(m.ctx, m.analyzer, req)}
	}
}

// Run resolves the request's cutoff, analyzes the repository and builds the view model.
func Run(ctx context.Context, analyzer Analyzer, req view.Request) view.Model {
	cutoff, err := timewindow.ResolveCutoff(req.Filter, analyzer.Now())
	if err != nil {
		return view.Build(req, nil, err)
	}
	result, err := analyzer.AnalyzeString(ctx, req.Repo, cutoff)
	return view.Build(req, result, err)
}

// Custom messages for app transitions.
type analysisDoneMsg struct {
	model view.Model
}
