package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/ghra/internal/view"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/browser"
)

// Layout constants
const (
	dateColumnWidth     = 10
	commentsColumnWidth = 8
	minTitleWidth       = 20
	maxDescriptionLines = 3
	minTableHeight      = 3
)

// openURL is swapped out in tests.
var openURL = browser.OpenURL

// DashboardModel renders one analysis result.
type DashboardModel struct {
	model view.Model

	keymap KeyMap
	help   HelpModel
	table  table.Model

	width    int
	height   int
	showHelp bool
	toast    string
}

// NewDashboardModel creates a dashboard for m.
func NewDashboardModel(m view.Model) DashboardModel {
	t := table.New(
		table.WithColumns(issueColumns(80)),
		table.WithRows(issueRows(m.Rows)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("170")).
		Background(lipgloss.Color("")).
		Bold(true)
	t.SetStyles(styles)

	km := DefaultKeyMap()
	return DashboardModel{
		model:  m,
		keymap: km,
		help:   NewHelpModel(km),
		table:  t,
	}
}

// Init initializes the dashboard.
func (m DashboardModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		return m, tea.Quit
	}

	// Help overlay
	if m.showHelp {
		if key.Matches(msg, m.keymap.CloseHelp) {
			m.showHelp = false
		}
		return m, nil
	}

	m.toast = ""
	req := m.model.Request

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
	case key.Matches(msg, m.keymap.NewSearch):
		return m, func() tea.Msg { return NewSearchMsg{} }
	case key.Matches(msg, m.keymap.Refresh):
		return m, func() tea.Msg { return AnalyzeRequestedMsg{Request: req} }
	case key.Matches(msg, m.keymap.Filter):
		req.Filter = req.Filter.Next()
		return m, func() tea.Msg { return AnalyzeRequestedMsg{Request: req} }
	case key.Matches(msg, m.keymap.Open):
		if row, ok := m.SelectedRow(); ok && row.URL != "" {
			if err := openURL(row.URL); err != nil {
				m.toast = fmt.Sprintf("Open failed: %v", err)
			}
		}
	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// SelectedRow returns the highlighted issue row.
func (m DashboardModel) SelectedRow() (view.Row, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.model.Rows) {
		return view.Row{}, false
	}
	return m.model.Rows[idx], true
}

// Model returns the render model being shown.
func (m DashboardModel) Model() view.Model {
	return m.model
}

// resize fits the table to the terminal.
func (m *DashboardModel) resize() {
	m.table.SetColumns(issueColumns(m.width))
	m.table.SetWidth(m.width)

	// Header block, badges, section title, footer and table header.
	used := lipgloss.Height(m.renderSummary(m.width)) + lipgloss.Height(m.renderBadges()) + 6
	h := m.height - used
	if h < minTableHeight {
		h = minTableHeight
	}
	m.table.SetHeight(h)
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	if m.model.Failed() {
		return m.renderFailure(width)
	}

	sections := []string{
		m.renderSummary(width),
		m.renderBadges(),
		sectionStyle.Render(fmt.Sprintf("%s · last %s", m.model.IssueTitle, m.model.Request.Filter)),
	}

	if m.showHelp {
		sections = append(sections, m.help.View(width))
	} else if len(m.model.Rows) == 0 {
		sections = append(sections, dimStyle.Render(m.model.EmptyNote))
	} else {
		sections = append(sections, m.table.View())
	}

	sections = append(sections, m.renderFooter(width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderFailure(width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.model.Request.Repo))
	b.WriteString("\n")
	b.WriteString(ErrorStyle.Render(wordwrap.String(m.model.Message, width-2)))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("n: new search • r: retry • q: quit"))
	return b.String()
}

// renderSummary renders the heading, metrics line and description.
func (m DashboardModel) renderSummary(width int) string {
	s := m.model.Summary

	language := s.Language
	if language == "" {
		language = "n/a"
	}

	metrics := []string{
		metric("Stars", strconv.Itoa(s.Stars)),
		metric("Forks", strconv.Itoa(s.Forks)),
		metric("Open issues", strconv.Itoa(s.OpenIssues)),
		metric("Language", language),
		metric("Created", s.Created),
		metric("Last update", m.model.LastUpdated+" ago"),
	}

	lines := []string{
		TitleStyle.Render(m.model.Heading),
		strings.Join(metrics, dimStyle.Render("  │  ")),
	}

	if s.Description != "" {
		wrapWidth := max(width-2, minTitleWidth)
		wrapped := strings.Split(wordwrap.String(s.Description, wrapWidth), "\n")
		if len(wrapped) > maxDescriptionLines {
			wrapped = wrapped[:maxDescriptionLines]
			last := wrapped[maxDescriptionLines-1] + "…"
			wrapped[maxDescriptionLines-1] = truncate.StringWithTail(last, uint(wrapWidth), "…")
		}
		lines = append(lines, "", NormalItemStyle.Render(strings.Join(wrapped, "\n")))
	}

	return strings.Join(lines, "\n")
}

func metric(label, value string) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(value)
}

// renderBadges renders the four status badges side by side.
func (m DashboardModel) renderBadges() string {
	boxes := make([]string, 0, len(m.model.Badges))
	for _, b := range m.model.Badges {
		text := indicatorStyle(b.Indicator).Render(b.Indicator.Symbol + " " + b.Label)
		if b.Detail != "" {
			text += dimStyle.Render(" (" + b.Detail + ")")
		}
		boxes = append(boxes, badgeBoxStyle.Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m DashboardModel) renderFooter(width int) string {
	if m.toast != "" {
		return ErrorStyle.Render(m.toast)
	}
	return HelpStyle.Render(m.help.ShortView(width))
}

// issueColumns sizes the table so the title takes the remaining width.
func issueColumns(width int) []table.Column {
	// Each column renders with one cell of padding on both sides.
	titleWidth := width - 2*dateColumnWidth - commentsColumnWidth - 8
	if titleWidth < minTitleWidth {
		titleWidth = minTitleWidth
	}
	return []table.Column{
		{Title: "Title", Width: titleWidth},
		{Title: "Created", Width: dateColumnWidth},
		{Title: "Updated", Width: dateColumnWidth},
		{Title: "Comments", Width: commentsColumnWidth},
	}
}

func issueRows(rows []view.Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{r.Title, r.Created, r.Updated, strconv.Itoa(r.Comments)})
	}
	return out
}
