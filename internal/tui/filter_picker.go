package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/ghra/internal/timewindow"
)

// filterItem represents a time window in the list.
type filterItem struct {
	filter timewindow.FilterOption
}

func (i filterItem) FilterValue() string { return i.filter.String() }

// filterItemDelegate handles rendering of filter items.
type filterItemDelegate struct{}

func (d filterItemDelegate) Height() int                             { return 1 }
func (d filterItemDelegate) Spacing() int                            { return 0 }
func (d filterItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d filterItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(filterItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. last %s", index+1, i.filter)

	fn := NormalItemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return SelectedItemStyle.Render("> " + s[0])
		}
	} else {
		str = "  " + str
	}

	fmt.Fprint(w, fn(str))
}

// backToRepoMsg returns from the filter picker to the repository prompt.
type backToRepoMsg struct{}

// FilterPickerModel lets the user choose how far back to look for issues.
type FilterPickerModel struct {
	list list.Model
	repo string
}

// NewFilterPickerModel creates a picker for repo with selected preselected.
func NewFilterPickerModel(repo string, selected timewindow.FilterOption) FilterPickerModel {
	opts := timewindow.Options()
	items := make([]list.Item, len(opts))
	cursor := 0
	for i, opt := range opts {
		items[i] = filterItem{filter: opt}
		if opt == selected {
			cursor = i
		}
	}

	// Start with a reasonable default - will be resized by WindowSizeMsg
	l := list.New(items, filterItemDelegate{}, 80, 12)
	l.Title = fmt.Sprintf("Good first issues in %s updated in the…", repo)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = TitleStyle
	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	l.Styles.HelpStyle = HelpStyle
	l.Select(cursor)

	return FilterPickerModel{
		list: l,
		repo: repo,
	}
}

// Init initializes the model.
func (m FilterPickerModel) Init() tea.Cmd {
	// Request window size on init to properly size the list
	return tea.WindowSize()
}

// Update handles messages.
func (m FilterPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(filterItem); ok {
				return m, func() tea.Msg {
					return FilterSelectedMsg{Filter: item.filter}
				}
			}
		case "1", "2", "3", "4":
			idx := int(msg.Runes[0] - '1')
			if item, ok := m.list.Items()[idx].(filterItem); ok {
				return m, func() tea.Msg {
					return FilterSelectedMsg{Filter: item.filter}
				}
			}
		case "esc":
			return m, func() tea.Msg { return backToRepoMsg{} }
		case "q":
			return m, func() tea.Msg { return QuitMsg{} }
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width - 2)
		m.list.SetHeight(min(msg.Height-2, 12))
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Selected returns the highlighted filter.
func (m FilterPickerModel) Selected() timewindow.FilterOption {
	if item, ok := m.list.SelectedItem().(filterItem); ok {
		return item.filter
	}
	return timewindow.Last7Days
}

// View renders the model.
func (m FilterPickerModel) View() string {
	return m.list.View()
}
