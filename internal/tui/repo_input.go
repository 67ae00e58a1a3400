package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/ghra/internal/domain"
	"github.com/h0rv/ghra/internal/view"
)

// RepoInputModel prompts for an owner/name repository.
// Malformed input is rejected here, before anything is sent to GitHub.
type RepoInputModel struct {
	input  textinput.Model
	recent []string
	// recentIdx is the next recent entry tab will insert.
	recentIdx int
	err       string
}

// NewRepoInputModel creates a prompt pre-filled with initial.
// recent is offered through tab completion, most recent first.
func NewRepoInputModel(initial string, recent []string) RepoInputModel {
	ti := textinput.New()
	ti.Placeholder = "owner/repo"
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 50
	ti.SetValue(initial)
	ti.Focus()

	return RepoInputModel{
		input:  ti,
		recent: recent,
	}
}

// Init initializes the model.
func (m RepoInputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m RepoInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			id, err := domain.ParseRepositoryID(m.input.Value())
			if err != nil {
				m.err = view.MsgInvalidIdentifier
				return m, nil
			}
			m.err = ""
			repo := id.String()
			return m, func() tea.Msg { return RepoSubmittedMsg{Repo: repo} }
		case "tab":
			if len(m.recent) > 0 {
				m.input.SetValue(m.recent[m.recentIdx%len(m.recent)])
				m.input.CursorEnd()
				m.recentIdx++
			}
			return m, nil
		case "esc":
			return m, func() tea.Msg { return QuitMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value returns the current input text.
func (m RepoInputModel) Value() string {
	return m.input.Value()
}

// View renders the model.
func (m RepoInputModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("GitHub Repo Analyzer"))
	b.WriteString("\n")
	b.WriteString(PromptStyle.Render("Enter repository (owner/repo)"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.err))
		b.WriteString("\n")
	}

	if len(m.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Recent: " + strings.Join(m.recent, ", ")))
		b.WriteString("\n")
	}

	hint := "enter: analyze • esc: quit"
	if len(m.recent) > 0 {
		hint = "enter: analyze • tab: recent • esc: quit"
	}
	b.WriteString(HelpStyle.Render(hint))

	return b.String()
}
