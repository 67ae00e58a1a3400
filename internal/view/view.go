// Package view turns an analysis request and its outcome into a render model.
// Build is pure: the same inputs always produce the same Model, so the TUI
// and the headless output share it and tests need no terminal.
package view

import (
	"errors"
	"fmt"

	"github.com/h0rv/ghra/internal/analysis"
	"github.com/h0rv/ghra/internal/domain"
	"github.com/h0rv/ghra/internal/timewindow"
)

// User-facing failure messages.
const (
	MsgInvalidIdentifier = "Invalid repository format. Use owner/repo."
	MsgNotFound          = "Repository not found or is private."
	msgAnalysisError     = "Error during analysis"
)

// Request is the input event emitted when the user asks for an analysis.
type Request struct {
	Repo   string
	Filter timewindow.FilterOption
}

// Badge is a labeled status indicator.
type Badge struct {
	Label     string
	Indicator domain.StatusIndicator
	Detail    string
}

// Row is one line of the issue table.
type Row struct {
	Title    string
	URL      string
	Created  string
	Updated  string
	Comments int
}

// Model is everything the presentation layer renders for one request.
type Model struct {
	Request Request

	// Set when the analysis failed; all other fields except Request are zero.
	Err     error
	Message string

	Heading     string
	Summary     domain.RepoSummary
	LastUpdated string
	Badges      []Badge
	IssueTitle  string
	EmptyNote   string
	Rows        []Row
}

// Failed reports whether the model describes a failed analysis.
func (m Model) Failed() bool {
	return m.Err != nil
}

// Build creates the render model for req. Exactly one of result and err is
// expected to be non-nil.
func Build(req Request, result *domain.AnalysisResult, err error) Model {
	m := Model{Request: req}

	if err != nil {
		m.Err = err
		m.Message = FailureMessage(err)
		return m
	}
	if result == nil {
		m.Err = errors.New("no result")
		m.Message = msgAnalysisError + "."
		return m
	}

	m.Heading = fmt.Sprintf("Found %s", result.Repo.Name)
	m.Summary = result.Repo
	m.LastUpdated = timewindow.FormatElapsed(result.SecondsSinceUpdate)

	m.Badges = []Badge{
		{Label: "README", Indicator: result.Status.README},
		{Label: "CONTRIBUTING", Indicator: result.Status.Contributing},
		{Label: "Updated in last 30 days", Indicator: result.Status.Update, Detail: m.LastUpdated + " ago"},
		{Label: "Good first issues", Indicator: result.Status.Issues, Detail: fmt.Sprintf("%d", result.GoodFirstCount)},
	}

	m.IssueTitle = fmt.Sprintf("Good First Issues (%d)", result.GoodFirstCount)
	if result.GoodFirstCount == 0 {
		m.EmptyNote = fmt.Sprintf("No good first issues updated in the last %s.", req.Filter)
	}

	m.Rows = make([]Row, 0, len(result.Issues))
	for _, issue := range result.Issues {
		m.Rows = append(m.Rows, Row{
			Title:    issue.Title,
			URL:      issue.URL,
			Created:  formatDate(issue.CreatedAt),
			Updated:  formatDate(issue.UpdatedAt),
			Comments: issue.Comments,
		})
	}

	return m
}

// FailureMessage maps an analysis error to the text shown to users.
func FailureMessage(err error) string {
	var aerr *analysis.Error
	if errors.As(err, &aerr) {
		switch aerr.Kind {
		case analysis.KindInvalidIdentifier:
			return MsgInvalidIdentifier
		case analysis.KindNotFound:
			return MsgNotFound
		default:
			return fmt.Sprintf("%s: %s", msgAnalysisError, aerr.Reason)
		}
	}
	if errors.Is(err, domain.ErrInvalidIdentifier) {
		return MsgInvalidIdentifier
	}
	return fmt.Sprintf("%s: %v", msgAnalysisError, err)
}
