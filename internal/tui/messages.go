// Package tui provides Bubble Tea models for the interactive dashboard.
package tui

import (
	"github.com/h0rv/ghra/internal/timewindow"
	"github.com/h0rv/ghra/internal/view"
)

// RepoSubmittedMsg is emitted when the user enters a well-formed owner/name.
type RepoSubmittedMsg struct {
	Repo string
}

// FilterSelectedMsg is emitted when the user picks a recency window.
type FilterSelectedMsg struct {
	Filter timewindow.FilterOption
}

// AnalyzeRequestedMsg asks the app to run an analysis for Request.
type AnalyzeRequestedMsg struct {
	Request view.Request
}

// NewSearchMsg returns to the repository prompt.
type NewSearchMsg struct{}

// ErrorMsg is emitted when an error occurs.
type ErrorMsg struct {
	Err error
}

// QuitMsg is emitted when the user requests to quit.
type QuitMsg struct{}
