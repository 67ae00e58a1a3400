package view

import (
	"errors"
	"testing"
	"time"

	"github.com/h0rv/ghra/internal/analysis"
	"github.com/h0rv/ghra/internal/domain"
	"github.com/h0rv/ghra/internal/timewindow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Repo: domain.RepoSummary{Name: "facebook/react", Language: "JavaScript", Stars: 10, Created: "2013-05-24"},
		Issues: []domain.Issue{
			{
				Title:     "Fix typo",
				URL:       "https://github.com/facebook/react/issues/1",
				CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
				Comments:  3,
			},
		},
		GoodFirstCount:     1,
		SecondsSinceUpdate: 3700,
		Status: domain.Status{
			README:       domain.Positive,
			Contributing: domain.Negative,
			Update:       domain.Positive,
			Issues:       domain.Positive,
		},
	}
}

func TestBuild_Success(t *testing.T) {
	req := Request{Repo: "facebook/react", Filter: timewindow.Last7Days}

	m := Build(req, createTestResult(), nil)

	require.False(t, m.Failed())
	assert.Equal(t, req, m.Request)
	assert.Equal(t, "Found facebook/react", m.Heading)
	assert.Equal(t, "1h 1min", m.LastUpdated)
	assert.Equal(t, "Good First Issues (1)", m.IssueTitle)
	assert.Empty(t, m.EmptyNote)

	require.Len(t, m.Badges, 4)
	assert.Equal(t, "README", m.Badges[0].Label)
	assert.Equal(t, domain.Positive, m.Badges[0].Indicator)
	assert.Equal(t, domain.Negative, m.Badges[1].Indicator)
	assert.Equal(t, "1h 1min ago", m.Badges[2].Detail)
	assert.Equal(t, "1", m.Badges[3].Detail)

	require.Len(t, m.Rows, 1)
	assert.Equal(t, Row{
		Title:    "Fix typo",
		URL:      "https://github.com/facebook/react/issues/1",
		Created:  "2025-06-01",
		Updated:  "2025-06-10",
		Comments: 3,
	}, m.Rows[0])
}

func TestBuild_NoIssues(t *testing.T) {
	result := createTestResult()
	result.Issues = []domain.Issue{}
	result.GoodFirstCount = 0
	result.Status.Issues = domain.Negative

	m := Build(Request{Repo: "facebook/react", Filter: timewindow.Last24Hours}, result, nil)

	assert.Equal(t, "Good First Issues (0)", m.IssueTitle)
	assert.Equal(t, "No good first issues updated in the last 24 hours.", m.EmptyNote)
	assert.Empty(t, m.Rows)
}

func TestBuild_FailureMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&analysis.Error{Kind: analysis.KindInvalidIdentifier, Reason: "bad"}, MsgInvalidIdentifier},
		{&analysis.Error{Kind: analysis.KindNotFound, Reason: "gone"}, MsgNotFound},
		{&analysis.Error{Kind: analysis.KindTransport, Reason: "i/o timeout"}, "Error during analysis: i/o timeout"},
		{domain.ErrInvalidIdentifier, MsgInvalidIdentifier},
		{errors.New("boom"), "Error during analysis: boom"},
	}

	for _, tc := range cases {
		m := Build(Request{Repo: "x"}, nil, tc.err)
		assert.True(t, m.Failed())
		assert.Equal(t, tc.want, m.Message)
		assert.Empty(t, m.Badges)
		assert.Empty(t, m.Rows)
	}
}

func TestBuild_NilResultWithoutError(t *testing.T) {
	m := Build(Request{Repo: "facebook/react"}, nil, nil)

	assert.True(t, m.Failed())
	assert.Equal(t, "Error during analysis.", m.Message)
}

func TestFormatDate_Zero(t *testing.T) {
	assert.Equal(t, "-", formatDate(time.Time{}))
}
