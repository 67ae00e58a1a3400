// Package domain defines the normalized types for a single repository analysis.
// These types represent the core concepts independent of the GitHub REST API structure.
package domain

import "time"

// RepositoryMetadata is the repository information as reported by GitHub.
// No derived fields are stored here.
type RepositoryMetadata struct {
	FullName    string    // "owner/name"
	Language    string    // Primary language, empty if GitHub reports none
	Stars       int       // Stargazer count
	Forks       int       // Fork count
	OpenIssues  int       // Open issue count (GitHub counts pull requests too)
	Description string    // Empty if unset
	CreatedAt   time.Time // Repository creation time
	UpdatedAt   time.Time // Last update time
}

// Issue represents an open ticket returned by the issue listing.
type Issue struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Comments  int       `json:"comments"`
}

// RepoSummary is RepositoryMetadata reshaped for display.
// The raw update timestamp is dropped in favor of AnalysisResult.SecondsSinceUpdate.
type RepoSummary struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	OpenIssues  int    `json:"open_issues"`
	Description string `json:"description"`
	Created     string `json:"created"` // YYYY-MM-DD
}

// StatusIndicator is a symbol and color name pair rendered as a pass/fail badge.
type StatusIndicator struct {
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// Status indicator variants. These are the only two values a StatusIndicator takes.
var (
	Positive = StatusIndicator{Symbol: "✅", Color: "green"}
	Negative = StatusIndicator{Symbol: "❌", Color: "red"}
)

// IndicatorFor returns Positive when ok is true and Negative otherwise.
func IndicatorFor(ok bool) StatusIndicator {
	if ok {
		return Positive
	}
	return Negative
}

// IsPositive reports whether the indicator is the positive variant.
func (s StatusIndicator) IsPositive() bool {
	return s == Positive
}

// Status holds the four badges shown for an analyzed repository.
type Status struct {
	README       StatusIndicator `json:"readme"`
	Contributing StatusIndicator `json:"contributing"`
	Update       StatusIndicator `json:"update"`
	Issues       StatusIndicator `json:"issues"`
}

// AnalysisResult is the composed outcome of one repository analysis.
type AnalysisResult struct {
	Repo               RepoSummary `json:"repo"`
	Issues             []Issue     `json:"issues"`
	GoodFirstCount     int         `json:"good_first_count"`
	SecondsSinceUpdate float64     `json:"seconds_since_update"`
	Status             Status      `json:"status"`
}

// Well-known repository files probed during analysis.
const (
	ReadmePath       = "README.md"
	ContributingPath = "CONTRIBUTING.md"
)

// GoodFirstIssueLabel is the label used to select beginner-friendly issues.
const GoodFirstIssueLabel = "good first issue"
