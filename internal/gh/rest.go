package gh

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/h0rv/ghra/internal/domain"
)

// issuesPerPage is the page size requested for the issue listing.
// Only the first page is consumed.
const issuesPerPage = 100

// GetRepository fetches repository metadata.
// Returns an error wrapping ErrNotFoundOrPrivate on 404/403, or a *TransportError.
func (c *Client) GetRepository(ctx context.Context, id domain.RepositoryID) (*domain.RepositoryMetadata, error) {
	repo, _, err := c.rest.Repositories.Get(ctx, id.Owner, id.Name)
	if err != nil {
		if isNotFoundOrForbidden(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFoundOrPrivate, id)
		}
		return nil, &TransportError{Op: "get repository", Err: err}
	}

	meta := convertRepository(repo)
	return &meta, nil
}

// ListGoodFirstIssues returns open issues labeled "good first issue"
// updated at or after since. Results are returned as GitHub sends them.
func (c *Client) ListGoodFirstIssues(ctx context.Context, id domain.RepositoryID, since time.Time) ([]domain.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:  "open",
		Labels: []string{domain.GoodFirstIssueLabel},
		Since:  since,
		ListOptions: github.ListOptions{
			PerPage: issuesPerPage,
		},
	}

	issues, _, err := c.rest.Issues.ListByRepo(ctx, id.Owner, id.Name, opts)
	if err != nil {
		return nil, &TransportError{Op: "list issues", Err: err}
	}

	out := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		out = append(out, convertIssue(issue))
	}
	return out, nil
}

// HasFile reports whether path exists at the repository root of the default branch.
// A missing file is not an error.
func (c *Client) HasFile(ctx context.Context, id domain.RepositoryID, path string) (bool, error) {
	return c.prober.hasFile(ctx, id.Owner, id.Name, path)
}

// restProber checks files through the contents endpoint.
type restProber struct {
	rest *github.Client
}

func (p restProber) hasFile(ctx context.Context, owner, name, path string) (bool, error) {
	_, _, _, err := p.rest.Repositories.GetContents(ctx, owner, name, path, nil)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, &TransportError{Op: "get contents " + path, Err: err}
	}
	return true, nil
}

// convertRepository maps a go-github repository to our model.
func convertRepository(repo *github.Repository) domain.RepositoryMetadata {
	return domain.RepositoryMetadata{
		FullName:    repo.GetFullName(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		OpenIssues:  repo.GetOpenIssuesCount(),
		Description: repo.GetDescription(),
		CreatedAt:   repo.GetCreatedAt().Time,
		UpdatedAt:   repo.GetUpdatedAt().Time,
	}
}

// convertIssue maps a go-github issue to our model.
func convertIssue(issue *github.Issue) domain.Issue {
	return domain.Issue{
		Title:     issue.GetTitle(),
		URL:       issue.GetHTMLURL(),
		CreatedAt: issue.GetCreatedAt().Time,
		UpdatedAt: issue.GetUpdatedAt().Time,
		Comments:  issue.GetComments(),
	}
}
