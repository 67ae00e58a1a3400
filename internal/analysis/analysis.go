// Package analysis assembles a repository report from GitHub lookups.
//
// An Analyzer runs its lookups one after another: metadata, good first
// issues, then the README and CONTRIBUTING probes. Only a metadata failure
// aborts; issue and probe failures are logged and reported as "no data".
package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/h0rv/ghra/internal/domain"
	"github.com/h0rv/ghra/internal/gh"
	"github.com/h0rv/ghra/internal/timewindow"
	"go.uber.org/zap"
)

// Source is the subset of the GitHub API an Analyzer needs.
// *gh.Client implements it.
type Source interface {
	GetRepository(ctx context.Context, id domain.RepositoryID) (*domain.RepositoryMetadata, error)
	ListGoodFirstIssues(ctx context.Context, id domain.RepositoryID, since time.Time) ([]domain.Issue, error)
	HasFile(ctx context.Context, id domain.RepositoryID, path string) (bool, error)
}

// Analyzer computes AnalysisResults from a Source.
type Analyzer struct {
	source Source
	log    *zap.Logger
	now    func() time.Time
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// WithClock replaces the wall clock used for elapsed time.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates an Analyzer reading from source.
func New(source Source, opts ...Option) *Analyzer {
	a := &Analyzer{
		source: source,
		log:    zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Now returns the analyzer's current time.
func (a *Analyzer) Now() time.Time {
	return a.now()
}

// AnalyzeString parses raw as owner/name and analyzes it.
// An invalid identifier fails with KindInvalidIdentifier before any request is made.
func (a *Analyzer) AnalyzeString(ctx context.Context, raw string, cutoff time.Time) (*domain.AnalysisResult, error) {
	id, err := domain.ParseRepositoryID(raw)
	if err != nil {
		return nil, &Error{Kind: KindInvalidIdentifier, Reason: "invalid repository format, use owner/repo", Err: err}
	}
	return a.Analyze(ctx, id, cutoff)
}

// Analyze fetches metadata, good first issues updated since cutoff and file
// presence for id, and derives the status badges.
// Errors are always *Error.
func (a *Analyzer) Analyze(ctx context.Context, id domain.RepositoryID, cutoff time.Time) (*domain.AnalysisResult, error) {
	log := a.log.With(zap.String("repo", id.String()))

	meta, err := a.source.GetRepository(ctx, id)
	if err != nil {
		log.Warn("metadata fetch failed", zap.Error(err))
		return nil, classify(err)
	}

	issues, err := a.source.ListGoodFirstIssues(ctx, id, cutoff)
	switch {
	case err != nil:
		log.Warn("issue fetch failed, reporting no issues", zap.Error(err), zap.Time("since", cutoff))
		issues = nil
	case len(issues) == 0:
		log.Debug("no matching issues", zap.Time("since", cutoff))
	}
	if issues == nil {
		issues = []domain.Issue{}
	}

	elapsed := timewindow.SecondsSince(meta.UpdatedAt, a.now())

	hasReadme := a.probe(ctx, log, id, domain.ReadmePath)
	hasContributing := a.probe(ctx, log, id, domain.ContributingPath)

	result := &domain.AnalysisResult{
		Repo:               summarize(meta),
		Issues:             issues,
		GoodFirstCount:     len(issues),
		SecondsSinceUpdate: elapsed,
		Status: domain.Status{
			README:       domain.IndicatorFor(hasReadme),
			Contributing: domain.IndicatorFor(hasContributing),
			Update:       domain.IndicatorFor(elapsed <= timewindow.Recent.Seconds()),
			Issues:       domain.IndicatorFor(len(issues) > 0),
		},
	}

	log.Info("analysis complete",
		zap.Int("good_first_issues", result.GoodFirstCount),
		zap.Float64("seconds_since_update", elapsed),
		zap.Bool("readme", hasReadme),
		zap.Bool("contributing", hasContributing),
	)

	return result, nil
}

// probe reports whether path exists, treating failures as absent.
func (a *Analyzer) probe(ctx context.Context, log *zap.Logger, id domain.RepositoryID, path string) bool {
	ok, err := a.source.HasFile(ctx, id, path)
	if err != nil {
		log.Warn("file probe failed, treating as absent", zap.String("path", path), zap.Error(err))
		return false
	}
	return ok
}

// summarize reshapes metadata into the display record.
func summarize(meta *domain.RepositoryMetadata) domain.RepoSummary {
	created := ""
	if !meta.CreatedAt.IsZero() {
		created = meta.CreatedAt.UTC().Format("2006-01-02")
	}
	return domain.RepoSummary{
		Name:        meta.FullName,
		Language:    meta.Language,
		Stars:       meta.Stars,
		Forks:       meta.Forks,
		OpenIssues:  meta.OpenIssues,
		Description: meta.Description,
		Created:     created,
	}
}

func classify(err error) *Error {
	if errors.Is(err, gh.ErrNotFoundOrPrivate) {
		return &Error{Kind: KindNotFound, Reason: "repository not found or is private", Err: err}
	}
	return &Error{Kind: KindTransport, Reason: err.Error(), Err: err}
}
