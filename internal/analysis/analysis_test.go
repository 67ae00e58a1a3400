package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/h0rv/ghra/internal/domain"
	"github.com/h0rv/ghra/internal/gh"
	"github.com/h0rv/ghra/internal/timewindow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// fakeSource records calls and returns canned answers.
type fakeSource struct {
	meta     *domain.RepositoryMetadata
	metaErr  error
	issues   []domain.Issue
	issueErr error
	files    map[string]bool
	fileErr  map[string]error

	calls      []string
	gotSince   time.Time
	gotRepoIDs []domain.RepositoryID
}

func (f *fakeSource) GetRepository(ctx context.Context, id domain.RepositoryID) (*domain.RepositoryMetadata, error) {
	f.calls = append(f.calls, "repo")
	f.gotRepoIDs = append(f.gotRepoIDs, id)
	return f.meta, f.metaErr
}

func (f *fakeSource) ListGoodFirstIssues(ctx context.Context, id domain.RepositoryID, since time.Time) ([]domain.Issue, error) {
	f.calls = append(f.calls, "issues")
	f.gotSince = since
	return f.issues, f.issueErr
}

func (f *fakeSource) HasFile(ctx context.Context, id domain.RepositoryID, path string) (bool, error) {
	f.calls = append(f.calls, "file:"+path)
	if err := f.fileErr[path]; err != nil {
		return false, err
	}
	return f.files[path], nil
}

func healthySource() *fakeSource {
	return &fakeSource{
		meta: &domain.RepositoryMetadata{
			FullName:    "facebook/react",
			Language:    "JavaScript",
			Stars:       230000,
			Forks:       47000,
			OpenIssues:  900,
			Description: "UI library",
			CreatedAt:   time.Date(2013, 5, 24, 16, 15, 54, 0, time.UTC),
			UpdatedAt:   now.Add(-2 * time.Hour),
		},
		issues: []domain.Issue{
			{Title: "Fix typo", URL: "https://github.com/facebook/react/issues/1", Comments: 2},
			{Title: "Add docs", URL: "https://github.com/facebook/react/issues/2"},
		},
		files: map[string]bool{domain.ReadmePath: true, domain.ContributingPath: true},
	}
}

func newTestAnalyzer(src Source, opts ...Option) *Analyzer {
	opts = append([]Option{WithClock(func() time.Time { return now })}, opts...)
	return New(src, opts...)
}

var testID = domain.RepositoryID{Owner: "facebook", Name: "react"}

func TestAnalyze_Success(t *testing.T) {
	src := healthySource()
	cutoff := now.Add(-7 * 24 * time.Hour)

	result, err := newTestAnalyzer(src).Analyze(context.Background(), testID, cutoff)

	require.NoError(t, err)
	assert.Equal(t, []string{"repo", "issues", "file:README.md", "file:CONTRIBUTING.md"}, src.calls)
	assert.Equal(t, cutoff, src.gotSince)

	assert.Equal(t, domain.RepoSummary{
		Name:        "facebook/react",
		Language:    "JavaScript",
		Stars:       230000,
		Forks:       47000,
		OpenIssues:  900,
		Description: "UI library",
		Created:     "2013-05-24",
	}, result.Repo)
	assert.Equal(t, 2, result.GoodFirstCount)
	assert.Len(t, result.Issues, result.GoodFirstCount)
	assert.Equal(t, 7200.0, result.SecondsSinceUpdate)
	assert.Equal(t, domain.Status{
		README:       domain.Positive,
		Contributing: domain.Positive,
		Update:       domain.Positive,
		Issues:       domain.Positive,
	}, result.Status)
}

func TestAnalyze_MetadataNotFoundShortCircuits(t *testing.T) {
	src := &fakeSource{metaErr: fmt.Errorf("%w: facebook/react", gh.ErrNotFoundOrPrivate)}

	result, err := newTestAnalyzer(src).Analyze(context.Background(), testID, now)

	assert.Nil(t, result)
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, KindNotFound, aerr.Kind)
	assert.ErrorIs(t, err, gh.ErrNotFoundOrPrivate)
	assert.Equal(t, []string{"repo"}, src.calls, "no issue or file calls after metadata failure")
}

func TestAnalyze_MetadataTransportFailure(t *testing.T) {
	src := &fakeSource{metaErr: &gh.TransportError{Op: "get repository", Err: errors.New("dial tcp: i/o timeout")}}

	_, err := newTestAnalyzer(src).Analyze(context.Background(), testID, now)

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, KindTransport, aerr.Kind)
	assert.Contains(t, aerr.Reason, "i/o timeout")
	assert.Equal(t, []string{"repo"}, src.calls)
}

func TestAnalyze_NoIssues(t *testing.T) {
	src := healthySource()
	src.issues = nil

	result, err := newTestAnalyzer(src).Analyze(context.Background(), testID, now)

	require.NoError(t, err)
	assert.Equal(t, 0, result.GoodFirstCount)
	assert.NotNil(t, result.Issues)
	assert.Empty(t, result.Issues)
	assert.Equal(t, domain.Negative, result.Status.Issues)
}

func TestAnalyze_IssueFetchFailureDegrades(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	src := healthySource()
	src.issueErr = errors.New("connection reset")

	result, err := newTestAnalyzer(src, WithLogger(zap.New(core))).Analyze(context.Background(), testID, now)

	require.NoError(t, err)
	assert.Equal(t, 0, result.GoodFirstCount)
	assert.Equal(t, domain.Negative, result.Status.Issues)
	assert.Equal(t, 1, logs.FilterMessage("issue fetch failed, reporting no issues").Len())
	assert.Equal(t, 0, logs.FilterMessage("no matching issues").Len())
}

func TestAnalyze_EmptyIssuesLoggedSeparately(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	src := healthySource()
	src.issues = []domain.Issue{}

	_, err := newTestAnalyzer(src, WithLogger(zap.New(core))).Analyze(context.Background(), testID, now)

	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("no matching issues").Len())
	assert.Equal(t, 0, logs.FilterMessage("issue fetch failed, reporting no issues").Len())
}

func TestAnalyze_ProbeFailureCountsAsAbsent(t *testing.T) {
	src := healthySource()
	src.fileErr = map[string]error{domain.ReadmePath: errors.New("timeout")}
	src.files[domain.ContributingPath] = false

	result, err := newTestAnalyzer(src).Analyze(context.Background(), testID, now)

	require.NoError(t, err)
	assert.Equal(t, domain.Negative, result.Status.README)
	assert.Equal(t, domain.Negative, result.Status.Contributing)
	assert.Equal(t, []string{"repo", "issues", "file:README.md", "file:CONTRIBUTING.md"}, src.calls)
}

func TestAnalyze_StaleRepositoryIgnoresFilter(t *testing.T) {
	for _, opt := range timewindow.Options() {
		src := healthySource()
		src.meta.UpdatedAt = now.Add(-45 * 24 * time.Hour)
		cutoff, err := timewindow.ResolveCutoff(opt, now)
		require.NoError(t, err)

		result, err := newTestAnalyzer(src).Analyze(context.Background(), testID, cutoff)

		require.NoError(t, err)
		assert.Equal(t, domain.Negative, result.Status.Update, "filter %s", opt)
	}
}

func TestAnalyze_UpdateThresholdBoundary(t *testing.T) {
	src := healthySource()
	src.meta.UpdatedAt = now.Add(-30 * 24 * time.Hour)

	result, err := newTestAnalyzer(src).Analyze(context.Background(), testID, now)

	require.NoError(t, err)
	assert.Equal(t, 2592000.0, result.SecondsSinceUpdate)
	assert.Equal(t, domain.Positive, result.Status.Update)

	src = healthySource()
	src.meta.UpdatedAt = now.Add(-30*24*time.Hour - time.Second)

	result, err = newTestAnalyzer(src).Analyze(context.Background(), testID, now)

	require.NoError(t, err)
	assert.Equal(t, domain.Negative, result.Status.Update)
}

func TestAnalyzeString_InvalidIdentifier(t *testing.T) {
	for _, raw := range []string{"facebookreact", "a/b/c", ""} {
		src := healthySource()

		_, err := newTestAnalyzer(src).AnalyzeString(context.Background(), raw, now)

		var aerr *Error
		require.ErrorAs(t, err, &aerr, raw)
		assert.Equal(t, KindInvalidIdentifier, aerr.Kind)
		assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
		assert.Empty(t, src.calls, "no network calls for %q", raw)
	}
}

func TestAnalyzeString_Valid(t *testing.T) {
	src := healthySource()

	_, err := newTestAnalyzer(src).AnalyzeString(context.Background(), " facebook/react ", now)

	require.NoError(t, err)
	assert.Equal(t, []domain.RepositoryID{testID}, src.gotRepoIDs)
}

func TestGhClientImplementsSource(t *testing.T) {
	var _ Source = (*gh.Client)(nil)
}
