// Package store keeps the state the dashboard chooses to retain between
// analyses: the last request, its render model, and recently analyzed
// repositories. Nothing is persisted.
package store

import (
	"errors"
	"strings"

	"github.com/h0rv/ghra/internal/view"
)

// ErrNoResult indicates no analysis has been recorded yet.
var ErrNoResult = errors.New("no analysis recorded")

// MaxRecent caps the recent repositories list.
const MaxRecent = 10

// Store manages in-memory session state.
type Store struct {
	current *view.Model

	// Most recent first, compared case-insensitively.
	recent []string
}

// New creates a new empty Store instance.
func New() *Store {
	return &Store{}
}

// Record stores m as the current model.
// Successful analyses move their repository to the front of the recent list.
func (s *Store) Record(m view.Model) {
	s.current = &m
	if !m.Failed() && m.Summary.Name != "" {
		s.pushRecent(m.Summary.Name)
	}
}

// Current returns the last recorded model, or ErrNoResult.
func (s *Store) Current() (view.Model, error) {
	if s.current == nil {
		return view.Model{}, ErrNoResult
	}
	return *s.current, nil
}

// LastRequest returns the request of the last recorded model.
// The second value is false when nothing has been recorded.
func (s *Store) LastRequest() (view.Request, bool) {
	if s.current == nil {
		return view.Request{}, false
	}
	return s.current.Request, true
}

// Recent returns recently analyzed repositories, most recent first.
func (s *Store) Recent() []string {
	result := make([]string, len(s.recent))
	copy(result, s.recent)
	return result
}

// Clear drops the current model but keeps the recent list.
func (s *Store) Clear() {
	s.current = nil
}

// Reset completely resets the store to initial state.
func (s *Store) Reset() {
	s.Clear()
	s.recent = nil
}

func (s *Store) pushRecent(repo string) {
	filtered := make([]string, 0, len(s.recent)+1)
	filtered = append(filtered, repo)
	for _, r := range s.recent {
		if !strings.EqualFold(r, repo) {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) > MaxRecent {
		filtered = filtered[:MaxRecent]
	}
	s.recent = filtered
}
