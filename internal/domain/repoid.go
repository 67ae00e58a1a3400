package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidIdentifier indicates a repository string is not of the form owner/name.
var ErrInvalidIdentifier = errors.New("invalid repository identifier")

// RepositoryID identifies a repository as owner/name.
type RepositoryID struct {
	Owner string
	Name  string
}

// ParseRepositoryID validates s and splits it into owner and name.
// Surrounding whitespace is ignored. The string must contain exactly one
// "/" separating two non-empty segments.
func ParseRepositoryID(s string) (RepositoryID, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepositoryID{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return RepositoryID{Owner: parts[0], Name: parts[1]}, nil
}

// String returns the owner/name form.
func (id RepositoryID) String() string {
	return id.Owner + "/" + id.Name
}
