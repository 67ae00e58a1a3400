// Package auth provides optional GitHub token lookup.
// A missing token is not an error: the client falls back to unauthenticated,
// rate-limited access.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultTokenVar is the environment variable holding the GitHub API token.
const DefaultTokenVar = "GITHUB_TOKEN"

// ErrNoToken indicates a provider has no token to offer.
var ErrNoToken = errors.New("no token available")

// TokenProvider defines the interface for obtaining a GitHub authentication token.
type TokenProvider interface {
	GetToken() (string, error)
}

// EnvProvider obtains tokens from an environment variable.
// Var defaults to GITHUB_TOKEN when empty.
type EnvProvider struct {
	Var string
}

// GetToken reads the configured environment variable.
// Returns an error wrapping ErrNoToken if the variable is unset or blank.
func (e *EnvProvider) GetToken() (string, error) {
	name := e.Var
	if name == "" {
		name = DefaultTokenVar
	}
	token := strings.TrimSpace(os.Getenv(name))
	if token == "" {
		return "", fmt.Errorf("%w: %s not set or empty", ErrNoToken, name)
	}
	return token, nil
}

// StaticProvider returns a fixed token, typically supplied on the command line.
type StaticProvider struct {
	Token string
}

// GetToken returns the static token or ErrNoToken when it is blank.
func (s *StaticProvider) GetToken() (string, error) {
	token := strings.TrimSpace(s.Token)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Resolve returns the first token any provider yields, in order.
// When none has a token it returns "" and a nil error.
// Provider errors other than ErrNoToken are returned to the caller.
func Resolve(providers ...TokenProvider) (string, error) {
	for _, p := range providers {
		token, err := p.GetToken()
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, ErrNoToken) {
			return "", fmt.Errorf("failed to obtain GitHub token: %w", err)
		}
	}
	return "", nil
}
