package gh

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"
)

// ErrNotFoundOrPrivate indicates GitHub answered 404 or 403 for a repository.
var ErrNotFoundOrPrivate = errors.New("repository not found or private")

// TransportError wraps failures that did not produce a usable API answer:
// timeouts, DNS and connection errors, or unexpected status codes.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// statusCode extracts the HTTP status from a go-github error, or 0.
func statusCode(err error) int {
	var resp *http.Response

	var errResp *github.ErrorResponse
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	switch {
	case errors.As(err, &errResp):
		resp = errResp.Response
	case errors.As(err, &rateErr):
		resp = rateErr.Response
	case errors.As(err, &abuseErr):
		resp = abuseErr.Response
	}

	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func isNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

func isNotFoundOrForbidden(err error) bool {
	code := statusCode(err)
	return code == http.StatusNotFound || code == http.StatusForbidden
}
