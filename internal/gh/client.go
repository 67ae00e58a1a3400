// Package gh provides the GitHub API client used for repository analysis.
// REST calls go through go-github; file existence probes can use either REST
// or the GraphQL API.
package gh

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/machinebox/graphql"
	"golang.org/x/oauth2"
)

// DefaultTimeout bounds each outbound request when Options.Timeout is zero.
const DefaultTimeout = 10 * time.Second

const defaultGraphQLURL = "https://api.github.com/graphql"

// ProbeMode selects how file existence is checked.
type ProbeMode string

const (
	ProbeAuto    ProbeMode = "auto"    // GraphQL with a token, REST without
	ProbeREST    ProbeMode = "rest"    // contents endpoint
	ProbeGraphQL ProbeMode = "graphql" // repository.object(expression:)
)

// ParseProbeMode validates a probe mode name. Empty means auto.
func ParseProbeMode(s string) (ProbeMode, error) {
	switch mode := ProbeMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ProbeAuto, nil
	case ProbeAuto, ProbeREST, ProbeGraphQL:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown probe mode %q (want auto, rest or graphql)", s)
	}
}

// Options configures a Client.
type Options struct {
	Token   string        // Optional bearer token
	Timeout time.Duration // Per-request bound, DefaultTimeout if zero
	Probe   ProbeMode     // File probe backend, ProbeAuto if empty

	// BaseURL and GraphQLURL override the public API endpoints.
	BaseURL    string
	GraphQLURL string
}

// Client wraps the GitHub REST API and an optional GraphQL prober.
type Client struct {
	rest   *github.Client
	prober fileProber
}

type fileProber interface {
	hasFile(ctx context.Context, owner, name, path string) (bool, error)
}

// New creates a client. Without a token all requests are unauthenticated.
func New(opts Options) (*Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = timeout
	}

	rest := github.NewClient(httpClient)
	if opts.BaseURL != "" {
		base := opts.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", opts.BaseURL, err)
		}
		rest.BaseURL = u
	}

	c := &Client{rest: rest}

	mode := opts.Probe
	if mode == "" {
		mode = ProbeAuto
	}
	if mode == ProbeAuto {
		// The GraphQL API rejects anonymous requests.
		mode = ProbeREST
		if opts.Token != "" {
			mode = ProbeGraphQL
		}
	}

	switch mode {
	case ProbeREST:
		c.prober = restProber{rest: rest}
	case ProbeGraphQL:
		endpoint := opts.GraphQLURL
		if endpoint == "" {
			endpoint = defaultGraphQLURL
		}
		c.prober = &graphQLProber{
			gql:   graphql.NewClient(endpoint, graphql.WithHTTPClient(&http.Client{Timeout: timeout})),
			token: opts.Token,
		}
	default:
		return nil, fmt.Errorf("unknown probe mode %q", mode)
	}

	return c, nil
}

// ProbeMode reports the backend chosen for file probes.
func (c *Client) ProbeMode() ProbeMode {
	if _, ok := c.prober.(*graphQLProber); ok {
		return ProbeGraphQL
	}
	return ProbeREST
}
