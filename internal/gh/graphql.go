package gh

import (
	"context"
	"fmt"

	"github.com/machinebox/graphql"
)

// graphQLProber checks files with a repository.object lookup on HEAD.
type graphQLProber struct {
	gql   *graphql.Client
	token string
}

// makeRequest executes a GraphQL request with authentication.
func (p *graphQLProber) makeRequest(ctx context.Context, req *graphql.Request, resp interface{}) error {
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	return p.gql.Run(ctx, req, resp)
}

func (p *graphQLProber) hasFile(ctx context.Context, owner, name, path string) (bool, error) {
	req := graphql.NewRequest(`
		query($owner: String!, $name: String!, $expression: String!) {
			repository(owner: $owner, name: $name) {
				object(expression: $expression) {
					id
				}
			}
		}
	`)
	req.Var("owner", owner)
	req.Var("name", name)
	req.Var("expression", "HEAD:"+path)

	var resp struct {
		Repository *struct {
			Object *struct {
				ID string `json:"id"`
			} `json:"object"`
		} `json:"repository"`
	}

	if err := p.makeRequest(ctx, req, &resp); err != nil {
		return false, &TransportError{Op: "graphql probe " + path, Err: err}
	}

	if resp.Repository == nil {
		return false, &TransportError{Op: "graphql probe " + path, Err: fmt.Errorf("repository %s/%s not resolved", owner, name)}
	}

	return resp.Repository.Object != nil, nil
}
