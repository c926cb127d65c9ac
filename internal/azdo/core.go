package azdo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListProjects returns all projects in the organization.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var resp listResponse[Project]
	if err := c.do(ctx, http.MethodGet, "_apis/projects", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// ListProjectTeams returns the teams of a project.
func (c *Client) ListProjectTeams(ctx context.Context, project string) ([]Team, error) {
	path := fmt.Sprintf("_apis/projects/%s/teams", url.PathEscape(project))
	var resp listResponse[Team]
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// GetTeamMembers returns the members of a team. A team with no listing
// capability reports 404; membership being unavailable is a normal state,
// so that maps to an empty result.
func (c *Client) GetTeamMembers(ctx context.Context, project, team string) ([]TeamMember, error) {
	path := fmt.Sprintf("_apis/projects/%s/teams/%s/members",
		url.PathEscape(project), url.PathEscape(team))
	var resp listResponse[TeamMember]
	err := c.do(ctx, http.MethodGet, path, nil, nil, &resp)
	return emptyOnNotFound(resp.Value, err)
}
