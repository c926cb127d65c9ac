package azdo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListTeamIterations returns the iterations (sprints) assigned to a team.
// Teams without configured iterations report 404, which maps to an empty
// result.
func (c *Client) ListTeamIterations(ctx context.Context, project, team string) ([]Iteration, error) {
	path := fmt.Sprintf("%s/%s/_apis/work/teamsettings/iterations",
		url.PathEscape(project), url.PathEscape(team))
	var resp listResponse[Iteration]
	err := c.do(ctx, http.MethodGet, path, nil, nil, &resp)
	return emptyOnNotFound(resp.Value, err)
}

// ListBoards returns the Kanban boards provisioned for a team. Boards not
// being provisioned is a normal state, so 404 maps to an empty result.
func (c *Client) ListBoards(ctx context.Context, project, team string) ([]Board, error) {
	path := fmt.Sprintf("%s/%s/_apis/work/boards",
		url.PathEscape(project), url.PathEscape(team))
	var resp listResponse[Board]
	err := c.do(ctx, http.MethodGet, path, nil, nil, &resp)
	return emptyOnNotFound(resp.Value, err)
}
