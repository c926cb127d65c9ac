package azdo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListBuildDefinitions returns the pipeline definitions of a project.
func (c *Client) ListBuildDefinitions(ctx context.Context, project string) ([]BuildDefinition, error) {
	path := fmt.Sprintf("%s/_apis/build/definitions", url.PathEscape(project))
	var resp listResponse[BuildDefinition]
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// RunBuild queues a new run of a build definition, optionally on a
// specific branch.
func (c *Client) RunBuild(ctx context.Context, project string, definitionID int, sourceBranch string) (*Build, error) {
	path := fmt.Sprintf("%s/_apis/build/builds", url.PathEscape(project))
	body := map[string]any{
		"definition": map[string]int{"id": definitionID},
	}
	if sourceBranch != "" {
		body["sourceBranch"] = sourceBranch
	}
	var build Build
	if err := c.do(ctx, http.MethodPost, path, nil, body, &build); err != nil {
		return nil, err
	}
	return &build, nil
}

// GetBuildStatus fetches the current status of a build run.
func (c *Client) GetBuildStatus(ctx context.Context, project string, buildID int) (*Build, error) {
	path := fmt.Sprintf("%s/_apis/build/builds/%d", url.PathEscape(project), buildID)
	var build Build
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &build); err != nil {
		return nil, err
	}
	return &build, nil
}
