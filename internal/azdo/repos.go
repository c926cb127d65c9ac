package azdo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListRepositories returns the Git repositories of a project.
func (c *Client) ListRepositories(ctx context.Context, project string) ([]Repository, error) {
	path := fmt.Sprintf("%s/_apis/git/repositories", url.PathEscape(project))
	var resp listResponse[Repository]
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// ListPullRequests returns the pull requests of a repository, optionally
// filtered by status (active, completed, abandoned, all).
func (c *Client) ListPullRequests(ctx context.Context, project, repository, status string) ([]PullRequest, error) {
	path := fmt.Sprintf("%s/_apis/git/repositories/%s/pullrequests",
		url.PathEscape(project), url.PathEscape(repository))
	query := url.Values{}
	if status != "" {
		query.Set("searchCriteria.status", status)
	}
	var resp listResponse[PullRequest]
	if err := c.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// GetPullRequest fetches a single pull request by id. A 404 here means the
// caller asked for something that does not exist and propagates unchanged.
func (c *Client) GetPullRequest(ctx context.Context, project, repository string, id int) (*PullRequest, error) {
	path := fmt.Sprintf("%s/_apis/git/repositories/%s/pullrequests/%d",
		url.PathEscape(project), url.PathEscape(repository), id)
	var pr PullRequest
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// CreatePullRequest opens a pull request from sourceRef to targetRef.
func (c *Client) CreatePullRequest(ctx context.Context, project, repository, sourceRef, targetRef, title, description string, draft bool) (*PullRequest, error) {
	path := fmt.Sprintf("%s/_apis/git/repositories/%s/pullrequests",
		url.PathEscape(project), url.PathEscape(repository))
	body := map[string]any{
		"sourceRefName": sourceRef,
		"targetRefName": targetRef,
		"title":         title,
		"description":   description,
		"isDraft":       draft,
	}
	var pr PullRequest
	if err := c.do(ctx, http.MethodPost, path, nil, body, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}
