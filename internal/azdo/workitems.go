package azdo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// myWorkItemsWIQL selects the caller's open work items, most recent first.
const myWorkItemsWIQL = `SELECT [System.Id] FROM WorkItems ` +
	`WHERE [System.AssignedTo] = @Me AND [System.State] <> 'Closed' AND [System.State] <> 'Removed' ` +
	`ORDER BY [System.ChangedDate] DESC`

// GetWorkItem fetches a single work item by id. Absence of a single entity
// is an error, not an empty result.
func (c *Client) GetWorkItem(ctx context.Context, id int) (*WorkItem, error) {
	path := fmt.Sprintf("_apis/wit/workitems/%d", id)
	query := url.Values{"$expand": {"fields"}}
	var item WorkItem
	if err := c.do(ctx, http.MethodGet, path, query, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetWorkItemsBatch fetches up to 200 work items by id in one request.
// An empty id set short-circuits to an empty result without a remote call.
func (c *Client) GetWorkItemsBatch(ctx context.Context, ids []int) ([]WorkItem, error) {
	if len(ids) == 0 {
		return []WorkItem{}, nil
	}

	body := map[string]any{
		"ids":     ids,
		"$expand": "fields",
	}
	var resp listResponse[WorkItem]
	if err := c.do(ctx, http.MethodPost, "_apis/wit/workitemsbatch", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// MyWorkItems is a composite operation: a WIQL query returning reference
// ids, then a batch fetch of those ids. Zero references short-circuit to an
// empty result without issuing the second call.
func (c *Client) MyWorkItems(ctx context.Context, project string) ([]WorkItem, error) {
	path := fmt.Sprintf("%s/_apis/wit/wiql", url.PathEscape(project))
	query := url.Values{"$top": {"50"}}
	body := map[string]string{"query": myWorkItemsWIQL}

	var result wiqlResult
	if err := c.do(ctx, http.MethodPost, path, query, body, &result); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(result.WorkItems))
	for _, ref := range result.WorkItems {
		ids = append(ids, ref.ID)
	}
	return c.GetWorkItemsBatch(ctx, ids)
}

// CreateWorkItem creates a work item of the given type. Field names are the
// remote reference names (System.Title, System.Description, ...).
func (c *Client) CreateWorkItem(ctx context.Context, project, workItemType string, fields map[string]any) (*WorkItem, error) {
	ops := make([]patchOperation, 0, len(fields))
	for name, value := range fields {
		ops = append(ops, patchOperation{
			Op:    "add",
			Path:  "/fields/" + name,
			Value: value,
		})
	}

	path := fmt.Sprintf("%s/_apis/wit/workitems/$%s",
		url.PathEscape(project), url.PathEscape(workItemType))
	var item WorkItem
	err := c.do(ctx, http.MethodPost, path, nil, ops, &item,
		withContentType("application/json-patch+json"))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateWorkItem replaces the given fields on an existing work item.
func (c *Client) UpdateWorkItem(ctx context.Context, id int, fields map[string]any) (*WorkItem, error) {
	ops := make([]patchOperation, 0, len(fields))
	for name, value := range fields {
		ops = append(ops, patchOperation{
			Op:    "add",
			Path:  "/fields/" + name,
			Value: value,
		})
	}

	path := fmt.Sprintf("_apis/wit/workitems/%d", id)
	var item WorkItem
	err := c.do(ctx, http.MethodPatch, path, nil, ops, &item,
		withContentType("application/json-patch+json"))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AddWorkItemComment appends a comment to a work item's discussion.
func (c *Client) AddWorkItemComment(ctx context.Context, project string, id int, text string) (*Comment, error) {
	path := fmt.Sprintf("%s/_apis/wit/workItems/%d/comments", url.PathEscape(project), id)
	body := map[string]string{"text": text}
	var comment Comment
	if err := c.do(ctx, http.MethodPost, path, nil, body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListBacklogs returns the backlog levels configured for a team. Teams
// without provisioned backlogs report 404, which maps to an empty result.
func (c *Client) ListBacklogs(ctx context.Context, project, team string) ([]Backlog, error) {
	path := fmt.Sprintf("%s/%s/_apis/work/backlogs",
		url.PathEscape(project), url.PathEscape(team))
	var resp listResponse[Backlog]
	err := c.do(ctx, http.MethodGet, path, nil, nil, &resp)
	return emptyOnNotFound(resp.Value, err)
}
