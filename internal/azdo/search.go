package azdo

import (
	"context"
	"net/http"
)

// SearchWorkItems runs a full-text search over work items, optionally
// scoped to one project. The search API lives on the almsearch host.
func (c *Client) SearchWorkItems(ctx context.Context, project, text string, top int) ([]SearchHit, error) {
	if top <= 0 {
		top = 25
	}

	body := map[string]any{
		"searchText": text,
		"$top":       top,
	}
	if project != "" {
		body["filters"] = map[string][]string{
			"System.TeamProject": {project},
		}
	}

	var resp searchResponse
	err := c.do(ctx, http.MethodPost, "_apis/search/workitemsearchresults", nil, body, &resp,
		withBaseURL(c.searchBaseURL))
	if err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return []SearchHit{}, nil
	}
	return resp.Results, nil
}
