package azdo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetAlerts returns the advanced-security alerts of a repository. On
// repositories where the security features are not enabled the service
// reports 404; that is a normal state and maps to an empty result.
func (c *Client) GetAlerts(ctx context.Context, project, repository string) ([]Alert, error) {
	path := fmt.Sprintf("%s/_apis/alert/repositories/%s/alerts",
		url.PathEscape(project), url.PathEscape(repository))
	var resp listResponse[Alert]
	err := c.do(ctx, http.MethodGet, path, nil, nil, &resp)
	return emptyOnNotFound(resp.Value, err)
}
