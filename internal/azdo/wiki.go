package azdo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListWikis returns the wikis of a project.
func (c *Client) ListWikis(ctx context.Context, project string) ([]Wiki, error) {
	path := fmt.Sprintf("%s/_apis/wiki/wikis", url.PathEscape(project))
	var resp listResponse[Wiki]
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// GetWikiPage fetches a wiki page with its content included.
func (c *Client) GetWikiPage(ctx context.Context, project, wiki, pagePath string) (*WikiPage, error) {
	path := fmt.Sprintf("%s/_apis/wiki/wikis/%s/pages",
		url.PathEscape(project), url.PathEscape(wiki))
	query := url.Values{
		"path":           {pagePath},
		"includeContent": {"true"},
	}
	var page WikiPage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
