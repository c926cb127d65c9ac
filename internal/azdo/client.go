package azdo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"azdomcp/internal/auth"
	"azdomcp/internal/config"
	"azdomcp/pkg/logging"
)

// Client binds the credential provider to an HTTP transport targeting one
// Azure DevOps organization. The organization identity is immutable after
// construction; a malformed organization URL is a fatal configuration
// error, not a per-call one.
type Client struct {
	baseURL       string
	searchBaseURL string
	organization  string
	apiVersion    string
	provider      auth.Provider
	httpClient    *http.Client
}

// NewClient constructs a backend client from the configured organization URL.
func NewClient(cfg *config.Config, provider auth.Provider) (*Client, error) {
	org, err := config.OrganizationFromURL(cfg.OrganizationURL)
	if err != nil {
		return nil, err
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = config.DefaultAPIVersion
	}

	base := strings.TrimRight(cfg.OrganizationURL, "/")

	return &Client{
		baseURL:       base,
		searchBaseURL: searchBaseURL(base, org),
		organization:  org,
		apiVersion:    apiVersion,
		provider:      provider,
		httpClient:    &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Organization returns the organization name extracted from the base URL.
func (c *Client) Organization() string {
	return c.organization
}

// searchBaseURL maps the organization base URL to the almsearch host the
// search API lives on. Non-production hosts (tests, proxies) keep the
// original base so requests stay on one server.
func searchBaseURL(base, org string) string {
	u, err := url.Parse(base)
	if err != nil || !strings.EqualFold(u.Hostname(), "dev.azure.com") {
		return base
	}
	return "https://almsearch.dev.azure.com/" + org
}

// listResponse is the envelope Azure DevOps wraps around collection results.
type listResponse[T any] struct {
	Count int `json:"count"`
	Value []T `json:"value"`
}

type requestOptions struct {
	baseURL     string
	contentType string
}

// do issues one REST request: fetch authorization material, build the URL
// with the api-version parameter, send, and decode the JSON response into
// out. Non-2xx responses become *RequestError with the body preserved.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any, opts ...func(*requestOptions)) error {
	o := requestOptions{baseURL: c.baseURL, contentType: "application/json"}
	for _, opt := range opts {
		opt(&o)
	}

	header, err := c.provider.Authorization(ctx)
	if err != nil {
		return err
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api-version", c.apiVersion)

	fullURL := o.baseURL + "/" + strings.TrimLeft(path, "/") + "?" + query.Encode()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", header)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", o.contentType)
	}

	logging.Debug("Backend", "%s %s", method, fullURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", fullURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
		return &RequestError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", fullURL, err)
	}
	return nil
}

func withBaseURL(base string) func(*requestOptions) {
	return func(o *requestOptions) { o.baseURL = base }
}

func withContentType(ct string) func(*requestOptions) {
	return func(o *requestOptions) { o.contentType = ct }
}

// emptyOnNotFound normalizes a remote 404 to an empty slice for list-style
// operations where absence is a normal provisioned state.
func emptyOnNotFound[T any](value []T, err error) ([]T, error) {
	if IsNotFound(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	if value == nil {
		value = []T{}
	}
	return value, nil
}
