package tools

import (
	"azdomcp/internal/azdo"
	"azdomcp/pkg/logging"
)

// NewCatalog builds the full tool registry bound to a backend client.
// Registration order is the listing order clients see.
func NewCatalog(client *azdo.Client) *Registry {
	r := NewRegistry()

	registerCoreTools(r, client)
	registerWorkItemTools(r, client)
	registerWorkTools(r, client)
	registerRepoTools(r, client)
	registerBuildTools(r, client)
	registerWikiTools(r, client)
	registerSearchTools(r, client)
	registerAdvSecTools(r, client)

	logging.Info("Catalog", "Registered %d tools for organization %s", r.Len(), client.Organization())
	return r
}
