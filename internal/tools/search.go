package tools

import (
	"context"

	"azdomcp/internal/azdo"
)

func registerSearchTools(r *Registry, client *azdo.Client) {
	r.Register(Descriptor{
		Name:        "search_workitem",
		Description: "Full-text search over work items, optionally scoped to a project.",
		InputSchema: schema(map[string]any{
			"searchText": prop("string", "Text to search for."),
			"project":    prop("string", "Optional project scope."),
			"top":        prop("number", "Maximum number of results (default 25)."),
		}, "searchText"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.SearchWorkItems(ctx,
				stringArg(args, "project"),
				stringArg(args, "searchText"),
				intArg(args, "top"))
		},
	})
}
