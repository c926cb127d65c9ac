package tools

import (
	"context"

	"azdomcp/internal/azdo"
)

func registerAdvSecTools(r *Registry, client *azdo.Client) {
	r.Register(Descriptor{
		Name:        "advsec_get_alerts",
		Description: "List the advanced-security alerts of a repository. Returns an empty list when security features are not enabled.",
		InputSchema: schema(map[string]any{
			"project":    prop("string", "Project name or id."),
			"repository": prop("string", "Repository name or id."),
		}, "project", "repository"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.GetAlerts(ctx, stringArg(args, "project"), stringArg(args, "repository"))
		},
	})
}
