package tools

import (
	"context"

	"azdomcp/internal/azdo"
)

func registerWikiTools(r *Registry, client *azdo.Client) {
	r.Register(Descriptor{
		Name:        "wiki_list_wikis",
		Description: "List the wikis of a project.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
		}, "project"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.ListWikis(ctx, stringArg(args, "project"))
		},
	})

	r.Register(Descriptor{
		Name:        "wiki_get_page_content",
		Description: "Get a wiki page including its content.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
			"wiki":    prop("string", "Wiki name or id."),
			"path":    prop("string", "Page path, e.g. /Home."),
		}, "project", "wiki", "path"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.GetWikiPage(ctx,
				stringArg(args, "project"),
				stringArg(args, "wiki"),
				stringArg(args, "path"))
		},
	})
}
