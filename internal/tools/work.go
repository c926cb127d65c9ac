package tools

import (
	"context"

	"azdomcp/internal/azdo"
)

func registerWorkTools(r *Registry, client *azdo.Client) {
	r.Register(Descriptor{
		Name:        "work_list_team_iterations",
		Description: "List the iterations (sprints) of a team. Returns an empty list when none are configured.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
			"team":    prop("string", "Team name or id."),
		}, "project", "team"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.ListTeamIterations(ctx, stringArg(args, "project"), stringArg(args, "team"))
		},
	})

	r.Register(Descriptor{
		Name:        "work_list_boards",
		Description: "List the Kanban boards of a team. Returns an empty list when boards are not provisioned.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
			"team":    prop("string", "Team name or id."),
		}, "project", "team"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.ListBoards(ctx, stringArg(args, "project"), stringArg(args, "team"))
		},
	})
}
