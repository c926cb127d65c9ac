package tools

import (
	"context"

	"azdomcp/internal/azdo"
)

func registerCoreTools(r *Registry, client *azdo.Client) {
	r.Register(Descriptor{
		Name:        "core_list_projects",
		Description: "List all projects in the Azure DevOps organization.",
		InputSchema: schema(map[string]any{}),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.ListProjects(ctx)
		},
	})

	r.Register(Descriptor{
		Name:        "core_list_project_teams",
		Description: "List the teams of a project.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
		}, "project"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.ListProjectTeams(ctx, stringArg(args, "project"))
		},
	})

	r.Register(Descriptor{
		Name:        "core_get_team_members",
		Description: "List the members of a team. Returns an empty list when membership is not available for the team.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
			"team":    prop("string", "Team name or id."),
		}, "project", "team"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.GetTeamMembers(ctx, stringArg(args, "project"), stringArg(args, "team"))
		},
	})
}
