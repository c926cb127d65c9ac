package tools

import (
	"context"

	"azdomcp/internal/azdo"
)

func registerBuildTools(r *Registry, client *azdo.Client) {
	r.Register(Descriptor{
		Name:        "build_get_definitions",
		Description: "List the build (pipeline) definitions of a project.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
		}, "project"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.ListBuildDefinitions(ctx, stringArg(args, "project"))
		},
	})

	r.Register(Descriptor{
		Name:        "build_run_build",
		Description: "Queue a new run of a build definition, optionally on a specific branch.",
		InputSchema: schema(map[string]any{
			"project":      prop("string", "Project name or id."),
			"definitionId": prop("number", "Build definition id."),
			"sourceBranch": prop("string", "Optional branch ref to build."),
		}, "project", "definitionId"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.RunBuild(ctx,
				stringArg(args, "project"),
				intArg(args, "definitionId"),
				stringArg(args, "sourceBranch"))
		},
	})

	r.Register(Descriptor{
		Name:        "build_get_status",
		Description: "Get the status and result of a build run.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
			"buildId": prop("number", "Build id."),
		}, "project", "buildId"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.GetBuildStatus(ctx, stringArg(args, "project"), intArg(args, "buildId"))
		},
	})
}
