package tools

import (
	"context"

	"azdomcp/internal/azdo"
)

func registerRepoTools(r *Registry, client *azdo.Client) {
	r.Register(Descriptor{
		Name:        "repo_list_repos_by_project",
		Description: "List the Git repositories of a project.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
		}, "project"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.ListRepositories(ctx, stringArg(args, "project"))
		},
	})

	r.Register(Descriptor{
		Name:        "repo_list_pull_requests_by_repo",
		Description: "List the pull requests of a repository, optionally filtered by status (active, completed, abandoned, all).",
		InputSchema: schema(map[string]any{
			"project":    prop("string", "Project name or id."),
			"repository": prop("string", "Repository name or id."),
			"status":     prop("string", "Optional status filter."),
		}, "project", "repository"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.ListPullRequests(ctx,
				stringArg(args, "project"),
				stringArg(args, "repository"),
				stringArg(args, "status"))
		},
	})

	r.Register(Descriptor{
		Name:        "repo_get_pull_request_by_id",
		Description: "Get a single pull request by id.",
		InputSchema: schema(map[string]any{
			"project":       prop("string", "Project name or id."),
			"repository":    prop("string", "Repository name or id."),
			"pullRequestId": prop("number", "Pull request id."),
		}, "project", "repository", "pullRequestId"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.GetPullRequest(ctx,
				stringArg(args, "project"),
				stringArg(args, "repository"),
				intArg(args, "pullRequestId"))
		},
	})

	r.Register(Descriptor{
		Name:        "repo_create_pull_request",
		Description: "Create a pull request from a source branch to a target branch.",
		InputSchema: schema(map[string]any{
			"project":       prop("string", "Project name or id."),
			"repository":    prop("string", "Repository name or id."),
			"sourceRefName": prop("string", "Source branch ref, e.g. refs/heads/feature."),
			"targetRefName": prop("string", "Target branch ref, e.g. refs/heads/main."),
			"title":         prop("string", "Pull request title."),
			"description":   prop("string", "Optional pull request description."),
			"isDraft":       prop("boolean", "Create as a draft pull request."),
		}, "project", "repository", "sourceRefName", "targetRefName", "title"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.CreatePullRequest(ctx,
				stringArg(args, "project"),
				stringArg(args, "repository"),
				stringArg(args, "sourceRefName"),
				stringArg(args, "targetRefName"),
				stringArg(args, "title"),
				stringArg(args, "description"),
				boolArg(args, "isDraft"))
		},
	})
}
