package tools

import (
	"context"

	"azdomcp/internal/azdo"
)

func registerWorkItemTools(r *Registry, client *azdo.Client) {
	r.Register(Descriptor{
		Name:        "wit_my_work_items",
		Description: "List the work items assigned to the signed-in user, most recently changed first.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
		}, "project"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.MyWorkItems(ctx, stringArg(args, "project"))
		},
	})

	r.Register(Descriptor{
		Name:        "wit_get_work_item",
		Description: "Get a single work item by id, including its fields.",
		InputSchema: schema(map[string]any{
			"id": prop("number", "Work item id."),
		}, "id"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.GetWorkItem(ctx, intArg(args, "id"))
		},
	})

	r.Register(Descriptor{
		Name:        "wit_get_work_items_batch_by_ids",
		Description: "Get up to 200 work items by id in a single request.",
		InputSchema: schema(map[string]any{
			"ids": map[string]any{
				"type":        "array",
				"description": "Work item ids.",
				"items":       map[string]any{"type": "number"},
			},
		}, "ids"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.GetWorkItemsBatch(ctx, intSliceArg(args, "ids"))
		},
	})

	r.Register(Descriptor{
		Name:        "wit_create_work_item",
		Description: "Create a work item of the given type. Field names use reference form, e.g. System.Title.",
		InputSchema: schema(map[string]any{
			"project":      prop("string", "Project name or id."),
			"workItemType": prop("string", "Work item type, e.g. Bug or Task."),
			"fields": map[string]any{
				"type":        "object",
				"description": "Field reference name to value map.",
			},
		}, "project", "workItemType", "fields"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.CreateWorkItem(ctx,
				stringArg(args, "project"),
				stringArg(args, "workItemType"),
				mapArg(args, "fields"))
		},
	})

	r.Register(Descriptor{
		Name:        "wit_update_work_item",
		Description: "Update fields on an existing work item.",
		InputSchema: schema(map[string]any{
			"id": prop("number", "Work item id."),
			"fields": map[string]any{
				"type":        "object",
				"description": "Field reference name to value map.",
			},
		}, "id", "fields"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.UpdateWorkItem(ctx, intArg(args, "id"), mapArg(args, "fields"))
		},
	})

	r.Register(Descriptor{
		Name:        "wit_add_work_item_comment",
		Description: "Add a comment to a work item's discussion.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
			"id":      prop("number", "Work item id."),
			"text":    prop("string", "Comment text."),
		}, "project", "id", "text"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.AddWorkItemComment(ctx,
				stringArg(args, "project"),
				intArg(args, "id"),
				stringArg(args, "text"))
		},
	})

	r.Register(Descriptor{
		Name:        "wit_list_backlogs",
		Description: "List the backlog levels of a team. Returns an empty list when backlogs are not provisioned.",
		InputSchema: schema(map[string]any{
			"project": prop("string", "Project name or id."),
			"team":    prop("string", "Team name or id."),
		}, "project", "team"),
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return client.ListBacklogs(ctx, stringArg(args, "project"), stringArg(args, "team"))
		},
	})
}
