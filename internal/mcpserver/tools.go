// Package mcpserver exposes the engine read queries via MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/remote"
)

const (
	defaultMaxResults = 50
	maxMaxResults     = 500
)

// RegisterTools registers all engine MCP tools on the given server.
func RegisterTools(server *mcp.Server, engine *remote.Engine) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_process_definitions",
			Description: "List deployed process definitions, optionally only the latest version of each key",
		},
		listProcessDefinitionsHandler(engine),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_tasks",
			Description: "List open user tasks by assignee, candidate group or process instance",
		},
		listTasksHandler(engine),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "count_process_instances",
			Description: "Count running process instances of a definition key or business key",
		},
		countProcessInstancesHandler(engine),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_incidents",
			Description: "List open incidents, optionally for one process instance or incident type",
		},
		listIncidentsHandler(engine),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_external_tasks",
			Description: "List external tasks by topic and worker",
		},
		listExternalTasksHandler(engine),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "get_process_instance_variables",
			Description: "Get the variables visible from a process instance",
		},
		getVariablesHandler(engine),
	)
}

// pageSize validates a max_results input. Zero means the default.
func pageSize(n int) (int, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("max_results must not be negative")
	case n == 0:
		return defaultMaxResults, nil
	case n > maxMaxResults:
		return 0, fmt.Errorf("max_results must be at most %d", maxMaxResults)
	}
	return n, nil
}

type listProcessDefinitionsInput struct {
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of results, default 50, at most 500"`
	NameLike   string `json:"name_like,omitempty" jsonschema:"name pattern, % matches any characters"`
	Key        string `json:"key,omitempty" jsonschema:"process definition key"`
	LatestOnly bool   `json:"latest_only,omitempty" jsonschema:"only the latest version of each key"`
}

func listProcessDefinitionsHandler(engine *remote.Engine) mcp.ToolHandlerFor[listProcessDefinitionsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input listProcessDefinitionsInput) (*mcp.CallToolResult, any, error) {
		size, err := pageSize(input.MaxResults)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		q := engine.Repository().CreateProcessDefinitionQuery()
		if input.NameLike != "" {
			q.ProcessDefinitionNameLike(input.NameLike)
		}
		if input.Key != "" {
			q.ProcessDefinitionKey(input.Key)
		}
		if input.LatestOnly {
			q.LatestVersion()
		}
		defs, err := q.OrderByProcessDefinitionKey().Asc().ListPage(ctx, 0, size)
		if err != nil {
			return queryError("list_process_definitions", err)
		}
		return textResult(defs)
	}
}

type listTasksInput struct {
	MaxResults        int    `json:"max_results,omitempty" jsonschema:"maximum number of results, default 50, at most 500"`
	Assignee          string `json:"assignee,omitempty" jsonschema:"user the task is assigned to"`
	CandidateGroup    string `json:"candidate_group,omitempty" jsonschema:"group that may claim the task"`
	ProcessInstanceID string `json:"process_instance_id,omitempty"`
}

func listTasksHandler(engine *remote.Engine) mcp.ToolHandlerFor[listTasksInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input listTasksInput) (*mcp.CallToolResult, any, error) {
		size, err := pageSize(input.MaxResults)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		q := engine.Tasks().CreateTaskQuery()
		if input.Assignee != "" {
			q.TaskAssignee(input.Assignee)
		}
		if input.CandidateGroup != "" {
			q.TaskCandidateGroup(input.CandidateGroup)
		}
		if input.ProcessInstanceID != "" {
			q.ProcessInstanceID(input.ProcessInstanceID)
		}
		tasks, err := q.OrderByTaskCreateTime().Desc().ListPage(ctx, 0, size)
		if err != nil {
			return queryError("list_tasks", err)
		}
		return textResult(tasks)
	}
}

type countProcessInstancesInput struct {
	ProcessDefinitionKey string `json:"process_definition_key,omitempty"`
	BusinessKey          string `json:"business_key,omitempty"`
	ActiveOnly           bool   `json:"active_only,omitempty" jsonschema:"skip suspended instances"`
}

func countProcessInstancesHandler(engine *remote.Engine) mcp.ToolHandlerFor[countProcessInstancesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input countProcessInstancesInput) (*mcp.CallToolResult, any, error) {
		if input.ProcessDefinitionKey == "" && input.BusinessKey == "" {
			return errorResult("process_definition_key or business_key is required"), nil, nil
		}

		q := engine.Runtime().CreateProcessInstanceQuery()
		if input.ProcessDefinitionKey != "" {
			q.ProcessDefinitionKey(input.ProcessDefinitionKey)
		}
		if input.BusinessKey != "" {
			q.ProcessInstanceBusinessKey(input.BusinessKey)
		}
		if input.ActiveOnly {
			q.Active()
		}
		n, err := q.Count(ctx)
		if err != nil {
			return queryError("count_process_instances", err)
		}
		return textResult(map[string]int64{"count": n})
	}
}

type listIncidentsInput struct {
	MaxResults        int    `json:"max_results,omitempty" jsonschema:"maximum number of results, default 50, at most 500"`
	ProcessInstanceID string `json:"process_instance_id,omitempty"`
	IncidentType      string `json:"incident_type,omitempty" jsonschema:"for example failedJob or failedExternalTask"`
}

func listIncidentsHandler(engine *remote.Engine) mcp.ToolHandlerFor[listIncidentsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input listIncidentsInput) (*mcp.CallToolResult, any, error) {
		size, err := pageSize(input.MaxResults)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		q := engine.Runtime().CreateIncidentQuery()
		if input.ProcessInstanceID != "" {
			q.ProcessInstanceID(input.ProcessInstanceID)
		}
		if input.IncidentType != "" {
			q.IncidentType(input.IncidentType)
		}
		incidents, err := q.OrderByIncidentTimestamp().Desc().ListPage(ctx, 0, size)
		if err != nil {
			return queryError("list_incidents", err)
		}
		return textResult(incidents)
	}
}

type listExternalTasksInput struct {
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of results, default 50, at most 500"`
	TopicName  string `json:"topic_name,omitempty"`
	WorkerID   string `json:"worker_id,omitempty"`
	LockedOnly bool   `json:"locked_only,omitempty" jsonschema:"only tasks currently locked by a worker"`
}

func listExternalTasksHandler(engine *remote.Engine) mcp.ToolHandlerFor[listExternalTasksInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input listExternalTasksInput) (*mcp.CallToolResult, any, error) {
		size, err := pageSize(input.MaxResults)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		q := engine.ExternalTasks().CreateExternalTaskQuery()
		if input.TopicName != "" {
			q.TopicName(input.TopicName)
		}
		if input.WorkerID != "" {
			q.WorkerID(input.WorkerID)
		}
		if input.LockedOnly {
			q.Locked()
		}
		tasks, err := q.OrderByID().Asc().ListPage(ctx, 0, size)
		if err != nil {
			return queryError("list_external_tasks", err)
		}
		return textResult(tasks)
	}
}

type processInstanceInput struct {
	ProcessInstanceID string `json:"process_instance_id"`
}

func getVariablesHandler(engine *remote.Engine) mcp.ToolHandlerFor[processInstanceInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input processInstanceInput) (*mcp.CallToolResult, any, error) {
		if input.ProcessInstanceID == "" {
			return errorResult("process_instance_id is required"), nil, nil
		}

		vars, err := engine.Runtime().Variables(ctx, input.ProcessInstanceID)
		if err != nil {
			return queryError("get_process_instance_variables", err)
		}
		out := make(map[string]any, len(vars))
		for name, v := range vars {
			out[name] = map[string]any{"type": v.Type, "value": v.Value}
		}
		return textResult(out)
	}
}

// queryError reports rejected queries to the caller and fails on everything else.
func queryError(tool string, err error) (*mcp.CallToolResult, any, error) {
	if errors.Is(err, domain.ErrUsage) || errors.Is(err, domain.ErrValidation) {
		return errorResult(err.Error()), nil, nil
	}
	return nil, nil, fmt.Errorf("%s: %w", tool, err)
}

func textResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
