// Package remote groups the engine queries into services bound to one
// transport client: runtime, tasks, repository, external tasks and history.
package remote

import (
	"context"

	"github.com/procrest/engine-client-go/internal/query"
	"github.com/procrest/engine-client-go/internal/transport"
	"github.com/procrest/engine-client-go/internal/variables"
)

// Engine hands out query services for a remote engine.
type Engine struct {
	client *transport.Client
	opts   []query.Option
}

// New binds the services to client. opts are applied to every query created.
func New(client *transport.Client, opts ...query.Option) *Engine {
	return &Engine{client: client, opts: opts}
}

// With returns an Engine sharing the client whose queries also get opts.
func (e *Engine) With(opts ...query.Option) *Engine {
	merged := make([]query.Option, 0, len(e.opts)+len(opts))
	merged = append(merged, e.opts...)
	merged = append(merged, opts...)
	return &Engine{client: e.client, opts: merged}
}

func (e *Engine) Runtime() RuntimeService            { return RuntimeService{e} }
func (e *Engine) Tasks() TaskService                 { return TaskService{e} }
func (e *Engine) Repository() RepositoryService      { return RepositoryService{e} }
func (e *Engine) ExternalTasks() ExternalTaskService { return ExternalTaskService{e} }
func (e *Engine) History() HistoryService            { return HistoryService{e} }

// RuntimeService queries running instances, executions, incidents and event
// subscriptions.
type RuntimeService struct{ e *Engine }

func (s RuntimeService) CreateProcessInstanceQuery() *query.ProcessInstanceQuery {
	return query.NewProcessInstanceQuery(s.e.client.ProcessInstances(), s.e.opts...)
}

func (s RuntimeService) CreateExecutionQuery() *query.ExecutionQuery {
	return query.NewExecutionQuery(s.e.client.Executions(), s.e.opts...)
}

func (s RuntimeService) CreateIncidentQuery() *query.IncidentQuery {
	return query.NewIncidentQuery(s.e.client.Incidents(), s.e.opts...)
}

func (s RuntimeService) CreateEventSubscriptionQuery() *query.EventSubscriptionQuery {
	return query.NewEventSubscriptionQuery(s.e.client.EventSubscriptions(), s.e.opts...)
}

// Variables returns the variables visible from a process instance.
func (s RuntimeService) Variables(ctx context.Context, processInstanceID string) (map[string]variables.TypedValue, error) {
	return s.e.client.ProcessInstanceVariables(ctx, processInstanceID)
}

// TaskService queries user tasks.
type TaskService struct{ e *Engine }

func (s TaskService) CreateTaskQuery() *query.TaskQuery {
	return query.NewTaskQuery(s.e.client.Tasks(), s.e.opts...)
}

// RepositoryService queries deployments and process definitions.
type RepositoryService struct{ e *Engine }

func (s RepositoryService) CreateProcessDefinitionQuery() *query.ProcessDefinitionQuery {
	return query.NewProcessDefinitionQuery(s.e.client.ProcessDefinitions(), s.e.opts...)
}

func (s RepositoryService) CreateDeploymentQuery() *query.DeploymentQuery {
	return query.NewDeploymentQuery(s.e.client.Deployments(), s.e.opts...)
}

// ExternalTaskService queries external tasks.
type ExternalTaskService struct{ e *Engine }

func (s ExternalTaskService) CreateExternalTaskQuery() *query.ExternalTaskQuery {
	return query.NewExternalTaskQuery(s.e.client.ExternalTasks(), s.e.opts...)
}

// HistoryService queries historic process instances.
type HistoryService struct{ e *Engine }

func (s HistoryService) CreateHistoricProcessInstanceQuery() *query.HistoricProcessInstanceQuery {
	return query.NewHistoricProcessInstanceQuery(s.e.client.HistoricProcessInstances(), s.e.opts...)
}
