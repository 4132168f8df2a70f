// Package domain holds the engine-facing vocabulary shared by queries,
// adapters and transports: entity read interfaces, engine enums, the query
// execution contract and the error taxonomy.
package domain

import (
	"context"
	"time"
)

// Query is the execution half of every fluent query.
type Query[T any] interface {
	// List returns all matches. It is ListPage(ctx, 0, MaxResults).
	List(ctx context.Context) ([]T, error)
	// ListPage returns up to maxResults matches starting at firstResult.
	ListPage(ctx context.Context, firstResult, maxResults int) ([]T, error)
	// UnlimitedList currently behaves like List.
	UnlimitedList(ctx context.Context) ([]T, error)
	// ListIDs returns the ids of all matches.
	ListIDs(ctx context.Context) ([]string, error)
	// Count returns the number of matches.
	Count(ctx context.Context) (int64, error)
	// SingleResult returns the only match. ok is false when nothing matched.
	SingleResult(ctx context.Context) (result T, ok bool, err error)
}

// MaxResults is the page size used by List.
const MaxResults = 1<<31 - 1

// Task is a user task.
type Task interface {
	ID() string
	Name() string
	Description() string
	Assignee() string
	Owner() string
	Priority() int
	CreateTime() time.Time
	LastUpdated() time.Time
	DueDate() time.Time
	FollowUpDate() time.Time
	DelegationState() DelegationState
	ExecutionID() string
	ParentTaskID() string
	ProcessDefinitionID() string
	ProcessInstanceID() string
	CaseDefinitionID() string
	CaseInstanceID() string
	CaseExecutionID() string
	TaskDefinitionKey() string
	FormKey() string
	TenantID() string
	IsSuspended() bool
}

// ProcessInstance is a running process instance.
type ProcessInstance interface {
	ID() string
	ProcessInstanceID() string
	ProcessDefinitionID() string
	BusinessKey() string
	CaseInstanceID() string
	IsEnded() bool
	IsSuspended() bool
	TenantID() string
}

// Execution is a path of execution inside a process instance.
type Execution interface {
	ID() string
	ProcessInstanceID() string
	IsEnded() bool
	TenantID() string
}

// ExternalTask is a unit of work fetched by external workers.
type ExternalTask interface {
	ID() string
	TopicName() string
	WorkerID() string
	LockExpirationTime() time.Time
	Retries() (int, bool)
	ErrorMessage() string
	Priority() int64
	ActivityID() string
	ActivityInstanceID() string
	ExecutionID() string
	ProcessInstanceID() string
	ProcessDefinitionID() string
	ProcessDefinitionKey() string
	ProcessDefinitionVersionTag() string
	BusinessKey() string
	TenantID() string
	IsSuspended() bool
}

// Incident is a failure recorded against an execution.
type Incident interface {
	ID() string
	IncidentTimestamp() time.Time
	IncidentType() string
	IncidentMessage() string
	ExecutionID() string
	ActivityID() string
	FailedActivityID() string
	ProcessInstanceID() string
	ProcessDefinitionID() string
	CauseIncidentID() string
	RootCauseIncidentID() string
	Configuration() string
	JobDefinitionID() string
	Annotation() string
	TenantID() string
}

// EventSubscription is a message, signal or conditional subscription.
type EventSubscription interface {
	ID() string
	EventType() string
	EventName() string
	ExecutionID() string
	ProcessInstanceID() string
	ActivityID() string
	TenantID() string
	Created() time.Time
}

// Deployment is a set of deployed resources.
type Deployment interface {
	ID() string
	Name() string
	Source() string
	DeploymentTime() time.Time
	TenantID() string
}

// ProcessDefinition is a deployed process model.
type ProcessDefinition interface {
	ID() string
	Key() string
	Category() string
	Description() string
	Name() string
	Version() int
	ResourceName() string
	DeploymentID() string
	DiagramResourceName() string
	IsSuspended() bool
	TenantID() string
	VersionTag() string
	HistoryTimeToLive() (int, bool)
	IsStartableInTasklist() bool
}

// HistoricProcessInstance is a process instance as recorded by history.
type HistoricProcessInstance interface {
	ID() string
	BusinessKey() string
	ProcessDefinitionID() string
	ProcessDefinitionKey() string
	ProcessDefinitionName() string
	ProcessDefinitionVersion() int
	StartTime() time.Time
	EndTime() time.Time
	RemovalTime() time.Time
	DurationInMillis() int64
	StartUserID() string
	StartActivityID() string
	DeleteReason() string
	RootProcessInstanceID() string
	SuperProcessInstanceID() string
	SuperCaseInstanceID() string
	CaseInstanceID() string
	TenantID() string
	State() HistoricState
}
